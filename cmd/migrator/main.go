package main

import (
	"context"
	"flag"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/dotenv"
	"dispatch/internal/pkg/migrate"
	"dispatch/pkg/logger"
	"dispatch/pkg/logger/zap_adapter"
)

// Использование: migrator [-env-file path] [up|down|status|version|redo|reset] [args]
func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With(logger.NewField("component", "migrator"))

	if err := dotenv.Load(); err != nil {
		mainLog.Error("failed to load env file", logger.NewField("error", err))
		return
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	command := migrate.CommandUp
	args := flag.Args()
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	err = migrate.Run(ctx, mainLog, cfg, command, args...)
	stop()
	if err != nil {
		mainLog.Error("migration failed",
			logger.NewField("command", command),
			logger.NewField("error", err),
		)
		_ = zapLogger.Sync()
		os.Exit(1)
	}

	mainLog.Info("migrations done", logger.NewField("command", command))
}
