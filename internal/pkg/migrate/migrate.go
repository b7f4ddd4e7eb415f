package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"sync"

	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/postgres"
	"dispatch/migrations"
	"dispatch/pkg/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const CommandUp = "up"

// goose держит FS, диалект и логгер в глобальном состоянии.
var gooseMu sync.Mutex

type migrateLogger interface {
	Info(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

// gooseLogger пишет вывод goose через общий логгер. Fatalf goose вызывает только из
// своих CLI хелперов, здесь он не завершает процесс.
type gooseLogger struct {
	log migrateLogger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info(fmt.Sprintf(format, v...))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error(fmt.Sprintf(format, v...))
}

// Run выполняет goose команду (up, down, status, version, redo, reset...) над встроенными миграциями.
func Run(ctx context.Context, log migrateLogger, cfg *config.Database, command string, args ...string) error {
	db, err := sql.Open("pgx", postgres.DSN(cfg))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", logger.NewField("error", err))
		}
	}()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	files, err := migrationFiles()
	if err != nil {
		return err
	}
	log.Info("running migrations",
		logger.NewField("command", command),
		logger.NewField("embedded", len(files)),
	)

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(gooseLogger{log: log})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.RunContext(ctx, command, db, ".", args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

func migrationFiles() ([]string, error) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	return files, nil
}
