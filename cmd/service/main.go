package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "dispatch/internal/app"
	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/connection_token_post"
	"dispatch/internal/handlers/rest/healthcheck_head"
	"dispatch/internal/handlers/rest/mission_assign_post"
	"dispatch/internal/handlers/rest/mission_assigned_get"
	"dispatch/internal/handlers/rest/mission_cancel_post"
	"dispatch/internal/handlers/rest/mission_create_post"
	"dispatch/internal/handlers/rest/mission_location_post"
	"dispatch/internal/handlers/rest/mission_owned_get"
	"dispatch/internal/handlers/rest/mission_progress_post"
	"dispatch/internal/handlers/rest/missions_assigned_get"
	"dispatch/internal/handlers/rest/missions_owned_get"
	"dispatch/internal/handlers/rest/ping_get"
	"dispatch/internal/handlers/rest/subscription_token_post"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/dotenv"
	metrics_system "dispatch/internal/pkg/metrics"
	authmw "dispatch/internal/pkg/middlewares/auth"
	"dispatch/internal/pkg/middlewares/graceful_shutdown"
	"dispatch/internal/pkg/middlewares/metrics"
	"dispatch/internal/pkg/middlewares/rate_limiter"
	"dispatch/internal/pkg/middlewares/timeout"
	"dispatch/internal/pkg/postgres"
	"dispatch/pkg/logger"
	"dispatch/pkg/logger/zap_adapter"
	"dispatch/pkg/token_bucket"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// rateLimiterIdleTTL - через сколько простоя бакет клиента забывается.
const rateLimiterIdleTTL = 10 * time.Minute

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
	mainLog := appLogger.With()

	mainLog.Info("starting dispatch service")

	if err := dotenv.Load(); err != nil {
		mainLog.Error("failed to load env file", logger.NewField("error", err))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // наследование от context.Background() здесь часть graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx, metrics_system.DefaultCollectInterval)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pool, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, pool),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil канал при выключенном pprof, кейс не срабатывает
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	database healthcheck_head.Pinger,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))

	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, database)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log)).Methods(http.MethodGet)

	limiter := token_bucket.NewKeyedBuckets(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS), rateLimiterIdleTTL)
	protected := func(prefix string, allowed func(entities.UserRole) bool) *mux.Router {
		sub := router.PathPrefix(prefix).Subrouter()
		sub.Use(authmw.Middleware(log, app.Verifier))
		sub.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, limiter))
		if allowed != nil {
			sub.Use(authmw.RequireRole(log, allowed))
		}
		return sub
	}

	dispatcher := protected("/dispatcher", entities.UserRole.CanManageMissions)
	dispatcher.Handle("/missions", mission_create_post.New(log, app.ServiceMission)).Methods(http.MethodPost)
	dispatcher.Handle("/missions", missions_owned_get.New(log, app.ServiceMission)).Methods(http.MethodGet)
	dispatcher.Handle("/missions/{id}", mission_owned_get.New(log, app.ServiceMission)).Methods(http.MethodGet)
	dispatcher.Handle("/missions/{id}/assign", mission_assign_post.New(log, app.ServiceMission)).Methods(http.MethodPost)
	dispatcher.Handle("/missions/{id}/cancel", mission_cancel_post.New(log, app.ServiceMission)).Methods(http.MethodPost)

	driver := protected("/driver", entities.UserRole.CanBeAssignedMissions)
	driver.Handle("/missions", missions_assigned_get.New(log, app.ServiceMission)).Methods(http.MethodGet)
	driver.Handle("/missions/{id}", mission_assigned_get.New(log, app.ServiceMission)).Methods(http.MethodGet)
	driver.Handle("/missions/{id}/pickup",
		mission_progress_post.New(log, app.ServiceMission, mission_progress_post.StepPickup)).Methods(http.MethodPost)
	driver.Handle("/missions/{id}/start-transit",
		mission_progress_post.New(log, app.ServiceMission, mission_progress_post.StepStartTransit)).Methods(http.MethodPost)
	driver.Handle("/missions/{id}/deliver",
		mission_progress_post.New(log, app.ServiceMission, mission_progress_post.StepDeliver)).Methods(http.MethodPost)
	driver.Handle("/missions/{id}/location", mission_location_post.New(log, app.ServiceMission)).Methods(http.MethodPost)

	realtime := protected("/realtime", nil)
	realtime.Handle("/connection-token", connection_token_post.New(log, app.ChannelTokens)).Methods(http.MethodPost)
	realtime.Handle("/mission-token",
		subscription_token_post.New(log, app.ChannelTokens, app.ServiceMission, subscription_token_post.ChannelMission)).Methods(http.MethodPost)
	realtime.Handle("/driver-token",
		subscription_token_post.New(log, app.ChannelTokens, app.ServiceMission, subscription_token_post.ChannelDriver)).Methods(http.MethodPost)
	realtime.Handle("/status-token",
		subscription_token_post.New(log, app.ChannelTokens, app.ServiceMission, subscription_token_post.ChannelStatus)).Methods(http.MethodPost)

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, database healthcheck_head.Pinger) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, database)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
