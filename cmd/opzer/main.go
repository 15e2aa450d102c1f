package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/fintaskReza/opzer-dash/internal/app"
	"github.com/fintaskReza/opzer-dash/internal/auth"
	"github.com/fintaskReza/opzer-dash/internal/connectors"
	"github.com/fintaskReza/opzer-dash/internal/dashboard"
	"github.com/fintaskReza/opzer-dash/internal/entries"
	"github.com/fintaskReza/opzer-dash/internal/importer"
	"github.com/fintaskReza/opzer-dash/internal/observability"
	"github.com/fintaskReza/opzer-dash/internal/orgs"
	"github.com/fintaskReza/opzer-dash/internal/platform/cache"
	"github.com/fintaskReza/opzer-dash/internal/platform/db"
	"github.com/fintaskReza/opzer-dash/internal/rbac"
	"github.com/fintaskReza/opzer-dash/internal/roster"
	"github.com/fintaskReza/opzer-dash/internal/shared"
	"github.com/fintaskReza/opzer-dash/internal/users"
	"github.com/fintaskReza/opzer-dash/jobs"
	"github.com/fintaskReza/opzer-dash/report"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	dbpool, err := db.New(ctx, cfg.PGDSN, db.PoolOptions{MaxConns: cfg.DBMaxConns})
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	if cfg.MigrateOnBoot {
		if err := db.Migrate(dbpool); err != nil {
			logger.Error("migrate database", slog.Any("error", err))
			os.Exit(1)
		}
	}

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	metrics := observability.NewMetrics()
	if err := dashboard.SetupMetrics(metrics.Registerer()); err != nil {
		logger.Error("register dashboard metrics", slog.Any("error", err))
		os.Exit(1)
	}

	sessionManager := shared.NewSessionManager(redisClient, "opzer_session", cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())
	csrfManager := shared.NewCSRFManager(cfg.CSRFSecret)

	redisOpts := asynq.RedisClientOpt{Addr: cfg.RedisAddr}
	queue := jobs.NewClient(redisOpts)
	defer func() {
		if err := queue.Close(); err != nil {
			logger.Warn("queue close", slog.Any("error", err))
		}
	}()
	inspector := asynq.NewInspector(redisOpts)
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()

	dashboardStore := cache.NewJSONStore(redisClient, "opzer:dashboard:", cfg.DashboardCacheTTL)
	dashboardService := dashboard.NewService(dashboard.NewSnapshotLoader(dbpool), dashboardStore, logger)
	buster := &jobs.CacheBuster{Cache: dashboardService, Queue: queue, Logger: logger}

	services := app.NewServices(dbpool, buster, logger)
	rbacMiddleware := rbac.Middleware{Principals: services.Auth, Logger: logger}

	if cfg.DemoData {
		if _, err := services.Seeder(logger).Demo(ctx, os.Getenv("ADMIN_PASSWORD")); err != nil {
			logger.Error("seed demo data", slog.Any("error", err))
			os.Exit(1)
		}
	}

	pdfClient := report.NewClient(cfg.GotenbergURL)
	var pdf dashboard.PDFRenderer
	if cfg.GotenbergURL != "" {
		pdf = pdfClient
	}

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		SessionManager:    sessionManager,
		CSRFManager:       csrfManager,
		RBACMiddleware:    rbacMiddleware,
		Metrics:           metrics,
		AuthHandler:       auth.NewHandler(logger, services.Auth, sessionManager, csrfManager),
		OrgsHandler:       orgs.NewHandler(logger, services.Orgs, rbacMiddleware),
		UsersHandler:      users.NewHandler(logger, services.Users, rbacMiddleware),
		RosterHandler:     roster.NewHandler(logger, services.Roster, rbacMiddleware),
		EntriesHandler:    entries.NewHandler(logger, services.Entries, rbacMiddleware),
		DashboardHandler:  dashboard.NewHandler(logger, dashboardService, pdf, services.Orgs, rbacMiddleware),
		ImportHandler:     importer.NewHandler(logger, services.Entries, rbacMiddleware),
		DataSourceHandler: connectors.NewHandler(logger, connectors.NewRegistry(services.Entries), rbacMiddleware),
		ReportHandler:     report.NewHandler(pdfClient, logger),
		JobHandler:        jobs.NewHandler(inspector, logger),
	})

	server := &http.Server{
		Addr:              cfg.AppAddr,
		Handler:           router,
		ReadTimeout:       cfg.AppReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr), slog.String("env", cfg.AppEnv))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
