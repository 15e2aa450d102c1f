package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fintaskReza/opzer-dash/internal/app"
	"github.com/fintaskReza/opzer-dash/internal/platform/db"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN, db.PoolOptions{MaxConns: 2})
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if err := db.Migrate(pool); err != nil {
		logger.Error("migrate database", slog.Any("error", err))
		os.Exit(1)
	}

	res, err := app.NewServices(pool, nil, logger).Seeder(logger).Demo(ctx, os.Getenv("ADMIN_PASSWORD"))
	if err != nil {
		logger.Error("seed demo data", slog.Any("error", err))
		os.Exit(1)
	}
	if res.Skipped {
		logger.Info("nothing to seed", slog.Int64("org_id", res.OrgID))
		return
	}
	logger.Info("seed complete", slog.Int64("org_id", res.OrgID), slog.Int("budgets", res.Budgets))
}
