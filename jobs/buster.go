package jobs

import (
	"context"
	"log/slog"
)

// CacheBuster invalidates an org's dashboards after a write. The cache is
// cleared inline; a failed invalidation is retried through the queue and a
// successful one queues a warmup so the next read is served hot.
type CacheBuster struct {
	Cache  DashboardCache
	Queue  *Client
	Logger *slog.Logger
}

// Bust satisfies the roster and entries Buster interfaces.
func (b *CacheBuster) Bust(ctx context.Context, orgID int64) {
	if b == nil || b.Cache == nil {
		return
	}
	logger := b.Logger
	if logger == nil {
		logger = slog.Default()
	}
	err := b.Cache.Invalidate(ctx, orgID)
	if b.Queue == nil {
		if err != nil {
			logger.Warn("dashboard cache bust", slog.Int64("org_id", orgID), slog.Any("error", err))
		}
		return
	}
	if err != nil {
		logger.Warn("dashboard cache bust failed, queueing retry", slog.Int64("org_id", orgID), slog.Any("error", err))
		if qerr := b.Queue.EnqueueBust(ctx, orgID); qerr != nil {
			logger.Error("enqueue dashboard bust", slog.Int64("org_id", orgID), slog.Any("error", qerr))
		}
		return
	}
	if qerr := b.Queue.EnqueueWarmup(ctx, orgID); qerr != nil {
		logger.Warn("enqueue dashboard warmup", slog.Int64("org_id", orgID), slog.Any("error", qerr))
	}
}
