package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	jobmetrics "github.com/fintaskReza/opzer-dash/internal/jobs"
	"github.com/fintaskReza/opzer-dash/internal/orgs"
)

// OrgLister enumerates tenants.
type OrgLister interface {
	List(ctx context.Context) ([]orgs.Organization, error)
}

// DashboardCache is the part of the dashboard service the jobs drive.
type DashboardCache interface {
	Warm(ctx context.Context, orgID int64) error
	Invalidate(ctx context.Context, orgID int64) error
}

// DashboardJob handles the warmup and bust tasks.
type DashboardJob struct {
	Orgs    OrgLister
	Cache   DashboardCache
	Logger  *slog.Logger
	Metrics *jobmetrics.Metrics
}

// NewDashboardJob wires dependencies for the dashboard handlers.
func NewDashboardJob(lister OrgLister, cache DashboardCache, logger *slog.Logger, metrics *jobmetrics.Metrics) *DashboardJob {
	return &DashboardJob{Orgs: lister, Cache: cache, Logger: logger, Metrics: metrics}
}

// HandleWarmup precomputes the default-period dashboard for one or every org.
// Remaining orgs are still warmed when one fails.
func (j *DashboardJob) HandleWarmup(ctx context.Context, t *asynq.Task) (err error) {
	if j == nil || j.Cache == nil {
		return errors.New("dashboard warmup: handler not configured")
	}
	var payload DashboardWarmupPayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("dashboard warmup: payload: %v: %w", err, asynq.SkipRetry)
		}
	}

	tracker := j.Metrics.Track(TaskDashboardWarmup)
	defer func() {
		err = tracker.End(err)
	}()

	ids := []int64{payload.OrgID}
	if payload.OrgID == 0 {
		if j.Orgs == nil {
			return errors.New("dashboard warmup: org lister not configured")
		}
		list, err := j.Orgs.List(ctx)
		if err != nil {
			j.logger().Error("dashboard warmup: list orgs", slog.Any("error", err))
			return err
		}
		ids = make([]int64, 0, len(list))
		for _, o := range list {
			ids = append(ids, o.ID)
		}
	}

	var (
		failures []error
		warmed   int
	)
	for _, id := range ids {
		if err := j.Cache.Warm(ctx, id); err != nil {
			j.logger().Error("dashboard warmup", slog.Int64("org_id", id), slog.Any("error", err))
			failures = append(failures, fmt.Errorf("org %d: %w", id, err))
			continue
		}
		warmed++
	}
	j.Metrics.AddOrgs(TaskDashboardWarmup, warmed)
	j.logger().Info("dashboard warmup finished", slog.Int("orgs", warmed), slog.Int("failed", len(failures)))
	return errors.Join(failures...)
}

// HandleBust invalidates one organization's cached dashboards.
func (j *DashboardJob) HandleBust(ctx context.Context, t *asynq.Task) (err error) {
	if j == nil || j.Cache == nil {
		return errors.New("dashboard bust: handler not configured")
	}
	var payload DashboardBustPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil || payload.OrgID <= 0 {
		return fmt.Errorf("dashboard bust: invalid payload: %w", asynq.SkipRetry)
	}

	tracker := j.Metrics.Track(TaskDashboardBust)
	defer func() {
		err = tracker.End(err)
	}()
	if err := j.Cache.Invalidate(ctx, payload.OrgID); err != nil {
		j.logger().Warn("dashboard bust", slog.Int64("org_id", payload.OrgID), slog.Any("error", err))
		return err
	}
	j.Metrics.AddOrgs(TaskDashboardBust, 1)
	return nil
}

func (j *DashboardJob) logger() *slog.Logger {
	if j.Logger == nil {
		return slog.Default()
	}
	return j.Logger
}
