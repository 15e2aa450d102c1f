package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/fintaskReza/opzer-dash/internal/platform/cache"
	"github.com/fintaskReza/opzer-dash/internal/profitability"
)

// Service computes dashboard reports for one organization at a time.
type Service struct {
	loader Loader
	cache  *cache.JSONStore
	logger *slog.Logger
	group  singleflight.Group
}

// NewService wires the service. A nil store disables caching.
func NewService(loader Loader, store *cache.JSONStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{loader: loader, cache: store, logger: logger}
}

// Overview bundles every report for one filter set.
type Overview struct {
	Summary  profitability.Summary                    `json:"summary"`
	Clients  []profitability.ClientProfitabilityRow   `json:"clients"`
	Services []profitability.ServiceProfitabilityRow  `json:"services"`
	Team     []profitability.TeamMemberUtilizationRow `json:"team"`
}

// ClientProfitability returns the client report.
func (s *Service) ClientProfitability(ctx context.Context, orgID int64, f profitability.Filters) ([]profitability.ClientProfitabilityRow, error) {
	return compute(ctx, s, orgID, ReportClients, f, func(data profitability.Dataset) []profitability.ClientProfitabilityRow {
		return nonNil(profitability.ComputeClientProfitability(f, data))
	})
}

// ServiceProfitability returns the service report.
func (s *Service) ServiceProfitability(ctx context.Context, orgID int64, f profitability.Filters) ([]profitability.ServiceProfitabilityRow, error) {
	return compute(ctx, s, orgID, ReportServices, f, func(data profitability.Dataset) []profitability.ServiceProfitabilityRow {
		return nonNil(profitability.ComputeServiceProfitability(f, data))
	})
}

// TeamUtilization returns the team report.
func (s *Service) TeamUtilization(ctx context.Context, orgID int64, f profitability.Filters) ([]profitability.TeamMemberUtilizationRow, error) {
	return compute(ctx, s, orgID, ReportTeam, f, func(data profitability.Dataset) []profitability.TeamMemberUtilizationRow {
		return nonNil(profitability.ComputeTeamUtilization(f, data))
	})
}

// Summary returns the KPI cards.
func (s *Service) Summary(ctx context.Context, orgID int64, f profitability.Filters) (profitability.Summary, error) {
	return compute(ctx, s, orgID, ReportSummary, f, func(data profitability.Dataset) profitability.Summary {
		return profitability.Summarize(
			profitability.ComputeClientProfitability(f, data),
			profitability.ComputeTeamUtilization(f, data),
		)
	})
}

// Overview computes all reports from one dataset load. It is not cached.
func (s *Service) Overview(ctx context.Context, orgID int64, f profitability.Filters) (Overview, error) {
	data, err := s.loader.Load(ctx, orgID)
	if err != nil {
		return Overview{}, err
	}
	clients := profitability.ComputeClientProfitability(f, data)
	team := profitability.ComputeTeamUtilization(f, data)
	return Overview{
		Summary:  profitability.Summarize(clients, team),
		Clients:  nonNil(clients),
		Services: nonNil(profitability.ComputeServiceProfitability(f, data)),
		Team:     nonNil(team),
	}, nil
}

// Warm precomputes every report for the default window.
func (s *Service) Warm(ctx context.Context, orgID int64) error {
	f := DefaultFilters()
	if _, err := s.ClientProfitability(ctx, orgID, f); err != nil {
		return err
	}
	if _, err := s.ServiceProfitability(ctx, orgID, f); err != nil {
		return err
	}
	if _, err := s.TeamUtilization(ctx, orgID, f); err != nil {
		return err
	}
	_, err := s.Summary(ctx, orgID, f)
	return err
}

// Invalidate drops every cached report for orgID.
func (s *Service) Invalidate(ctx context.Context, orgID int64) error {
	removed, err := s.cache.DeletePrefix(ctx, orgPrefix(orgID))
	if err != nil {
		return fmt.Errorf("dashboard: invalidate org %d: %w", orgID, err)
	}
	s.logger.Debug("dashboard cache invalidated", slog.Int64("org_id", orgID), slog.Int("keys", removed))
	return nil
}

// Bust invalidates and logs failures instead of returning them.
func (s *Service) Bust(ctx context.Context, orgID int64) {
	if err := s.Invalidate(ctx, orgID); err != nil {
		s.logger.Warn("dashboard cache bust failed", slog.Int64("org_id", orgID), slog.Any("error", err))
	}
}

// compute serves a report from cache, or loads and aggregates it once per
// key no matter how many callers ask concurrently.
func compute[T any](ctx context.Context, s *Service, orgID int64, report Report, f profitability.Filters, build func(profitability.Dataset) T) (T, error) {
	key := cacheKey(orgID, report, f)

	var cached T
	err := s.cache.Get(ctx, key, &cached)
	switch {
	case err == nil:
		recordHit(report, orgID)
		return cached, nil
	case !errors.Is(err, cache.ErrMiss):
		s.logger.Warn("dashboard cache read failed", slog.String("key", key), slog.Any("error", err))
	}
	recordMiss(report, orgID)

	ch := s.group.DoChan(key, func() (any, error) {
		// Runs detached from any single caller's cancellation.
		runCtx := context.WithoutCancel(ctx)
		started := time.Now()
		data, err := s.loader.Load(runCtx, orgID)
		if err != nil {
			return nil, err
		}
		result := build(data)
		observeCompute(report, time.Since(started))
		if err := s.cache.Set(runCtx, key, result); err != nil {
			s.logger.Warn("dashboard cache write failed", slog.String("key", key), slog.Any("error", err))
		}
		return result, nil
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
