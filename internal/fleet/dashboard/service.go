// Copyright (c) 2026 Fleetra. All rights reserved.
// Author: quang.phan.hcm@gmail.com

package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/quangphan/fleetra/internal/users/auth"
)

// # Service Layer

// Service assembles the dashboard read models, caching the expensive stats
// aggregation and short-circuiting the demo identity to generated data.
type Service struct {
	repo   Repository
	cache  StatsCache
	logger *slog.Logger

	// now is swappable so tests can pin the demo activity window.
	now func() time.Time
}

func NewService(repo Repository, cache StatsCache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock returns a copy of the service using the provided time source.
// Intended for tests only.
func (service *Service) WithClock(now func() time.Time) *Service {
	clone := *service
	clone.now = now
	return &clone
}

/*
GetStats returns the headline block for the owner's dashboard.

Description: Demo identities get deterministic generated numbers. Persisted
owners are served from the cache when fresh; otherwise the aggregation runs
against Postgres and the result is cached for the next page load. Cache
failures are logged and ignored, the database remains the source of truth.

Parameters:
  - context: context.Context
  - ownerID: string (from the session)

Returns:
  - *Stats: Headline numbers
  - error: Aggregation failures
*/
func (service *Service) GetStats(context context.Context, ownerID string) (*Stats, error) {
	if ownerID == auth.DemoUserID {
		return demoStats(ownerID), nil
	}

	cached, err := service.cache.Get(context, ownerID)
	if err != nil {
		service.logger.WarnContext(context, "dashboard_stats_cache_read_failed", slog.String("error", err.Error()))
	} else if cached != nil {
		return cached, nil
	}

	stats, err := service.repo.Stats(context, ownerID)
	if err != nil {
		return nil, err
	}

	if err := service.cache.Set(context, ownerID, stats); err != nil {
		service.logger.WarnContext(context, "dashboard_stats_cache_write_failed", slog.String("error", err.Error()))
	}

	return stats, nil
}

// GetWeeklyActivity returns the last seven days of trip activity.
func (service *Service) GetWeeklyActivity(context context.Context, ownerID string) ([]DayActivity, error) {
	if ownerID == auth.DemoUserID {
		return demoWeeklyActivity(ownerID, service.now()), nil
	}
	return service.repo.WeeklyActivity(context, ownerID)
}

// ListAlerts returns the owner's alerts, optionally only unacknowledged ones.
func (service *Service) ListAlerts(context context.Context, ownerID string, openOnly bool) ([]*Alert, error) {
	if ownerID == auth.DemoUserID {
		return demoAlerts(ownerID, service.now()), nil
	}
	return service.repo.ListAlerts(context, ownerID, openOnly)
}

// AcknowledgeAlert marks an alert as handled. Demo alerts are generated, so
// acknowledging them is accepted and discarded.
func (service *Service) AcknowledgeAlert(context context.Context, ownerID, id string) error {
	if ownerID == auth.DemoUserID {
		return nil
	}
	return service.repo.AcknowledgeAlert(context, ownerID, id)
}
