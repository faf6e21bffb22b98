package service

import (
	"context"

	"github.com/eventra/eventra-backend/internal/repository"
)

// StatsProvider runs the dashboard aggregation queries.
type StatsProvider interface {
	Dashboard(ctx context.Context) (*repository.DashboardStats, error)
	HosterDashboard(ctx context.Context, hosterID string) (*repository.HosterStats, error)
}

// StatsService exposes dashboard aggregates to the handlers.
type StatsService struct {
	stats StatsProvider
}

// NewStatsService constructs a StatsService.
func NewStatsService(stats StatsProvider) *StatsService {
	return &StatsService{stats: stats}
}

// Dashboard returns the platform-wide admin counters.
func (s *StatsService) Dashboard(ctx context.Context) (*repository.DashboardStats, error) {
	return s.stats.Dashboard(ctx)
}

// HosterDashboard returns the counters scoped to one hoster.
func (s *StatsService) HosterDashboard(ctx context.Context, hosterID string) (*repository.HosterStats, error) {
	return s.stats.HosterDashboard(ctx, hosterID)
}
