package service

import (
	"context"

	"github.com/eslib/lending-service/internal/model"
	"github.com/eslib/lending-service/pkg/kafka"
)

func (s *Service) DashboardStats(ctx context.Context) (model.DashboardStats, error) {
	var stats model.DashboardStats
	if s.cache.Get(ctx, cacheKeyDashboard, &stats) {
		return stats, nil
	}
	stats, err := s.repo.DashboardStats(ctx)
	if err != nil {
		return model.DashboardStats{}, err
	}
	stats.Borrowed = stats.TotalQuantity - stats.AvailableQuantity
	if stats.TotalQuantity > 0 {
		stats.BorrowedPercentage = float64(stats.Borrowed) / float64(stats.TotalQuantity) * 100
	}
	s.cache.Set(ctx, cacheKeyDashboard, stats)
	return stats, nil
}

// RecordActivity persists a consumed lending event for the activity feed.
func (s *Service) RecordActivity(ctx context.Context, event kafka.EventLending) error {
	return s.repo.RecordLendingEvent(ctx, event)
}

func (s *Service) ActivityStats(ctx context.Context) ([]model.ActivityStat, error) {
	return s.repo.ActivityStats(ctx)
}
