package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/eslib/lending-service/internal/model"
	"github.com/eslib/lending-service/pkg/kafka"
)

func (r *repository) DashboardStats(ctx context.Context) (model.DashboardStats, error) {
	const q = `
	select coalesce(sum(total_quantity), 0)     as total_quantity,
	       coalesce(sum(available_quantity), 0) as available_quantity
	from components`
	var stats model.DashboardStats
	if err := sqlx.GetContext(ctx, r.ext, &stats, q); err != nil {
		return model.DashboardStats{}, err
	}
	return stats, nil
}

func (r *repository) RecordLendingEvent(ctx context.Context, event kafka.EventLending) error {
	q, args, err := qb.Insert(eventsTableName).
		Columns("timestamp", "roll_number", "lending_uid", "component_uid", "quantity", "event_type").
		Values(event.Timestamp, event.RollNumber, event.LendingID, event.ComponentID, event.Quantity, event.EventType).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.ext.ExecContext(ctx, q, args...)
	return err
}

func (r *repository) ActivityStats(ctx context.Context) ([]model.ActivityStat, error) {
	q, args, err := qb.Select("event_type", "count(*) as count").
		From(eventsTableName).
		GroupBy("event_type").
		OrderBy("event_type").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.ActivityStat
	if err := sqlx.SelectContext(ctx, r.ext, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}
