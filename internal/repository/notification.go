package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/eslib/lending-service/internal/errs"
	"github.com/eslib/lending-service/internal/model"
)

var notificationColumns = []string{"id", "notification_uid", "title", "message", "type", "lending_uid", "date", "read"}

func (r *repository) CreateNotification(ctx context.Context, n model.Notification) (model.Notification, error) {
	q, args, err := qb.Insert(notificationsTableName).
		Columns("notification_uid", "title", "message", "type", "lending_uid", "date", "read").
		Values(uuid.New(), n.Title, n.Message, n.Type, n.LendingUid, n.Date, false).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Notification{}, err
	}
	var res model.Notification
	if err := sqlx.GetContext(ctx, r.ext, &res, q, args...); err != nil {
		r.log.Error("CreateNotification", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return model.Notification{}, err
	}
	return res, nil
}

func (r *repository) MarkNotificationRead(ctx context.Context, notificationUid string) error {
	q, args, err := qb.Update(notificationsTableName).
		Set("read", true).
		Where(sq.Eq{"notification_uid": notificationUid}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.ext.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) MarkAllNotificationsRead(ctx context.Context) error {
	q, args, err := qb.Update(notificationsTableName).
		Set("read", true).
		Where(sq.Eq{"read": false}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.ext.ExecContext(ctx, q, args...)
	return err
}

// MarkLendingNotificationsRead resolves the notifications of a lending once
// an admin has acted on it. No-op when the lending has none.
func (r *repository) MarkLendingNotificationsRead(ctx context.Context, lendingUid string) error {
	q, args, err := qb.Update(notificationsTableName).
		Set("read", true).
		Where(sq.Eq{"lending_uid": lendingUid, "read": false}).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.ext.ExecContext(ctx, q, args...)
	return err
}

func (r *repository) ListNotifications(ctx context.Context, filter model.NotificationFilter) ([]model.Notification, error) {
	q := qb.Select(notificationColumns...).
		From(notificationsTableName).
		OrderBy("id desc")

	switch filter {
	case model.NotificationsUnread:
		q = q.Where(sq.Eq{"read": false})
	case model.NotificationsBorrow:
		q = q.Where(sq.Eq{"type": model.NotificationBorrowRequest})
	case model.NotificationsReturn:
		q = q.Where(sq.Eq{"type": model.NotificationReturnRequest})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Notification
	if err := sqlx.SelectContext(ctx, r.ext, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CountUnreadNotifications(ctx context.Context) (int, error) {
	const q = `
	select count(*) from notifications
	where read = false`
	var count int
	if err := r.ext.QueryRowxContext(ctx, q).Scan(&count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}
