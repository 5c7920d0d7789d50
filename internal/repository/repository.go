package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/eslib/lending-service/internal/model"
	"github.com/eslib/lending-service/pkg/kafka"
)

type Repository interface {
	// WithinTx runs fn against a repository bound to a single transaction.
	// Any error from fn rolls the whole transaction back.
	WithinTx(ctx context.Context, fn func(r Repository) error) error

	CreateComponent(ctx context.Context, comp model.Component) (model.Component, error)
	GetComponent(ctx context.Context, componentUid string) (model.Component, error)
	ListComponents(ctx context.Context) ([]model.Component, error)
	UpdateComponent(ctx context.Context, comp model.Component) (model.Component, error)
	DeleteComponent(ctx context.Context, componentUid string) error
	HasOutstanding(ctx context.Context, componentUid string) (bool, error)
	Reserve(ctx context.Context, componentUid string, qty int) error
	Release(ctx context.Context, componentUid string, qty int) error

	CreateLending(ctx context.Context, lending model.LendingRecord) (model.LendingRecord, error)
	GetLending(ctx context.Context, lendingUid string) (model.LendingRecord, error)
	SetLendingStatus(ctx context.Context, lendingUid string, status model.Status, returnDate *time.Time) (model.LendingRecord, error)
	ListLendings(ctx context.Context, filter model.LendingFilter) ([]model.LendingRecord, error)

	CreateNotification(ctx context.Context, n model.Notification) (model.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationUid string) error
	MarkAllNotificationsRead(ctx context.Context) error
	MarkLendingNotificationsRead(ctx context.Context, lendingUid string) error
	ListNotifications(ctx context.Context, filter model.NotificationFilter) ([]model.Notification, error)
	CountUnreadNotifications(ctx context.Context) (int, error)

	DashboardStats(ctx context.Context) (model.DashboardStats, error)
	RecordLendingEvent(ctx context.Context, event kafka.EventLending) error
	ActivityStats(ctx context.Context) ([]model.ActivityStat, error)
}

type repository struct {
	db  *sqlx.DB
	ext sqlx.ExtContext // db outside a transaction, tx inside one
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		ext: db,
		log: log.Named("repo"),
	}, nil
}

const (
	componentsTableName    = `components`
	lendingsTableName      = `lendings`
	notificationsTableName = `notifications`
	eventsTableName        = `lending_events`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) WithinTx(ctx context.Context, fn func(r Repository) error) error {
	if _, ok := r.ext.(*sqlx.Tx); ok {
		return fn(r)
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	txRepo := &repository{db: r.db, ext: tx, log: r.log}
	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.log.Error("tx rollback", zap.Error(rbErr))
		}
		return err
	}
	return tx.Commit()
}
