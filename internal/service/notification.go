package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/eslib/lending-service/internal/errs"
	"github.com/eslib/lending-service/internal/model"
)

func (s *Service) ListNotifications(ctx context.Context, filter model.NotificationFilter) ([]model.Notification, error) {
	if filter == "" {
		filter = model.NotificationsAll
	}
	if !filter.Valid() {
		return nil, errors.Wrapf(errs.ErrInvalidInput, "unknown filter %q", filter)
	}
	return s.repo.ListNotifications(ctx, filter)
}

func (s *Service) MarkRead(ctx context.Context, notificationUid string) error {
	return s.repo.MarkNotificationRead(ctx, notificationUid)
}

func (s *Service) MarkAllRead(ctx context.Context) error {
	return s.repo.MarkAllNotificationsRead(ctx)
}

func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	return s.repo.CountUnreadNotifications(ctx)
}
