package handler

import (
	"context"

	"github.com/eslib/lending-service/internal/model"
	"github.com/eslib/lending-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogService interface {
	CreateComponent(ctx context.Context, req model.CreateComponentRequest) (model.Component, error)
	UpdateComponent(ctx context.Context, componentUid string, req model.CreateComponentRequest) (model.Component, error)
	DeleteComponent(ctx context.Context, componentUid string) error
	ListComponents(ctx context.Context) ([]model.Component, error)
}

type LendingService interface {
	CreateBorrowRequest(ctx context.Context, req model.CreateBorrowRequest) (model.LendingRecord, error)
	CreateReturnRequest(ctx context.Context, lendingUid string) (model.LendingRecord, error)
	Approve(ctx context.Context, lendingUid string) (model.LendingRecord, error)
	Reject(ctx context.Context, lendingUid string) (model.LendingRecord, error)
	ListLendings(ctx context.Context, filter model.LendingFilter) ([]model.LendingRecord, error)
}

type NotificationService interface {
	ListNotifications(ctx context.Context, filter model.NotificationFilter) ([]model.Notification, error)
	MarkRead(ctx context.Context, notificationUid string) error
	MarkAllRead(ctx context.Context) error
	UnreadCount(ctx context.Context) (int, error)
}

type StatsService interface {
	DashboardStats(ctx context.Context) (model.DashboardStats, error)
	ActivityStats(ctx context.Context) ([]model.ActivityStat, error)
}

var (
	_ CatalogService      = (*service.Service)(nil)
	_ LendingService      = (*service.Service)(nil)
	_ NotificationService = (*service.Service)(nil)
	_ StatsService        = (*service.Service)(nil)
)
