package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/eslib/lending-service/internal/errs"
	"github.com/eslib/lending-service/pkg/validate"
	_ "github.com/eslib/lending-service/swagger"
)

type Handler struct {
	catalogSvc      CatalogService
	lendingSvc      LendingService
	notificationSvc NotificationService
	statsSvc        StatsService
	log             *zap.Logger
}

func New(catalog CatalogService, lending LendingService, notifications NotificationService, stats StatsService, log *zap.Logger) *Handler {
	return &Handler{
		catalogSvc:      catalog,
		lendingSvc:      lending,
		notificationSvc: notifications,
		statsSvc:        stats,
		log:             log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig()),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
	)

	api.GET("/components", h.GetComponents)
	api.POST("/components", h.CreateComponent)
	api.PUT("/components/:componentUid", h.UpdateComponent)
	api.DELETE("/components/:componentUid", h.DeleteComponent)

	api.POST("/lendings/borrow", h.CreateBorrowRequest)
	api.GET("/lendings", h.GetLendings)
	api.POST("/lendings/:lendingUid/return-request", h.CreateReturnRequest)
	api.POST("/lendings/:lendingUid/approve", h.Approve)
	api.POST("/lendings/:lendingUid/reject", h.Reject)

	api.GET("/notifications", h.GetNotifications)
	api.GET("/notifications/unread-count", h.UnreadCount)
	api.POST("/notifications/:notificationUid/read", h.MarkRead)
	api.POST("/notifications/read-all", h.MarkAllRead)

	api.GET("/stats/dashboard", h.GetDashboardStats)
	api.GET("/stats/activity", h.GetActivityStats)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps domain errors onto response codes. Everything the caller can
// fix lands in 4xx; the rest is internal and logged.
func (h *Handler) httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	h.log.Error("internal error", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
