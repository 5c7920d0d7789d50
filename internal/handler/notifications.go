package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eslib/lending-service/internal/model"
)

// GetNotifications godoc
// @Summary  List notifications
// @Tags     notifications
// @Produce  json
// @Param    filter query string false "all|unread|borrow|return" default(all)
// @Success  200 {array} model.Notification
// @Router   /notifications [get]
func (h *Handler) GetNotifications(c echo.Context) error {
	ctx := c.Request().Context()
	items, err := h.notificationSvc.ListNotifications(ctx, model.NotificationFilter(c.QueryParam("filter")))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// UnreadCount godoc
// @Summary  Count unread notifications
// @Tags     notifications
// @Produce  json
// @Success  200 {object} map[string]int
// @Router   /notifications/unread-count [get]
func (h *Handler) UnreadCount(c echo.Context) error {
	ctx := c.Request().Context()
	count, err := h.notificationSvc.UnreadCount(ctx)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]int{"count": count})
}

// MarkRead godoc
// @Summary  Mark one notification read
// @Tags     notifications
// @Param    notificationUid path string true "notification uid"
// @Success  200
// @Router   /notifications/{notificationUid}/read [post]
func (h *Handler) MarkRead(c echo.Context) error {
	notificationUid := c.Param("notificationUid")
	if notificationUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty notificationUid")
	}
	ctx := c.Request().Context()
	if err := h.notificationSvc.MarkRead(ctx, notificationUid); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

// MarkAllRead godoc
// @Summary  Mark every notification read
// @Tags     notifications
// @Success  200
// @Router   /notifications/read-all [post]
func (h *Handler) MarkAllRead(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.notificationSvc.MarkAllRead(ctx); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusOK)
}
