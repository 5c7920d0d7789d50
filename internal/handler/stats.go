package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetDashboardStats godoc
// @Summary  Inventory dashboard totals
// @Tags     stats
// @Produce  json
// @Success  200 {object} model.DashboardStats
// @Router   /stats/dashboard [get]
func (h *Handler) GetDashboardStats(c echo.Context) error {
	ctx := c.Request().Context()
	stats, err := h.statsSvc.DashboardStats(ctx)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// GetActivityStats godoc
// @Summary  Lending event counts by type
// @Tags     stats
// @Produce  json
// @Success  200 {array} model.ActivityStat
// @Router   /stats/activity [get]
func (h *Handler) GetActivityStats(c echo.Context) error {
	ctx := c.Request().Context()
	stats, err := h.statsSvc.ActivityStats(ctx)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}
