package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eslib/lending-service/internal/model"
)

// GetComponents godoc
// @Summary  List catalog components
// @Tags     components
// @Produce  json
// @Success  200 {array} model.Component
// @Router   /components [get]
func (h *Handler) GetComponents(c echo.Context) error {
	ctx := c.Request().Context()
	items, err := h.catalogSvc.ListComponents(ctx)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// CreateComponent godoc
// @Summary  Add a component to the catalog
// @Tags     components
// @Accept   json
// @Produce  json
// @Param    component body model.CreateComponentRequest true "component"
// @Success  200 {object} model.Component
// @Router   /components [post]
func (h *Handler) CreateComponent(c echo.Context) error {
	var req model.CreateComponentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	comp, err := h.catalogSvc.CreateComponent(ctx, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, comp)
}

// UpdateComponent godoc
// @Summary  Update a catalog component
// @Tags     components
// @Accept   json
// @Produce  json
// @Param    componentUid path string true "component uid"
// @Param    component body model.CreateComponentRequest true "component"
// @Success  200 {object} model.Component
// @Router   /components/{componentUid} [put]
func (h *Handler) UpdateComponent(c echo.Context) error {
	componentUid := c.Param("componentUid")
	if componentUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty componentUid")
	}
	var req model.CreateComponentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	comp, err := h.catalogSvc.UpdateComponent(ctx, componentUid, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, comp)
}

// DeleteComponent godoc
// @Summary  Remove a component without outstanding loans
// @Tags     components
// @Param    componentUid path string true "component uid"
// @Success  204
// @Router   /components/{componentUid} [delete]
func (h *Handler) DeleteComponent(c echo.Context) error {
	componentUid := c.Param("componentUid")
	if componentUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty componentUid")
	}
	ctx := c.Request().Context()
	if err := h.catalogSvc.DeleteComponent(ctx, componentUid); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
