package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eslib/lending-service/internal/model"
)

// CreateBorrowRequest godoc
// @Summary  Submit a borrow request
// @Tags     lendings
// @Accept   json
// @Produce  json
// @Param    request body model.CreateBorrowRequest true "borrow request"
// @Success  200 {object} model.LendingRecord
// @Router   /lendings/borrow [post]
func (h *Handler) CreateBorrowRequest(c echo.Context) error {
	var req model.CreateBorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	lending, err := h.lendingSvc.CreateBorrowRequest(ctx, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, lending)
}

// GetLendings godoc
// @Summary  List lending records
// @Tags     lendings
// @Produce  json
// @Param    rollNumber query string false "filter by roll number"
// @Param    status query string false "filter by status"
// @Param    unreturned query bool false "only records still out"
// @Success  200 {array} model.LendingRecord
// @Router   /lendings [get]
func (h *Handler) GetLendings(c echo.Context) error {
	filter := model.LendingFilter{
		RollNumber: c.QueryParam("rollNumber"),
		Status:     model.Status(c.QueryParam("status")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown status "+string(filter.Status))
	}
	if v := c.QueryParam("unreturned"); v != "" {
		unreturned, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		filter.Unreturned = unreturned
	}
	ctx := c.Request().Context()
	items, err := h.lendingSvc.ListLendings(ctx, filter)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// CreateReturnRequest godoc
// @Summary  Submit a return request for an approved lending
// @Tags     lendings
// @Produce  json
// @Param    lendingUid path string true "lending uid"
// @Success  200 {object} model.LendingRecord
// @Router   /lendings/{lendingUid}/return-request [post]
func (h *Handler) CreateReturnRequest(c echo.Context) error {
	lendingUid := c.Param("lendingUid")
	if lendingUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty lendingUid")
	}
	ctx := c.Request().Context()
	lending, err := h.lendingSvc.CreateReturnRequest(ctx, lendingUid)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, lending)
}

// Approve godoc
// @Summary  Approve a pending borrow or return request
// @Tags     lendings
// @Produce  json
// @Param    lendingUid path string true "lending uid"
// @Success  200 {object} model.LendingRecord
// @Router   /lendings/{lendingUid}/approve [post]
func (h *Handler) Approve(c echo.Context) error {
	lendingUid := c.Param("lendingUid")
	if lendingUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty lendingUid")
	}
	ctx := c.Request().Context()
	lending, err := h.lendingSvc.Approve(ctx, lendingUid)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, lending)
}

// Reject godoc
// @Summary  Reject a pending borrow or return request
// @Tags     lendings
// @Produce  json
// @Param    lendingUid path string true "lending uid"
// @Success  200 {object} model.LendingRecord
// @Router   /lendings/{lendingUid}/reject [post]
func (h *Handler) Reject(c echo.Context) error {
	lendingUid := c.Param("lendingUid")
	if lendingUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty lendingUid")
	}
	ctx := c.Request().Context()
	lending, err := h.lendingSvc.Reject(ctx, lendingUid)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, lending)
}
