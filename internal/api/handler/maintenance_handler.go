package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/condovia/residential-api/internal/api/metrics"
	"github.com/condovia/residential-api/internal/core/domain"
	"github.com/condovia/residential-api/internal/core/ports"
)

// MaintenanceHandler handles maintenance requests.
type MaintenanceHandler struct {
	maintenance ports.MaintenanceService
}

func NewMaintenanceHandler(maintenance ports.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenance: maintenance}
}

type maintenanceRequest struct {
	UnitID      int64  `json:"unit_id" validate:"required"`
	AccountID   int64  `json:"account_id"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Status      string `json:"status" validate:"omitempty,oneof=open in_progress closed"`
}

// Create files a maintenance request. When account_id is omitted the
// request is filed by the authenticated account.
//
// @Summary      File a maintenance request
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        body  body      maintenanceRequest  true  "Request details"
// @Success      201   {object}  domain.MaintenanceRequest
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/maintenance [post]
func (h *MaintenanceHandler) Create(c echo.Context) error {
	var req maintenanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	accountID := req.AccountID
	if accountID == 0 {
		var err error
		accountID, err = ctxAccountID(c)
		if err != nil {
			return err
		}
	}

	r, err := h.maintenance.Create(c.Request().Context(), ports.MaintenanceInput{
		UnitID:      req.UnitID,
		AccountID:   accountID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.RequestPriority(req.Priority),
		Status:      domain.RequestStatus(req.Status),
	})
	if err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("maintenance_request", "create").Inc()
	return c.JSON(http.StatusCreated, r)
}

func (h *MaintenanceHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	r, err := h.maintenance.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

// List returns maintenance requests, optionally filtered by unit via
// the unit_id query parameter.
//
// @Summary      List maintenance requests
// @Tags         maintenance
// @Produce      json
// @Param        unit_id  query    int  false  "Filter by unit"
// @Success      200      {array}  domain.MaintenanceRequest
// @Router       /api/v1/maintenance [get]
func (h *MaintenanceHandler) List(c echo.Context) error {
	var unitID int64
	if raw := c.QueryParam("unit_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid unit_id")
		}
		unitID = parsed
	}

	requests, err := h.maintenance.List(c.Request().Context(), unitID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

func (h *MaintenanceHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req maintenanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	r, err := h.maintenance.Update(c.Request().Context(), id, ports.MaintenanceInput{
		UnitID:      req.UnitID,
		AccountID:   req.AccountID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.RequestPriority(req.Priority),
		Status:      domain.RequestStatus(req.Status),
	})
	if err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("maintenance_request", "update").Inc()
	return c.JSON(http.StatusOK, r)
}

func (h *MaintenanceHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.maintenance.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("maintenance_request", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
