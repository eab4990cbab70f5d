package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/condovia/residential-api/internal/api/metrics"
	"github.com/condovia/residential-api/internal/core/domain"
	"github.com/condovia/residential-api/internal/core/ports"
)

// VehicleHandler handles the vehicle registry.
type VehicleHandler struct {
	vehicles ports.VehicleService
}

func NewVehicleHandler(vehicles ports.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

type vehicleRequest struct {
	AccountID *int64 `json:"account_id"`
	UnitID    *int64 `json:"unit_id"`
	Plate     string `json:"plate" validate:"required"`
	Brand     string `json:"brand"`
	Model     string `json:"model"`
	Color     string `json:"color"`
	Status    string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// Create registers a vehicle. The plate is normalized to upper case and
// must be unique across the registry.
//
// @Summary      Register a vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        body  body      vehicleRequest  true  "Vehicle details"
// @Success      201   {object}  domain.Vehicle
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/vehicles [post]
func (h *VehicleHandler) Create(c echo.Context) error {
	var req vehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	v, err := h.vehicles.Create(c.Request().Context(), ports.VehicleInput{
		AccountID: req.AccountID,
		UnitID:    req.UnitID,
		Plate:     req.Plate,
		Brand:     req.Brand,
		Model:     req.Model,
		Color:     req.Color,
		Status:    domain.VehicleStatus(req.Status),
	})
	if err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("vehicle", "create").Inc()
	return c.JSON(http.StatusCreated, v)
}

func (h *VehicleHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	v, err := h.vehicles.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

func (h *VehicleHandler) List(c echo.Context) error {
	vehicles, err := h.vehicles.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vehicles)
}

func (h *VehicleHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req vehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	v, err := h.vehicles.Update(c.Request().Context(), id, ports.VehicleInput{
		AccountID: req.AccountID,
		UnitID:    req.UnitID,
		Plate:     req.Plate,
		Brand:     req.Brand,
		Model:     req.Model,
		Color:     req.Color,
		Status:    domain.VehicleStatus(req.Status),
	})
	if err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("vehicle", "update").Inc()
	return c.JSON(http.StatusOK, v)
}

func (h *VehicleHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.vehicles.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("vehicle", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
