package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/condovia/residential-api/internal/api/metrics"
	"github.com/condovia/residential-api/internal/core/domain"
	"github.com/condovia/residential-api/internal/core/ports"
)

// PropertyHandler handles properties and their units.
type PropertyHandler struct {
	properties ports.PropertyService
}

func NewPropertyHandler(properties ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{properties: properties}
}

type propertyRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Type    string `json:"type" validate:"omitempty,oneof=building condominium complex other"`
}

type unitRequest struct {
	Code      string  `json:"code" validate:"required"`
	Level     string  `json:"level"`
	AreaM2    float64 `json:"area_m2"`
	Bedrooms  int     `json:"bedrooms"`
	Bathrooms int     `json:"bathrooms"`
	Status    string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

// Create registers a new property.
//
// @Summary      Create a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        body  body      propertyRequest  true  "Property details"
// @Success      201   {object}  domain.Property
// @Router       /api/v1/properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	var req propertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := h.properties.Create(c.Request().Context(), ports.PropertyInput{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Country: req.Country,
		Type:    domain.PropertyType(req.Type),
	})
	if err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("property", "create").Inc()
	return c.JSON(http.StatusCreated, p)
}

func (h *PropertyHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	p, err := h.properties.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PropertyHandler) List(c echo.Context) error {
	props, err := h.properties.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, props)
}

func (h *PropertyHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req propertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	p, err := h.properties.Update(c.Request().Context(), id, ports.PropertyInput{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Country: req.Country,
		Type:    domain.PropertyType(req.Type),
	})
	if err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("property", "update").Inc()
	return c.JSON(http.StatusOK, p)
}

// Delete removes a property and its units. Vehicles parked at removed
// units keep existing with the unit reference cleared.
func (h *PropertyHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.properties.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("property", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// CreateUnit adds a unit to a property. The unit code must be unique
// within the property.
//
// @Summary      Create a unit
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Property id"
// @Param        body  body      unitRequest  true  "Unit details"
// @Success      201   {object}  domain.Unit
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/properties/{id}/units [post]
func (h *PropertyHandler) CreateUnit(c echo.Context) error {
	propertyID, err := pathID(c)
	if err != nil {
		return err
	}

	var req unitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	u, err := h.properties.CreateUnit(c.Request().Context(), propertyID, ports.UnitInput{
		Code:      req.Code,
		Level:     req.Level,
		AreaM2:    req.AreaM2,
		Bedrooms:  req.Bedrooms,
		Bathrooms: req.Bathrooms,
		Status:    domain.UnitStatus(req.Status),
	})
	if err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("unit", "create").Inc()
	return c.JSON(http.StatusCreated, u)
}

func (h *PropertyHandler) ListUnits(c echo.Context) error {
	propertyID, err := pathID(c)
	if err != nil {
		return err
	}
	units, err := h.properties.ListUnits(c.Request().Context(), propertyID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, units)
}

func (h *PropertyHandler) GetUnit(c echo.Context) error {
	id, err := unitPathID(c)
	if err != nil {
		return err
	}
	u, err := h.properties.GetUnit(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func (h *PropertyHandler) UpdateUnit(c echo.Context) error {
	id, err := unitPathID(c)
	if err != nil {
		return err
	}

	var req unitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	u, err := h.properties.UpdateUnit(c.Request().Context(), id, ports.UnitInput{
		Code:      req.Code,
		Level:     req.Level,
		AreaM2:    req.AreaM2,
		Bedrooms:  req.Bedrooms,
		Bathrooms: req.Bathrooms,
		Status:    domain.UnitStatus(req.Status),
	})
	if err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("unit", "update").Inc()
	return c.JSON(http.StatusOK, u)
}

func (h *PropertyHandler) DeleteUnit(c echo.Context) error {
	id, err := unitPathID(c)
	if err != nil {
		return err
	}
	if err := h.properties.DeleteUnit(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("unit", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// unitPathID parses the :unit_id route parameter.
func unitPathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("unit_id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid unit id")
	}
	return id, nil
}
