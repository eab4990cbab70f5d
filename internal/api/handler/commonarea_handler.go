package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/condovia/residential-api/internal/api/metrics"
	"github.com/condovia/residential-api/internal/core/domain"
	"github.com/condovia/residential-api/internal/core/ports"
)

// CommonAreaHandler handles common areas and their reservations.
type CommonAreaHandler struct {
	areas ports.CommonAreaService
}

func NewCommonAreaHandler(areas ports.CommonAreaService) *CommonAreaHandler {
	return &CommonAreaHandler{areas: areas}
}

type commonAreaRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
	OpensAt     string `json:"opens_at"`
	ClosesAt    string `json:"closes_at"`
	Active      bool   `json:"active"`
}

type reservationRequest struct {
	AccountID int64  `json:"account_id"`
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	Status    string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
}

// Create registers a common area.
//
// @Summary      Create a common area
// @Tags         common-areas
// @Accept       json
// @Produce      json
// @Param        body  body      commonAreaRequest  true  "Common area details"
// @Success      201   {object}  domain.CommonArea
// @Router       /api/v1/common-areas [post]
func (h *CommonAreaHandler) Create(c echo.Context) error {
	var req commonAreaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	a, err := h.areas.Create(c.Request().Context(), ports.CommonAreaInput{
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		OpensAt:     req.OpensAt,
		ClosesAt:    req.ClosesAt,
		Active:      req.Active,
	})
	if err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("common_area", "create").Inc()
	return c.JSON(http.StatusCreated, a)
}

func (h *CommonAreaHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	a, err := h.areas.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

func (h *CommonAreaHandler) List(c echo.Context) error {
	areas, err := h.areas.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, areas)
}

func (h *CommonAreaHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req commonAreaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	a, err := h.areas.Update(c.Request().Context(), id, ports.CommonAreaInput{
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		OpensAt:     req.OpensAt,
		ClosesAt:    req.ClosesAt,
		Active:      req.Active,
	})
	if err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("common_area", "update").Inc()
	return c.JSON(http.StatusOK, a)
}

func (h *CommonAreaHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.areas.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("common_area", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Reserve books a common area. When account_id is omitted the
// reservation is booked for the authenticated account.
//
// @Summary      Reserve a common area
// @Tags         common-areas
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Common area id"
// @Param        body  body      reservationRequest  true  "Reservation details"
// @Success      201   {object}  domain.Reservation
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/common-areas/{id}/reservations [post]
func (h *CommonAreaHandler) Reserve(c echo.Context) error {
	areaID, err := pathID(c)
	if err != nil {
		return err
	}

	var req reservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	accountID := req.AccountID
	if accountID == 0 {
		accountID, err = ctxAccountID(c)
		if err != nil {
			return err
		}
	}

	r, err := h.areas.Reserve(c.Request().Context(), ports.ReservationInput{
		CommonAreaID: areaID,
		AccountID:    accountID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Status:       domain.ReservationStatus(req.Status),
	})
	if err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("reservation", "create").Inc()
	return c.JSON(http.StatusCreated, r)
}

func (h *CommonAreaHandler) ListReservations(c echo.Context) error {
	areaID, err := pathID(c)
	if err != nil {
		return err
	}
	reservations, err := h.areas.ListReservations(c.Request().Context(), areaID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reservations)
}

func (h *CommonAreaHandler) GetReservation(c echo.Context) error {
	id, err := reservationPathID(c)
	if err != nil {
		return err
	}
	r, err := h.areas.GetReservation(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

func (h *CommonAreaHandler) UpdateReservation(c echo.Context) error {
	id, err := reservationPathID(c)
	if err != nil {
		return err
	}

	var req reservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	r, err := h.areas.UpdateReservation(c.Request().Context(), id, ports.ReservationInput{
		AccountID: req.AccountID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    domain.ReservationStatus(req.Status),
	})
	if err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("reservation", "update").Inc()
	return c.JSON(http.StatusOK, r)
}

// CancelReservation marks a reservation cancelled. The record is kept.
func (h *CommonAreaHandler) CancelReservation(c echo.Context) error {
	id, err := reservationPathID(c)
	if err != nil {
		return err
	}
	if err := h.areas.CancelReservation(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("reservation", "cancel").Inc()
	return c.NoContent(http.StatusNoContent)
}

// reservationPathID parses the :reservation_id route parameter.
func reservationPathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("reservation_id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid reservation id")
	}
	return id, nil
}
