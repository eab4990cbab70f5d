package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/condovia/residential-api/internal/api/metrics"
	"github.com/condovia/residential-api/internal/core/domain"
	"github.com/condovia/residential-api/internal/core/ports"
)

// SecurityHandler handles the gate log: visitor entries, incidents and
// package deliveries.
type SecurityHandler struct {
	security ports.SecurityService
}

func NewSecurityHandler(security ports.SecurityService) *SecurityHandler {
	return &SecurityHandler{security: security}
}

type securityRequest struct {
	Kind        string     `json:"kind" validate:"required,oneof=visitor incident package"`
	Description string     `json:"description"`
	UnitID      *int64     `json:"unit_id"`
	OccurredAt  *time.Time `json:"occurred_at"`
}

// Record appends a security record. The recorder is always the
// authenticated account.
//
// @Summary      Record a security event
// @Tags         security
// @Accept       json
// @Produce      json
// @Param        body  body      securityRequest  true  "Record details"
// @Success      201   {object}  domain.SecurityRecord
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/security [post]
func (h *SecurityHandler) Record(c echo.Context) error {
	var req securityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	recorderID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	input := ports.SecurityInput{
		Kind:        domain.SecurityRecordKind(req.Kind),
		Description: req.Description,
		UnitID:      req.UnitID,
		RecordedBy:  recorderID,
	}
	if req.OccurredAt != nil {
		input.OccurredAt = *req.OccurredAt
	}

	r, err := h.security.Record(c.Request().Context(), input)
	if err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("security_record", "create").Inc()
	return c.JSON(http.StatusCreated, r)
}

func (h *SecurityHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	r, err := h.security.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, r)
}

func (h *SecurityHandler) List(c echo.Context) error {
	records, err := h.security.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// Delete removes a record. The log has no update operation; a bad entry
// is deleted and re-recorded.
func (h *SecurityHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.security.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("security_record", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
