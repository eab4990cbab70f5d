package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/condovia/residential-api/internal/api/metrics"
	"github.com/condovia/residential-api/internal/core/ports"
)

// NoticeHandler handles community notices.
type NoticeHandler struct {
	notices ports.NoticeService
}

func NewNoticeHandler(notices ports.NoticeService) *NoticeHandler {
	return &NoticeHandler{notices: notices}
}

type noticeRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// Publish posts a notice on behalf of the authenticated account.
//
// @Summary      Publish a notice
// @Tags         notices
// @Accept       json
// @Produce      json
// @Param        body  body      noticeRequest  true  "Notice content"
// @Success      201   {object}  domain.Notice
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/notices [post]
func (h *NoticeHandler) Publish(c echo.Context) error {
	var req noticeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	publisherID, err := ctxAccountID(c)
	if err != nil {
		return err
	}

	n, err := h.notices.Publish(c.Request().Context(), ports.NoticeInput{
		Title:       req.Title,
		Body:        req.Body,
		PublishedBy: publisherID,
	})
	if err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("notice", "create").Inc()
	return c.JSON(http.StatusCreated, n)
}

func (h *NoticeHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	n, err := h.notices.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

// List returns notices, newest first.
func (h *NoticeHandler) List(c echo.Context) error {
	notices, err := h.notices.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notices)
}

func (h *NoticeHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req noticeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	n, err := h.notices.Update(c.Request().Context(), id, ports.NoticeInput{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("notice", "update").Inc()
	return c.JSON(http.StatusOK, n)
}

func (h *NoticeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.notices.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("notice", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
