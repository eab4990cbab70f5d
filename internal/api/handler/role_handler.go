package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/condovia/residential-api/internal/api/metrics"
	"github.com/condovia/residential-api/internal/core/ports"
)

// RoleHandler handles role management.
type RoleHandler struct {
	roles ports.RoleService
}

func NewRoleHandler(roles ports.RoleService) *RoleHandler {
	return &RoleHandler{roles: roles}
}

type roleRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// Create registers a new role.
//
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        body  body      roleRequest  true  "Role details"
// @Success      201   {object}  domain.Role
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.roles.Create(c.Request().Context(), ports.RoleInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("role", "create").Inc()
	return c.JSON(http.StatusCreated, role)
}

// Get returns a single role.
//
// @Summary      Get a role
// @Tags         roles
// @Produce      json
// @Param        id   path      int  true  "Role id"
// @Success      200  {object}  domain.Role
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/roles/{id} [get]
func (h *RoleHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	role, err := h.roles.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, role)
}

// List returns all roles.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Success      200  {array}  domain.Role
// @Router       /api/v1/roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.roles.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roles)
}

// Update changes a role's name or description.
//
// @Summary      Update a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Role id"
// @Param        body  body      roleRequest  true  "Fields to update"
// @Success      200   {object}  domain.Role
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/roles/{id} [put]
func (h *RoleHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	role, err := h.roles.Update(c.Request().Context(), id, ports.RoleInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("role", "update").Inc()
	return c.JSON(http.StatusOK, role)
}

// Delete removes a role. Rejected with 409 while accounts reference it.
//
// @Summary      Delete a role
// @Tags         roles
// @Param        id  path  int  true  "Role id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/v1/roles/{id} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.roles.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("role", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
