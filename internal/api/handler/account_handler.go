package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/condovia/residential-api/internal/api/metrics"
	"github.com/condovia/residential-api/internal/core/domain"
	"github.com/condovia/residential-api/internal/core/ports"
)

// AccountHandler handles account provisioning and management.
type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type createAccountRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone"`
	Status    string `json:"status" validate:"omitempty,oneof=active inactive suspended"`
	RoleID    int64  `json:"role_id" validate:"required"`
	Superuser bool   `json:"superuser"`
}

type updateAccountRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Status    *string `json:"status" validate:"omitempty,oneof=active inactive suspended"`
	RoleID    *int64  `json:"role_id"`
	Password  *string `json:"password"`
}

// Create provisions a new account. With superuser=true the staff and
// superuser flags are forced and an Administrator role is assigned when
// none is supplied.
//
// @Summary      Provision an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      createAccountRequest  true  "Account details"
// @Success      201   {object}  domain.Account
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/v1/accounts [post]
func (h *AccountHandler) Create(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.ProvisionInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Status:    domain.AccountStatus(req.Status),
		RoleID:    req.RoleID,
	}

	var (
		account *domain.Account
		err     error
	)
	if req.Superuser {
		account, err = h.accounts.ProvisionSuperuser(c.Request().Context(), input)
	} else {
		account, err = h.accounts.Provision(c.Request().Context(), input)
	}
	if err != nil {
		return err
	}

	kind := "user"
	if req.Superuser {
		kind = "superuser"
	}
	metrics.AccountsProvisionedTotal.WithLabelValues(kind).Inc()

	return c.JSON(http.StatusCreated, account)
}

// Get returns a single account.
//
// @Summary      Get an account
// @Tags         accounts
// @Produce      json
// @Param        id   path      int  true  "Account id"
// @Success      200  {object}  domain.Account
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/accounts/{id} [get]
func (h *AccountHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	account, err := h.accounts.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// List returns all accounts.
//
// @Summary      List accounts
// @Tags         accounts
// @Produce      json
// @Success      200  {array}  domain.Account
// @Router       /api/v1/accounts [get]
func (h *AccountHandler) List(c echo.Context) error {
	accounts, err := h.accounts.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accounts)
}

// Update applies a partial account update. Status changes are plain
// administrative writes.
//
// @Summary      Update an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Account id"
// @Param        body  body      updateAccountRequest  true  "Fields to update"
// @Success      200   {object}  domain.Account
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/accounts/{id} [put]
func (h *AccountHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateAccountInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		RoleID:    req.RoleID,
		Password:  req.Password,
	}
	if req.Status != nil {
		status := domain.AccountStatus(*req.Status)
		input.Status = &status
	}

	account, err := h.accounts.Update(c.Request().Context(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// Delete removes an account; vehicle references are cleared, not cascaded.
//
// @Summary      Delete an account
// @Tags         accounts
// @Param        id  path  int  true  "Account id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/accounts/{id} [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.accounts.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
