package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/condovia/residential-api/internal/core/domain"
)

// RBAC restricts a route to the named roles, matched against the role
// claim injected by Auth.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// RequireAdmin gates account and role administration endpoints.
func RequireAdmin() echo.MiddlewareFunc {
	return RBAC(domain.AdminRoleName)
}
