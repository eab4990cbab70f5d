package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxAccountID extracts the authenticated account id injected by the
// Auth middleware. Presence proves the middleware ran; absence means
// the route was wired without it.
func ctxAccountID(c echo.Context) (int64, error) {
	switch v := c.Get("account_id").(type) {
	case int64:
		return v, nil
	case float64:
		// jwt.MapClaims decodes numbers as float64.
		return int64(v), nil
	default:
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
}
