package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/condovia/residential-api/internal/core/domain"
)

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/boom", func(c echo.Context) error {
		return err
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestErrorHandler_AuthFailuresCollapse(t *testing.T) {
	// Bad credentials and an inactive account must be indistinguishable.
	rec1, body1 := serveError(t, domain.ErrInvalidCredentials)
	rec2, body2 := serveError(t, domain.ErrAccountNotActive)

	if rec1.Code != http.StatusUnauthorized || rec2.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", rec1.Code, rec2.Code)
	}
	if body1["error"] != body2["error"] {
		t.Fatalf("auth failure payloads differ: %q vs %q", body1["error"], body2["error"])
	}
	if body1["error"] != "invalid credentials" {
		t.Fatalf("unexpected message: %q", body1["error"])
	}
}

func TestErrorHandler_DomainMappings(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidToken, http.StatusUnauthorized},
		{domain.ErrValidation, http.StatusBadRequest},
		{domain.ErrEmailTaken, http.StatusConflict},
		{domain.ErrRoleTaken, http.StatusConflict},
		{domain.ErrPlateTaken, http.StatusConflict},
		{domain.ErrUnitCodeTaken, http.StatusConflict},
		{domain.ErrRoleInUse, http.StatusConflict},
		{domain.ErrAccountNotFound, http.StatusNotFound},
		{domain.ErrRoleNotFound, http.StatusNotFound},
		{domain.ErrPropertyNotFound, http.StatusNotFound},
		{domain.ErrUnitNotFound, http.StatusNotFound},
		{domain.ErrVehicleNotFound, http.StatusNotFound},
		{domain.ErrCommonAreaNotFound, http.StatusNotFound},
		{domain.ErrReservationNotFound, http.StatusNotFound},
		{domain.ErrRequestNotFound, http.StatusNotFound},
		{domain.ErrNoticeNotFound, http.StatusNotFound},
		{domain.ErrRecordNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		rec, _ := serveError(t, tc.err)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
	}
}

func TestErrorHandler_WrappedErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("lookup account 7"), domain.ErrAccountNotFound)
	rec, _ := serveError(t, wrapped)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped not-found, got %d", rec.Code)
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	rec, body := serveError(t, errors.New("connection reset"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["error"] != "internal server error" {
		t.Fatalf("internal details leaked: %q", body["error"])
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, body := serveError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body["error"] != "invalid payload" {
		t.Fatalf("unexpected message: %q", body["error"])
	}
}
