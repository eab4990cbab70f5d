package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/condovia/residential-api/internal/core/domain"
	"github.com/condovia/residential-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn   func(ctx context.Context, identifier, secret string) (*ports.LoginResult, error)
	refreshFn func(ctx context.Context, refreshToken string) (*ports.TokenPair, error)
}

func (s *stubAuthService) Login(ctx context.Context, identifier, secret string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, identifier, secret)
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	return s.refreshFn(ctx, refreshToken)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, identifier, secret string) (*ports.LoginResult, error) {
			if identifier != "alice@example.com" || secret != "s3cret" {
				t.Fatalf("unexpected args: %s %s", identifier, secret)
			}
			return &ports.LoginResult{
				TokenPair: ports.TokenPair{AccessToken: "access123", RefreshToken: "refresh123", ExpiresIn: 900},
				User: domain.Profile{
					ID: 7, Email: "alice@example.com", FirstName: "Alice",
					Status: domain.StatusActive, RoleID: 2, RoleName: "Resident",
				},
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login", `{"identifier":"alice@example.com","password":"s3cret"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "access123" || resp["refresh_token"] != "refresh123" {
		t.Fatalf("unexpected tokens: %+v", resp)
	}
	if resp["expires_in"] != float64(900) {
		t.Fatalf("unexpected expires_in: %v", resp["expires_in"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["email"] != "alice@example.com" || user["role_name"] != "Resident" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash must never appear in responses")
	}
}

func TestAuthHandler_Login_EmailAlias(t *testing.T) {
	var got string
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, identifier, secret string) (*ports.LoginResult, error) {
			got = identifier
			return &ports.LoginResult{}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login", `{"email":"bob@example.com","password":"x"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got != "bob@example.com" {
		t.Fatalf("expected email alias used as identifier, got %q", got)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, identifier, secret string) (*ports.LoginResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login", "not-json")
	err := handler.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected HTTP 400 error, got %v", err)
	}

	// Missing password fails validation before the service is reached.
	c, _ = newTestContext(t, http.MethodPost, "/api/auth/login", `{"identifier":"a@b.com"}`)
	err = handler.Login(c)
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected HTTP 400 error, got %v", err)
	}
}

func TestAuthHandler_Login_CredentialErrorPropagates(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, identifier, secret string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login", `{"identifier":"a@b.com","password":"wrong"}`)
	if err := handler.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials passthrough, got %v", err)
	}
}

func TestAuthHandler_Refresh(t *testing.T) {
	stub := &stubAuthService{
		refreshFn: func(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
			if refreshToken != "refresh123" {
				t.Fatalf("unexpected token: %s", refreshToken)
			}
			return &ports.TokenPair{AccessToken: "access456", RefreshToken: refreshToken, ExpiresIn: 900}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/refresh", `{"refresh_token":"refresh123"}`)
	if err := handler.Refresh(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "access456" {
		t.Fatalf("unexpected access token: %v", resp["access_token"])
	}
	if _, rotated := resp["refresh_token"]; rotated {
		t.Fatalf("refresh response must not include a refresh token")
	}
}

func TestAuthHandler_Refresh_Rejected(t *testing.T) {
	stub := &stubAuthService{
		refreshFn: func(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
			return nil, domain.ErrInvalidToken
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/refresh", `{"refresh_token":"bad"}`)
	if err := handler.Refresh(c); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken passthrough, got %v", err)
	}
}
