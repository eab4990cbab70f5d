package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/condovia/residential-api/internal/core/domain"
	"github.com/condovia/residential-api/internal/core/ports"
)

// TokenStore abstracts the refresh-token allowlist (Redis). A refresh
// token is honoured only while its JTI is present in the store.
type TokenStore interface {
	Allow(ctx context.Context, jti string, accountID int64, ttl time.Duration) error
	IsAllowed(ctx context.Context, jti string) (bool, error)
	Revoke(ctx context.Context, jti string) error
}

// CredentialVerifier checks a candidate secret against an account's
// stored credential.
type CredentialVerifier interface {
	Verify(account *domain.Account, candidate string) bool
}

// AuthService implements login and token refresh.
type AuthService struct {
	accounts   ports.AccountRepository
	roles      ports.RoleRepository
	verifier   CredentialVerifier
	tokens     TokenStore
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
	dummyHash  []byte
	log        zerolog.Logger
}

func NewAuthService(
	accounts ports.AccountRepository,
	roles ports.RoleRepository,
	verifier CredentialVerifier,
	tokens TokenStore,
	jwtSecret string,
	accessTTL, refreshTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	// Compared against on the unknown-email path so both failure paths
	// do comparable work.
	dummy, _ := bcrypt.GenerateFromPassword([]byte("residential-api"), bcrypt.DefaultCost)
	return &AuthService{
		accounts:   accounts,
		roles:      roles,
		verifier:   verifier,
		tokens:     tokens,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		dummyHash:  dummy,
		log:        log,
	}
}

// Login validates the identifier+secret pair and issues a token pair
// with the account profile embedded. Unknown email and wrong password
// produce the same error; only active accounts may authenticate.
func (s *AuthService) Login(ctx context.Context, identifier, secret string) (*ports.LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(identifier))
	if email == "" || secret == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(secret))
		return nil, domain.ErrInvalidCredentials
	}

	if !s.verifier.Verify(account, secret) {
		return nil, domain.ErrInvalidCredentials
	}
	if account.Status != domain.StatusActive {
		return nil, domain.ErrAccountNotActive
	}

	role, err := s.roles.FindByID(ctx, account.RoleID)
	if err != nil {
		return nil, err
	}

	pair, err := s.issue(ctx, account, role)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.accounts.UpdateLastLogin(ctx, account.ID, now); err != nil {
		s.log.Warn().Err(err).Int64("account_id", account.ID).Msg("failed to update last login")
	}

	s.log.Info().Int64("account_id", account.ID).Str("role", role.Name).Msg("login succeeded")

	return &ports.LoginResult{
		TokenPair: *pair,
		User: domain.Profile{
			ID:        account.ID,
			FirstName: account.FirstName,
			LastName:  account.LastName,
			Email:     account.Email,
			Phone:     account.Phone,
			Status:    account.Status,
			RoleID:    role.ID,
			RoleName:  role.Name,
		},
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// refresh token itself stays valid until it expires or is revoked.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(refreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims["token_type"] != "refresh" {
		return nil, domain.ErrInvalidToken
	}

	jti, _ := claims["jti"].(string)
	if jti == "" {
		return nil, domain.ErrInvalidToken
	}
	allowed, err := s.tokens.IsAllowed(ctx, jti)
	if err != nil || !allowed {
		return nil, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(float64)
	account, err := s.accounts.FindByID(ctx, int64(sub))
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if account.Status != domain.StatusActive {
		return nil, domain.ErrAccountNotActive
	}

	role, err := s.roles.FindByID(ctx, account.RoleID)
	if err != nil {
		return nil, err
	}

	access, err := s.signAccess(account, role)
	if err != nil {
		return nil, err
	}

	return &ports.TokenPair{
		AccessToken:  access,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// issue signs a fresh access/refresh pair and allowlists the refresh JTI.
func (s *AuthService) issue(ctx context.Context, account *domain.Account, role *domain.Role) (*ports.TokenPair, error) {
	access, err := s.signAccess(account, role)
	if err != nil {
		return nil, err
	}

	jti := uuid.NewString()
	refreshClaims := jwt.MapClaims{
		"sub":        account.ID,
		"jti":        jti,
		"token_type": "refresh",
		"iat":        time.Now().Unix(),
		"exp":        time.Now().Add(s.refreshTTL).Unix(),
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	if err := s.tokens.Allow(ctx, jti, account.ID, s.refreshTTL); err != nil {
		return nil, err
	}

	return &ports.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

func (s *AuthService) signAccess(account *domain.Account, role *domain.Role) (string, error) {
	claims := jwt.MapClaims{
		"sub":        account.ID,
		"email":      account.Email,
		"role":       role.Name,
		"role_id":    role.ID,
		"token_type": "access",
		"iat":        time.Now().Unix(),
		"exp":        time.Now().Add(s.accessTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
}
