package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/condovia/residential-api/internal/core/domain"
	"github.com/condovia/residential-api/internal/core/ports"
)

// AccountService implements account provisioning and management. An
// empty password provisions the account without a usable credential:
// Verify always fails for it, regardless of input.
type AccountService struct {
	accounts ports.AccountRepository
	roles    ports.RoleRepository
	vehicles ports.VehicleRepository
	log      zerolog.Logger
}

func NewAccountService(accounts ports.AccountRepository, roles ports.RoleRepository, vehicles ports.VehicleRepository, log zerolog.Logger) *AccountService {
	return &AccountService{accounts: accounts, roles: roles, vehicles: vehicles, log: log}
}

// Provision creates an account. Email is required and stored lowercase;
// the unique index on email closes the race between concurrent calls.
func (s *AccountService) Provision(ctx context.Context, input ports.ProvisionInput) (*domain.Account, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, domain.ErrValidation
	}
	if input.RoleID == 0 {
		return nil, domain.ErrValidation
	}
	if input.Status == "" {
		input.Status = domain.StatusActive
	}
	if !domain.ValidStatus(input.Status) {
		return nil, domain.ErrValidation
	}
	if _, err := s.roles.FindByID(ctx, input.RoleID); err != nil {
		return nil, err
	}

	var hash string
	if input.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(h)
	}

	account := &domain.Account{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		Phone:        input.Phone,
		PasswordHash: hash,
		Status:       input.Status,
		RoleID:       input.RoleID,
		IsActive:     true,
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("account_id", created.ID).Str("email", created.Email).Msg("account provisioned")
	return created, nil
}

// ProvisionSuperuser provisions an administrative account. Staff and
// superuser flags are forced, status is forced active, and when no role
// is supplied the Administrator role is looked up or created.
func (s *AccountService) ProvisionSuperuser(ctx context.Context, input ports.ProvisionInput) (*domain.Account, error) {
	input.Status = domain.StatusActive
	if input.RoleID == 0 {
		role, err := s.roles.GetOrCreate(ctx, domain.AdminRoleName)
		if err != nil {
			return nil, err
		}
		input.RoleID = role.ID
	}

	created, err := s.Provision(ctx, input)
	if err != nil {
		return nil, err
	}

	created.IsStaff = true
	created.IsSuperuser = true
	if err := s.accounts.Update(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

// Verify reports whether candidate matches the account's stored hash.
// It never errors: an unusable password or a mismatch both yield false.
func (s *AccountService) Verify(account *domain.Account, candidate string) bool {
	if account == nil || !account.HasUsablePassword() {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(candidate)) == nil
}

func (s *AccountService) Get(ctx context.Context, id int64) (*domain.Account, error) {
	return s.accounts.FindByID(ctx, id)
}

func (s *AccountService) List(ctx context.Context) ([]domain.Account, error) {
	return s.accounts.List(ctx)
}

// Update applies the supplied fields. Status transitions are plain
// administrative writes with no side effects.
func (s *AccountService) Update(ctx context.Context, id int64, input ports.UpdateAccountInput) (*domain.Account, error) {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		account.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		account.LastName = *input.LastName
	}
	if input.Phone != nil {
		account.Phone = *input.Phone
	}
	if input.Status != nil {
		if !domain.ValidStatus(*input.Status) {
			return nil, domain.ErrValidation
		}
		account.Status = *input.Status
	}
	if input.RoleID != nil {
		if _, err := s.roles.FindByID(ctx, *input.RoleID); err != nil {
			return nil, err
		}
		account.RoleID = *input.RoleID
	}
	if input.Password != nil {
		if *input.Password == "" {
			account.PasswordHash = ""
		} else {
			h, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, err
			}
			account.PasswordHash = string(h)
		}
	}

	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Delete removes the account and clears vehicle references to it.
func (s *AccountService) Delete(ctx context.Context, id int64) error {
	if err := s.accounts.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.vehicles.ClearAccountRef(ctx, id); err != nil {
		s.log.Warn().Err(err).Int64("account_id", id).Msg("failed to clear vehicle references")
	}
	return nil
}
