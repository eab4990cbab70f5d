package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/condovia/residential-api/internal/core/domain"
	"github.com/condovia/residential-api/internal/core/ports"
)

// RoleService implements role management. Deleting a role still
// referenced by accounts is rejected, never cascaded.
type RoleService struct {
	roles    ports.RoleRepository
	accounts ports.AccountRepository
	log      zerolog.Logger
}

func NewRoleService(roles ports.RoleRepository, accounts ports.AccountRepository, log zerolog.Logger) *RoleService {
	return &RoleService{roles: roles, accounts: accounts, log: log}
}

func (s *RoleService) Create(ctx context.Context, input ports.RoleInput) (*domain.Role, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrValidation
	}

	role := &domain.Role{Name: name, Description: input.Description}
	created, err := s.roles.Create(ctx, role)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("role_id", created.ID).Str("name", created.Name).Msg("role created")
	return created, nil
}

func (s *RoleService) Get(ctx context.Context, id int64) (*domain.Role, error) {
	return s.roles.FindByID(ctx, id)
}

func (s *RoleService) List(ctx context.Context) ([]domain.Role, error) {
	return s.roles.List(ctx)
}

func (s *RoleService) Update(ctx context.Context, id int64, input ports.RoleInput) (*domain.Role, error) {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		role.Name = name
	}
	role.Description = input.Description

	if err := s.roles.Update(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *RoleService) Delete(ctx context.Context, id int64) error {
	if _, err := s.roles.FindByID(ctx, id); err != nil {
		return err
	}

	n, err := s.accounts.CountByRole(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrRoleInUse
	}

	return s.roles.Delete(ctx, id)
}
