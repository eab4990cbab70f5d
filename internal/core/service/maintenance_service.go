package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/condovia/residential-api/internal/core/domain"
	"github.com/condovia/residential-api/internal/core/ports"
)

// MaintenanceService implements maintenance-request management.
type MaintenanceService struct {
	repo       ports.MaintenanceRepository
	properties ports.PropertyRepository
	accounts   ports.AccountRepository
	log        zerolog.Logger
}

func NewMaintenanceService(repo ports.MaintenanceRepository, properties ports.PropertyRepository, accounts ports.AccountRepository, log zerolog.Logger) *MaintenanceService {
	return &MaintenanceService{repo: repo, properties: properties, accounts: accounts, log: log}
}

func (s *MaintenanceService) Create(ctx context.Context, input ports.MaintenanceInput) (*domain.MaintenanceRequest, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domain.ErrValidation
	}
	if _, err := s.properties.FindUnitByID(ctx, input.UnitID); err != nil {
		return nil, err
	}
	if _, err := s.accounts.FindByID(ctx, input.AccountID); err != nil {
		return nil, err
	}
	if input.Priority == "" {
		input.Priority = domain.PriorityMedium
	}

	r := &domain.MaintenanceRequest{
		UnitID:      input.UnitID,
		AccountID:   input.AccountID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Priority:    input.Priority,
		Status:      domain.RequestOpen,
	}
	created, err := s.repo.Create(ctx, r)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("request_id", created.ID).Int64("unit_id", created.UnitID).Msg("maintenance request opened")
	return created, nil
}

func (s *MaintenanceService) Get(ctx context.Context, id int64) (*domain.MaintenanceRequest, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MaintenanceService) List(ctx context.Context, unitID int64) ([]domain.MaintenanceRequest, error) {
	return s.repo.List(ctx, unitID)
}

func (s *MaintenanceService) Update(ctx context.Context, id int64, input ports.MaintenanceInput) (*domain.MaintenanceRequest, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if title := strings.TrimSpace(input.Title); title != "" {
		r.Title = title
	}
	r.Description = input.Description
	if input.Priority != "" {
		r.Priority = input.Priority
	}
	if input.Status != "" {
		r.Status = input.Status
	}

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *MaintenanceService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
