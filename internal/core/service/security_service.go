package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/condovia/residential-api/internal/core/domain"
	"github.com/condovia/residential-api/internal/core/ports"
)

// SecurityService implements the gatehouse log. Entries are append-only.
type SecurityService struct {
	repo     ports.SecurityRepository
	accounts ports.AccountRepository
	log      zerolog.Logger
}

func NewSecurityService(repo ports.SecurityRepository, accounts ports.AccountRepository, log zerolog.Logger) *SecurityService {
	return &SecurityService{repo: repo, accounts: accounts, log: log}
}

func (s *SecurityService) Record(ctx context.Context, input ports.SecurityInput) (*domain.SecurityRecord, error) {
	switch input.Kind {
	case domain.RecordVisitor, domain.RecordIncident, domain.RecordPackage:
	default:
		return nil, domain.ErrValidation
	}
	if _, err := s.accounts.FindByID(ctx, input.RecordedBy); err != nil {
		return nil, err
	}
	occurred := input.OccurredAt
	if occurred.IsZero() {
		occurred = time.Now().UTC()
	}

	r := &domain.SecurityRecord{
		Kind:        input.Kind,
		Description: input.Description,
		UnitID:      input.UnitID,
		RecordedBy:  input.RecordedBy,
		OccurredAt:  occurred,
	}
	return s.repo.Create(ctx, r)
}

func (s *SecurityService) Get(ctx context.Context, id int64) (*domain.SecurityRecord, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SecurityService) List(ctx context.Context) ([]domain.SecurityRecord, error) {
	return s.repo.List(ctx)
}

func (s *SecurityService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
