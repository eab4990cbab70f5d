package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/condovia/residential-api/internal/core/domain"
	"github.com/condovia/residential-api/internal/core/ports"
)

// CommonAreaService implements common-area and reservation management.
type CommonAreaService struct {
	repo     ports.CommonAreaRepository
	accounts ports.AccountRepository
	log      zerolog.Logger
}

func NewCommonAreaService(repo ports.CommonAreaRepository, accounts ports.AccountRepository, log zerolog.Logger) *CommonAreaService {
	return &CommonAreaService{repo: repo, accounts: accounts, log: log}
}

func (s *CommonAreaService) Create(ctx context.Context, input ports.CommonAreaInput) (*domain.CommonArea, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.ErrValidation
	}
	a := &domain.CommonArea{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Capacity:    input.Capacity,
		OpensAt:     input.OpensAt,
		ClosesAt:    input.ClosesAt,
		Active:      input.Active,
	}
	return s.repo.Create(ctx, a)
}

func (s *CommonAreaService) Get(ctx context.Context, id int64) (*domain.CommonArea, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CommonAreaService) List(ctx context.Context) ([]domain.CommonArea, error) {
	return s.repo.List(ctx)
}

func (s *CommonAreaService) Update(ctx context.Context, id int64, input ports.CommonAreaInput) (*domain.CommonArea, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		a.Name = name
	}
	a.Description = input.Description
	a.Capacity = input.Capacity
	a.OpensAt = input.OpensAt
	a.ClosesAt = input.ClosesAt
	a.Active = input.Active

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *CommonAreaService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Reserve books a common area for an account. Both referents must exist.
func (s *CommonAreaService) Reserve(ctx context.Context, input ports.ReservationInput) (*domain.Reservation, error) {
	if input.Date == "" || input.StartTime == "" || input.EndTime == "" {
		return nil, domain.ErrValidation
	}
	if _, err := s.repo.FindByID(ctx, input.CommonAreaID); err != nil {
		return nil, err
	}
	if _, err := s.accounts.FindByID(ctx, input.AccountID); err != nil {
		return nil, err
	}
	if input.Status == "" {
		input.Status = domain.ReservationPending
	}

	r := &domain.Reservation{
		CommonAreaID: input.CommonAreaID,
		AccountID:    input.AccountID,
		Date:         input.Date,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		Status:       input.Status,
	}
	return s.repo.CreateReservation(ctx, r)
}

func (s *CommonAreaService) GetReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.repo.FindReservationByID(ctx, id)
}

func (s *CommonAreaService) ListReservations(ctx context.Context, commonAreaID int64) ([]domain.Reservation, error) {
	return s.repo.ListReservations(ctx, commonAreaID)
}

func (s *CommonAreaService) UpdateReservation(ctx context.Context, id int64, input ports.ReservationInput) (*domain.Reservation, error) {
	r, err := s.repo.FindReservationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Date != "" {
		r.Date = input.Date
	}
	if input.StartTime != "" {
		r.StartTime = input.StartTime
	}
	if input.EndTime != "" {
		r.EndTime = input.EndTime
	}
	if input.Status != "" {
		r.Status = input.Status
	}

	if err := s.repo.UpdateReservation(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *CommonAreaService) CancelReservation(ctx context.Context, id int64) error {
	r, err := s.repo.FindReservationByID(ctx, id)
	if err != nil {
		return err
	}
	r.Status = domain.ReservationCancelled
	return s.repo.UpdateReservation(ctx, r)
}
