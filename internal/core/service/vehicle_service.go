package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/condovia/residential-api/internal/core/domain"
	"github.com/condovia/residential-api/internal/core/ports"
)

// VehicleService implements vehicle management. Plates are stored
// uppercase and must be globally unique.
type VehicleService struct {
	repo       ports.VehicleRepository
	accounts   ports.AccountRepository
	properties ports.PropertyRepository
	log        zerolog.Logger
}

func NewVehicleService(repo ports.VehicleRepository, accounts ports.AccountRepository, properties ports.PropertyRepository, log zerolog.Logger) *VehicleService {
	return &VehicleService{repo: repo, accounts: accounts, properties: properties, log: log}
}

func (s *VehicleService) Create(ctx context.Context, input ports.VehicleInput) (*domain.Vehicle, error) {
	plate := strings.ToUpper(strings.TrimSpace(input.Plate))
	if plate == "" {
		return nil, domain.ErrValidation
	}
	if err := s.checkRefs(ctx, input.AccountID, input.UnitID); err != nil {
		return nil, err
	}
	if input.Status == "" {
		input.Status = domain.VehicleActive
	}

	v := &domain.Vehicle{
		AccountID: input.AccountID,
		UnitID:    input.UnitID,
		Plate:     plate,
		Brand:     input.Brand,
		Model:     input.Model,
		Color:     input.Color,
		Status:    input.Status,
	}
	return s.repo.Create(ctx, v)
}

func (s *VehicleService) Get(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *VehicleService) List(ctx context.Context) ([]domain.Vehicle, error) {
	return s.repo.List(ctx)
}

func (s *VehicleService) Update(ctx context.Context, id int64, input ports.VehicleInput) (*domain.Vehicle, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, input.AccountID, input.UnitID); err != nil {
		return nil, err
	}

	if plate := strings.ToUpper(strings.TrimSpace(input.Plate)); plate != "" {
		v.Plate = plate
	}
	v.AccountID = input.AccountID
	v.UnitID = input.UnitID
	v.Brand = input.Brand
	v.Model = input.Model
	v.Color = input.Color
	if input.Status != "" {
		v.Status = input.Status
	}

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *VehicleService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *VehicleService) checkRefs(ctx context.Context, accountID, unitID *int64) error {
	if accountID != nil {
		if _, err := s.accounts.FindByID(ctx, *accountID); err != nil {
			return err
		}
	}
	if unitID != nil {
		if _, err := s.properties.FindUnitByID(ctx, *unitID); err != nil {
			return err
		}
	}
	return nil
}
