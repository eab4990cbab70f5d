package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/condovia/residential-api/internal/core/domain"
	"github.com/condovia/residential-api/internal/core/ports"
)

// PropertyService implements property and unit management. Deleting a
// property removes its units; vehicles pointing at removed units keep
// existing with the reference cleared.
type PropertyService struct {
	repo     ports.PropertyRepository
	vehicles ports.VehicleRepository
	log      zerolog.Logger
}

func NewPropertyService(repo ports.PropertyRepository, vehicles ports.VehicleRepository, log zerolog.Logger) *PropertyService {
	return &PropertyService{repo: repo, vehicles: vehicles, log: log}
}

func (s *PropertyService) Create(ctx context.Context, input ports.PropertyInput) (*domain.Property, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.ErrValidation
	}
	p := &domain.Property{
		Name:    strings.TrimSpace(input.Name),
		Address: input.Address,
		City:    input.City,
		State:   input.State,
		Country: input.Country,
		Type:    input.Type,
	}
	return s.repo.Create(ctx, p)
}

func (s *PropertyService) Get(ctx context.Context, id int64) (*domain.Property, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PropertyService) List(ctx context.Context) ([]domain.Property, error) {
	return s.repo.List(ctx)
}

func (s *PropertyService) Update(ctx context.Context, id int64, input ports.PropertyInput) (*domain.Property, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		p.Name = name
	}
	p.Address = input.Address
	p.City = input.City
	p.State = input.State
	p.Country = input.Country
	p.Type = input.Type

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PropertyService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	unitIDs, err := s.repo.DeleteUnitsByProperty(ctx, id)
	if err != nil {
		return err
	}
	if len(unitIDs) > 0 {
		if err := s.vehicles.ClearUnitRef(ctx, unitIDs); err != nil {
			s.log.Warn().Err(err).Int64("property_id", id).Msg("failed to clear vehicle unit references")
		}
	}
	return s.repo.Delete(ctx, id)
}

func (s *PropertyService) CreateUnit(ctx context.Context, propertyID int64, input ports.UnitInput) (*domain.Unit, error) {
	if strings.TrimSpace(input.Code) == "" {
		return nil, domain.ErrValidation
	}
	if _, err := s.repo.FindByID(ctx, propertyID); err != nil {
		return nil, err
	}
	if input.Status == "" {
		input.Status = domain.UnitActive
	}
	u := &domain.Unit{
		PropertyID: propertyID,
		Code:       strings.TrimSpace(input.Code),
		Level:      input.Level,
		AreaM2:     input.AreaM2,
		Bedrooms:   input.Bedrooms,
		Bathrooms:  input.Bathrooms,
		Status:     input.Status,
	}
	return s.repo.CreateUnit(ctx, u)
}

func (s *PropertyService) GetUnit(ctx context.Context, id int64) (*domain.Unit, error) {
	return s.repo.FindUnitByID(ctx, id)
}

func (s *PropertyService) ListUnits(ctx context.Context, propertyID int64) ([]domain.Unit, error) {
	return s.repo.ListUnits(ctx, propertyID)
}

func (s *PropertyService) UpdateUnit(ctx context.Context, id int64, input ports.UnitInput) (*domain.Unit, error) {
	u, err := s.repo.FindUnitByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if code := strings.TrimSpace(input.Code); code != "" {
		u.Code = code
	}
	u.Level = input.Level
	u.AreaM2 = input.AreaM2
	u.Bedrooms = input.Bedrooms
	u.Bathrooms = input.Bathrooms
	if input.Status != "" {
		u.Status = input.Status
	}

	if err := s.repo.UpdateUnit(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *PropertyService) DeleteUnit(ctx context.Context, id int64) error {
	if _, err := s.repo.FindUnitByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteUnit(ctx, id); err != nil {
		return err
	}
	if err := s.vehicles.ClearUnitRef(ctx, []int64{id}); err != nil {
		s.log.Warn().Err(err).Int64("unit_id", id).Msg("failed to clear vehicle unit references")
	}
	return nil
}
