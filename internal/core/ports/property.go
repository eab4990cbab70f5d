package ports

import (
	"context"

	"github.com/condovia/residential-api/internal/core/domain"
)

// PropertyRepository defines persistence for properties and their units.
// Unit codes are unique per property, enforced by a compound index.
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)
	FindByID(ctx context.Context, id int64) (*domain.Property, error)
	List(ctx context.Context) ([]domain.Property, error)
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id int64) error

	CreateUnit(ctx context.Context, u *domain.Unit) (*domain.Unit, error)
	FindUnitByID(ctx context.Context, id int64) (*domain.Unit, error)
	ListUnits(ctx context.Context, propertyID int64) ([]domain.Unit, error)
	UpdateUnit(ctx context.Context, u *domain.Unit) error
	DeleteUnit(ctx context.Context, id int64) error
	DeleteUnitsByProperty(ctx context.Context, propertyID int64) ([]int64, error)
}

// PropertyInput carries the writable property fields.
type PropertyInput struct {
	Name    string
	Address string
	City    string
	State   string
	Country string
	Type    domain.PropertyType
}

// UnitInput carries the writable unit fields.
type UnitInput struct {
	Code      string
	Level     string
	AreaM2    float64
	Bedrooms  int
	Bathrooms int
	Status    domain.UnitStatus
}

// PropertyService defines property and unit use cases. Deleting a
// property cascades to its units; vehicle references to removed units
// are cleared, not cascaded.
type PropertyService interface {
	Create(ctx context.Context, input PropertyInput) (*domain.Property, error)
	Get(ctx context.Context, id int64) (*domain.Property, error)
	List(ctx context.Context) ([]domain.Property, error)
	Update(ctx context.Context, id int64, input PropertyInput) (*domain.Property, error)
	Delete(ctx context.Context, id int64) error

	CreateUnit(ctx context.Context, propertyID int64, input UnitInput) (*domain.Unit, error)
	GetUnit(ctx context.Context, id int64) (*domain.Unit, error)
	ListUnits(ctx context.Context, propertyID int64) ([]domain.Unit, error)
	UpdateUnit(ctx context.Context, id int64, input UnitInput) (*domain.Unit, error)
	DeleteUnit(ctx context.Context, id int64) error
}
