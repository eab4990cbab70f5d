package ports

import (
	"context"

	"github.com/condovia/residential-api/internal/core/domain"
)

// VehicleRepository defines persistence for vehicles. Plate uniqueness
// is enforced by the storage layer.
type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
	FindByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id int64) error
	ClearAccountRef(ctx context.Context, accountID int64) error
	ClearUnitRef(ctx context.Context, unitIDs []int64) error
}

// VehicleInput carries the writable vehicle fields.
type VehicleInput struct {
	AccountID *int64
	UnitID    *int64
	Plate     string
	Brand     string
	Model     string
	Color     string
	Status    domain.VehicleStatus
}

// VehicleService defines vehicle use cases.
type VehicleService interface {
	Create(ctx context.Context, input VehicleInput) (*domain.Vehicle, error)
	Get(ctx context.Context, id int64) (*domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
	Update(ctx context.Context, id int64, input VehicleInput) (*domain.Vehicle, error)
	Delete(ctx context.Context, id int64) error
}
