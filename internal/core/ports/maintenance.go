package ports

import (
	"context"

	"github.com/condovia/residential-api/internal/core/domain"
)

// MaintenanceRepository defines persistence for maintenance requests.
type MaintenanceRepository interface {
	Create(ctx context.Context, r *domain.MaintenanceRequest) (*domain.MaintenanceRequest, error)
	FindByID(ctx context.Context, id int64) (*domain.MaintenanceRequest, error)
	List(ctx context.Context, unitID int64) ([]domain.MaintenanceRequest, error)
	Update(ctx context.Context, r *domain.MaintenanceRequest) error
	Delete(ctx context.Context, id int64) error
}

// MaintenanceInput carries the writable maintenance-request fields.
type MaintenanceInput struct {
	UnitID      int64
	AccountID   int64
	Title       string
	Description string
	Priority    domain.RequestPriority
	Status      domain.RequestStatus
}

// MaintenanceService defines maintenance-request use cases.
type MaintenanceService interface {
	Create(ctx context.Context, input MaintenanceInput) (*domain.MaintenanceRequest, error)
	Get(ctx context.Context, id int64) (*domain.MaintenanceRequest, error)
	List(ctx context.Context, unitID int64) ([]domain.MaintenanceRequest, error)
	Update(ctx context.Context, id int64, input MaintenanceInput) (*domain.MaintenanceRequest, error)
	Delete(ctx context.Context, id int64) error
}
