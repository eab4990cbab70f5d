package ports

import (
	"context"

	"github.com/condovia/residential-api/internal/core/domain"
)

// RoleRepository defines persistence for roles. Name uniqueness is
// enforced by the storage layer; GetOrCreate must be idempotent under
// concurrent calls for the same name.
type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
	GetOrCreate(ctx context.Context, name string) (*domain.Role, error)
	FindByID(ctx context.Context, id int64) (*domain.Role, error)
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	List(ctx context.Context) ([]domain.Role, error)
	Update(ctx context.Context, role *domain.Role) error
	Delete(ctx context.Context, id int64) error
}
