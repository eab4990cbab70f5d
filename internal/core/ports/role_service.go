package ports

import (
	"context"

	"github.com/condovia/residential-api/internal/core/domain"
)

// RoleInput carries the writable role fields.
type RoleInput struct {
	Name        string
	Description string
}

// RoleService defines role management use cases. Delete is rejected
// while any account references the role.
type RoleService interface {
	Create(ctx context.Context, input RoleInput) (*domain.Role, error)
	Get(ctx context.Context, id int64) (*domain.Role, error)
	List(ctx context.Context) ([]domain.Role, error)
	Update(ctx context.Context, id int64, input RoleInput) (*domain.Role, error)
	Delete(ctx context.Context, id int64) error
}
