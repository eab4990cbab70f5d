package ports

import (
	"context"
	"time"

	"github.com/condovia/residential-api/internal/core/domain"
)

// AccountRepository defines persistence for accounts. Implementations
// must enforce email uniqueness (case-insensitive, stored lowercase) at
// the storage layer so concurrent provisioning cannot race past it.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64) error
	CountByRole(ctx context.Context, roleID int64) (int64, error)
}
