package ports

import (
	"context"

	"github.com/condovia/residential-api/internal/core/domain"
)

// ProvisionInput carries the data needed to create an account. Password
// may be empty, in which case the account is created without a usable
// password and can never authenticate.
type ProvisionInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Status    domain.AccountStatus
	RoleID    int64
}

// UpdateAccountInput carries the mutable account fields. Nil pointers
// leave the stored value untouched.
type UpdateAccountInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Status    *domain.AccountStatus
	RoleID    *int64
	Password  *string
}

// AccountService defines account provisioning and management use cases.
type AccountService interface {
	Provision(ctx context.Context, input ProvisionInput) (*domain.Account, error)
	ProvisionSuperuser(ctx context.Context, input ProvisionInput) (*domain.Account, error)
	Verify(account *domain.Account, candidate string) bool
	Get(ctx context.Context, id int64) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Update(ctx context.Context, id int64, input UpdateAccountInput) (*domain.Account, error)
	Delete(ctx context.Context, id int64) error
}
