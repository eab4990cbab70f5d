package ports

import (
	"context"
	"time"

	"github.com/condovia/residential-api/internal/core/domain"
)

// SecurityRepository defines persistence for security records.
type SecurityRepository interface {
	Create(ctx context.Context, r *domain.SecurityRecord) (*domain.SecurityRecord, error)
	FindByID(ctx context.Context, id int64) (*domain.SecurityRecord, error)
	List(ctx context.Context) ([]domain.SecurityRecord, error)
	Delete(ctx context.Context, id int64) error
}

// SecurityInput carries the writable security-record fields.
type SecurityInput struct {
	Kind        domain.SecurityRecordKind
	Description string
	UnitID      *int64
	RecordedBy  int64
	OccurredAt  time.Time
}

// SecurityService defines security-record use cases. Records are an
// append-only log; there is no update operation.
type SecurityService interface {
	Record(ctx context.Context, input SecurityInput) (*domain.SecurityRecord, error)
	Get(ctx context.Context, id int64) (*domain.SecurityRecord, error)
	List(ctx context.Context) ([]domain.SecurityRecord, error)
	Delete(ctx context.Context, id int64) error
}
