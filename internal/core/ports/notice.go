package ports

import (
	"context"

	"github.com/condovia/residential-api/internal/core/domain"
)

// NoticeRepository defines persistence for notices.
type NoticeRepository interface {
	Create(ctx context.Context, n *domain.Notice) (*domain.Notice, error)
	FindByID(ctx context.Context, id int64) (*domain.Notice, error)
	List(ctx context.Context) ([]domain.Notice, error)
	Update(ctx context.Context, n *domain.Notice) error
	Delete(ctx context.Context, id int64) error
}

// NoticeInput carries the writable notice fields.
type NoticeInput struct {
	Title       string
	Body        string
	PublishedBy int64
}

// NoticeService defines notice use cases.
type NoticeService interface {
	Publish(ctx context.Context, input NoticeInput) (*domain.Notice, error)
	Get(ctx context.Context, id int64) (*domain.Notice, error)
	List(ctx context.Context) ([]domain.Notice, error)
	Update(ctx context.Context, id int64, input NoticeInput) (*domain.Notice, error)
	Delete(ctx context.Context, id int64) error
}
