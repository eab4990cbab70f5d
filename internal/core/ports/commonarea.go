package ports

import (
	"context"

	"github.com/condovia/residential-api/internal/core/domain"
)

// CommonAreaRepository defines persistence for common areas and their
// reservations.
type CommonAreaRepository interface {
	Create(ctx context.Context, a *domain.CommonArea) (*domain.CommonArea, error)
	FindByID(ctx context.Context, id int64) (*domain.CommonArea, error)
	List(ctx context.Context) ([]domain.CommonArea, error)
	Update(ctx context.Context, a *domain.CommonArea) error
	Delete(ctx context.Context, id int64) error

	CreateReservation(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error)
	FindReservationByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListReservations(ctx context.Context, commonAreaID int64) ([]domain.Reservation, error)
	UpdateReservation(ctx context.Context, r *domain.Reservation) error
	DeleteReservation(ctx context.Context, id int64) error
}

// CommonAreaInput carries the writable common-area fields.
type CommonAreaInput struct {
	Name        string
	Description string
	Capacity    int
	OpensAt     string
	ClosesAt    string
	Active      bool
}

// ReservationInput carries the writable reservation fields.
type ReservationInput struct {
	CommonAreaID int64
	AccountID    int64
	Date         string
	StartTime    string
	EndTime      string
	Status       domain.ReservationStatus
}

// CommonAreaService defines common-area and reservation use cases.
type CommonAreaService interface {
	Create(ctx context.Context, input CommonAreaInput) (*domain.CommonArea, error)
	Get(ctx context.Context, id int64) (*domain.CommonArea, error)
	List(ctx context.Context) ([]domain.CommonArea, error)
	Update(ctx context.Context, id int64, input CommonAreaInput) (*domain.CommonArea, error)
	Delete(ctx context.Context, id int64) error

	Reserve(ctx context.Context, input ReservationInput) (*domain.Reservation, error)
	GetReservation(ctx context.Context, id int64) (*domain.Reservation, error)
	ListReservations(ctx context.Context, commonAreaID int64) ([]domain.Reservation, error)
	UpdateReservation(ctx context.Context, id int64, input ReservationInput) (*domain.Reservation, error)
	CancelReservation(ctx context.Context, id int64) error
}
