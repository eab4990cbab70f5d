package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/condovia/residential-api/internal/core/domain"
	"github.com/condovia/residential-api/internal/core/ports"
)

type stubCommonAreaRepo struct {
	areaSeq      int64
	resSeq       int64
	areas        map[int64]*domain.CommonArea
	reservations map[int64]*domain.Reservation
}

func newStubCommonAreaRepo() *stubCommonAreaRepo {
	return &stubCommonAreaRepo{
		areas:        make(map[int64]*domain.CommonArea),
		reservations: make(map[int64]*domain.Reservation),
	}
}

func (r *stubCommonAreaRepo) Create(_ context.Context, a *domain.CommonArea) (*domain.CommonArea, error) {
	r.areaSeq++
	clone := *a
	clone.ID = r.areaSeq
	r.areas[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCommonAreaRepo) FindByID(_ context.Context, id int64) (*domain.CommonArea, error) {
	a, ok := r.areas[id]
	if !ok {
		return nil, domain.ErrCommonAreaNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubCommonAreaRepo) List(_ context.Context) ([]domain.CommonArea, error) {
	out := make([]domain.CommonArea, 0, len(r.areas))
	for _, a := range r.areas {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubCommonAreaRepo) Update(_ context.Context, a *domain.CommonArea) error {
	if _, ok := r.areas[a.ID]; !ok {
		return domain.ErrCommonAreaNotFound
	}
	clone := *a
	r.areas[a.ID] = &clone
	return nil
}

func (r *stubCommonAreaRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.areas[id]; !ok {
		return domain.ErrCommonAreaNotFound
	}
	delete(r.areas, id)
	return nil
}

func (r *stubCommonAreaRepo) CreateReservation(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	r.resSeq++
	clone := *res
	clone.ID = r.resSeq
	r.reservations[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCommonAreaRepo) FindReservationByID(_ context.Context, id int64) (*domain.Reservation, error) {
	res, ok := r.reservations[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	clone := *res
	return &clone, nil
}

func (r *stubCommonAreaRepo) ListReservations(_ context.Context, commonAreaID int64) ([]domain.Reservation, error) {
	var out []domain.Reservation
	for _, res := range r.reservations {
		if res.CommonAreaID == commonAreaID {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (r *stubCommonAreaRepo) UpdateReservation(_ context.Context, res *domain.Reservation) error {
	if _, ok := r.reservations[res.ID]; !ok {
		return domain.ErrReservationNotFound
	}
	clone := *res
	r.reservations[res.ID] = &clone
	return nil
}

func (r *stubCommonAreaRepo) DeleteReservation(_ context.Context, id int64) error {
	if _, ok := r.reservations[id]; !ok {
		return domain.ErrReservationNotFound
	}
	delete(r.reservations, id)
	return nil
}

func newCommonAreaFixture(t *testing.T) (*CommonAreaService, int64, int64) {
	t.Helper()
	repo := newStubCommonAreaRepo()
	accounts := newStubAccountRepo()
	svc := NewCommonAreaService(repo, accounts, zerolog.Nop())

	area, err := svc.Create(context.Background(), ports.CommonAreaInput{Name: "Pool", Capacity: 20, Active: true})
	if err != nil {
		t.Fatalf("seeding area failed: %v", err)
	}
	account, err := accounts.Create(context.Background(), &domain.Account{Email: "kim@example.com", RoleID: 1})
	if err != nil {
		t.Fatalf("seeding account failed: %v", err)
	}
	return svc, area.ID, account.ID
}

func TestCommonAreaService_Reserve(t *testing.T) {
	svc, areaID, accountID := newCommonAreaFixture(t)

	res, err := svc.Reserve(context.Background(), ports.ReservationInput{
		CommonAreaID: areaID,
		AccountID:    accountID,
		Date:         "2026-09-01",
		StartTime:    "10:00",
		EndTime:      "12:00",
	})
	if err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if res.Status != domain.ReservationPending {
		t.Fatalf("expected default pending status, got %q", res.Status)
	}
}

func TestCommonAreaService_Reserve_Validation(t *testing.T) {
	svc, areaID, accountID := newCommonAreaFixture(t)

	base := ports.ReservationInput{
		CommonAreaID: areaID, AccountID: accountID,
		Date: "2026-09-01", StartTime: "10:00", EndTime: "12:00",
	}

	missingDate := base
	missingDate.Date = ""
	if _, err := svc.Reserve(context.Background(), missingDate); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation for missing date, got %v", err)
	}

	badArea := base
	badArea.CommonAreaID = 999
	if _, err := svc.Reserve(context.Background(), badArea); err != domain.ErrCommonAreaNotFound {
		t.Fatalf("expected ErrCommonAreaNotFound, got %v", err)
	}

	badAccount := base
	badAccount.AccountID = 999
	if _, err := svc.Reserve(context.Background(), badAccount); err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestCommonAreaService_CancelReservation(t *testing.T) {
	svc, areaID, accountID := newCommonAreaFixture(t)

	res, err := svc.Reserve(context.Background(), ports.ReservationInput{
		CommonAreaID: areaID, AccountID: accountID,
		Date: "2026-09-02", StartTime: "14:00", EndTime: "16:00",
	})
	if err != nil {
		t.Fatalf("reserve failed: %v", err)
	}

	if err := svc.CancelReservation(context.Background(), res.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	// Cancelled, not deleted.
	got, err := svc.GetReservation(context.Background(), res.ID)
	if err != nil {
		t.Fatalf("reservation should survive cancellation: %v", err)
	}
	if got.Status != domain.ReservationCancelled {
		t.Fatalf("expected cancelled status, got %q", got.Status)
	}

	if err := svc.CancelReservation(context.Background(), 999); err != domain.ErrReservationNotFound {
		t.Fatalf("expected ErrReservationNotFound, got %v", err)
	}
}
