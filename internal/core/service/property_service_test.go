package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/condovia/residential-api/internal/core/domain"
	"github.com/condovia/residential-api/internal/core/ports"
)

type stubPropertyRepo struct {
	propSeq    int64
	unitSeq    int64
	properties map[int64]*domain.Property
	units      map[int64]*domain.Unit
}

func newStubPropertyRepo() *stubPropertyRepo {
	return &stubPropertyRepo{
		properties: make(map[int64]*domain.Property),
		units:      make(map[int64]*domain.Unit),
	}
}

func (r *stubPropertyRepo) Create(_ context.Context, p *domain.Property) (*domain.Property, error) {
	r.propSeq++
	clone := *p
	clone.ID = r.propSeq
	r.properties[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPropertyRepo) FindByID(_ context.Context, id int64) (*domain.Property, error) {
	p, ok := r.properties[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPropertyRepo) List(_ context.Context) ([]domain.Property, error) {
	out := make([]domain.Property, 0, len(r.properties))
	for _, p := range r.properties {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPropertyRepo) Update(_ context.Context, p *domain.Property) error {
	if _, ok := r.properties[p.ID]; !ok {
		return domain.ErrPropertyNotFound
	}
	clone := *p
	r.properties[p.ID] = &clone
	return nil
}

func (r *stubPropertyRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.properties[id]; !ok {
		return domain.ErrPropertyNotFound
	}
	delete(r.properties, id)
	return nil
}

func (r *stubPropertyRepo) CreateUnit(_ context.Context, u *domain.Unit) (*domain.Unit, error) {
	for _, existing := range r.units {
		if existing.PropertyID == u.PropertyID && existing.Code == u.Code {
			return nil, domain.ErrUnitCodeTaken
		}
	}
	r.unitSeq++
	clone := *u
	clone.ID = r.unitSeq
	r.units[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPropertyRepo) FindUnitByID(_ context.Context, id int64) (*domain.Unit, error) {
	u, ok := r.units[id]
	if !ok {
		return nil, domain.ErrUnitNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubPropertyRepo) ListUnits(_ context.Context, propertyID int64) ([]domain.Unit, error) {
	var out []domain.Unit
	for _, u := range r.units {
		if u.PropertyID == propertyID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubPropertyRepo) UpdateUnit(_ context.Context, u *domain.Unit) error {
	if _, ok := r.units[u.ID]; !ok {
		return domain.ErrUnitNotFound
	}
	clone := *u
	r.units[u.ID] = &clone
	return nil
}

func (r *stubPropertyRepo) DeleteUnit(_ context.Context, id int64) error {
	if _, ok := r.units[id]; !ok {
		return domain.ErrUnitNotFound
	}
	delete(r.units, id)
	return nil
}

func (r *stubPropertyRepo) DeleteUnitsByProperty(_ context.Context, propertyID int64) ([]int64, error) {
	var ids []int64
	for id, u := range r.units {
		if u.PropertyID == propertyID {
			ids = append(ids, id)
			delete(r.units, id)
		}
	}
	return ids, nil
}

func TestPropertyService_CreateUnit(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, newStubVehicleRepo(), zerolog.Nop())

	p, err := svc.Create(context.Background(), ports.PropertyInput{Name: "Los Pinos", Type: domain.PropertyBuilding})
	if err != nil {
		t.Fatalf("create property failed: %v", err)
	}

	u, err := svc.CreateUnit(context.Background(), p.ID, ports.UnitInput{Code: "A-101"})
	if err != nil {
		t.Fatalf("create unit failed: %v", err)
	}
	if u.Status != domain.UnitActive {
		t.Fatalf("expected default active status, got %q", u.Status)
	}

	// Same code within the property collides.
	if _, err := svc.CreateUnit(context.Background(), p.ID, ports.UnitInput{Code: "A-101"}); err != domain.ErrUnitCodeTaken {
		t.Fatalf("expected ErrUnitCodeTaken, got %v", err)
	}

	// The same code under another property is fine.
	p2, err := svc.Create(context.Background(), ports.PropertyInput{Name: "Las Rosas"})
	if err != nil {
		t.Fatalf("create property failed: %v", err)
	}
	if _, err := svc.CreateUnit(context.Background(), p2.ID, ports.UnitInput{Code: "A-101"}); err != nil {
		t.Fatalf("expected code reuse across properties, got %v", err)
	}

	if _, err := svc.CreateUnit(context.Background(), 999, ports.UnitInput{Code: "B-1"}); err != domain.ErrPropertyNotFound {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestPropertyService_Delete_CascadesUnits(t *testing.T) {
	repo := newStubPropertyRepo()
	vehicles := newStubVehicleRepo()
	svc := NewPropertyService(repo, vehicles, zerolog.Nop())

	p, err := svc.Create(context.Background(), ports.PropertyInput{Name: "Los Pinos"})
	if err != nil {
		t.Fatalf("create property failed: %v", err)
	}
	u, err := svc.CreateUnit(context.Background(), p.ID, ports.UnitInput{Code: "A-101"})
	if err != nil {
		t.Fatalf("create unit failed: %v", err)
	}
	if _, err := vehicles.Create(context.Background(), &domain.Vehicle{Plate: "XYZ987", UnitID: &u.ID}); err != nil {
		t.Fatalf("seeding vehicle failed: %v", err)
	}

	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetUnit(context.Background(), u.ID); err != domain.ErrUnitNotFound {
		t.Fatalf("expected unit removed with property, got %v", err)
	}

	v, err := vehicles.FindByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("vehicle should survive property deletion: %v", err)
	}
	if v.UnitID != nil {
		t.Fatalf("expected vehicle unit reference cleared")
	}
}

func TestPropertyService_DeleteUnit_ClearsVehicleRefs(t *testing.T) {
	repo := newStubPropertyRepo()
	vehicles := newStubVehicleRepo()
	svc := NewPropertyService(repo, vehicles, zerolog.Nop())

	p, _ := svc.Create(context.Background(), ports.PropertyInput{Name: "Los Pinos"})
	u, err := svc.CreateUnit(context.Background(), p.ID, ports.UnitInput{Code: "A-102"})
	if err != nil {
		t.Fatalf("create unit failed: %v", err)
	}
	if _, err := vehicles.Create(context.Background(), &domain.Vehicle{Plate: "AAA111", UnitID: &u.ID}); err != nil {
		t.Fatalf("seeding vehicle failed: %v", err)
	}

	if err := svc.DeleteUnit(context.Background(), u.ID); err != nil {
		t.Fatalf("delete unit failed: %v", err)
	}
	v, err := vehicles.FindByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("vehicle lookup failed: %v", err)
	}
	if v.UnitID != nil {
		t.Fatalf("expected vehicle unit reference cleared")
	}
}
