package service

import (
	"context"
	"time"

	"github.com/condovia/residential-api/internal/core/domain"
)

// In-memory repository stubs shared by the service tests. They mirror
// the storage-layer guarantees: unique emails, unique role names, and
// numeric ids assigned on create.

type stubAccountRepo struct {
	seq      int64
	accounts map[int64]*domain.Account
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[int64]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	for _, existing := range r.accounts {
		if existing.Email == account.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.seq++
	copy := cloneAccount(account)
	copy.ID = r.seq
	copy.CreatedAt = time.Now().UTC()
	copy.UpdatedAt = copy.CreatedAt
	r.accounts[copy.ID] = cloneAccount(copy)
	return cloneAccount(copy), nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByID(_ context.Context, id int64) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) List(_ context.Context) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubAccountRepo) Update(_ context.Context, account *domain.Account) error {
	if _, ok := r.accounts[account.ID]; !ok {
		return domain.ErrAccountNotFound
	}
	r.accounts[account.ID] = cloneAccount(account)
	return nil
}

func (r *stubAccountRepo) UpdateLastLogin(_ context.Context, id int64, at time.Time) error {
	a, ok := r.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.LastLogin = &at
	return nil
}

func (r *stubAccountRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(r.accounts, id)
	return nil
}

func (r *stubAccountRepo) CountByRole(_ context.Context, roleID int64) (int64, error) {
	var n int64
	for _, a := range r.accounts {
		if a.RoleID == roleID {
			n++
		}
	}
	return n, nil
}

type stubRoleRepo struct {
	seq   int64
	roles map[int64]*domain.Role
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{roles: make(map[int64]*domain.Role)}
}

func (r *stubRoleRepo) Create(_ context.Context, role *domain.Role) (*domain.Role, error) {
	for _, existing := range r.roles {
		if existing.Name == role.Name {
			return nil, domain.ErrRoleTaken
		}
	}
	r.seq++
	clone := *role
	clone.ID = r.seq
	r.roles[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubRoleRepo) GetOrCreate(ctx context.Context, name string) (*domain.Role, error) {
	if role, err := r.FindByName(ctx, name); err == nil {
		return role, nil
	}
	return r.Create(ctx, &domain.Role{Name: name})
}

func (r *stubRoleRepo) FindByID(_ context.Context, id int64) (*domain.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	clone := *role
	return &clone, nil
}

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	for _, role := range r.roles {
		if role.Name == name {
			clone := *role
			return &clone, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (r *stubRoleRepo) List(_ context.Context) ([]domain.Role, error) {
	out := make([]domain.Role, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, *role)
	}
	return out, nil
}

func (r *stubRoleRepo) Update(_ context.Context, role *domain.Role) error {
	if _, ok := r.roles[role.ID]; !ok {
		return domain.ErrRoleNotFound
	}
	clone := *role
	r.roles[role.ID] = &clone
	return nil
}

func (r *stubRoleRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.roles[id]; !ok {
		return domain.ErrRoleNotFound
	}
	delete(r.roles, id)
	return nil
}

type stubVehicleRepo struct {
	seq             int64
	vehicles        map[int64]*domain.Vehicle
	clearedAccounts []int64
	clearedUnits    [][]int64
}

func newStubVehicleRepo() *stubVehicleRepo {
	return &stubVehicleRepo{vehicles: make(map[int64]*domain.Vehicle)}
}

func (r *stubVehicleRepo) Create(_ context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	for _, existing := range r.vehicles {
		if existing.Plate == v.Plate {
			return nil, domain.ErrPlateTaken
		}
	}
	r.seq++
	clone := *v
	clone.ID = r.seq
	r.vehicles[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubVehicleRepo) FindByID(_ context.Context, id int64) (*domain.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok {
		return nil, domain.ErrVehicleNotFound
	}
	clone := *v
	return &clone, nil
}

func (r *stubVehicleRepo) List(_ context.Context) ([]domain.Vehicle, error) {
	out := make([]domain.Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVehicleRepo) Update(_ context.Context, v *domain.Vehicle) error {
	if _, ok := r.vehicles[v.ID]; !ok {
		return domain.ErrVehicleNotFound
	}
	clone := *v
	r.vehicles[v.ID] = &clone
	return nil
}

func (r *stubVehicleRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.vehicles[id]; !ok {
		return domain.ErrVehicleNotFound
	}
	delete(r.vehicles, id)
	return nil
}

func (r *stubVehicleRepo) ClearAccountRef(_ context.Context, accountID int64) error {
	r.clearedAccounts = append(r.clearedAccounts, accountID)
	for _, v := range r.vehicles {
		if v.AccountID != nil && *v.AccountID == accountID {
			v.AccountID = nil
		}
	}
	return nil
}

func (r *stubVehicleRepo) ClearUnitRef(_ context.Context, unitIDs []int64) error {
	r.clearedUnits = append(r.clearedUnits, unitIDs)
	cleared := make(map[int64]struct{}, len(unitIDs))
	for _, id := range unitIDs {
		cleared[id] = struct{}{}
	}
	for _, v := range r.vehicles {
		if v.UnitID != nil {
			if _, ok := cleared[*v.UnitID]; ok {
				v.UnitID = nil
			}
		}
	}
	return nil
}

type stubTokenStore struct {
	allowed map[string]int64
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{allowed: make(map[string]int64)}
}

func (s *stubTokenStore) Allow(_ context.Context, jti string, accountID int64, _ time.Duration) error {
	s.allowed[jti] = accountID
	return nil
}

func (s *stubTokenStore) IsAllowed(_ context.Context, jti string) (bool, error) {
	_, ok := s.allowed[jti]
	return ok, nil
}

func (s *stubTokenStore) Revoke(_ context.Context, jti string) error {
	delete(s.allowed, jti)
	return nil
}
