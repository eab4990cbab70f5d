package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/condovia/residential-api/internal/core/domain"
	"github.com/condovia/residential-api/internal/core/ports"
)

func newAccountFixture(t *testing.T) (*AccountService, *stubAccountRepo, *stubRoleRepo, *stubVehicleRepo, int64) {
	t.Helper()
	accounts := newStubAccountRepo()
	roles := newStubRoleRepo()
	vehicles := newStubVehicleRepo()
	role, err := roles.Create(context.Background(), &domain.Role{Name: "Resident"})
	if err != nil {
		t.Fatalf("seeding role failed: %v", err)
	}
	svc := NewAccountService(accounts, roles, vehicles, zerolog.Nop())
	return svc, accounts, roles, vehicles, role.ID
}

func TestAccountService_Provision_Success(t *testing.T) {
	svc, _, _, _, roleID := newAccountFixture(t)

	account, err := svc.Provision(context.Background(), ports.ProvisionInput{
		Email:     "  Alice@Example.COM ",
		Password:  "s3cret",
		FirstName: "Alice",
		LastName:  "Smith",
		RoleID:    roleID,
	})
	if err != nil {
		t.Fatalf("Provision returned error: %v", err)
	}
	if account.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if account.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %q", account.Email)
	}
	if account.Status != domain.StatusActive {
		t.Fatalf("expected default status active, got %q", account.Status)
	}
	if account.PasswordHash == "s3cret" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAccountService_Provision_Validation(t *testing.T) {
	svc, _, _, _, roleID := newAccountFixture(t)

	if _, err := svc.Provision(context.Background(), ports.ProvisionInput{Email: "   ", RoleID: roleID}); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation for blank email, got %v", err)
	}
	if _, err := svc.Provision(context.Background(), ports.ProvisionInput{Email: "a@b.com"}); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation for missing role, got %v", err)
	}
	if _, err := svc.Provision(context.Background(), ports.ProvisionInput{Email: "a@b.com", RoleID: roleID, Status: "frozen"}); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation for bad status, got %v", err)
	}
	if _, err := svc.Provision(context.Background(), ports.ProvisionInput{Email: "a@b.com", RoleID: 999}); err != domain.ErrRoleNotFound {
		t.Fatalf("expected ErrRoleNotFound for unknown role, got %v", err)
	}
}

func TestAccountService_Provision_DuplicateEmail(t *testing.T) {
	svc, _, _, _, roleID := newAccountFixture(t)

	if _, err := svc.Provision(context.Background(), ports.ProvisionInput{Email: "bob@example.com", RoleID: roleID}); err != nil {
		t.Fatalf("first provision failed: %v", err)
	}
	// Same address with different casing collides on the stored form.
	if _, err := svc.Provision(context.Background(), ports.ProvisionInput{Email: "BOB@example.com", RoleID: roleID}); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAccountService_Provision_NoPassword(t *testing.T) {
	svc, _, _, _, roleID := newAccountFixture(t)

	account, err := svc.Provision(context.Background(), ports.ProvisionInput{Email: "guest@example.com", RoleID: roleID})
	if err != nil {
		t.Fatalf("Provision returned error: %v", err)
	}
	if account.HasUsablePassword() {
		t.Fatalf("expected unusable password")
	}
	if svc.Verify(account, "") {
		t.Fatalf("Verify must fail for an unusable password, even with empty input")
	}
	if svc.Verify(account, "anything") {
		t.Fatalf("Verify must fail for an unusable password")
	}
}

func TestAccountService_ProvisionSuperuser(t *testing.T) {
	svc, accounts, roles, _, _ := newAccountFixture(t)

	account, err := svc.ProvisionSuperuser(context.Background(), ports.ProvisionInput{
		Email:    "root@example.com",
		Password: "s3cret",
		Status:   domain.StatusInactive, // forced back to active
	})
	if err != nil {
		t.Fatalf("ProvisionSuperuser returned error: %v", err)
	}
	if !account.IsStaff || !account.IsSuperuser {
		t.Fatalf("expected staff and superuser flags set, got %+v", account)
	}
	if account.Status != domain.StatusActive {
		t.Fatalf("expected forced active status, got %q", account.Status)
	}

	role, err := roles.FindByName(context.Background(), domain.AdminRoleName)
	if err != nil {
		t.Fatalf("expected Administrator role to be created: %v", err)
	}
	if account.RoleID != role.ID {
		t.Fatalf("expected account bound to Administrator role")
	}

	stored, err := accounts.FindByID(context.Background(), account.ID)
	if err != nil {
		t.Fatalf("stored account missing: %v", err)
	}
	if !stored.IsSuperuser {
		t.Fatalf("superuser flag not persisted")
	}

	// A second superuser reuses the existing Administrator role.
	second, err := svc.ProvisionSuperuser(context.Background(), ports.ProvisionInput{Email: "root2@example.com", Password: "x"})
	if err != nil {
		t.Fatalf("second superuser failed: %v", err)
	}
	if second.RoleID != role.ID {
		t.Fatalf("expected Administrator role reuse, got role %d", second.RoleID)
	}
}

func TestAccountService_Update_PartialAndPassword(t *testing.T) {
	svc, _, _, _, roleID := newAccountFixture(t)

	account, err := svc.Provision(context.Background(), ports.ProvisionInput{
		Email: "carol@example.com", Password: "old", FirstName: "Carol", RoleID: roleID,
	})
	if err != nil {
		t.Fatalf("provision failed: %v", err)
	}

	phone := "555-0101"
	updated, err := svc.Update(context.Background(), account.ID, ports.UpdateAccountInput{Phone: &phone})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Phone != phone || updated.FirstName != "Carol" {
		t.Fatalf("partial update touched the wrong fields: %+v", updated)
	}

	empty := ""
	cleared, err := svc.Update(context.Background(), account.ID, ports.UpdateAccountInput{Password: &empty})
	if err != nil {
		t.Fatalf("clearing password failed: %v", err)
	}
	if cleared.HasUsablePassword() {
		t.Fatalf("expected password cleared to unusable")
	}

	bad := domain.AccountStatus("frozen")
	if _, err := svc.Update(context.Background(), account.ID, ports.UpdateAccountInput{Status: &bad}); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation for bad status, got %v", err)
	}
}

func TestAccountService_Delete_ClearsVehicleRefs(t *testing.T) {
	svc, _, _, vehicles, roleID := newAccountFixture(t)

	account, err := svc.Provision(context.Background(), ports.ProvisionInput{Email: "dave@example.com", RoleID: roleID})
	if err != nil {
		t.Fatalf("provision failed: %v", err)
	}
	if _, err := vehicles.Create(context.Background(), &domain.Vehicle{Plate: "ABC123", AccountID: &account.ID}); err != nil {
		t.Fatalf("seeding vehicle failed: %v", err)
	}

	if err := svc.Delete(context.Background(), account.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(vehicles.clearedAccounts) != 1 || vehicles.clearedAccounts[0] != account.ID {
		t.Fatalf("expected vehicle references cleared for account %d", account.ID)
	}

	v, err := vehicles.FindByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("vehicle should survive account deletion: %v", err)
	}
	if v.AccountID != nil {
		t.Fatalf("expected vehicle account reference cleared")
	}
}
