package domain

import "time"

// AccountStatus represents the administrative state of an account.
type AccountStatus string

const (
	StatusActive    AccountStatus = "active"
	StatusInactive  AccountStatus = "inactive"
	StatusSuspended AccountStatus = "suspended"
)

// ValidStatus reports whether s is one of the known account statuses.
func ValidStatus(s AccountStatus) bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended:
		return true
	}
	return false
}

// AdminRoleName is the role lazily created for superusers provisioned
// without an explicit role.
const AdminRoleName = "Administrator"

// Account models a system user with login credentials and a role.
// PasswordHash is empty when the account has no usable password; such an
// account can never authenticate.
type Account struct {
	ID           int64         `json:"id" bson:"_id,omitempty"`
	FirstName    string        `json:"first_name" bson:"first_name"`
	LastName     string        `json:"last_name" bson:"last_name"`
	Email        string        `json:"email" bson:"email"`
	Phone        string        `json:"phone,omitempty" bson:"phone,omitempty"`
	PasswordHash string        `json:"-" bson:"password_hash"`
	Status       AccountStatus `json:"status" bson:"status"`
	RoleID       int64         `json:"role_id" bson:"role_id"`
	IsStaff      bool          `json:"is_staff" bson:"is_staff"`
	IsSuperuser  bool          `json:"is_superuser" bson:"is_superuser"`
	IsActive     bool          `json:"is_active" bson:"is_active"`
	LastLogin    *time.Time    `json:"last_login,omitempty" bson:"last_login,omitempty"`
	CreatedAt    time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" bson:"updated_at"`
}

// HasUsablePassword reports whether the account can ever satisfy a
// password check.
func (a *Account) HasUsablePassword() bool {
	return a.PasswordHash != ""
}

// Profile is the read-only projection of an account embedded in the
// login response, with the role name resolved.
type Profile struct {
	ID        int64         `json:"id"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone,omitempty"`
	Status    AccountStatus `json:"status"`
	RoleID    int64         `json:"role_id"`
	RoleName  string        `json:"role_name"`
}
