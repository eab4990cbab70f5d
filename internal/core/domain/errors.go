package domain

import "errors"

// Authentication and provisioning.
var (
	ErrValidation         = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotActive   = errors.New("account not active")
	ErrInvalidToken       = errors.New("invalid token")
	ErrEmailTaken         = errors.New("email already registered")
	ErrAccountNotFound    = errors.New("account not found")
)

// Roles.
var (
	ErrRoleNotFound = errors.New("role not found")
	ErrRoleInUse    = errors.New("role is assigned to existing accounts")
	ErrRoleTaken    = errors.New("role name already exists")
)

// Peripheral entities.
var (
	ErrPropertyNotFound    = errors.New("property not found")
	ErrUnitNotFound        = errors.New("unit not found")
	ErrUnitCodeTaken       = errors.New("unit code already exists for property")
	ErrVehicleNotFound     = errors.New("vehicle not found")
	ErrPlateTaken          = errors.New("vehicle plate already registered")
	ErrCommonAreaNotFound  = errors.New("common area not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrRequestNotFound     = errors.New("maintenance request not found")
	ErrNoticeNotFound      = errors.New("notice not found")
	ErrRecordNotFound      = errors.New("security record not found")
)
