package domain

import "time"

// VehicleStatus is the registration state of a vehicle.
type VehicleStatus string

const (
	VehicleActive   VehicleStatus = "active"
	VehicleInactive VehicleStatus = "inactive"
)

// Vehicle is a resident vehicle identified by its plate. AccountID and
// UnitID are cleared (not cascaded) when the referenced record is deleted.
type Vehicle struct {
	ID        int64         `json:"id" bson:"_id,omitempty"`
	AccountID *int64        `json:"account_id,omitempty" bson:"account_id,omitempty"`
	UnitID    *int64        `json:"unit_id,omitempty" bson:"unit_id,omitempty"`
	Plate     string        `json:"plate" bson:"plate"`
	Brand     string        `json:"brand,omitempty" bson:"brand,omitempty"`
	Model     string        `json:"model,omitempty" bson:"model,omitempty"`
	Color     string        `json:"color,omitempty" bson:"color,omitempty"`
	Status    VehicleStatus `json:"status" bson:"status"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}
