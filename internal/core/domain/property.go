package domain

import "time"

// PropertyType classifies a managed property.
type PropertyType string

const (
	PropertyBuilding    PropertyType = "building"
	PropertyCondominium PropertyType = "condominium"
	PropertyComplex     PropertyType = "complex"
	PropertyOther       PropertyType = "other"
)

// Property is a managed residential property (building, condominium…).
type Property struct {
	ID        int64        `json:"id" bson:"_id,omitempty"`
	Name      string       `json:"name" bson:"name"`
	Address   string       `json:"address,omitempty" bson:"address,omitempty"`
	City      string       `json:"city,omitempty" bson:"city,omitempty"`
	State     string       `json:"state,omitempty" bson:"state,omitempty"`
	Country   string       `json:"country,omitempty" bson:"country,omitempty"`
	Type      PropertyType `json:"type,omitempty" bson:"type,omitempty"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" bson:"updated_at"`
}

// UnitStatus is the occupancy state of a unit.
type UnitStatus string

const (
	UnitActive   UnitStatus = "active"
	UnitInactive UnitStatus = "inactive"
)

// Unit is a single dwelling within a property. Code is unique per property.
type Unit struct {
	ID         int64      `json:"id" bson:"_id,omitempty"`
	PropertyID int64      `json:"property_id" bson:"property_id"`
	Code       string     `json:"code" bson:"code"`
	Level      string     `json:"level,omitempty" bson:"level,omitempty"`
	AreaM2     float64    `json:"area_m2,omitempty" bson:"area_m2,omitempty"`
	Bedrooms   int        `json:"bedrooms,omitempty" bson:"bedrooms,omitempty"`
	Bathrooms  int        `json:"bathrooms,omitempty" bson:"bathrooms,omitempty"`
	Status     UnitStatus `json:"status" bson:"status"`
	CreatedAt  time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" bson:"updated_at"`
}
