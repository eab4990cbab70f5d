package domain

import "time"

// CommonArea is a shared amenity that residents may reserve.
type CommonArea struct {
	ID          int64     `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Capacity    int       `json:"capacity,omitempty" bson:"capacity,omitempty"`
	OpensAt     string    `json:"opens_at,omitempty" bson:"opens_at,omitempty"`
	ClosesAt    string    `json:"closes_at,omitempty" bson:"closes_at,omitempty"`
	Active      bool      `json:"active" bson:"active"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation books a common area for an account on a given date.
type Reservation struct {
	ID           int64             `json:"id" bson:"_id,omitempty"`
	CommonAreaID int64             `json:"common_area_id" bson:"common_area_id"`
	AccountID    int64             `json:"account_id" bson:"account_id"`
	Date         string            `json:"date" bson:"date"`
	StartTime    string            `json:"start_time" bson:"start_time"`
	EndTime      string            `json:"end_time" bson:"end_time"`
	Status       ReservationStatus `json:"status" bson:"status"`
	CreatedAt    time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at" bson:"updated_at"`
}
