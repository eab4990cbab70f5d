package domain

import "time"

// Role is a named permission group. Many accounts may share a role; a
// role cannot be deleted while any account references it.
type Role struct {
	ID          int64     `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
