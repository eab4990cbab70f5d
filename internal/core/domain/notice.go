package domain

import "time"

// Notice is an announcement published to residents.
type Notice struct {
	ID          int64     `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Body        string    `json:"body" bson:"body"`
	PublishedBy int64     `json:"published_by" bson:"published_by"`
	PublishedAt time.Time `json:"published_at" bson:"published_at"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
