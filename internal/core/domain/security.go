package domain

import "time"

// SecurityRecordKind classifies a gatehouse entry.
type SecurityRecordKind string

const (
	RecordVisitor  SecurityRecordKind = "visitor"
	RecordIncident SecurityRecordKind = "incident"
	RecordPackage  SecurityRecordKind = "package"
)

// SecurityRecord is a gatehouse log entry (visitor, incident, package).
type SecurityRecord struct {
	ID          int64              `json:"id" bson:"_id,omitempty"`
	Kind        SecurityRecordKind `json:"kind" bson:"kind"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	UnitID      *int64             `json:"unit_id,omitempty" bson:"unit_id,omitempty"`
	RecordedBy  int64              `json:"recorded_by" bson:"recorded_by"`
	OccurredAt  time.Time          `json:"occurred_at" bson:"occurred_at"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
