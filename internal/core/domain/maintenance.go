package domain

import "time"

// RequestPriority is the urgency of a maintenance request.
type RequestPriority string

const (
	PriorityLow    RequestPriority = "low"
	PriorityMedium RequestPriority = "medium"
	PriorityHigh   RequestPriority = "high"
)

// RequestStatus is the workflow state of a maintenance request.
type RequestStatus string

const (
	RequestOpen       RequestStatus = "open"
	RequestInProgress RequestStatus = "in_progress"
	RequestClosed     RequestStatus = "closed"
)

// MaintenanceRequest is a repair or service request raised for a unit.
type MaintenanceRequest struct {
	ID          int64           `json:"id" bson:"_id,omitempty"`
	UnitID      int64           `json:"unit_id" bson:"unit_id"`
	AccountID   int64           `json:"account_id" bson:"account_id"`
	Title       string          `json:"title" bson:"title"`
	Description string          `json:"description,omitempty" bson:"description,omitempty"`
	Priority    RequestPriority `json:"priority" bson:"priority"`
	Status      RequestStatus   `json:"status" bson:"status"`
	CreatedAt   time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" bson:"updated_at"`
}
