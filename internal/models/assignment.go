package models

import "time"

// Assignment priorities as the backend encodes them.
const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

// Assignment is a piece of work with a due date. Study blocks are derived
// from assignments server-side; the client only ever reads them back.
type Assignment struct {
	ID                   int       `json:"id"`
	Title                string    `json:"title"`
	Category             string    `json:"category"`
	Description          string    `json:"description,omitempty"`
	DueDate              time.Time `json:"due_date"`
	Priority             int       `json:"priority"`
	EstimatedTimeMinutes *int      `json:"estimated_time_minutes,omitempty"`
	Completed            bool      `json:"completed"`
}

// PriorityLabel returns the display name for an assignment priority.
func (a Assignment) PriorityLabel() string {
	switch a.Priority {
	case PriorityLow:
		return "Low"
	case PriorityHigh:
		return "High"
	default:
		return "Medium"
	}
}

// CreateAssignmentRequest is the create payload. EstimatedTimeMinutes is a
// pointer so that a blank field marshals as null and lets the backend
// auto-estimate; zero minutes is a real value, not "unknown".
type CreateAssignmentRequest struct {
	Title                string    `json:"title" validate:"required"`
	Category             string    `json:"category" validate:"required"`
	Description          string    `json:"description"`
	DueDate              time.Time `json:"due_date" validate:"required"`
	Priority             int       `json:"priority" validate:"required,oneof=1 2 3"`
	EstimatedTimeMinutes *int      `json:"estimated_time_minutes"`
}

// CompleteAssignmentRequest reports actual time spent. The field always
// appears in the body: an explicit null when the user left it blank.
type CompleteAssignmentRequest struct {
	ActualTimeMinutes *int `json:"actual_time_minutes"`
}

// AssignmentFilter is the tri-state completion filter for listings.
type AssignmentFilter string

const (
	FilterAll        AssignmentFilter = "all"
	FilterCompleted  AssignmentFilter = "completed"
	FilterIncomplete AssignmentFilter = "incomplete"
)

// QueryValue returns the value of the completed query parameter and
// whether it should be sent at all. FilterAll omits the parameter
// entirely; absence is the "show everything" signal.
func (f AssignmentFilter) QueryValue() (string, bool) {
	switch f {
	case FilterCompleted:
		return "true", true
	case FilterIncomplete:
		return "false", true
	default:
		return "", false
	}
}
