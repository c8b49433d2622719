package models

import "time"

// Meeting is a dated appointment. CreatedByOwner distinguishes meetings
// the user created from ones booked by a third party through the public
// booking link; the flag only affects display.
type Meeting struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	AttendeeName   *string   `json:"attendee_name,omitempty"`
	CreatedByOwner bool      `json:"created_by_owner"`
}

// CreateMeetingRequest is the create payload. AttendeeName is a pointer
// so an empty field marshals as null.
type CreateMeetingRequest struct {
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description"`
	StartTime    time.Time `json:"start_time" validate:"required"`
	EndTime      time.Time `json:"end_time" validate:"required"`
	AttendeeName *string   `json:"attendee_name"`
}
