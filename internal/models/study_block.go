package models

import "time"

// StudyBlock is a server-computed interval allocated for working on an
// assignment. Read-only from the client's perspective: it changes only as
// a side effect of assignment/class/meeting mutations or an explicit
// regenerate request.
type StudyBlock struct {
	ID                 int       `json:"id"`
	AssignmentTitle    string    `json:"assignment_title"`
	AssignmentCategory string    `json:"assignment_category"`
	StartTime          time.Time `json:"start_time"`
	EndTime            time.Time `json:"end_time"`
}

// DurationMinutes returns the block length rounded to whole minutes.
func (b StudyBlock) DurationMinutes() int {
	return int(b.EndTime.Sub(b.StartTime).Round(time.Minute) / time.Minute)
}
