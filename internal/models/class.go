package models

// Day names indexed by day_of_week as the backend encodes it (0 = Monday).
var DayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// ClassSession is a recurring weekly slot, not a dated event. StartTime
// and EndTime are clock times of the form "HH:MM".
type ClassSession struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// DayName returns the display name of the class's weekday.
func (c ClassSession) DayName() string {
	if c.DayOfWeek < 0 || c.DayOfWeek >= len(DayNames) {
		return "Unknown"
	}
	return DayNames[c.DayOfWeek]
}

// CreateClassRequest is the create payload for a weekly class slot.
type CreateClassRequest struct {
	Title     string `json:"title" validate:"required"`
	DayOfWeek int    `json:"day_of_week" validate:"min=0,max=6"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}
