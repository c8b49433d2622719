package view

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/schedassist/cli/internal/calendar"
	"github.com/schedassist/cli/internal/models"
)

func TestEmptyStatesAreNeverBlank(t *testing.T) {
	cases := []struct {
		name   string
		render func(r *Renderer)
		want   string
	}{
		{"assignments", func(r *Renderer) { r.Assignments(nil) }, "No assignments yet. Create your first one!"},
		{"classes", func(r *Renderer) { r.Classes(nil) }, "No classes scheduled. Add your first class!"},
		{"meetings", func(r *Renderer) { r.Meetings(nil) }, "No meetings scheduled."},
		{"study blocks", func(r *Renderer) { r.StudyBlocks(nil) }, "No study blocks generated yet."},
		{"calendar", func(r *Renderer) { r.Events(nil) }, "Nothing scheduled in this range."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			tc.render(NewRenderer(out))
			assert.Contains(t, out.String(), tc.want)
		})
	}
}

func TestAssignmentsRowShowsBadges(t *testing.T) {
	out := &bytes.Buffer{}
	est := 90
	NewRenderer(out).Assignments([]models.Assignment{{
		ID:                   4,
		Title:                "Essay",
		Category:             "English",
		DueDate:              time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local),
		Priority:             models.PriorityHigh,
		EstimatedTimeMinutes: &est,
		Completed:            true,
		Description:          "three pages",
	}})

	text := out.String()
	assert.Contains(t, text, "Essay")
	assert.Contains(t, text, "English")
	assert.Contains(t, text, "High priority")
	assert.Contains(t, text, "Est: 90 min")
	assert.Contains(t, text, "[completed]")
	assert.Contains(t, text, "three pages")
}

func TestClassesRowShowsWeekday(t *testing.T) {
	out := &bytes.Buffer{}
	NewRenderer(out).Classes([]models.ClassSession{{
		ID: 1, Title: "Maths", DayOfWeek: 0, StartTime: "09:00", EndTime: "10:30",
	}})
	assert.Contains(t, out.String(), "Maths  Monday 09:00 - 10:30")
}

func TestMeetingsRowMarksBookedViaLink(t *testing.T) {
	out := &bytes.Buffer{}
	attendee := "Dana"
	NewRenderer(out).Meetings([]models.Meeting{{
		ID:             2,
		Title:          "Office hours",
		StartTime:      time.Date(2024, 5, 2, 14, 0, 0, 0, time.Local),
		EndTime:        time.Date(2024, 5, 2, 15, 0, 0, 0, time.Local),
		AttendeeName:   &attendee,
		CreatedByOwner: false,
	}})

	text := out.String()
	assert.Contains(t, text, "With: Dana")
	assert.Contains(t, text, "Booked via link")
}

func TestStudyBlocksRowShowsDuration(t *testing.T) {
	out := &bytes.Buffer{}
	start := time.Date(2024, 5, 3, 16, 0, 0, 0, time.Local)
	NewRenderer(out).StudyBlocks([]models.StudyBlock{{
		AssignmentTitle:    "Essay",
		AssignmentCategory: "English",
		StartTime:          start,
		EndTime:            start.Add(45 * time.Minute),
	}})

	text := out.String()
	assert.Contains(t, text, "Study: Essay")
	assert.Contains(t, text, "45 min")
}

func TestEventsRowShowsTypeAndColor(t *testing.T) {
	out := &bytes.Buffer{}
	NewRenderer(out).Events([]calendar.Event{{
		Title: "Maths",
		Type:  calendar.TypeClass,
		Start: time.Date(2024, 5, 6, 9, 0, 0, 0, time.Local),
		End:   time.Date(2024, 5, 6, 10, 0, 0, 0, time.Local),
		Color: calendar.ColorClass,
	}})

	text := out.String()
	assert.Contains(t, text, "class")
	assert.Contains(t, text, "#1E3A5F")
}
