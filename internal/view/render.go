package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/schedassist/cli/internal/calendar"
	"github.com/schedassist/cli/internal/models"
)

// Renderer writes resource listings as text. Every list view renders a
// distinct placeholder when the record set is empty rather than nothing
// at all; callers can rely on output never being blank.
type Renderer struct {
	out io.Writer
}

// NewRenderer constructs a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (r *Renderer) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *Renderer) header(title string) {
	r.printf("\n%s\n%s\n", title, strings.Repeat("-", len(title)))
}

// Assignments renders the assignment list.
func (r *Renderer) Assignments(assignments []models.Assignment) {
	r.header("Assignments")
	if len(assignments) == 0 {
		r.printf("No assignments yet. Create your first one!\n")
		return
	}
	for _, a := range assignments {
		r.printf("[%d] %s  (%s)\n", a.ID, a.Title, a.Category)
		r.printf("    Due: %s  %s priority", a.DueDate.Local().Format("Mon Jan 2 15:04"), a.PriorityLabel())
		if a.EstimatedTimeMinutes != nil {
			r.printf("  Est: %d min", *a.EstimatedTimeMinutes)
		}
		if a.Completed {
			r.printf("  [completed]")
		}
		r.printf("\n")
		if a.Description != "" {
			r.printf("    %s\n", a.Description)
		}
	}
}

// Classes renders the weekly class schedule.
func (r *Renderer) Classes(classes []models.ClassSession) {
	r.header("Class Schedule")
	if len(classes) == 0 {
		r.printf("No classes scheduled. Add your first class!\n")
		return
	}
	for _, c := range classes {
		r.printf("[%d] %s  %s %s - %s\n", c.ID, c.Title, c.DayName(), c.StartTime, c.EndTime)
	}
}

// Meetings renders the meeting list.
func (r *Renderer) Meetings(meetings []models.Meeting) {
	r.header("Meetings")
	if len(meetings) == 0 {
		r.printf("No meetings scheduled.\n")
		return
	}
	for _, m := range meetings {
		r.printf("[%d] %s  %s\n", m.ID, m.Title, m.StartTime.Local().Format("Mon Jan 2 15:04"))
		if m.AttendeeName != nil && *m.AttendeeName != "" {
			r.printf("    With: %s\n", *m.AttendeeName)
		}
		if !m.CreatedByOwner {
			r.printf("    Booked via link\n")
		}
		if m.Description != "" {
			r.printf("    %s\n", m.Description)
		}
	}
}

// StudyBlocks renders the derived study schedule.
func (r *Renderer) StudyBlocks(blocks []models.StudyBlock) {
	r.header("Study Blocks")
	if len(blocks) == 0 {
		r.printf("No study blocks generated yet. Add some assignments and they'll appear automatically!\n")
		return
	}
	for _, b := range blocks {
		r.printf("Study: %s  (%s)\n", b.AssignmentTitle, b.AssignmentCategory)
		r.printf("    %s  %d min\n", b.StartTime.Local().Format("Mon Jan 2 15:04"), b.DurationMinutes())
	}
}

// Events renders the aggregated calendar for the visible range.
func (r *Renderer) Events(events []calendar.Event) {
	r.header("Calendar")
	if len(events) == 0 {
		r.printf("Nothing scheduled in this range.\n")
		return
	}
	for _, e := range events {
		r.printf("%s  %-11s %s  (%s)\n", e.Start.Local().Format("Mon Jan 2 15:04"), e.Type, e.Title, e.Color)
	}
}

// Preferences renders the settings view.
func (r *Renderer) Preferences(prefs *models.Preferences) {
	r.header("Settings")
	if prefs == nil {
		r.printf("Preferences not loaded.\n")
		return
	}
	r.printf("Wake time: %s\n", prefs.WakeTime)
	r.printf("Bedtime: %s\n", prefs.Bedtime)
	r.printf("Default study block: %d min\n", prefs.DefaultStudyBlockMinutes)
}

// Message writes a one-off status or error line.
func (r *Renderer) Message(text string) {
	r.printf("%s\n", text)
}
