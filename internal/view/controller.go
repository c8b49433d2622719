package view

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/schedassist/cli/internal/calendar"
	"github.com/schedassist/cli/internal/models"
	"github.com/schedassist/cli/internal/refresh"
)

type assignmentAPI interface {
	List(ctx context.Context, filter models.AssignmentFilter) ([]models.Assignment, error)
	Create(ctx context.Context, req models.CreateAssignmentRequest) (*models.Assignment, error)
	Complete(ctx context.Context, id int, actualMinutes *int) error
	Delete(ctx context.Context, id int) error
}

type classAPI interface {
	List(ctx context.Context) ([]models.ClassSession, error)
	Create(ctx context.Context, req models.CreateClassRequest) (*models.ClassSession, error)
	Delete(ctx context.Context, id int) error
}

type meetingAPI interface {
	List(ctx context.Context) ([]models.Meeting, error)
	Create(ctx context.Context, req models.CreateMeetingRequest) (*models.Meeting, error)
	Delete(ctx context.Context, id int) error
}

type studyBlockAPI interface {
	List(ctx context.Context) ([]models.StudyBlock, error)
	Regenerate(ctx context.Context) error
}

type preferenceAPI interface {
	Get(ctx context.Context) (*models.Preferences, error)
	Update(ctx context.Context, prefs models.Preferences) error
}

type calendarAPI interface {
	Events(ctx context.Context, start, end time.Time) ([]calendar.Event, error)
}

// Confirmer asks the user to confirm a destructive action. Deletion is
// guarded client-side only; once the request is sent the server deletes
// unconditionally.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Controller owns the dashboard's transient view state: the assignment
// filter, the calendar's visible range, and the loaded preferences. It
// wires every successful mutation into the refresh coordinator.
type Controller struct {
	assignments assignmentAPI
	classes     classAPI
	meetings    meetingAPI
	studyBlocks studyBlockAPI
	preferences preferenceAPI
	calendar    calendarAPI

	coordinator *refresh.Coordinator
	renderer    *Renderer
	confirmer   Confirmer
	logger      *zap.Logger

	filter     models.AssignmentFilter
	rangeStart time.Time
	rangeEnd   time.Time
	prefs      *models.Preferences
}

// NewController constructs the controller and registers its loaders on
// the router and the refresh coordinator. The initial calendar range is
// the current month; the initial assignment filter hides completed work.
func NewController(
	router *Router,
	coordinator *refresh.Coordinator,
	renderer *Renderer,
	confirmer Confirmer,
	assignments assignmentAPI,
	classes classAPI,
	meetings meetingAPI,
	studyBlocks studyBlockAPI,
	preferences preferenceAPI,
	cal calendarAPI,
	logger *zap.Logger,
) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	c := &Controller{
		assignments: assignments,
		classes:     classes,
		meetings:    meetings,
		studyBlocks: studyBlocks,
		preferences: preferences,
		calendar:    cal,
		coordinator: coordinator,
		renderer:    renderer,
		confirmer:   confirmer,
		logger:      logger,
		filter:      models.FilterIncomplete,
		rangeStart:  start,
		rangeEnd:    start.AddDate(0, 1, 0),
	}

	router.Register(ViewCalendar, c.LoadCalendar)
	router.Register(ViewAssignments, c.LoadAssignments)
	router.Register(ViewSchedule, c.LoadClasses)
	router.Register(ViewMeetings, c.LoadMeetings)
	router.Register(ViewStudyBlocks, c.LoadStudyBlocks)
	router.Register(ViewSettings, c.LoadSettings)

	coordinator.RegisterList(refresh.ResourceAssignments, c.LoadAssignments)
	coordinator.RegisterList(refresh.ResourceClasses, c.LoadClasses)
	coordinator.RegisterList(refresh.ResourceMeetings, c.LoadMeetings)
	coordinator.SetCalendar(c.LoadCalendar)
	coordinator.SetStudyBlocks(c.LoadStudyBlocks)

	return c
}

// Filter returns the active assignment filter.
func (c *Controller) Filter() models.AssignmentFilter {
	return c.filter
}

// SetFilter switches the assignment filter and reloads the list.
func (c *Controller) SetFilter(ctx context.Context, filter models.AssignmentFilter) error {
	c.filter = filter
	return c.LoadAssignments(ctx)
}

// Range returns the calendar's visible [start, end) range.
func (c *Controller) Range() (time.Time, time.Time) {
	return c.rangeStart, c.rangeEnd
}

// SetRange moves the calendar's visible range and reloads it.
func (c *Controller) SetRange(ctx context.Context, start, end time.Time) error {
	c.rangeStart, c.rangeEnd = start, end
	return c.LoadCalendar(ctx)
}

// LoadAssignments refetches and renders the assignment list under the
// active filter.
func (c *Controller) LoadAssignments(ctx context.Context) error {
	assignments, err := c.assignments.List(ctx, c.filter)
	if err != nil {
		return err
	}
	c.renderer.Assignments(assignments)
	return nil
}

// LoadClasses refetches and renders the weekly class schedule.
func (c *Controller) LoadClasses(ctx context.Context) error {
	classes, err := c.classes.List(ctx)
	if err != nil {
		return err
	}
	c.renderer.Classes(classes)
	return nil
}

// LoadMeetings refetches and renders the meeting list.
func (c *Controller) LoadMeetings(ctx context.Context) error {
	meetings, err := c.meetings.List(ctx)
	if err != nil {
		return err
	}
	c.renderer.Meetings(meetings)
	return nil
}

// LoadStudyBlocks refetches and renders the derived study schedule.
func (c *Controller) LoadStudyBlocks(ctx context.Context) error {
	blocks, err := c.studyBlocks.List(ctx)
	if err != nil {
		return err
	}
	c.renderer.StudyBlocks(blocks)
	return nil
}

// LoadCalendar refetches and renders the aggregated events for the
// current visible range.
func (c *Controller) LoadCalendar(ctx context.Context) error {
	events, err := c.calendar.Events(ctx, c.rangeStart, c.rangeEnd)
	if err != nil {
		return err
	}
	c.renderer.Events(events)
	return nil
}

// LoadSettings fetches the preferences and renders the settings view.
func (c *Controller) LoadSettings(ctx context.Context) error {
	prefs, err := c.preferences.Get(ctx)
	if err != nil {
		return err
	}
	c.prefs = prefs
	c.renderer.Preferences(prefs)
	return nil
}

// Preferences returns the last loaded preferences, nil before the first
// settings load.
func (c *Controller) Preferences() *models.Preferences {
	return c.prefs
}

// CreateAssignment submits a new assignment and, on success only, runs
// the conservative refresh.
func (c *Controller) CreateAssignment(ctx context.Context, req models.CreateAssignmentRequest) error {
	if _, err := c.assignments.Create(ctx, req); err != nil {
		return err
	}
	c.coordinator.AfterMutation(ctx, refresh.ResourceAssignments)
	return nil
}

// CompleteAssignment marks an assignment done. actualMinutes nil means
// the user left the field blank.
func (c *Controller) CompleteAssignment(ctx context.Context, id int, actualMinutes *int) error {
	if err := c.assignments.Complete(ctx, id, actualMinutes); err != nil {
		return err
	}
	c.coordinator.AfterMutation(ctx, refresh.ResourceAssignments)
	return nil
}

// DeleteAssignment asks for confirmation, then deletes. Cancelling sends
// no request and refreshes nothing.
func (c *Controller) DeleteAssignment(ctx context.Context, id int) error {
	if !c.confirmer.Confirm("Delete this assignment?") {
		return nil
	}
	if err := c.assignments.Delete(ctx, id); err != nil {
		return err
	}
	c.coordinator.AfterMutation(ctx, refresh.ResourceAssignments)
	return nil
}

// CreateClass adds a weekly class slot.
func (c *Controller) CreateClass(ctx context.Context, req models.CreateClassRequest) error {
	if _, err := c.classes.Create(ctx, req); err != nil {
		return err
	}
	c.coordinator.AfterMutation(ctx, refresh.ResourceClasses)
	return nil
}

// DeleteClass asks for confirmation, then deletes the class slot.
func (c *Controller) DeleteClass(ctx context.Context, id int) error {
	if !c.confirmer.Confirm("Delete this class?") {
		return nil
	}
	if err := c.classes.Delete(ctx, id); err != nil {
		return err
	}
	c.coordinator.AfterMutation(ctx, refresh.ResourceClasses)
	return nil
}

// CreateMeeting schedules a meeting.
func (c *Controller) CreateMeeting(ctx context.Context, req models.CreateMeetingRequest) error {
	if _, err := c.meetings.Create(ctx, req); err != nil {
		return err
	}
	c.coordinator.AfterMutation(ctx, refresh.ResourceMeetings)
	return nil
}

// DeleteMeeting asks for confirmation, then deletes the meeting.
func (c *Controller) DeleteMeeting(ctx context.Context, id int) error {
	if !c.confirmer.Confirm("Delete this meeting?") {
		return nil
	}
	if err := c.meetings.Delete(ctx, id); err != nil {
		return err
	}
	c.coordinator.AfterMutation(ctx, refresh.ResourceMeetings)
	return nil
}

// Regenerate asks the backend to recompute the study schedule. On
// success the study-blocks list and the calendar are refetched; the
// resource-mutation path is bypassed.
func (c *Controller) Regenerate(ctx context.Context) error {
	if err := c.studyBlocks.Regenerate(ctx); err != nil {
		return err
	}
	c.coordinator.AfterRegenerate(ctx)
	c.renderer.Message("Schedule regenerated successfully!")
	return nil
}

// SavePreferences replaces the preferences wholesale. Saving triggers no
// view invalidation.
func (c *Controller) SavePreferences(ctx context.Context, prefs models.Preferences) error {
	if err := c.preferences.Update(ctx, prefs); err != nil {
		return err
	}
	c.prefs = &prefs
	c.renderer.Message("Settings saved successfully!")
	return nil
}

// Events returns the aggregated events for the current range without
// rendering, for export.
func (c *Controller) Events(ctx context.Context) ([]calendar.Event, error) {
	return c.calendar.Events(ctx, c.rangeStart, c.rangeEnd)
}
