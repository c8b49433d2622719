package view

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouterStartsLoggedOut(t *testing.T) {
	r := NewRouter(nil)
	assert.Equal(t, PageLoggedOut, r.Page())
}

func TestActivateIgnoredWhileLoggedOut(t *testing.T) {
	r := NewRouter(nil)
	calls := 0
	r.Register(ViewAssignments, func(context.Context) error {
		calls++
		return nil
	})

	r.Activate(context.Background(), ViewAssignments)

	assert.Zero(t, calls)
	assert.Equal(t, PageLoggedOut, r.Page())
}

func TestShowDashboardLandsOnCalendar(t *testing.T) {
	r := NewRouter(nil)
	calendarLoads := 0
	r.Register(ViewCalendar, func(context.Context) error {
		calendarLoads++
		return nil
	})

	r.ShowDashboard(context.Background())

	assert.Equal(t, PageDashboard, r.Page())
	assert.Equal(t, ViewCalendar, r.Active())
	assert.Equal(t, 1, calendarLoads)
}

func TestActivateAlwaysLoadsFresh(t *testing.T) {
	r := NewRouter(nil)
	loads := 0
	r.Register(ViewCalendar, func(context.Context) error { return nil })
	r.Register(ViewMeetings, func(context.Context) error {
		loads++
		return nil
	})
	r.ShowDashboard(context.Background())

	// Re-activating the same view must never serve a cached copy.
	r.Activate(context.Background(), ViewMeetings)
	r.Activate(context.Background(), ViewMeetings)
	r.Activate(context.Background(), ViewMeetings)

	assert.Equal(t, 3, loads)
	assert.Equal(t, ViewMeetings, r.Active())
}

func TestActivateSurvivesLoadFailure(t *testing.T) {
	r := NewRouter(nil)
	r.Register(ViewCalendar, func(context.Context) error { return nil })
	r.Register(ViewStudyBlocks, func(context.Context) error { return errors.New("backend down") })
	r.ShowDashboard(context.Background())

	assert.NotPanics(t, func() {
		r.Activate(context.Background(), ViewStudyBlocks)
	})
	assert.Equal(t, ViewStudyBlocks, r.Active(), "view stays active, retry is re-activation")
}

func TestShowLoggedOutClearsActiveView(t *testing.T) {
	r := NewRouter(nil)
	r.Register(ViewCalendar, func(context.Context) error { return nil })
	r.ShowDashboard(context.Background())

	r.ShowLoggedOut()

	assert.Equal(t, PageLoggedOut, r.Page())
	assert.Empty(t, string(r.Active()))
}
