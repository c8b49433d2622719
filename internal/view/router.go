package view

import (
	"context"

	"go.uber.org/zap"
)

// Page is the top-level page state.
type Page string

const (
	PageLoggedOut Page = "logged_out"
	PageDashboard Page = "dashboard"
)

// View identifies a dashboard sub-view.
type View string

const (
	ViewCalendar    View = "calendar"
	ViewAssignments View = "assignments"
	ViewSchedule    View = "schedule"
	ViewMeetings    View = "meetings"
	ViewStudyBlocks View = "study-blocks"
	ViewSettings    View = "settings"
)

// Loader fetches a view's data fresh from the backend.
type Loader func(ctx context.Context) error

// Router tracks which page and dashboard view is active and maps a view
// activation to a data load. Activation is idempotent and always loads
// fresh: a view reflects server state as of its most recent activation,
// never a cached copy from an earlier visit.
type Router struct {
	page    Page
	active  View
	loaders map[View]Loader
	logger  *zap.Logger
}

// NewRouter constructs a router starting on the logged-out page.
func NewRouter(logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{page: PageLoggedOut, loaders: make(map[View]Loader), logger: logger}
}

// Register binds a view to its loader.
func (r *Router) Register(view View, loader Loader) {
	r.loaders[view] = loader
}

// Page returns the active top-level page.
func (r *Router) Page() Page {
	return r.page
}

// Active returns the active dashboard view; meaningful only on the
// dashboard page.
func (r *Router) Active() View {
	return r.active
}

// ShowLoggedOut transitions to the logged-out page, e.g. after logout or
// an auth failure.
func (r *Router) ShowLoggedOut() {
	r.page = PageLoggedOut
	r.active = ""
}

// ShowDashboard transitions to the dashboard with the calendar view
// active, the landing state after a successful auth check.
func (r *Router) ShowDashboard(ctx context.Context) {
	r.page = PageDashboard
	r.Activate(ctx, ViewCalendar)
}

// Activate switches to the given view and triggers its load. A load
// failure leaves the view active with whatever it last showed; the user
// retries by navigating again.
func (r *Router) Activate(ctx context.Context, view View) {
	if r.page != PageDashboard {
		return
	}
	r.active = view
	loader, ok := r.loaders[view]
	if !ok {
		r.logger.Warn("no loader registered for view", zap.String("view", string(view)))
		return
	}
	if err := loader(ctx); err != nil {
		r.logger.Warn("view load failed", zap.String("view", string(view)), zap.Error(err))
	}
}
