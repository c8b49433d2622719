// Package refresh implements the conservative-refresh policy that keeps
// the views consistent with the backend after mutations. Study blocks
// are a projection the server recomputes as a side effect of changes to
// assignments, classes and meetings; the client cannot know whether a
// given mutation changed the derived set, so it always re-pulls it.
// Correctness over efficiency: a stale derived schedule is a worse
// failure mode than an extra read.
package refresh

import (
	"context"

	"go.uber.org/zap"
)

// Resource identifies a mutable resource whose changes invalidate the
// derived views.
type Resource string

const (
	ResourceAssignments Resource = "assignments"
	ResourceClasses     Resource = "classes"
	ResourceMeetings    Resource = "meetings"
)

// Loader refetches one view from the backend.
type Loader func(ctx context.Context) error

// Coordinator decides which views must be refetched after a successful
// mutation. Callers invoke it only on success; a failed mutation must
// leave every view untouched, which falls out of simply not calling in.
type Coordinator struct {
	lists       map[Resource]Loader
	calendar    Loader
	studyBlocks Loader
	logger      *zap.Logger
}

// NewCoordinator constructs a Coordinator.
func NewCoordinator(logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{lists: make(map[Resource]Loader), logger: logger}
}

// RegisterList binds a resource to its list loader.
func (c *Coordinator) RegisterList(resource Resource, loader Loader) {
	c.lists[resource] = loader
}

// SetCalendar binds the loader refetching the calendar's current
// visible range.
func (c *Coordinator) SetCalendar(loader Loader) {
	c.calendar = loader
}

// SetStudyBlocks binds the study-blocks list loader.
func (c *Coordinator) SetStudyBlocks(loader Loader) {
	c.studyBlocks = loader
}

// AfterMutation runs after any successful create, complete or delete on
// the given resource. It refetches, exactly once each: the resource's
// own list, the calendar's visible range, and the study-blocks list.
// Refetch failures are logged and swallowed; a stale list is recoverable
// by re-triggering navigation.
func (c *Coordinator) AfterMutation(ctx context.Context, resource Resource) {
	if loader, ok := c.lists[resource]; ok {
		c.run(ctx, string(resource)+" list", loader)
	} else {
		c.logger.Warn("no list loader registered", zap.String("resource", string(resource)))
	}
	c.run(ctx, "calendar", c.calendar)
	c.run(ctx, "study blocks", c.studyBlocks)
}

// AfterRegenerate runs after an explicit successful schedule
// regeneration, which bypasses the resource-mutation path: only the
// study-blocks list and the calendar are refetched.
func (c *Coordinator) AfterRegenerate(ctx context.Context) {
	c.run(ctx, "study blocks", c.studyBlocks)
	c.run(ctx, "calendar", c.calendar)
}

func (c *Coordinator) run(ctx context.Context, name string, loader Loader) {
	if loader == nil {
		return
	}
	if err := loader(ctx); err != nil {
		c.logger.Warn("refetch failed", zap.String("view", name), zap.Error(err))
	}
}
