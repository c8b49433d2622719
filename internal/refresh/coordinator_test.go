package refresh

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingLoader struct {
	calls int
	err   error
}

func (l *countingLoader) load(context.Context) error {
	l.calls++
	return l.err
}

func newWiredCoordinator() (*Coordinator, map[Resource]*countingLoader, *countingLoader, *countingLoader) {
	c := NewCoordinator(nil)
	lists := map[Resource]*countingLoader{
		ResourceAssignments: {},
		ResourceClasses:     {},
		ResourceMeetings:    {},
	}
	for resource, loader := range lists {
		c.RegisterList(resource, loader.load)
	}
	cal := &countingLoader{}
	blocks := &countingLoader{}
	c.SetCalendar(cal.load)
	c.SetStudyBlocks(blocks.load)
	return c, lists, cal, blocks
}

func TestAfterMutationRefetchesExactlyOnce(t *testing.T) {
	for _, resource := range []Resource{ResourceAssignments, ResourceClasses, ResourceMeetings} {
		t.Run(string(resource), func(t *testing.T) {
			c, lists, cal, blocks := newWiredCoordinator()

			c.AfterMutation(context.Background(), resource)

			for r, loader := range lists {
				if r == resource {
					assert.Equal(t, 1, loader.calls, "mutated resource list refetched once")
				} else {
					assert.Equal(t, 0, loader.calls, "unrelated list untouched")
				}
			}
			assert.Equal(t, 1, cal.calls, "calendar refetched once")
			assert.Equal(t, 1, blocks.calls, "study blocks refetched once")
		})
	}
}

func TestAfterRegenerateSkipsResourceLists(t *testing.T) {
	c, lists, cal, blocks := newWiredCoordinator()

	c.AfterRegenerate(context.Background())

	for _, loader := range lists {
		assert.Equal(t, 0, loader.calls)
	}
	assert.Equal(t, 1, cal.calls)
	assert.Equal(t, 1, blocks.calls)
}

func TestAfterMutationSwallowsRefetchErrors(t *testing.T) {
	c, lists, cal, blocks := newWiredCoordinator()
	lists[ResourceAssignments].err = errors.New("list down")
	cal.err = errors.New("calendar down")

	assert.NotPanics(t, func() {
		c.AfterMutation(context.Background(), ResourceAssignments)
	})
	// A failed refetch does not stop the remaining ones.
	assert.Equal(t, 1, blocks.calls)
}

func TestAfterMutationUnknownResource(t *testing.T) {
	c := NewCoordinator(nil)
	blocks := &countingLoader{}
	cal := &countingLoader{}
	c.SetCalendar(cal.load)
	c.SetStudyBlocks(blocks.load)

	assert.NotPanics(t, func() {
		c.AfterMutation(context.Background(), Resource("preferences"))
	})
	assert.Equal(t, 1, cal.calls)
	assert.Equal(t, 1, blocks.calls)
}
