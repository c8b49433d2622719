// Package calendar translates date-range queries into requests against
// the backend's aggregation endpoint and maps the heterogeneous event
// records it returns into a single renderable event schema.
package calendar

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Event types as the aggregation endpoint labels them.
const (
	TypeAssignment = "assignment"
	TypeClass      = "class"
	TypeMeeting    = "meeting"
	TypeStudyBlock = "study_block"
)

// Colors keyed by event type. The assignment color doubles as the
// default for unrecognised types.
const (
	ColorClass      = "#1E3A5F"
	ColorMeeting    = "#7A9B76"
	ColorStudyBlock = "#E89572"
	ColorDefault    = "#D4754E"
)

// Event is the client-side projection rendered by the calendar view. It
// is assembled per query and never cached across range changes.
type Event struct {
	ID    string
	Title string
	Type  string
	Start time.Time
	End   time.Time
	Color string
}

type rawEvent struct {
	ID        interface{} `json:"id"`
	Title     string      `json:"title"`
	Type      string      `json:"type"`
	StartTime time.Time   `json:"start_time"`
	EndTime   time.Time   `json:"end_time"`
}

type aggregationResponse struct {
	Events []rawEvent `json:"events"`
}

type httpGateway interface {
	Get(ctx context.Context, path string, query url.Values, out interface{}) error
}

// Adapter fetches aggregated events for a visible date range.
type Adapter struct {
	gw     httpGateway
	logger *zap.Logger
}

// NewAdapter constructs an Adapter.
func NewAdapter(gw httpGateway, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{gw: gw, logger: logger}
}

// Events fetches all events overlapping [start, end) and maps them into
// the render schema. A fetch failure is returned to the caller so the
// view can show its error state; it is never flattened into an empty
// event set.
func (a *Adapter) Events(ctx context.Context, start, end time.Time) ([]Event, error) {
	query := url.Values{
		"start_date": []string{start.Format(time.RFC3339)},
		"end_date":   []string{end.Format(time.RFC3339)},
	}

	var resp aggregationResponse
	if err := a.gw.Get(ctx, "/api/calendar", query, &resp); err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(resp.Events))
	for _, raw := range resp.Events {
		events = append(events, Event{
			ID:    fmt.Sprint(raw.ID),
			Title: raw.Title,
			Type:  raw.Type,
			Start: raw.StartTime,
			End:   raw.EndTime,
			Color: ColorFor(raw.Type),
		})
	}
	return events, nil
}

// ColorFor maps an event type to its display color. Pure function of the
// type; unknown types get the default.
func ColorFor(eventType string) string {
	switch eventType {
	case TypeClass:
		return ColorClass
	case TypeMeeting:
		return ColorMeeting
	case TypeStudyBlock:
		return ColorStudyBlock
	default:
		return ColorDefault
	}
}

// Describe renders the detail line shown when an event is selected: its
// title, type and start time. Selecting an event never mutates anything.
func Describe(e Event) string {
	return fmt.Sprintf("%s\n\nType: %s\nTime: %s", e.Title, e.Type, e.Start.Local().Format("Mon Jan 2 15:04"))
}
