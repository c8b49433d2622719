package export

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
)

// ICSExporter renders an agenda as an iCalendar feed so the schedule
// can be imported into external calendar apps.
type ICSExporter struct {
	// Now is injectable for deterministic DTSTAMP values in tests.
	Now func() time.Time
}

// NewICSExporter constructs an ICS exporter.
func NewICSExporter() *ICSExporter {
	return &ICSExporter{Now: time.Now}
}

// Render serializes one VEVENT per agenda event.
func (e *ICSExporter) Render(agenda Agenda) ([]byte, error) {
	now := e.Now
	if now == nil {
		now = time.Now
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//schedassist//agenda export//EN")

	for _, event := range agenda.Events {
		uid := fmt.Sprintf("%s-%s@schedassist", event.Type, event.ID)
		ve := cal.AddEvent(uid)
		ve.SetDtStampTime(now().UTC())
		ve.SetStartAt(event.Start.UTC())
		ve.SetEndAt(event.End.UTC())
		ve.SetSummary(event.Title)
		ve.SetProperty(ical.ComponentProperty(ical.PropertyCategories), event.Type)
	}

	return []byte(cal.Serialize()), nil
}
