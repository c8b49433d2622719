// Package export renders the aggregated agenda into portable formats:
// CSV, a tabular PDF, and iCalendar for import into other calendar
// apps.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"
)

// Agenda is the exportable slice of the calendar: the events visible in
// a date range.
type Agenda struct {
	Title  string
	Events []AgendaEvent
}

// AgendaEvent is one row of the agenda.
type AgendaEvent struct {
	ID    string
	Title string
	Type  string
	Start time.Time
	End   time.Time
}

var csvHeaders = []string{"start", "end", "type", "title"}

// CSVExporter renders an agenda into CSV bytes.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes for the agenda, one row per event.
func (e *CSVExporter) Render(agenda Agenda) ([]byte, error) {
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(csvHeaders); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, event := range agenda.Events {
		record := []string{
			event.Start.Format(time.RFC3339),
			event.End.Format(time.RFC3339),
			event.Type,
			event.Title,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
