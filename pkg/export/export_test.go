package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAgenda() Agenda {
	start := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)
	return Agenda{
		Title: "Agenda 2024-05-01 - 2024-06-01",
		Events: []AgendaEvent{
			{ID: "1", Title: "Maths", Type: "class", Start: start, End: start.Add(time.Hour)},
			{ID: "sb-2", Title: "Study: Essay", Type: "study_block", Start: start.Add(7 * time.Hour), End: start.Add(8 * time.Hour)},
		},
	}
}

func TestCSVRendersHeaderAndRows(t *testing.T) {
	data, err := NewCSVExporter().Render(sampleAgenda())
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "start,end,type,title")
	assert.Contains(t, text, "2024-05-06T09:00:00Z,2024-05-06T10:00:00Z,class,Maths")
	assert.Contains(t, text, "study_block,Study: Essay")
}

func TestCSVEmptyAgendaStillHasHeader(t *testing.T) {
	data, err := NewCSVExporter().Render(Agenda{})
	require.NoError(t, err)
	assert.Contains(t, string(data), "start,end,type,title")
}

func TestPDFRendersDocument(t *testing.T) {
	data, err := NewPDFExporter().Render(sampleAgenda())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestICSRendersOneEventPerRow(t *testing.T) {
	exporter := NewICSExporter()
	exporter.Now = func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }

	data, err := exporter.Render(sampleAgenda())
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "BEGIN:VCALENDAR")
	assert.Contains(t, text, "SUMMARY:Maths")
	assert.Contains(t, text, "SUMMARY:Study: Essay")
	assert.Contains(t, text, "UID:class-1@schedassist")
	assert.Contains(t, text, "UID:study_block-sb-2@schedassist")
	assert.Contains(t, text, "END:VCALENDAR")
}
