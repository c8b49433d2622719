package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedassist/cli/internal/models"
)

func TestCreateMeetingOmittedAttendeeIsNull(t *testing.T) {
	var body map[string]json.RawMessage
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &body))
		w.Write([]byte(`{"id":5}`))
	})
	svc := NewMeetingService(gw, nil, nil)

	start := time.Date(2024, 5, 2, 14, 0, 0, 0, time.UTC)
	_, err := svc.Create(context.Background(), models.CreateMeetingRequest{
		Title:     "sync",
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
	})
	require.NoError(t, err)
	assert.Equal(t, "null", string(body["attendee_name"]))
}

func TestListMeetingsKeepsBookingOrigin(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/meetings", r.URL.Path)
		w.Write([]byte(`[
			{"id":1,"title":"own","start_time":"2024-05-02T14:00:00Z","end_time":"2024-05-02T15:00:00Z","created_by_owner":true},
			{"id":2,"title":"booked","start_time":"2024-05-03T14:00:00Z","end_time":"2024-05-03T15:00:00Z","attendee_name":"Dana","created_by_owner":false}
		]`))
	})
	svc := NewMeetingService(gw, nil, nil)

	meetings, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, meetings, 2)
	assert.True(t, meetings[0].CreatedByOwner)
	assert.False(t, meetings[1].CreatedByOwner)
	require.NotNil(t, meetings[1].AttendeeName)
	assert.Equal(t, "Dana", *meetings[1].AttendeeName)
}

func TestCreateClassValidatesDayOfWeek(t *testing.T) {
	hits := 0
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
	})
	svc := NewClassService(gw, nil, nil)

	_, err := svc.Create(context.Background(), models.CreateClassRequest{
		Title: "Maths", DayOfWeek: 7, StartTime: "09:00", EndTime: "10:00",
	})
	require.Error(t, err)
	assert.Zero(t, hits)
}

func TestCreateClassSendsWeeklySlot(t *testing.T) {
	var body map[string]interface{}
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/classes", r.URL.Path)
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &body))
		w.Write([]byte(`{"id":9}`))
	})
	svc := NewClassService(gw, nil, nil)

	_, err := svc.Create(context.Background(), models.CreateClassRequest{
		Title: "Maths", DayOfWeek: 0, StartTime: "09:00", EndTime: "10:30",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(0), body["day_of_week"])
	assert.Equal(t, "09:00", body["start_time"])
	assert.Equal(t, "10:30", body["end_time"])
}

func TestRegenerateHitsRegeneratePath(t *testing.T) {
	var gotPath, gotMethod string
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusOK)
	})
	svc := NewStudyBlockService(gw, nil)

	require.NoError(t, svc.Regenerate(context.Background()))
	assert.Equal(t, "/api/study-blocks/regenerate", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
}

func TestUpdatePreferencesReplacesWholesale(t *testing.T) {
	var gotMethod string
	var body map[string]interface{}
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &body))
		w.WriteHeader(http.StatusOK)
	})
	svc := NewPreferenceService(gw, nil, nil)

	require.NoError(t, svc.Update(context.Background(), models.Preferences{
		WakeTime: "07:30", Bedtime: "23:00", DefaultStudyBlockMinutes: 45,
	}))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "07:30", body["wake_time"])
	assert.Equal(t, "23:00", body["bedtime"])
	assert.Equal(t, float64(45), body["default_study_block_minutes"])
}
