package createEvent

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"miniEvents/internal/http-server/handlers/event/createEvent/mocks"
	"miniEvents/internal/lib/logger/handlers/slogdiscard"
	"miniEvents/internal/models"
	"miniEvents/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testDate := time.Date(2030, 6, 15, 19, 0, 0, 0, time.UTC)
	testInput := models.CreateEventInput{
		Title:       "Onchain Meetup",
		Description: "Monthly builder meetup",
		Date:        testDate,
		Location:    "Lisbon",
	}
	testEvent := &models.Event{
		ID:          "ev-1",
		Title:       "Onchain Meetup",
		Description: "Monthly builder meetup",
		Date:        testDate,
		Location:    "Lisbon",
		CreatorFid:  42,
		CreatorName: "alice",
		Attendees:   []int64{},
		CreatedAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	validBody := `{
		"title": "Onchain Meetup",
		"description": "Monthly builder meetup",
		"date": "2030-06-15T19:00:00Z",
		"location": "Lisbon",
		"creatorFid": 42,
		"creatorName": "alice"
	}`

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.EventCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.Anything, testInput, int64(42), "alice").
					Return(testEvent, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"success":true`)
				assert.Contains(t, body, `"id":"ev-1"`)
				assert.Contains(t, body, `"attendees":[]`)
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"failed to decode request"}`,
		},
		{
			name: "Missing title",
			requestBody: `{
				"description": "Monthly builder meetup",
				"date": "2030-06-15T19:00:00Z",
				"location": "Lisbon",
				"creatorFid": 42
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"success":false`)
				assert.Contains(t, body, "Title")
			},
		},
		{
			name: "Missing creatorFid",
			requestBody: `{
				"title": "Onchain Meetup",
				"description": "Monthly builder meetup",
				"date": "2030-06-15T19:00:00Z",
				"location": "Lisbon"
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"success":false`)
				assert.Contains(t, body, "CreatorFid")
			},
		},
		{
			name: "Negative maxAttendees",
			requestBody: `{
				"title": "Onchain Meetup",
				"description": "Monthly builder meetup",
				"date": "2030-06-15T19:00:00Z",
				"location": "Lisbon",
				"maxAttendees": -5,
				"creatorFid": 42
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"success":false`)
				assert.Contains(t, body, "MaxAttendees")
			},
		},
		{
			name:        "Past date rejected by service",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.Anything, testInput, int64(42), "alice").
					Return(nil, fmt.Errorf("%w: event date must be in the future", service.ErrValidation))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"validation error: event date must be in the future"}`,
		},
		{
			name:        "Internal server error",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.Anything, testInput, int64(42), "alice").
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"message":"failed to create event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewEventCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

func TestResponseOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	event := &models.Event{ID: "ev-9", Title: "Demo", Attendees: []int64{}}

	responseOK(rr, req, event)

	assert.Equal(t, http.StatusOK, rr.Code)

	var actual EventResponse
	err := json.Unmarshal(rr.Body.Bytes(), &actual)
	require.NoError(t, err)

	assert.True(t, actual.Success)
	assert.Equal(t, "", actual.Message)
	require.NotNil(t, actual.Event)
	assert.Equal(t, "ev-9", actual.Event.ID)
}
