package getAllEvents

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"miniEvents/internal/http-server/handlers/event/getAllEvents/mocks"
	"miniEvents/internal/lib/logger/handlers/slogdiscard"
	"miniEvents/internal/models"
	"miniEvents/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetAllEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testTime := time.Date(2030, 6, 15, 19, 0, 0, 0, time.UTC)
	testEvents := []models.Event{
		{ID: "ev-1", Title: "Onchain Meetup", Date: testTime, CreatorFid: 42, Attendees: []int64{}},
		{ID: "ev-2", Title: "Frames Workshop", Date: testTime.Add(24 * time.Hour), CreatorFid: 7, Attendees: []int64{42}},
	}

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.EventsLister)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success without filter",
			url:  "/events",
			mockSetup: func(m *mocks.EventsLister) {
				m.On("ListEvents", mock.Anything, service.ListFilter{}).Return(testEvents, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp EventsResponse
				err := json.Unmarshal([]byte(body), &resp)
				require.NoError(t, err)

				assert.True(t, resp.Success)
				require.Len(t, resp.Events, 2)
				assert.Equal(t, "ev-1", resp.Events[0].ID)
				assert.Equal(t, "ev-2", resp.Events[1].ID)
			},
		},
		{
			name: "Upcoming filter",
			url:  "/events?filter=upcoming",
			mockSetup: func(m *mocks.EventsLister) {
				m.On("ListEvents", mock.Anything, service.ListFilter{Upcoming: true}).
					Return(testEvents[1:], nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp EventsResponse
				err := json.Unmarshal([]byte(body), &resp)
				require.NoError(t, err)

				assert.True(t, resp.Success)
				require.Len(t, resp.Events, 1)
				assert.Equal(t, "ev-2", resp.Events[0].ID)
			},
		},
		{
			name: "Category filter",
			url:  "/events?category=music",
			mockSetup: func(m *mocks.EventsLister) {
				m.On("ListEvents", mock.Anything, service.ListFilter{Category: "music"}).
					Return([]models.Event{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"success":true`)
				assert.Contains(t, body, `"events":[]`)
			},
		},
		{
			name: "Internal server error",
			url:  "/events",
			mockSetup: func(m *mocks.EventsLister) {
				m.On("ListEvents", mock.Anything, service.ListFilter{}).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"message":"failed to fetch events"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewEventsLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}

			mockLister.AssertExpectations(t)
		})
	}
}
