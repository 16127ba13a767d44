package getAllEvents

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticketGate/internal/http-server/handlers/event/getAllEvents/mocks"
	"ticketGate/internal/http-server/middleware/auth"
	"ticketGate/internal/lib/logger/handlers/slogdiscard"
	"ticketGate/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.EventLister)
		expectedStatus int
		expectedTotal  int
		expectedCount  int
	}{
		{
			name: "Defaults",
			url:  "/events",
			mockSetup: func(m *mocks.EventLister) {
				m.On("ListEvents", int64(42), 1, 10).
					Return([]models.Event{{ID: 1, OwnerID: 42, Title: "A"}}, 1, nil)
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  1,
			expectedCount:  1,
		},
		{
			name: "Second page carries full total",
			url:  "/events?page=2&limit=10",
			mockSetup: func(m *mocks.EventLister) {
				events := make([]models.Event, 10)
				for i := range events {
					events[i] = models.Event{ID: int64(11 + i), OwnerID: 42}
				}
				m.On("ListEvents", int64(42), 2, 10).Return(events, 25, nil)
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  25,
			expectedCount:  10,
		},
		{
			name: "Bad pagination params fall back to defaults",
			url:  "/events?page=-3&limit=zero",
			mockSetup: func(m *mocks.EventLister) {
				m.On("ListEvents", int64(42), 1, 10).Return([]models.Event{}, 0, nil)
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  0,
			expectedCount:  0,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockEvents := mocks.NewEventLister(t)
			tc.mockSetup(mockEvents)

			handler := New(logger, mockEvents)

			req, err := http.NewRequest("GET", tc.url, nil)
			require.NoError(t, err)
			req = req.WithContext(auth.WithUserID(req.Context(), 42))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, tc.expectedStatus, rr.Code)

			var resp EventsResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

			assert.Equal(t, "OK", resp.Status)
			assert.Equal(t, tc.expectedTotal, resp.TotalEvents)
			assert.Len(t, resp.Events, tc.expectedCount)
		})
	}
}

func TestGetAllEventsStorageError(t *testing.T) {
	t.Parallel()

	mockEvents := mocks.NewEventLister(t)
	mockEvents.On("ListEvents", int64(42), 1, 10).Return(nil, 0, errors.New("database error"))

	handler := New(slogdiscard.NewDiscardLogger(), mockEvents)

	req := httptest.NewRequest("GET", "/events", nil)
	req = req.WithContext(auth.WithUserID(req.Context(), 42))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"status":"Error","error":"failed to get events"}`, rr.Body.String())
}
