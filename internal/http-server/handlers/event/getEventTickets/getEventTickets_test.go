package getEventTickets

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticketGate/internal/http-server/handlers/event/getEventTickets/mocks"
	"ticketGate/internal/http-server/middleware/auth"
	"ticketGate/internal/lib/logger/handlers/slogdiscard"
	"ticketGate/internal/models"
	"ticketGate/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEventTicketsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name            string
		url             string
		userID          int64
		mockSetup       func(m *mocks.EventTicketsProvider)
		expectedStatus  int
		expectedTickets int
		expectedBody    string
	}{
		{
			name:   "Success",
			url:    "/event/5/tickets",
			userID: 42,
			mockSetup: func(m *mocks.EventTicketsProvider) {
				m.On("GetEvent", int64(5)).Return(&models.Event{ID: 5, OwnerID: 42}, nil)
				m.On("ListEventTickets", int64(5)).Return([]models.Ticket{
					{ID: 1, EventID: 5, Name: "Alice"},
					{ID: 2, EventID: 5, Name: "Bob", Scanned: true},
				}, nil)
			},
			expectedStatus:  http.StatusOK,
			expectedTickets: 2,
		},
		{
			name:   "Empty event",
			url:    "/event/5/tickets",
			userID: 42,
			mockSetup: func(m *mocks.EventTicketsProvider) {
				m.On("GetEvent", int64(5)).Return(&models.Event{ID: 5, OwnerID: 42}, nil)
				m.On("ListEventTickets", int64(5)).Return([]models.Ticket{}, nil)
			},
			expectedStatus:  http.StatusOK,
			expectedTickets: 0,
		},
		{
			name:   "Non-owner forbidden",
			url:    "/event/5/tickets",
			userID: 7,
			mockSetup: func(m *mocks.EventTicketsProvider) {
				m.On("GetEvent", int64(5)).Return(&models.Event{ID: 5, OwnerID: 42}, nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"you are not the owner of this event"}`,
		},
		{
			name:   "Event not found",
			url:    "/event/99/tickets",
			userID: 42,
			mockSetup: func(m *mocks.EventTicketsProvider) {
				m.On("GetEvent", int64(99)).Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockEvents := mocks.NewEventTicketsProvider(t)
			tc.mockSetup(mockEvents)

			router := chi.NewRouter()
			router.Get("/event/{eventId}/tickets", New(logger, mockEvents))

			req, err := http.NewRequest("GET", tc.url, nil)
			require.NoError(t, err)
			req = req.WithContext(auth.WithUserID(req.Context(), tc.userID))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
				return
			}

			var resp TicketsResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "OK", resp.Status)
			assert.Len(t, resp.Tickets, tc.expectedTickets)
		})
	}
}
