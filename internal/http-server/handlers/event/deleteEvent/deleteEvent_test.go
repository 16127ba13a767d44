package deleteEvent

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ticketGate/internal/http-server/handlers/event/deleteEvent/mocks"
	"ticketGate/internal/http-server/middleware/auth"
	"ticketGate/internal/lib/logger/handlers/slogdiscard"
	"ticketGate/internal/models"
	"ticketGate/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		userID         int64
		mockSetup      func(m *mocks.EventDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Success",
			url:    "/event/5",
			userID: 42,
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("GetEvent", int64(5)).Return(&models.Event{ID: 5, OwnerID: 42, Title: "GopherCon"}, nil)
				m.On("DeleteEvent", int64(5)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:   "Non-owner forbidden",
			url:    "/event/5",
			userID: 7,
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("GetEvent", int64(5)).Return(&models.Event{ID: 5, OwnerID: 42}, nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"you are not the owner of this event"}`,
		},
		{
			name:   "Event not found",
			url:    "/event/99",
			userID: 42,
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("GetEvent", int64(99)).Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:           "Bad event id",
			url:            "/event/abc",
			userID:         42,
			mockSetup:      func(m *mocks.EventDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockEvents := mocks.NewEventDeleter(t)
			tc.mockSetup(mockEvents)

			router := chi.NewRouter()
			router.Delete("/event/{eventId}", New(logger, mockEvents))

			req, err := http.NewRequest("DELETE", tc.url, nil)
			require.NoError(t, err)
			req = req.WithContext(auth.WithUserID(req.Context(), tc.userID))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestDeleteEventNonOwnerKeepsEvent(t *testing.T) {
	t.Parallel()

	mockEvents := mocks.NewEventDeleter(t)
	mockEvents.On("GetEvent", int64(5)).Return(&models.Event{ID: 5, OwnerID: 42}, nil)

	router := chi.NewRouter()
	router.Delete("/event/{eventId}", New(slogdiscard.NewDiscardLogger(), mockEvents))

	req := httptest.NewRequest("DELETE", "/event/5", nil)
	req = req.WithContext(auth.WithUserID(req.Context(), 7))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusForbidden, rr.Code)
	mockEvents.AssertNotCalled(t, "DeleteEvent", int64(5))
}
