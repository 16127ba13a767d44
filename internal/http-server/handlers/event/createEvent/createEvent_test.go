package createEvent

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticketGate/internal/http-server/handlers/event/createEvent/mocks"
	"ticketGate/internal/http-server/middleware/auth"
	"ticketGate/internal/lib/logger/handlers/slogdiscard"
	"ticketGate/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		userID         int64
		mockSetup      func(m *mocks.EventCreator)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"title":"GopherCon","webhook_url":"https://hooks.example.com/scan"}`,
			userID:      42,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", int64(42), "GopherCon", "https://hooks.example.com/scan").
					Return(&models.Event{ID: 1, OwnerID: 42, Title: "GopherCon", WebhookURL: "https://hooks.example.com/scan"}, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"title":"GopherCon"`)
				assert.Contains(t, body, `"owner_id":42`)
			},
		},
		{
			name:        "No webhook",
			requestBody: `{"title":"Meetup"}`,
			userID:      42,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", int64(42), "Meetup", "").
					Return(&models.Event{ID: 2, OwnerID: 42, Title: "Meetup"}, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.NotContains(t, body, "webhook_url")
			},
		},
		{
			name:           "Missing title",
			requestBody:    `{"webhook_url":"https://hooks.example.com/scan"}`,
			userID:         42,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Title")
			},
		},
		{
			name:           "Bad webhook URL",
			requestBody:    `{"title":"GopherCon","webhook_url":"not a url"}`,
			userID:         42,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "WebhookURL")
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			userID:         42,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"failed to decode request"}`, body)
			},
		},
		{
			name:        "Storage error",
			requestBody: `{"title":"GopherCon"}`,
			userID:      42,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", int64(42), "GopherCon", "").
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"failed to add event"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockEvents := mocks.NewEventCreator(t)
			tc.mockSetup(mockEvents)

			handler := New(logger, mockEvents)

			req, err := http.NewRequest("POST", "/event", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)
			req = req.WithContext(auth.WithUserID(req.Context(), tc.userID))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			tc.checkBody(t, rr.Body.String())
		})
	}
}

func TestCreateEventNoAuthContext(t *testing.T) {
	t.Parallel()

	handler := New(slogdiscard.NewDiscardLogger(), mocks.NewEventCreator(t))

	req := httptest.NewRequest("POST", "/event", bytes.NewBufferString(`{"title":"GopherCon"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
