package deleteTicket

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ticketGate/internal/http-server/handlers/ticket/deleteTicket/mocks"
	"ticketGate/internal/lib/logger/handlers/slogdiscard"
	"ticketGate/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteTicketHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.TicketDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			url:  "/ticket/12",
			mockSetup: func(m *mocks.TicketDeleter) {
				m.On("DeleteTicket", int64(12)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name: "Ticket not found",
			url:  "/ticket/99",
			mockSetup: func(m *mocks.TicketDeleter) {
				m.On("DeleteTicket", int64(99)).Return(storage.ErrTicketNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"ticket not found"}`,
		},
		{
			name:           "Bad ticket id",
			url:            "/ticket/abc",
			mockSetup:      func(m *mocks.TicketDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid ticket id format"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockTickets := mocks.NewTicketDeleter(t)
			tc.mockSetup(mockTickets)

			router := chi.NewRouter()
			router.Delete("/ticket/{ticketId}", New(logger, mockTickets))

			req, err := http.NewRequest("DELETE", tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
