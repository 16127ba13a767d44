package signup

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticketGate/internal/http-server/handlers/user/signup/mocks"
	"ticketGate/internal/lib/logger/handlers/slogdiscard"
	"ticketGate/internal/models"
	"ticketGate/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSignupHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.UserCreator)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"email":"org@example.com","username":"org","password":"hunter22"}`,
			mockSetup: func(m *mocks.UserCreator) {
				m.On("CreateUser", "org@example.com", "org", mock.MatchedBy(func(hash string) bool {
					return bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter22")) == nil
				})).Return(int64(11), nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"OK","user_id":11}`, body)
			},
		},
		{
			name:        "Duplicate email returns existing user id",
			requestBody: `{"email":"org@example.com","username":"org","password":"hunter22"}`,
			mockSetup: func(m *mocks.UserCreator) {
				m.On("CreateUser", "org@example.com", "org", mock.AnythingOfType("string")).
					Return(int64(0), storage.ErrEmailTaken)
				m.On("GetUserByEmail", "org@example.com").
					Return(&models.User{ID: 11, Email: "org@example.com"}, nil)
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"email already exists","user_id":11}`, body)
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `not json`,
			mockSetup:      func(m *mocks.UserCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"failed to decode request"}`, body)
			},
		},
		{
			name:           "Missing email",
			requestBody:    `{"username":"org","password":"hunter22"}`,
			mockSetup:      func(m *mocks.UserCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Email")
			},
		},
		{
			name:           "Bad email format",
			requestBody:    `{"email":"nope","username":"org","password":"hunter22"}`,
			mockSetup:      func(m *mocks.UserCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Email")
			},
		},
		{
			name:        "Storage error",
			requestBody: `{"email":"org@example.com","username":"org","password":"hunter22"}`,
			mockSetup: func(m *mocks.UserCreator) {
				m.On("CreateUser", "org@example.com", "org", mock.AnythingOfType("string")).
					Return(int64(0), errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"failed to create user"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUsers := mocks.NewUserCreator(t)
			tc.mockSetup(mockUsers)

			handler := New(logger, mockUsers)

			req, err := http.NewRequest("POST", "/signup", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			tc.checkBody(t, rr.Body.String())
		})
	}
}

func TestSignupNeverStoresPlaintext(t *testing.T) {
	t.Parallel()

	mockUsers := mocks.NewUserCreator(t)

	var storedHash string
	mockUsers.On("CreateUser", "org@example.com", "org", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { storedHash = args.String(2) }).
		Return(int64(1), nil)

	handler := New(slogdiscard.NewDiscardLogger(), mockUsers)

	req := httptest.NewRequest("POST", "/signup",
		bytes.NewBufferString(`{"email":"org@example.com","username":"org","password":"hunter22"}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.NotEqual(t, "hunter22", storedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("hunter22")))

	var resp SignupResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "OK", resp.Status)
	assert.Equal(t, int64(1), resp.UserID)
}
