package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedUserID int64
	}{
		{
			name:           "valid user id",
			header:         "42",
			expectedStatus: http.StatusOK,
			expectedUserID: 42,
		},
		{
			name:           "missing header",
			header:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "non-numeric header",
			header:         "abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "non-positive user id",
			header:         "0",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				userID, ok := UserIDFromContext(r.Context())
				require.True(t, ok)
				gotUserID = userID
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/treadmills", nil)
			if tt.header != "" {
				req.Header.Set(UserIDHeader, tt.header)
			}

			rec := httptest.NewRecorder()
			Auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedUserID, gotUserID)
			}
		})
	}
}

func TestUserIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := UserIDFromContext(req.Context())
	assert.False(t, ok)
}
