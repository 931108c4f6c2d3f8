package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/mocks"
	"github.com/phrazzld/todo-api/internal/service/auth"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name           string
		authHeader     string
		validateErr    error
		claims         *auth.Claims
		expectedStatus int
		expectedUserID uuid.UUID
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer valid-token",
			validateErr:    nil,
			claims:         &auth.Claims{UserID: userID},
			expectedStatus: http.StatusOK,
			expectedUserID: userID,
		},
		{
			name:           "missing auth header",
			authHeader:     "",
			validateErr:    nil,
			claims:         nil,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid auth format",
			authHeader:     "InvalidFormat",
			validateErr:    nil,
			claims:         nil,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "lowercase bearer prefix",
			authHeader:     "bearer some-token",
			validateErr:    nil,
			claims:         nil,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer expired-token",
			validateErr:    auth.ErrExpiredToken,
			claims:         nil,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token not yet valid",
			authHeader:     "Bearer future-token",
			validateErr:    auth.ErrTokenNotYetValid,
			claims:         nil,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer invalid-token",
			validateErr:    auth.ErrInvalidToken,
			claims:         nil,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService := &mocks.MockJWTService{
				ValidateErr: tt.validateErr,
				Claims:      tt.claims,
			}

			middleware := NewAuthMiddleware(jwtService)

			var capturedUserID uuid.UUID
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				userID, ok := GetUserID(r)
				if ok {
					capturedUserID = userID
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Add("Authorization", tt.authHeader)
			}

			recorder := httptest.NewRecorder()

			middleware.Authenticate(nextHandler).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedUserID, capturedUserID)
			}
		})
	}
}

func TestGetUserID(t *testing.T) {
	t.Parallel()

	testUserID := uuid.New()

	t.Run("context with user ID", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/", nil)
		require.NoError(t, err)
		ctx := context.WithValue(req.Context(), shared.UserIDContextKey, testUserID)
		req = req.WithContext(ctx)

		userID, ok := GetUserID(req)

		assert.True(t, ok)
		assert.Equal(t, testUserID, userID)
	})

	t.Run("context without user ID", func(t *testing.T) {
		req, err := http.NewRequest("GET", "/", nil)
		require.NoError(t, err)

		userID, ok := GetUserID(req)

		assert.False(t, ok)
		assert.Equal(t, uuid.Nil, userID)
	})
}
