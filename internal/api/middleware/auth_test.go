package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manodhithyaa-cs/mindful-companion/internal/api/middleware"
	"github.com/manodhithyaa-cs/mindful-companion/internal/config"
	"github.com/manodhithyaa-cs/mindful-companion/internal/service/auth"
)

func newTestJWTService(t *testing.T) auth.JWTService {
	t.Helper()
	svc, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:                   "test-secret-key-thats-at-least-32-chars",
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 10080,
	})
	require.NoError(t, err)
	return svc
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	jwtService := newTestJWTService(t)
	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	var gotUserID uuid.UUID
	var gotOK bool
	protected := authMiddleware.Authenticate(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUserID, gotOK = middleware.GetUserID(r)
			w.WriteHeader(http.StatusOK)
		}),
	)

	t.Run("valid token", func(t *testing.T) {
		userID := uuid.New()
		token, err := jwtService.GenerateToken(context.Background(), userID)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/journal", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		protected.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, gotOK)
		assert.Equal(t, userID, gotUserID)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/journal", nil)
		w := httptest.NewRecorder()
		protected.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/journal", nil)
		req.Header.Set("Authorization", "Token abc123")
		w := httptest.NewRecorder()
		protected.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/journal", nil)
		req.Header.Set("Authorization", "Bearer not-a-real-token")
		w := httptest.NewRecorder()
		protected.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("refresh token rejected on protected route", func(t *testing.T) {
		token, err := jwtService.GenerateRefreshToken(context.Background(), uuid.New())
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/journal", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		protected.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
