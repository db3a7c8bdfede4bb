package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushihentaime/mediumclone/internal/userservice"
)

func newAuthTestApplication(t *testing.T) *application {
	t.Helper()

	return &application{
		config:      &Config{Environment: "test", JWTSecret: "test-secret"},
		logger:      slogDiscard(),
		userService: userservice.NewUserService(nil, nil, "test-secret"),
	}
}

func issueTestToken(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()

	maker := userservice.NewTokenMaker(secret, ttl)
	token, err := maker.Issue(&userservice.User{ID: 1, Name: "testuser", Email: "test@example.com"})
	require.NoError(t, err)

	return token
}

func TestAuthenticate(t *testing.T) {
	app := newAuthTestApplication(t)

	tests := []struct {
		name        string
		authHeader  string
		wantCode    int
		wantMessage string
		wantUser    bool
	}{
		{
			name:       "no header passes through anonymously",
			authHeader: "",
			wantCode:   http.StatusOK,
			wantUser:   false,
		},
		{
			name:        "header without bearer prefix",
			authHeader:  "Token abc123",
			wantCode:    http.StatusUnauthorized,
			wantMessage: "Unauthorized: Invalid token format",
		},
		{
			name:        "bearer prefix without a token",
			authHeader:  "Bearer",
			wantCode:    http.StatusUnauthorized,
			wantMessage: "Unauthorized: Invalid token format",
		},
		{
			name:        "garbage token",
			authHeader:  "Bearer not-a-jwt",
			wantCode:    http.StatusUnauthorized,
			wantMessage: "Unauthorized: Invalid token",
		},
		{
			name:        "token signed with a different secret",
			authHeader:  "Bearer " + issueTestToken(t, "other-secret", time.Hour),
			wantCode:    http.StatusUnauthorized,
			wantMessage: "Unauthorized: Invalid token",
		},
		{
			name:        "expired token",
			authHeader:  "Bearer " + issueTestToken(t, "test-secret", -time.Hour),
			wantCode:    http.StatusUnauthorized,
			wantMessage: "Unauthorized: Invalid token",
		},
		{
			name:       "valid token attaches the user",
			authHeader: "Bearer " + issueTestToken(t, "test-secret", time.Hour),
			wantCode:   http.StatusOK,
			wantUser:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser *userservice.TokenPayload
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser = app.getUserContext(r)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/allblogs", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			app.authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantMessage != "" {
				var payload map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
				assert.Equal(t, tt.wantMessage, payload["message"])
			}

			if tt.wantUser {
				require.NotNil(t, gotUser)
				assert.Equal(t, "test@example.com", gotUser.Email)
			} else if rec.Code == http.StatusOK {
				assert.Nil(t, gotUser)
			}
		})
	}
}

func TestRequireAuthUser(t *testing.T) {
	app := newAuthTestApplication(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("rejects anonymous requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/like", nil)
		rec := httptest.NewRecorder()

		app.requireAuthUser(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, "Unauthorized: Missing token", payload["message"])
	})

	t.Run("admits authenticated requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/like", nil)
		req = app.createUserContext(req, &userservice.TokenPayload{ID: 1, Name: "testuser", Email: "test@example.com"})
		rec := httptest.NewRecorder()

		app.requireAuthUser(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
