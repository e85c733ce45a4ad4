package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serviceKey = "service-role-key"

// fakeGoTrue emulates the subset of the GoTrue API the provider calls.
func fakeGoTrue(t *testing.T, userID uuid.UUID) *httptest.Server {
	t.Helper()

	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
	user := map[string]any{"id": userID.String(), "email": "alice@example.com", "role": "authenticated"}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/v1/token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "Bearer "+serviceKey, r.Header.Get("Authorization"))

		var c credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&c))
		if c.Password != "hunter22" {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":             "invalid_grant",
				"error_description": "Invalid login credentials",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token":  "user-token",
			"token_type":    "bearer",
			"expires_in":    3600,
			"refresh_token": "refresh",
			"user":          user,
		})
	})
	mux.HandleFunc("POST /auth/v1/signup", func(w http.ResponseWriter, r *http.Request) {
		var c credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&c))
		switch c.Email {
		case "taken@example.com":
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"code": 422, "msg": "User already registered"})
		case "confirm@example.com":
			writeJSON(w, http.StatusOK, user)
		default:
			writeJSON(w, http.StatusOK, map[string]any{"access_token": "t", "user": user})
		}
	})
	mux.HandleFunc("GET /auth/v1/user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer user-token" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"msg": "invalid JWT"})
			return
		}
		writeJSON(w, http.StatusOK, user)
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") != serviceKey {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "No API key found in request"})
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSupabaseProvider_Authenticate(t *testing.T) {
	id := uuid.New()
	p := NewSupabaseProvider(fakeGoTrue(t, id).URL, serviceKey, 5*time.Second)

	session, err := p.Authenticate(context.Background(), "alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "user-token", session.AccessToken)
	require.NotNil(t, session.User)
	assert.Equal(t, id, session.User.ID)

	_, err = p.Authenticate(context.Background(), "alice@example.com", "nope")
	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, http.StatusBadRequest, authErr.Status)
	assert.Equal(t, "Invalid login credentials", authErr.Message)
}

func TestSupabaseProvider_CreateAccount(t *testing.T) {
	id := uuid.New()
	p := NewSupabaseProvider(fakeGoTrue(t, id).URL, serviceKey, 5*time.Second)

	for _, email := range []string{"new@example.com", "confirm@example.com"} {
		account, err := p.CreateAccount(context.Background(), email, "hunter22")
		require.NoError(t, err, email)
		assert.Equal(t, id, account.ID, email)
	}

	_, err := p.CreateAccount(context.Background(), "taken@example.com", "hunter22")
	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, "User already registered", authErr.Message)
}

func TestSupabaseProvider_VerifyToken(t *testing.T) {
	id := uuid.New()
	p := NewSupabaseProvider(fakeGoTrue(t, id).URL, serviceKey, 5*time.Second)

	caller, err := p.VerifyToken(context.Background(), "user-token")
	require.NoError(t, err)
	assert.Equal(t, Caller{ID: id, Email: "alice@example.com"}, caller)

	_, err = p.VerifyToken(context.Background(), "forged")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSupabaseProvider_UnreachableGatewayIsUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	p := NewSupabaseProvider(url, serviceKey, time.Second)
	_, err := p.VerifyToken(context.Background(), "user-token")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`{"msg":"a"}`, "a"},
		{`{"error":"invalid_grant","error_description":"b"}`, "b"},
		{`{"message":"c"}`, "c"},
		{`{"error":"d"}`, "d"},
		{`<html>`, ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, errorMessage([]byte(tc.raw)), tc.raw)
	}
}
