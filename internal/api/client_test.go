package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	session, err := OpenSession(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	require.NoError(t, session.SetTokens("access-token", "refresh-token"))
	return session
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *Session) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	session := newTestSession(t)
	client, err := NewClient(server.URL, session)
	require.NoError(t, err)
	return client, session
}

func TestClient_SendsBearerToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))

	_, err := client.Transactions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer access-token", gotAuth)
}

func TestClient_EchoesCSRFTokenOnMutations(t *testing.T) {
	var gotCSRF string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "csrf-123"})
			_, _ = w.Write([]byte(`[]`))
		case http.MethodPost:
			gotCSRF = r.Header.Get("X-CSRFToken")
			_, _ = w.Write([]byte(`{}`))
		}
	}))

	ctx := context.Background()

	// The GET is what plants the cookie, mirroring a page load before
	// any mutation.
	_, err := client.Transactions(ctx)
	require.NoError(t, err)

	err = client.CreateBudget(ctx, "Groceries", decimal.NewFromInt(500))
	require.NoError(t, err)
	assert.Equal(t, "csrf-123", gotCSRF)
}

func TestClient_Unauthorized_ClearsSessionOnce(t *testing.T) {
	client, session := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	ctx := context.Background()

	_, err := client.Transactions(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, session.Authenticated())
	assert.Empty(t, session.RefreshToken())

	// A second 401 still reports expiry but has nothing left to clear.
	_, err = client.Budgets(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, session.Clear())
}

func TestClient_Unauthorized_LoginEndpointExempt(t *testing.T) {
	client, session := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"No active account found"}`))
	}))

	err := client.Login(context.Background(), "sam", "wrong-password")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.NotErrorIs(t, err, ErrSessionExpired)
	// Bad credentials must not wipe the previously stored session.
	assert.True(t, session.Authenticated())
}

func TestClient_Logout_ClearsSessionEvenOnServerError(t *testing.T) {
	client, session := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := client.Logout(context.Background())
	assert.Error(t, err)
	assert.False(t, session.Authenticated())
}

func TestClient_NonOKReadsErrorMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"category is required"}`))
	}))

	err := client.CreateBudget(context.Background(), "", decimal.Zero)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "category is required", apiErr.Message)
}

func TestSession_ClearRemovesStateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	session, err := OpenSession(path)
	require.NoError(t, err)
	require.NoError(t, session.SetTokens("a", "r"))
	require.FileExists(t, path)

	assert.True(t, session.Clear())
	assert.False(t, session.Clear(), "second clear must be a no-op")
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestOpenSession_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	first, err := OpenSession(path)
	require.NoError(t, err)
	assert.False(t, first.Authenticated())
	require.NoError(t, first.SetTokens("access", "refresh"))

	second, err := OpenSession(path)
	require.NoError(t, err)
	assert.Equal(t, "access", second.AccessToken())
	assert.Equal(t, "refresh", second.RefreshToken())
}
