package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAnonKey = "anon-key"
	testToken   = "user-token"
	testUserID  = "5f0c9a62-7d8e-4b5e-9f4e-0d6c1a2b3c4d"
)

// fakeBackend serves the subset of the hosted REST API the client uses
type fakeBackend struct {
	mut      sync.Mutex
	username string
	backup   string
	prefer   []string
}

func (f *fakeBackend) preferHeaders() []string {
	f.mut.Lock()
	defer f.mut.Unlock()

	return append([]string(nil), f.prefer...)
}

func (f *fakeBackend) setUsername(name string) {
	f.mut.Lock()
	defer f.mut.Unlock()

	f.username = name
}

func (f *fakeBackend) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/auth/v1/signup", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, testAnonKey, r.Header.Get("apikey"))
		// confirmation pending: bare user, no session
		json.NewEncoder(w).Encode(map[string]any{"id": testUserID, "email": "a@b.c"})
	})
	mux.HandleFunc("/auth/v1/token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		var c credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&c))
		if c.Password != "secret1" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error_description": "Invalid login credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": testToken,
			"user":         map[string]any{"id": testUserID, "email": c.Email, "email_confirmed_at": "2024-01-01T00:00:00Z"},
		})
	})
	mux.HandleFunc("/auth/v1/user", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"id": testUserID, "email": "a@b.c", "email_confirmed_at": "2024-01-01T00:00:00Z"})
	})
	mux.HandleFunc("/auth/v1/logout", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/rest/v1/profiles", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		f.mut.Lock()
		defer f.mut.Unlock()

		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "eq."+testUserID, r.URL.Query().Get("id"))
			rows := []profileRow{}
			if f.username != "" {
				rows = append(rows, profileRow{ID: testUserID, Username: f.username})
			}
			json.NewEncoder(w).Encode(rows)
		case http.MethodPost:
			f.prefer = append(f.prefer, r.Header.Get("Prefer"))
			var row profileRow
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&row))
			assert.Equal(t, testUserID, row.ID)
			f.username = row.Username
			w.WriteHeader(http.StatusCreated)
		}
	})
	mux.HandleFunc("/rest/v1/wallet_backups", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		f.mut.Lock()
		defer f.mut.Unlock()

		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "eq."+testUserID, r.URL.Query().Get("user_id"))
			rows := []backupRow{}
			if f.backup != "" {
				rows = append(rows, backupRow{UserID: testUserID, Keystore: f.backup})
			}
			json.NewEncoder(w).Encode(rows)
		case http.MethodPost:
			f.prefer = append(f.prefer, r.Header.Get("Prefer"))
			var row backupRow
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&row))
			assert.Equal(t, testUserID, row.UserID)
			assert.NotEmpty(t, row.UpdatedAt)
			f.backup = row.Keystore
			w.WriteHeader(http.StatusCreated)
		}
	})
	return mux
}

func newTestBackend(t *testing.T) (*BackendClient, *fakeBackend) {
	fb := &fakeBackend{}
	srv := httptest.NewServer(fb.handler(t))
	t.Cleanup(srv.Close)

	c, err := NewBackendClient(srv.URL+"/", testAnonKey)
	require.NoError(t, err)
	return c, fb
}

func TestNewBackendClient_NotConfigured(t *testing.T) {
	t.Parallel()

	c, err := NewBackendClient("", testAnonKey)
	assert.Nil(t, c)
	assert.Equal(t, ErrBackendNotConfigured, err)
}

func TestSignUp_PendingConfirmation(t *testing.T) {
	t.Parallel()

	c, _ := newTestBackend(t)
	acct, err := c.SignUp(context.Background(), "a@b.c", "secret1")
	require.NoError(t, err)
	assert.Equal(t, testUserID, acct.UserID)
	assert.False(t, acct.EmailVerified)
	assert.Empty(t, acct.AccessToken)
	assert.Nil(t, c.Account())
}

func TestSignIn(t *testing.T) {
	t.Parallel()

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestBackend(t)
		_, err := c.SignIn(context.Background(), "a@b.c", "wrong12")
		require.Error(t, err)
		assert.True(t, IsStatusError(err, http.StatusBadRequest))
		assert.Contains(t, err.Error(), "Invalid login credentials")
		assert.Nil(t, c.Account())
	})
	t.Run("session and profile", func(t *testing.T) {
		t.Parallel()

		c, fb := newTestBackend(t)
		fb.setUsername("alice")

		acct, err := c.SignIn(context.Background(), "a@b.c", "secret1")
		require.NoError(t, err)
		assert.True(t, acct.EmailVerified)
		assert.Equal(t, "alice", acct.Username)
		assert.Equal(t, testToken, acct.AccessToken)
		assert.True(t, acct.Ready())

		refreshed, err := c.Refresh(context.Background())
		require.NoError(t, err)
		assert.Equal(t, acct, refreshed)
	})
}

func TestSetUsername(t *testing.T) {
	t.Parallel()

	c, fb := newTestBackend(t)
	_, err := c.SetUsername(context.Background(), "alice")
	assert.Equal(t, ErrNotSignedIn, err)

	_, err = c.SignIn(context.Background(), "a@b.c", "secret1")
	require.NoError(t, err)

	acct, err := c.SetUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", acct.Username)
	assert.Equal(t, "alice", c.Account().Username)
	assert.Equal(t, []string{"resolution=merge-duplicates"}, fb.preferHeaders())
}

func TestBackups(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, fb := newTestBackend(t)

	_, _, err := c.GetBackup(ctx, testUserID)
	assert.Equal(t, ErrNotSignedIn, err)
	assert.Equal(t, ErrNotSignedIn, c.PutBackup(ctx, testUserID, []byte("{}")))

	_, err = c.SignIn(ctx, "a@b.c", "secret1")
	require.NoError(t, err)

	_, found, err := c.GetBackup(ctx, testUserID)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.PutBackup(ctx, testUserID, []byte(`{"version":1}`)))
	require.NoError(t, c.PutBackup(ctx, testUserID, []byte(`{"version":2}`)))

	blob, found, err := c.GetBackup(ctx, testUserID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"version":2}`, string(blob))
	assert.Equal(t, []string{"resolution=merge-duplicates", "resolution=merge-duplicates"}, fb.preferHeaders())
}

func TestSignOut(t *testing.T) {
	t.Parallel()

	c, _ := newTestBackend(t)
	assert.NoError(t, c.SignOut(context.Background()))

	_, err := c.SignIn(context.Background(), "a@b.c", "secret1")
	require.NoError(t, err)
	require.NoError(t, c.SignOut(context.Background()))
	assert.Nil(t, c.Account())
}
