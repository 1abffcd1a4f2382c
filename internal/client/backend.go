package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/AlexZinkM/evm-wallet/internal/model"
)

const (
	backendTimeout = 15 * time.Second

	profilesTable      = "profiles"
	walletBackupsTable = "wallet_backups"
)

// BackendClient is a client for the hosted backend (Supabase REST and auth API).
// It keeps the session of the signed-in user, like the browser SDK does.
type BackendClient struct {
	baseURL string
	anonKey string
	client  *http.Client

	mut     sync.RWMutex
	account *model.Account
}

// NewBackendClient creates a new backend client
func NewBackendClient(baseURL, anonKey string) (*BackendClient, error) {
	if baseURL == "" {
		return nil, ErrBackendNotConfigured
	}
	return &BackendClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		client: &http.Client{
			Timeout: backendTimeout,
		},
	}, nil
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authUser struct {
	ID               string  `json:"id"`
	Email            string  `json:"email"`
	EmailConfirmedAt *string `json:"email_confirmed_at"`
}

// authResponse covers both the session answer and the bare user answer
// returned by signup when email confirmation is pending
type authResponse struct {
	AccessToken string    `json:"access_token"`
	User        *authUser `json:"user"`
	authUser
}

func (r *authResponse) user() *authUser {
	if r.User != nil {
		return r.User
	}
	return &r.authUser
}

type profileRow struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type backupRow struct {
	UserID    string `json:"user_id"`
	Keystore  string `json:"keystore"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// SignUp registers a new account. Until the email is confirmed there is usually no session.
func (c *BackendClient) SignUp(ctx context.Context, email, password string) (*model.Account, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/v1/signup", nil, credentials{email, password}, "", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to sign up: %w", err)
	}
	return c.storeSession(ctx, &resp)
}

// SignIn exchanges email and password for a session
func (c *BackendClient) SignIn(ctx context.Context, email, password string) (*model.Account, error) {
	q := url.Values{"grant_type": {"password"}}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/v1/token", q, credentials{email, password}, "", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to sign in: %w", err)
	}
	return c.storeSession(ctx, &resp)
}

// Refresh re-reads the signed-in user, picking up a confirmed email
func (c *BackendClient) Refresh(ctx context.Context) (*model.Account, error) {
	token, err := c.token()
	if err != nil {
		return nil, err
	}
	var u authUser
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", nil, nil, token, nil, &u); err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return c.storeSession(ctx, &authResponse{AccessToken: token, User: &u})
}

// SetUsername upserts the profile row of the signed-in user
func (c *BackendClient) SetUsername(ctx context.Context, username string) (*model.Account, error) {
	acct := c.Account()
	if acct == nil {
		return nil, ErrNotSignedIn
	}
	row := profileRow{ID: acct.UserID, Username: username}
	headers := map[string]string{"Prefer": "resolution=merge-duplicates"}
	if err := c.do(ctx, http.MethodPost, "/rest/v1/"+profilesTable, nil, row, acct.AccessToken, headers, nil); err != nil {
		return nil, fmt.Errorf("failed to save username: %w", err)
	}

	c.mut.Lock()
	defer c.mut.Unlock()
	if c.account == nil || c.account.UserID != acct.UserID {
		return nil, ErrNotSignedIn
	}
	c.account.Username = username
	out := *c.account
	return &out, nil
}

// SignOut revokes the session and forgets it locally, even when the revoke call fails
func (c *BackendClient) SignOut(ctx context.Context) error {
	token, err := c.token()
	if err != nil {
		// nothing to revoke
		return nil
	}

	c.mut.Lock()
	c.account = nil
	c.mut.Unlock()

	if err := c.do(ctx, http.MethodPost, "/auth/v1/logout", nil, nil, token, nil, nil); err != nil {
		return fmt.Errorf("failed to sign out: %w", err)
	}
	return nil
}

// Account returns a copy of the signed-in account or nil
func (c *BackendClient) Account() *model.Account {
	c.mut.RLock()
	defer c.mut.RUnlock()

	if c.account == nil {
		return nil
	}
	out := *c.account
	return &out
}

// PutBackup upserts the keystore blob of accountID
func (c *BackendClient) PutBackup(ctx context.Context, accountID string, blob []byte) error {
	token, err := c.token()
	if err != nil {
		return err
	}
	row := backupRow{
		UserID:    accountID,
		Keystore:  string(blob),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	headers := map[string]string{"Prefer": "resolution=merge-duplicates"}
	if err := c.do(ctx, http.MethodPost, "/rest/v1/"+walletBackupsTable, nil, row, token, headers, nil); err != nil {
		return fmt.Errorf("failed to save backup: %w", err)
	}
	return nil
}

// GetBackup reads the keystore blob of accountID
func (c *BackendClient) GetBackup(ctx context.Context, accountID string) ([]byte, bool, error) {
	token, err := c.token()
	if err != nil {
		return nil, false, err
	}
	q := url.Values{
		"user_id": {"eq." + accountID},
		"select":  {"keystore"},
	}
	var rows []backupRow
	if err := c.do(ctx, http.MethodGet, "/rest/v1/"+walletBackupsTable, q, nil, token, nil, &rows); err != nil {
		return nil, false, fmt.Errorf("failed to get backup: %w", err)
	}
	if len(rows) == 0 || rows[0].Keystore == "" {
		return nil, false, nil
	}
	return []byte(rows[0].Keystore), true, nil
}

func (c *BackendClient) username(ctx context.Context, userID, token string) (string, error) {
	q := url.Values{
		"id":     {"eq." + userID},
		"select": {"username"},
	}
	var rows []profileRow
	if err := c.do(ctx, http.MethodGet, "/rest/v1/"+profilesTable, q, nil, token, nil, &rows); err != nil {
		return "", fmt.Errorf("failed to get profile: %w", err)
	}
	if len(rows) == 0 {
		return "", nil
	}
	return rows[0].Username, nil
}

func (c *BackendClient) storeSession(ctx context.Context, resp *authResponse) (*model.Account, error) {
	u := resp.user()
	acct := &model.Account{
		UserID:        u.ID,
		Email:         u.Email,
		EmailVerified: u.EmailConfirmedAt != nil && *u.EmailConfirmedAt != "",
		AccessToken:   resp.AccessToken,
	}
	if acct.AccessToken != "" {
		username, err := c.username(ctx, acct.UserID, acct.AccessToken)
		if err != nil {
			return nil, err
		}
		acct.Username = username

		c.mut.Lock()
		c.account = acct
		c.mut.Unlock()
	}
	out := *acct
	return &out, nil
}

func (c *BackendClient) token() (string, error) {
	c.mut.RLock()
	defer c.mut.RUnlock()

	if c.account == nil || c.account.AccessToken == "" {
		return "", ErrNotSignedIn
	}
	return c.account.AccessToken, nil
}

func (c *BackendClient) do(ctx context.Context, method, path string, query url.Values, body any, token string, headers map[string]string, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.anonKey)
	if token == "" {
		token = c.anonKey
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorMessage picks the human message out of a GoTrue or PostgREST error body
func errorMessage(r io.Reader) string {
	var body struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
		Error            string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 1<<16)).Decode(&body); err != nil {
		return ""
	}
	for _, s := range []string{body.Msg, body.Message, body.ErrorDescription, body.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}
