package wallet

import (
	"context"
	"strings"

	"github.com/AlexZinkM/evm-wallet/internal/model"
)

// SignUp registers an account with the hosted backend. When the backend asks for
// email confirmation first, the session stays signed out.
func (s *Session) SignUp(ctx context.Context, email, password string) (*model.Account, error) {
	if s.accounts == nil {
		return nil, ErrAccountsDisabled
	}
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		s.setStatus(StatusError, "Enter email + password.")
		return nil, ErrMissingCredentials
	}
	if len(password) < MinPasswordLength {
		s.setStatus(StatusError, "Password must be at least 6 characters.")
		return nil, ErrPasswordTooShort
	}

	acct, err := s.accounts.SignUp(ctx, email, password)
	if err != nil {
		s.setStatus(StatusError, "Sign up failed: "+err.Error())
		return nil, categorize(ErrBackend, err)
	}

	if acct.AccessToken == "" {
		s.setStatus(StatusInfo, "Check your email to confirm the account, then sign in.")
		return acct, nil
	}
	s.setAccount(acct)
	s.setStatus(StatusSuccess, "Account created.")
	return acct, nil
}

// SignIn starts an account session
func (s *Session) SignIn(ctx context.Context, email, password string) (*model.Account, error) {
	if s.accounts == nil {
		return nil, ErrAccountsDisabled
	}
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		s.setStatus(StatusError, "Enter email + password.")
		return nil, ErrMissingCredentials
	}

	acct, err := s.accounts.SignIn(ctx, email, password)
	if err != nil {
		s.setStatus(StatusError, "Sign in failed: "+err.Error())
		return nil, categorize(ErrBackend, err)
	}

	s.setAccount(acct)
	log.Infow("account signed in", "session", s.id, "account", acct.UserID)
	if !acct.Ready() {
		s.setStatus(StatusInfo, "Signed in. Verify your email and choose a username to back up a wallet.")
		return acct, nil
	}
	s.setStatus(StatusSuccess, "Signed in as "+acct.Email+".")
	return acct, nil
}

// RefreshAccount re-reads the signed-in account, picking up a confirmed email
func (s *Session) RefreshAccount(ctx context.Context) (*model.Account, error) {
	if s.accounts == nil {
		return nil, ErrAccountsDisabled
	}
	if s.currentAccount() == nil {
		return nil, ErrNotSignedIn
	}

	acct, err := s.accounts.Refresh(ctx)
	if err != nil {
		s.setStatus(StatusError, "Account refresh failed: "+err.Error())
		return nil, categorize(ErrBackend, err)
	}
	s.setAccount(acct)
	return acct, nil
}

// SetUsername saves the username of the signed-in account
func (s *Session) SetUsername(ctx context.Context, username string) (*model.Account, error) {
	if s.accounts == nil {
		return nil, ErrAccountsDisabled
	}
	if s.currentAccount() == nil {
		s.setStatus(StatusError, "Sign in first.")
		return nil, ErrNotSignedIn
	}
	username = strings.TrimSpace(username)
	if username == "" {
		s.setStatus(StatusError, "Enter a username.")
		return nil, ErrMissingUsername
	}

	acct, err := s.accounts.SetUsername(ctx, username)
	if err != nil {
		s.setStatus(StatusError, "Saving username failed: "+err.Error())
		return nil, categorize(ErrBackend, err)
	}
	s.setAccount(acct)
	s.setStatus(StatusSuccess, "Username saved.")
	return acct, nil
}

// SignOut ends the account session. The wallet on this device stays as it is.
func (s *Session) SignOut(ctx context.Context) error {
	if s.accounts == nil {
		return ErrAccountsDisabled
	}

	err := s.accounts.SignOut(ctx)
	s.setAccount(nil)
	if err != nil {
		s.setStatus(StatusError, "Signed out locally, but the backend call failed: "+err.Error())
		return categorize(ErrBackend, err)
	}
	s.setStatus(StatusInfo, "Signed out.")
	return nil
}

func (s *Session) currentAccount() *model.Account {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	return s.account
}

func (s *Session) setAccount(acct *model.Account) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if acct == nil {
		s.account = nil
		return
	}
	a := *acct
	s.account = &a
}
