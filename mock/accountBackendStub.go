package mock

import (
	"context"

	"github.com/AlexZinkM/evm-wallet/internal/model"
)

// AccountBackendStub -
type AccountBackendStub struct {
	SignUpCalled      func(ctx context.Context, email, password string) (*model.Account, error)
	SignInCalled      func(ctx context.Context, email, password string) (*model.Account, error)
	RefreshCalled     func(ctx context.Context) (*model.Account, error)
	SetUsernameCalled func(ctx context.Context, username string) (*model.Account, error)
	SignOutCalled     func(ctx context.Context) error
}

// SignUp -
func (as *AccountBackendStub) SignUp(ctx context.Context, email, password string) (*model.Account, error) {
	if as.SignUpCalled != nil {
		return as.SignUpCalled(ctx, email, password)
	}

	return &model.Account{UserID: "user-1", Email: email}, nil
}

// SignIn -
func (as *AccountBackendStub) SignIn(ctx context.Context, email, password string) (*model.Account, error) {
	if as.SignInCalled != nil {
		return as.SignInCalled(ctx, email, password)
	}

	return &model.Account{UserID: "user-1", Email: email, EmailVerified: true}, nil
}

// Refresh -
func (as *AccountBackendStub) Refresh(ctx context.Context) (*model.Account, error) {
	if as.RefreshCalled != nil {
		return as.RefreshCalled(ctx)
	}

	return &model.Account{UserID: "user-1", EmailVerified: true}, nil
}

// SetUsername -
func (as *AccountBackendStub) SetUsername(ctx context.Context, username string) (*model.Account, error) {
	if as.SetUsernameCalled != nil {
		return as.SetUsernameCalled(ctx, username)
	}

	return &model.Account{UserID: "user-1", EmailVerified: true, Username: username}, nil
}

// SignOut -
func (as *AccountBackendStub) SignOut(ctx context.Context) error {
	if as.SignOutCalled != nil {
		return as.SignOutCalled(ctx)
	}

	return nil
}

// IsInterfaceNil -
func (as *AccountBackendStub) IsInterfaceNil() bool {
	return as == nil
}
