// Package hostshell resolves the identity of the user a chat mini-app shell launched the wallet for.
package hostshell

import (
	"errors"
	"fmt"
	"time"

	"github.com/AlexZinkM/evm-wallet/internal/model"

	initdata "github.com/telegram-mini-apps/init-data-golang"
)

// IdentityProvider yields the host identity, or nil when not launched from a shell
type IdentityProvider interface {
	Identity() (*model.HostIdentity, error)
}

// TelegramProvider reads Telegram WebApp init data.
// With a bot token the data is verified; without one it is trusted as is.
type TelegramProvider struct {
	initData string
	botToken string
	maxAge   time.Duration
}

// NewTelegramProvider creates a provider over raw init data. maxAge of zero disables the age check.
func NewTelegramProvider(initData, botToken string, maxAge time.Duration) *TelegramProvider {
	return &TelegramProvider{
		initData: initData,
		botToken: botToken,
		maxAge:   maxAge,
	}
}

// Identity parses and verifies the init data
func (p *TelegramProvider) Identity() (*model.HostIdentity, error) {
	if p.initData == "" {
		return nil, nil
	}

	if p.botToken != "" {
		if err := initdata.Validate(p.initData, p.botToken, p.maxAge); err != nil {
			return nil, validationError(err)
		}
	}

	data, err := initdata.Parse(p.initData)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInitData, err)
	}
	if data.User.ID == 0 {
		return nil, fmt.Errorf("%w: missing user", ErrInvalidInitData)
	}

	return &model.HostIdentity{
		UserID:    data.User.ID,
		Username:  data.User.Username,
		FirstName: data.User.FirstName,
		LastName:  data.User.LastName,
	}, nil
}

func validationError(err error) error {
	switch {
	case errors.Is(err, initdata.ErrExpired):
		return ErrInitDataExpired
	case errors.Is(err, initdata.ErrSignInvalid), errors.Is(err, initdata.ErrSignMissing):
		return ErrSignatureMismatch
	default:
		return fmt.Errorf("%w: %w", ErrInvalidInitData, err)
	}
}
