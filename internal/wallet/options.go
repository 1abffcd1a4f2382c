package wallet

import (
	"errors"
	"time"

	"github.com/AlexZinkM/evm-wallet/internal/hostshell"
	"github.com/AlexZinkM/evm-wallet/internal/network"
)

// Option is configuration option function for the Session
type Option func(cfg *config) error

// Networks sets the network table. Defaults to the builtin table.
func Networks(selector *network.Selector) Option {
	return func(cfg *config) error {
		cfg.networks = selector
		return nil
	}
}

// DefaultNetwork sets the network the session starts on. Unknown keys fall back
// to the table default.
func DefaultNetwork(key string) Option {
	return func(cfg *config) error {
		cfg.networkKey = key
		return nil
	}
}

// ConfirmTimeout bounds each confirmation wait. Zero means the wait ends only
// with the session.
func ConfirmTimeout(d time.Duration) Option {
	return func(cfg *config) error {
		cfg.confirmTimeout = d
		return nil
	}
}

// SendCooldown sets the minimum time between two broadcasts. Zero disables it.
func SendCooldown(d time.Duration) Option {
	return func(cfg *config) error {
		cfg.sendCooldown = d
		return nil
	}
}

// Accounts links the session to a hosted account backend
func Accounts(backend AccountBackend) Option {
	return func(cfg *config) error {
		cfg.accounts = backend
		return nil
	}
}

// HostIdentity sets the provider read once when the session is created
func HostIdentity(provider hostshell.IdentityProvider) Option {
	return func(cfg *config) error {
		cfg.identity = provider
		return nil
	}
}

type config struct {
	networks       *network.Selector
	networkKey     string
	confirmTimeout time.Duration
	sendCooldown   time.Duration
	accounts       AccountBackend
	identity       hostshell.IdentityProvider
}

func (c *config) validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.networks == nil {
		return errors.New("network table is nil")
	}
	if c.confirmTimeout < 0 {
		return errors.New("confirm timeout must not be negative")
	}
	if c.sendCooldown < 0 {
		return errors.New("send cooldown must not be negative")
	}
	return nil
}
