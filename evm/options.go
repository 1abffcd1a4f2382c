package evm

import (
	"errors"
	"time"

	"github.com/AlexZinkM/evm-wallet/internal/client"
)

const (
	// DefaultPollInterval is the receipt polling period
	DefaultPollInterval = 4 * time.Second

	// DefaultMissingPollLimit is how many consecutive polls may find the
	// transaction neither mined nor pending before it counts as dropped
	DefaultMissingPollLimit = 15
)

// Option is configuration option function for the Gateway
type Option func(cfg *config) error

// Dialer sets how RPC connections are opened. Defaults to client.DialEthereum.
func Dialer(dial client.Dialer) Option {
	return func(cfg *config) error {
		cfg.dial = dial
		return nil
	}
}

// PollInterval sets the receipt polling period
func PollInterval(d time.Duration) Option {
	return func(cfg *config) error {
		cfg.pollInterval = d
		return nil
	}
}

// MissingPollLimit sets how many consecutive empty polls mean the transaction was dropped
func MissingPollLimit(n int) Option {
	return func(cfg *config) error {
		cfg.missingPollLimit = n
		return nil
	}
}

type config struct {
	dial             client.Dialer
	pollInterval     time.Duration
	missingPollLimit int
}

func (c *config) validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.dial == nil {
		return errors.New("dialer is nil")
	}
	if c.pollInterval <= 0 {
		return errors.New("poll interval must be positive")
	}
	if c.missingPollLimit <= 0 {
		return errors.New("missing poll limit must be positive")
	}
	return nil
}
