package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Note: passwords are never configured; they arrive per request or from PromptForPassword.
type Config struct {
	Port               string        `envconfig:"PORT" default:"8080"`
	DataDir            string        `envconfig:"WALLET_DATA_DIR" required:"true"`
	Network            string        `envconfig:"WALLET_NETWORK" default:"eth"`
	NetworksFile       string        `envconfig:"WALLET_NETWORKS_FILE"`
	ConfirmTimeout     time.Duration `envconfig:"WALLET_CONFIRM_TIMEOUT"`
	ConfirmPoll        time.Duration `envconfig:"WALLET_CONFIRM_POLL_INTERVAL" default:"4s"`
	SendCooldown       time.Duration `envconfig:"WALLET_SEND_COOLDOWN"`
	BackendURL         string        `envconfig:"WALLET_BACKEND_URL"`
	BackendAnonKey     string        `envconfig:"WALLET_BACKEND_ANON_KEY"`
	TelegramInitData   string        `envconfig:"WALLET_TELEGRAM_INIT_DATA"`
	TelegramBotToken   string        `envconfig:"WALLET_TELEGRAM_BOT_TOKEN"`
	TelegramInitMaxAge time.Duration `envconfig:"WALLET_TELEGRAM_INIT_MAX_AGE" default:"24h"`
	LogLevel           string        `envconfig:"WALLET_LOG_LEVEL" default:"info"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if c.DataDir == "" {
		return errors.New("failed to process config: WALLET_DATA_DIR is empty")
	}
	if c.ConfirmTimeout < 0 || c.SendCooldown < 0 || c.ConfirmPoll <= 0 {
		return errors.New("failed to process config: durations must not be negative")
	}
	cfg = c
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetDataDir returns the directory of the local wallet datastore
func GetDataDir() string {
	return Get().DataDir
}

// BackendEnabled reports whether a hosted account backend is configured
func BackendEnabled() bool {
	return Get().BackendURL != ""
}

// PromptForPassword prompts for a password in the terminal.
// The password is read without echoing (hidden input).
// Caller must zero the returned slice after use.
func PromptForPassword(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the command interactively to enter password")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}
	return raw, nil
}
