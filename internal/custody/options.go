package custody

import (
	"github.com/AlexZinkM/evm-wallet/internal/crypto"
)

// Option is configuration option function for the custody manager
type Option func(cfg *config) error

// RemoteBackup sets the hosted store used for account backups.
// Without it every remote operation fails with ErrNoRemoteStore.
func RemoteBackup(remote RemoteStore) Option {
	return func(cfg *config) error {
		cfg.remote = remote
		return nil
	}
}

// KDFParams overrides the scrypt cost of newly written keystores
func KDFParams(params crypto.Params) Option {
	return func(cfg *config) error {
		cfg.params = params
		return nil
	}
}

type config struct {
	remote RemoteStore
	params crypto.Params
}
