// Package custody owns the wallet keystore: key generation, password encryption,
// the single local slot and the per-account remote backup slot.
package custody

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"sync"

	"github.com/AlexZinkM/evm-wallet/internal/crypto"

	"github.com/ipfs/go-datastore"
)

// WalletEncryptedDatastoreKey is the one local slot. Saving a new wallet overwrites it.
const WalletEncryptedDatastoreKey = "/wallet/encrypted/v1"

// RemoteStore is the hosted per-account backup slot (upsert, last write wins)
type RemoteStore interface {
	// PutBackup must replace the account's keystore blob
	PutBackup(ctx context.Context, accountID string, blob []byte) error

	// GetBackup must return the account's keystore blob, or found=false when there is none
	GetBackup(ctx context.Context, accountID string) (blob []byte, found bool, err error)
}

// Manager implements the key custody contract. Local and remote slots are independent:
// writing one never touches the other.
type Manager struct {
	ds     datastore.Datastore
	remote RemoteStore
	params crypto.Params

	localMtx  sync.Mutex
	remoteMtx sync.Mutex
}

// NewManager creates a custody manager over ds
func NewManager(ds datastore.Datastore, opts ...Option) (*Manager, error) {
	if ds == nil {
		return nil, ErrNilDatastore
	}
	cfg := config{params: crypto.StandardParams}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return &Manager{
		ds:     ds,
		remote: cfg.remote,
		params: cfg.params,
	}, nil
}

// Generate produces fresh key material and its recovery phrase
func (m *Manager) Generate() (*crypto.KeyMaterial, error) {
	return crypto.GenerateKey()
}

// Encrypt seals key under password
func (m *Manager) Encrypt(key *ecdsa.PrivateKey, password []byte) ([]byte, error) {
	return crypto.EncryptKeyWithParams(key, password, m.params)
}

// Decrypt opens blob with password. Any mismatch is crypto.ErrDecrypt.
func (m *Manager) Decrypt(blob, password []byte) (*ecdsa.PrivateKey, error) {
	return crypto.DecryptKey(blob, password)
}

// Reencrypt moves the keystore in blob from oldPassword to newPassword
func (m *Manager) Reencrypt(blob, oldPassword, newPassword []byte) ([]byte, error) {
	return crypto.ReencryptKey(blob, oldPassword, newPassword, m.params)
}

// PersistLocal overwrites the local slot with blob
func (m *Manager) PersistLocal(ctx context.Context, blob []byte) error {
	m.localMtx.Lock()
	defer m.localMtx.Unlock()

	key := datastore.NewKey(WalletEncryptedDatastoreKey)
	if err := m.ds.Put(ctx, key, blob); err != nil {
		return fmt.Errorf("failed to save wallet: %w", err)
	}
	if err := m.ds.Sync(ctx, key); err != nil {
		return fmt.Errorf("failed to sync wallet: %w", err)
	}
	return nil
}

// LoadLocal returns the blob of the local slot or ErrNoLocalWallet
func (m *Manager) LoadLocal(ctx context.Context) ([]byte, error) {
	m.localMtx.Lock()
	defer m.localMtx.Unlock()

	blob, err := m.ds.Get(ctx, datastore.NewKey(WalletEncryptedDatastoreKey))
	if errors.Is(err, datastore.ErrNotFound) {
		return nil, ErrNoLocalWallet
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read wallet: %w", err)
	}
	if len(blob) == 0 {
		return nil, ErrNoLocalWallet
	}
	return blob, nil
}

// ClearLocal irreversibly discards the local slot. The remote slot is not touched.
func (m *Manager) ClearLocal(ctx context.Context) error {
	m.localMtx.Lock()
	defer m.localMtx.Unlock()

	key := datastore.NewKey(WalletEncryptedDatastoreKey)
	if err := m.ds.Delete(ctx, key); err != nil && !errors.Is(err, datastore.ErrNotFound) {
		return fmt.Errorf("failed to delete wallet: %w", err)
	}
	if err := m.ds.Sync(ctx, key); err != nil {
		return fmt.Errorf("failed to sync wallet: %w", err)
	}
	return nil
}

// PersistRemote overwrites the account's remote slot with blob
func (m *Manager) PersistRemote(ctx context.Context, accountID string, blob []byte) error {
	if m.remote == nil {
		return ErrNoRemoteStore
	}
	if accountID == "" {
		return ErrEmptyAccountID
	}
	m.remoteMtx.Lock()
	defer m.remoteMtx.Unlock()

	return m.remote.PutBackup(ctx, accountID, blob)
}

// LoadRemote returns the account's remote blob or ErrNoBackup
func (m *Manager) LoadRemote(ctx context.Context, accountID string) ([]byte, error) {
	if m.remote == nil {
		return nil, ErrNoRemoteStore
	}
	if accountID == "" {
		return nil, ErrEmptyAccountID
	}
	m.remoteMtx.Lock()
	defer m.remoteMtx.Unlock()

	blob, found, err := m.remote.GetBackup(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !found || len(blob) == 0 {
		return nil, ErrNoBackup
	}
	return blob, nil
}

// Close releases the underlying datastore
func (m *Manager) Close() error {
	return m.ds.Close()
}
