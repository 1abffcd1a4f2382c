package mock

import (
	"context"
	"crypto/ecdsa"

	"github.com/AlexZinkM/evm-wallet/internal/crypto"
)

// CustodyStub -
type CustodyStub struct {
	GenerateCalled      func() (*crypto.KeyMaterial, error)
	EncryptCalled       func(key *ecdsa.PrivateKey, password []byte) ([]byte, error)
	DecryptCalled       func(blob, password []byte) (*ecdsa.PrivateKey, error)
	PersistLocalCalled  func(ctx context.Context, blob []byte) error
	LoadLocalCalled     func(ctx context.Context) ([]byte, error)
	ClearLocalCalled    func(ctx context.Context) error
	PersistRemoteCalled func(ctx context.Context, accountID string, blob []byte) error
	LoadRemoteCalled    func(ctx context.Context, accountID string) ([]byte, error)
}

// Generate -
func (cs *CustodyStub) Generate() (*crypto.KeyMaterial, error) {
	if cs.GenerateCalled != nil {
		return cs.GenerateCalled()
	}

	return crypto.GenerateKey()
}

// Encrypt -
func (cs *CustodyStub) Encrypt(key *ecdsa.PrivateKey, password []byte) ([]byte, error) {
	if cs.EncryptCalled != nil {
		return cs.EncryptCalled(key, password)
	}

	return crypto.EncryptKeyWithParams(key, password, crypto.LightParams)
}

// Decrypt -
func (cs *CustodyStub) Decrypt(blob, password []byte) (*ecdsa.PrivateKey, error) {
	if cs.DecryptCalled != nil {
		return cs.DecryptCalled(blob, password)
	}

	return crypto.DecryptKey(blob, password)
}

// PersistLocal -
func (cs *CustodyStub) PersistLocal(ctx context.Context, blob []byte) error {
	if cs.PersistLocalCalled != nil {
		return cs.PersistLocalCalled(ctx, blob)
	}

	return nil
}

// LoadLocal -
func (cs *CustodyStub) LoadLocal(ctx context.Context) ([]byte, error) {
	if cs.LoadLocalCalled != nil {
		return cs.LoadLocalCalled(ctx)
	}

	return nil, nil
}

// ClearLocal -
func (cs *CustodyStub) ClearLocal(ctx context.Context) error {
	if cs.ClearLocalCalled != nil {
		return cs.ClearLocalCalled(ctx)
	}

	return nil
}

// PersistRemote -
func (cs *CustodyStub) PersistRemote(ctx context.Context, accountID string, blob []byte) error {
	if cs.PersistRemoteCalled != nil {
		return cs.PersistRemoteCalled(ctx, accountID, blob)
	}

	return nil
}

// LoadRemote -
func (cs *CustodyStub) LoadRemote(ctx context.Context, accountID string) ([]byte, error) {
	if cs.LoadRemoteCalled != nil {
		return cs.LoadRemoteCalled(ctx, accountID)
	}

	return nil, nil
}

// IsInterfaceNil -
func (cs *CustodyStub) IsInterfaceNil() bool {
	return cs == nil
}
