package wallet

import (
	"context"
	"crypto/ecdsa"

	"github.com/AlexZinkM/evm-wallet/internal/crypto"
	"github.com/AlexZinkM/evm-wallet/internal/model"
	"github.com/AlexZinkM/evm-wallet/internal/network"

	"github.com/ethereum/go-ethereum/common"
)

// Custody holds the keystore. *custody.Manager implements it.
type Custody interface {
	Generate() (*crypto.KeyMaterial, error)
	Encrypt(key *ecdsa.PrivateKey, password []byte) ([]byte, error)
	Decrypt(blob, password []byte) (*ecdsa.PrivateKey, error)
	PersistLocal(ctx context.Context, blob []byte) error
	LoadLocal(ctx context.Context) ([]byte, error)
	ClearLocal(ctx context.Context) error
	PersistRemote(ctx context.Context, accountID string, blob []byte) error
	LoadRemote(ctx context.Context, accountID string) ([]byte, error)
}

// Gateway reaches the chain. *evm.Gateway implements it.
type Gateway interface {
	GetBalance(ctx context.Context, address common.Address, profile network.Profile) (string, error)
	Submit(ctx context.Context, key *ecdsa.PrivateKey, profile network.Profile, destination, amount string) (common.Hash, error)
	AwaitConfirmation(ctx context.Context, hash common.Hash, profile network.Profile) error
}

// AccountBackend is the hosted account surface. *client.BackendClient implements it.
type AccountBackend interface {
	SignUp(ctx context.Context, email, password string) (*model.Account, error)
	SignIn(ctx context.Context, email, password string) (*model.Account, error)
	Refresh(ctx context.Context) (*model.Account, error)
	SetUsername(ctx context.Context, username string) (*model.Account, error)
	SignOut(ctx context.Context) error
}
