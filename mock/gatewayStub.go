package mock

import (
	"context"
	"crypto/ecdsa"

	"github.com/AlexZinkM/evm-wallet/internal/network"

	"github.com/ethereum/go-ethereum/common"
)

// GatewayStub -
type GatewayStub struct {
	GetBalanceCalled        func(ctx context.Context, address common.Address, profile network.Profile) (string, error)
	SubmitCalled            func(ctx context.Context, key *ecdsa.PrivateKey, profile network.Profile, destination, amount string) (common.Hash, error)
	AwaitConfirmationCalled func(ctx context.Context, hash common.Hash, profile network.Profile) error
}

// GetBalance -
func (gs *GatewayStub) GetBalance(ctx context.Context, address common.Address, profile network.Profile) (string, error) {
	if gs.GetBalanceCalled != nil {
		return gs.GetBalanceCalled(ctx, address, profile)
	}

	return "0.0", nil
}

// Submit -
func (gs *GatewayStub) Submit(ctx context.Context, key *ecdsa.PrivateKey, profile network.Profile, destination, amount string) (common.Hash, error) {
	if gs.SubmitCalled != nil {
		return gs.SubmitCalled(ctx, key, profile, destination, amount)
	}

	return common.Hash{}, nil
}

// AwaitConfirmation -
func (gs *GatewayStub) AwaitConfirmation(ctx context.Context, hash common.Hash, profile network.Profile) error {
	if gs.AwaitConfirmationCalled != nil {
		return gs.AwaitConfirmationCalled(ctx, hash, profile)
	}

	return nil
}

// IsInterfaceNil -
func (gs *GatewayStub) IsInterfaceNil() bool {
	return gs == nil
}
