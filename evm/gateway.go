// Package evm queries balances, submits signed native transfers and waits for their
// confirmation on the network a profile points to.
package evm

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/AlexZinkM/evm-wallet/internal/client"
	"github.com/AlexZinkM/evm-wallet/internal/common"
	"github.com/AlexZinkM/evm-wallet/internal/network"

	ethcommon "github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// Gateway talks to the RPC endpoint of whichever profile it is handed.
// It keeps no connection between calls.
type Gateway struct {
	dial             client.Dialer
	pollInterval     time.Duration
	missingPollLimit int
}

// NewGateway creates a gateway. Without options it dials with go-ethereum's ethclient.
func NewGateway(opts ...Option) (*Gateway, error) {
	cfg := &config{
		dial:             client.DialEthereum,
		pollInterval:     DefaultPollInterval,
		missingPollLimit: DefaultMissingPollLimit,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Gateway{
		dial:             cfg.dial,
		pollInterval:     cfg.pollInterval,
		missingPollLimit: cfg.missingPollLimit,
	}, nil
}

// ValidateAddress checks that s is 0x followed by 40 hex digits. All-lowercase and
// all-uppercase forms are accepted as is; mixed case must match the EIP-55 checksum.
func ValidateAddress(s string) (ethcommon.Address, error) {
	if !strings.HasPrefix(s, "0x") || !ethcommon.IsHexAddress(s) {
		return ethcommon.Address{}, ErrInvalidAddress
	}
	addr := ethcommon.HexToAddress(s)

	body := s[2:]
	if body != strings.ToLower(body) && body != strings.ToUpper(body) && addr.Hex() != s {
		return ethcommon.Address{}, ErrInvalidAddress
	}
	return addr, nil
}

// ParseAmount converts a decimal amount of the native asset to smallest units.
// The result is strictly positive.
func ParseAmount(s string, decimals int) (*big.Int, error) {
	value, err := common.ParseUnits(s, decimals)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	if value.Sign() <= 0 {
		return nil, fmt.Errorf("%w: must be greater than zero", ErrInvalidAmount)
	}
	return value, nil
}

// GetBalance returns the native balance of address on profile as an exact decimal string
func (g *Gateway) GetBalance(ctx context.Context, address ethcommon.Address, profile network.Profile) (string, error) {
	c, err := client.NewEVMClient(ctx, g.dial, profile, address)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer c.Close()

	wei, err := c.GetBalance(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return common.FormatUnits(wei, profile.Decimals), nil
}

// Submit signs a native transfer of amount to destination with key and broadcasts it.
// Destination and amount are validated before anything is dialed.
func (g *Gateway) Submit(ctx context.Context, key *ecdsa.PrivateKey, profile network.Profile, destination, amount string) (ethcommon.Hash, error) {
	// Validate recipient address
	to, err := ValidateAddress(destination)
	if err != nil {
		return ethcommon.Hash{}, err
	}

	// Convert amount to smallest units (string-based, no float precision loss)
	value, err := ParseAmount(amount, profile.Decimals)
	if err != nil {
		return ethcommon.Hash{}, err
	}

	from := ethcrypto.PubkeyToAddress(key.PublicKey)
	c, err := client.NewEVMClient(ctx, g.dial, profile, from)
	if err != nil {
		return ethcommon.Hash{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer c.Close()

	plan, err := c.PrepareTransfer(ctx, to, value)
	if err != nil {
		return ethcommon.Hash{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	// Check balance sufficiency (amount + fee)
	balance, err := c.GetBalance(ctx)
	if err != nil {
		return ethcommon.Hash{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	required := new(big.Int).Add(value, plan.Fee())
	if balance.Cmp(required) < 0 {
		return ethcommon.Hash{}, fmt.Errorf("%w: need %s %s, have %s %s", ErrInsufficientFunds,
			common.FormatUnits(required, profile.Decimals), profile.Symbol,
			common.FormatUnits(balance, profile.Decimals), profile.Symbol)
	}

	hash, err := c.CreateNativeTransaction(ctx, key, plan, to, value)
	if err != nil {
		return ethcommon.Hash{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	log.Infow("transaction broadcast", "network", profile.Key, "tx", hash.Hex(), "nonce", plan.Nonce)
	return hash, nil
}

// AwaitConfirmation polls for the receipt of hash until it is mined, disappears from the
// node, or ctx ends. Only a successful receipt returns nil.
func (g *Gateway) AwaitConfirmation(ctx context.Context, hash ethcommon.Hash, profile network.Profile) error {
	c, err := client.NewEVMClient(ctx, g.dial, profile, ethcommon.Address{})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfirmation, err)
	}
	defer c.Close()

	ticker := time.NewTicker(g.pollInterval)
	defer ticker.Stop()

	missing := 0
	for {
		state, err := c.TransactionState(ctx, hash)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return fmt.Errorf("%w: %v", ErrConfirmation, ctxErr)
			}
			return fmt.Errorf("%w: %v", ErrConfirmation, err)
		}

		switch state {
		case client.TxConfirmed:
			log.Infow("transaction confirmed", "network", profile.Key, "tx", hash.Hex())
			return nil
		case client.TxReverted:
			return ErrReverted
		case client.TxPending:
			missing = 0
		case client.TxMissing:
			missing++
			if missing >= g.missingPollLimit {
				return ErrDropped
			}
		}

		select {
		case <-ctx.Done():
			err := ctx.Err()
			if errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("%w: timed out waiting for receipt", ErrConfirmation)
			}
			return fmt.Errorf("%w: %v", ErrConfirmation, err)
		case <-ticker.C:
		}
	}
}
