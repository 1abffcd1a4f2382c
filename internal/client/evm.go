package client

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"

	"github.com/AlexZinkM/evm-wallet/internal/network"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// ChainRPC is the part of the go-ethereum RPC client the wallet uses.
// *ethclient.Client satisfies it.
type ChainRPC interface {
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (tx *types.Transaction, isPending bool, err error)
	Close()
}

// Dialer opens a ChainRPC for an endpoint
type Dialer func(ctx context.Context, rpcURL string) (ChainRPC, error)

// DialEthereum is the production Dialer
func DialEthereum(ctx context.Context, rpcURL string) (ChainRPC, error) {
	c, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// TxState is what the chain currently knows about a broadcast transaction
type TxState int

const (
	// TxMissing: neither mined nor in the node's pool
	TxMissing TxState = iota
	TxPending
	TxConfirmed
	TxReverted
)

// TransferPlan holds the chain parameters a native transfer is signed with
type TransferPlan struct {
	Nonce    uint64
	GasPrice *big.Int
	GasLimit uint64
}

// Fee returns GasPrice * GasLimit
func (p *TransferPlan) Fee() *big.Int {
	return new(big.Int).Mul(p.GasPrice, new(big.Int).SetUint64(p.GasLimit))
}

// EVMClient is a client for working with an EVM JSON-RPC endpoint on behalf of one address
type EVMClient struct {
	rpc     ChainRPC
	chainID *big.Int
	owner   common.Address
}

// NewEVMClient dials the profile's endpoint for owner
func NewEVMClient(ctx context.Context, dial Dialer, profile network.Profile, owner common.Address) (*EVMClient, error) {
	rpc, err := dial(ctx, profile.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", profile.Key, err)
	}
	return &EVMClient{
		rpc:     rpc,
		chainID: profile.ChainIDBig(),
		owner:   owner,
	}, nil
}

// Close releases the RPC connection
func (c *EVMClient) Close() {
	c.rpc.Close()
}

// GetBalance gets the native balance (smallest units) at the latest block
func (c *EVMClient) GetBalance(ctx context.Context) (*big.Int, error) {
	balance, err := c.rpc.BalanceAt(ctx, c.owner, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

// PrepareTransfer fetches nonce, gas price and gas limit for sending value to to
func (c *EVMClient) PrepareTransfer(ctx context.Context, to common.Address, value *big.Int) (*TransferPlan, error) {
	nonce, err := c.rpc.PendingNonceAt(ctx, c.owner)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := c.rpc.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get gas price: %w", err)
	}

	gasLimit, err := c.rpc.EstimateGas(ctx, ethereum.CallMsg{
		From:     c.owner,
		To:       &to,
		GasPrice: gasPrice,
		Value:    value,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to estimate gas: %w", err)
	}

	return &TransferPlan{
		Nonce:    nonce,
		GasPrice: gasPrice,
		GasLimit: gasLimit,
	}, nil
}

// CreateNativeTransaction signs and broadcasts a native transfer built from plan
func (c *EVMClient) CreateNativeTransaction(ctx context.Context, key *ecdsa.PrivateKey, plan *TransferPlan, to common.Address, value *big.Int) (common.Hash, error) {
	// Verify key matches our address
	if ethcrypto.PubkeyToAddress(key.PublicKey) != c.owner {
		return common.Hash{}, fmt.Errorf("private key does not match our address")
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    plan.Nonce,
		GasPrice: plan.GasPrice,
		Gas:      plan.GasLimit,
		To:       &to,
		Value:    value,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), key)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := c.rpc.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, fmt.Errorf("failed to send transaction: %w", err)
	}

	return signed.Hash(), nil
}

// TransactionState looks the transaction up by receipt, then in the pool
func (c *EVMClient) TransactionState(ctx context.Context, hash common.Hash) (TxState, error) {
	receipt, err := c.rpc.TransactionReceipt(ctx, hash)
	switch {
	case err == nil && receipt != nil:
		if receipt.Status == types.ReceiptStatusSuccessful {
			return TxConfirmed, nil
		}
		return TxReverted, nil
	case err != nil && !errors.Is(err, ethereum.NotFound):
		return TxMissing, fmt.Errorf("failed to get receipt: %w", err)
	}

	_, _, err = c.rpc.TransactionByHash(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return TxMissing, nil
	}
	if err != nil {
		return TxMissing, fmt.Errorf("failed to get transaction: %w", err)
	}
	// Known to the node but not yet mined
	return TxPending, nil
}
