package mock

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ChainRPCStub -
type ChainRPCStub struct {
	BalanceAtCalled          func(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	PendingNonceAtCalled     func(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPriceCalled    func(ctx context.Context) (*big.Int, error)
	EstimateGasCalled        func(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransactionCalled    func(ctx context.Context, tx *types.Transaction) error
	TransactionReceiptCalled func(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	TransactionByHashCalled  func(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)

	mut    sync.Mutex
	closed int
}

// BalanceAt -
func (s *ChainRPCStub) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	if s.BalanceAtCalled != nil {
		return s.BalanceAtCalled(ctx, account, blockNumber)
	}

	return big.NewInt(0), nil
}

// PendingNonceAt -
func (s *ChainRPCStub) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	if s.PendingNonceAtCalled != nil {
		return s.PendingNonceAtCalled(ctx, account)
	}

	return 0, nil
}

// SuggestGasPrice -
func (s *ChainRPCStub) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	if s.SuggestGasPriceCalled != nil {
		return s.SuggestGasPriceCalled(ctx)
	}

	return big.NewInt(1), nil
}

// EstimateGas -
func (s *ChainRPCStub) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	if s.EstimateGasCalled != nil {
		return s.EstimateGasCalled(ctx, msg)
	}

	return 21000, nil
}

// SendTransaction -
func (s *ChainRPCStub) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if s.SendTransactionCalled != nil {
		return s.SendTransactionCalled(ctx, tx)
	}

	return nil
}

// TransactionReceipt -
func (s *ChainRPCStub) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	if s.TransactionReceiptCalled != nil {
		return s.TransactionReceiptCalled(ctx, txHash)
	}

	return nil, ethereum.NotFound
}

// TransactionByHash -
func (s *ChainRPCStub) TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error) {
	if s.TransactionByHashCalled != nil {
		return s.TransactionByHashCalled(ctx, hash)
	}

	return nil, false, ethereum.NotFound
}

// Close -
func (s *ChainRPCStub) Close() {
	s.mut.Lock()
	s.closed++
	s.mut.Unlock()
}

// ClosedCount returns how many times Close was called
func (s *ChainRPCStub) ClosedCount() int {
	s.mut.Lock()
	defer s.mut.Unlock()

	return s.closed
}
