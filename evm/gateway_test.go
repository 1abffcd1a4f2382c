package evm

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/AlexZinkM/evm-wallet/internal/client"
	"github.com/AlexZinkM/evm-wallet/internal/network"
	"github.com/AlexZinkM/evm-wallet/mock"

	"github.com/ethereum/go-ethereum"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPrivateKey  = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testDestination = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
)

type dialRecorder struct {
	mut  sync.Mutex
	urls []string
	rpc  client.ChainRPC
	err  error
}

func (d *dialRecorder) dial(_ context.Context, rpcURL string) (client.ChainRPC, error) {
	d.mut.Lock()
	defer d.mut.Unlock()

	d.urls = append(d.urls, rpcURL)
	if d.err != nil {
		return nil, d.err
	}
	return d.rpc, nil
}

func (d *dialRecorder) calls() []string {
	d.mut.Lock()
	defer d.mut.Unlock()

	return append([]string(nil), d.urls...)
}

func newTestGateway(t *testing.T, d *dialRecorder, opts ...Option) *Gateway {
	g, err := NewGateway(append([]Option{Dialer(d.dial), PollInterval(time.Millisecond)}, opts...)...)
	require.NoError(t, err)
	return g
}

func TestNewGateway_InvalidOptions(t *testing.T) {
	t.Parallel()

	_, err := NewGateway(Dialer(nil))
	assert.Error(t, err)
	_, err = NewGateway(PollInterval(0))
	assert.Error(t, err)
	_, err = NewGateway(MissingPollLimit(-1))
	assert.Error(t, err)
}

func TestValidateAddress(t *testing.T) {
	t.Parallel()

	valid := []string{
		testDestination,
		"0x70997970c51812dc3a010c7d01b50e0d17dc79c8",
		"0x70997970C51812DC3A010C7D01B50E0D17DC79C8",
	}
	for _, s := range valid {
		addr, err := ValidateAddress(s)
		assert.NoError(t, err, s)
		assert.Equal(t, ethcommon.HexToAddress(testDestination), addr)
	}

	invalid := []string{
		"",
		"not-an-address",
		"70997970C51812dc3A010C7d01b50e0d17dc79C8",
		"0x70997970C51812dc3A010C7d01b50e0d17dc79C",
		"0x70997970C51812dc3A010C7d01b50e0d17dc79C8ff",
		"0x70997970C51812dc3A010C7d01b50e0d17dc79Cg",
		// one flipped letter case breaks the checksum
		"0x70997970c51812dc3A010C7d01b50e0d17dc79C8",
	}
	for _, s := range invalid {
		_, err := ValidateAddress(s)
		assert.ErrorIs(t, err, ErrInvalidAddress, s)
	}
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	v, err := ParseAmount("0.000001", 18)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1_000_000_000_000), v)

	v, err = ParseAmount("0.000000000000000001", 18)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1), v)

	for _, s := range []string{"", "0", "0.0", "-1", "abc", "1e18", "0.0000000000000000001"} {
		_, err := ParseAmount(s, 18)
		assert.ErrorIs(t, err, ErrInvalidAmount, s)
	}
}

func TestGetBalance(t *testing.T) {
	t.Parallel()

	profile := network.Builtin().Resolve("bsc")
	owner := ethcommon.HexToAddress(testDestination)

	t.Run("formats exact balance", func(t *testing.T) {
		t.Parallel()

		rpc := &mock.ChainRPCStub{
			BalanceAtCalled: func(ctx context.Context, account ethcommon.Address, blockNumber *big.Int) (*big.Int, error) {
				assert.Equal(t, owner, account)
				assert.Nil(t, blockNumber)
				v, _ := new(big.Int).SetString("1500000000000000001", 10)
				return v, nil
			},
		}
		d := &dialRecorder{rpc: rpc}
		g := newTestGateway(t, d)

		balance, err := g.GetBalance(context.Background(), owner, profile)
		require.NoError(t, err)
		assert.Equal(t, "1.500000000000000001", balance)
		assert.Equal(t, []string{profile.RPCURL}, d.calls())
		assert.Equal(t, 1, rpc.ClosedCount())
	})
	t.Run("dial failure is a network error", func(t *testing.T) {
		t.Parallel()

		g := newTestGateway(t, &dialRecorder{err: errors.New("connection refused")})
		_, err := g.GetBalance(context.Background(), owner, profile)
		assert.ErrorIs(t, err, ErrNetwork)
	})
	t.Run("rpc failure is a network error", func(t *testing.T) {
		t.Parallel()

		rpc := &mock.ChainRPCStub{
			BalanceAtCalled: func(ctx context.Context, account ethcommon.Address, blockNumber *big.Int) (*big.Int, error) {
				return nil, errors.New("429 too many requests")
			},
		}
		g := newTestGateway(t, &dialRecorder{rpc: rpc})
		_, err := g.GetBalance(context.Background(), owner, profile)
		assert.ErrorIs(t, err, ErrNetwork)
	})
}

func TestSubmit_RejectsBeforeDialing(t *testing.T) {
	t.Parallel()

	key, err := ethcrypto.HexToECDSA(testPrivateKey)
	require.NoError(t, err)
	profile := network.Builtin().Default()

	d := &dialRecorder{rpc: &mock.ChainRPCStub{}}
	g := newTestGateway(t, d)

	_, err = g.Submit(context.Background(), key, profile, "not-an-address", "1")
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = g.Submit(context.Background(), key, profile, testDestination, "0")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = g.Submit(context.Background(), key, profile, testDestination, "1.0000000000000000001")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	assert.Empty(t, d.calls())
}

func TestSubmit(t *testing.T) {
	t.Parallel()

	key, err := ethcrypto.HexToECDSA(testPrivateKey)
	require.NoError(t, err)
	from := ethcrypto.PubkeyToAddress(key.PublicKey)
	profile := network.Builtin().Resolve("polygon")

	var sent *types.Transaction
	rpc := &mock.ChainRPCStub{
		BalanceAtCalled: func(ctx context.Context, account ethcommon.Address, blockNumber *big.Int) (*big.Int, error) {
			return new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil), nil
		},
		PendingNonceAtCalled: func(ctx context.Context, account ethcommon.Address) (uint64, error) {
			assert.Equal(t, from, account)
			return 7, nil
		},
		SuggestGasPriceCalled: func(ctx context.Context) (*big.Int, error) {
			return big.NewInt(30_000_000_000), nil
		},
		EstimateGasCalled: func(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
			assert.Equal(t, from, msg.From)
			return 21000, nil
		},
		SendTransactionCalled: func(ctx context.Context, tx *types.Transaction) error {
			sent = tx
			return nil
		},
	}
	g := newTestGateway(t, &dialRecorder{rpc: rpc})

	hash, err := g.Submit(context.Background(), key, profile, testDestination, "0.1")
	require.NoError(t, err)
	require.NotNil(t, sent)

	assert.Equal(t, sent.Hash(), hash)
	assert.Equal(t, uint64(7), sent.Nonce())
	assert.Equal(t, uint64(21000), sent.Gas())
	assert.Equal(t, big.NewInt(100_000_000_000_000_000), sent.Value())
	assert.Equal(t, ethcommon.HexToAddress(testDestination), *sent.To())
	assert.Equal(t, big.NewInt(137), sent.ChainId())

	sender, err := types.Sender(types.LatestSignerForChainID(profile.ChainIDBig()), sent)
	require.NoError(t, err)
	assert.Equal(t, from, sender)
}

func TestSubmit_InsufficientFunds(t *testing.T) {
	t.Parallel()

	key, err := ethcrypto.HexToECDSA(testPrivateKey)
	require.NoError(t, err)

	sendCalled := false
	rpc := &mock.ChainRPCStub{
		BalanceAtCalled: func(ctx context.Context, account ethcommon.Address, blockNumber *big.Int) (*big.Int, error) {
			return big.NewInt(100_000_000_000_000_000), nil
		},
		SuggestGasPriceCalled: func(ctx context.Context) (*big.Int, error) {
			return big.NewInt(1_000_000_000), nil
		},
		SendTransactionCalled: func(ctx context.Context, tx *types.Transaction) error {
			sendCalled = true
			return nil
		},
	}
	g := newTestGateway(t, &dialRecorder{rpc: rpc})

	_, err = g.Submit(context.Background(), key, network.Builtin().Default(), testDestination, "0.1")
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.False(t, sendCalled)
}

func TestSubmit_BroadcastFailure(t *testing.T) {
	t.Parallel()

	key, err := ethcrypto.HexToECDSA(testPrivateKey)
	require.NoError(t, err)

	rpc := &mock.ChainRPCStub{
		BalanceAtCalled: func(ctx context.Context, account ethcommon.Address, blockNumber *big.Int) (*big.Int, error) {
			return new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil), nil
		},
		SendTransactionCalled: func(ctx context.Context, tx *types.Transaction) error {
			return errors.New("nonce too low")
		},
	}
	g := newTestGateway(t, &dialRecorder{rpc: rpc})

	_, err = g.Submit(context.Background(), key, network.Builtin().Default(), testDestination, "0.1")
	assert.ErrorIs(t, err, ErrNetwork)
	assert.Contains(t, err.Error(), "nonce too low")
}

func TestAwaitConfirmation(t *testing.T) {
	t.Parallel()

	hash := ethcommon.HexToHash("0x01")
	profile := network.Builtin().Default()

	t.Run("successful receipt after pending polls", func(t *testing.T) {
		t.Parallel()

		var mut sync.Mutex
		polls := 0
		rpc := &mock.ChainRPCStub{
			TransactionReceiptCalled: func(ctx context.Context, txHash ethcommon.Hash) (*types.Receipt, error) {
				mut.Lock()
				defer mut.Unlock()
				polls++
				if polls < 3 {
					return nil, ethereum.NotFound
				}
				return &types.Receipt{Status: types.ReceiptStatusSuccessful}, nil
			},
			TransactionByHashCalled: func(ctx context.Context, hash ethcommon.Hash) (*types.Transaction, bool, error) {
				return &types.Transaction{}, true, nil
			},
		}
		g := newTestGateway(t, &dialRecorder{rpc: rpc})
		assert.NoError(t, g.AwaitConfirmation(context.Background(), hash, profile))
	})
	t.Run("reverted receipt", func(t *testing.T) {
		t.Parallel()

		rpc := &mock.ChainRPCStub{
			TransactionReceiptCalled: func(ctx context.Context, txHash ethcommon.Hash) (*types.Receipt, error) {
				return &types.Receipt{Status: types.ReceiptStatusFailed}, nil
			},
		}
		g := newTestGateway(t, &dialRecorder{rpc: rpc})
		err := g.AwaitConfirmation(context.Background(), hash, profile)
		assert.ErrorIs(t, err, ErrReverted)
		assert.ErrorIs(t, err, ErrConfirmation)
	})
	t.Run("dropped transaction", func(t *testing.T) {
		t.Parallel()

		g := newTestGateway(t, &dialRecorder{rpc: &mock.ChainRPCStub{}}, MissingPollLimit(3))
		err := g.AwaitConfirmation(context.Background(), hash, profile)
		assert.ErrorIs(t, err, ErrDropped)
	})
	t.Run("rpc error", func(t *testing.T) {
		t.Parallel()

		rpc := &mock.ChainRPCStub{
			TransactionReceiptCalled: func(ctx context.Context, txHash ethcommon.Hash) (*types.Receipt, error) {
				return nil, errors.New("internal error")
			},
		}
		g := newTestGateway(t, &dialRecorder{rpc: rpc})
		assert.ErrorIs(t, g.AwaitConfirmation(context.Background(), hash, profile), ErrConfirmation)
	})
	t.Run("timeout", func(t *testing.T) {
		t.Parallel()

		rpc := &mock.ChainRPCStub{
			TransactionByHashCalled: func(ctx context.Context, hash ethcommon.Hash) (*types.Transaction, bool, error) {
				return &types.Transaction{}, true, nil
			},
		}
		g := newTestGateway(t, &dialRecorder{rpc: rpc})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		err := g.AwaitConfirmation(ctx, hash, profile)
		assert.ErrorIs(t, err, ErrConfirmation)
	})
}
