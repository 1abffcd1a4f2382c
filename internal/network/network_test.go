package network

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	t.Parallel()

	s := Builtin()
	keys := make([]string, 0)
	for _, p := range s.Profiles() {
		keys = append(keys, p.Key)
		assert.Equal(t, 18, p.Decimals)
	}
	assert.Equal(t, []string{"eth", "bsc", "polygon", "arbitrum"}, keys)
	assert.Equal(t, "eth", s.Default().Key)

	bsc := s.Resolve("bsc")
	assert.Equal(t, uint64(56), bsc.ChainID)
	assert.Equal(t, "BNB", bsc.Symbol)
	assert.Equal(t, int64(56), bsc.ChainIDBig().Int64())
}

func TestResolve_FallsBackToDefault(t *testing.T) {
	t.Parallel()

	s := Builtin()
	assert.Equal(t, "eth", s.Resolve("solana").Key)
	assert.Equal(t, "eth", s.Resolve("").Key)

	_, ok := s.Lookup("solana")
	assert.False(t, ok)
	p, ok := s.Lookup("polygon")
	assert.True(t, ok)
	assert.Equal(t, uint64(137), p.ChainID)
}

func TestExplorerURLs(t *testing.T) {
	t.Parallel()

	p := Builtin().Resolve("arbitrum")
	assert.Equal(t, "https://arbiscan.io/tx/0xabc", p.TxURL("0xabc"))
	assert.Equal(t, "https://arbiscan.io/address/0xdef", p.AddressURL("0xdef"))
}

func TestProfilesReturnsCopy(t *testing.T) {
	t.Parallel()

	s := Builtin()
	ps := s.Profiles()
	ps[0].RPCURL = "http://evil"
	assert.NotEqual(t, "http://evil", s.Default().RPCURL)
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("first network is default when none is named", func(t *testing.T) {
		t.Parallel()

		s, err := Parse([]byte(`
networks:
  - {key: local, name: Anvil, symbol: ETH, decimals: 18, chainId: 31337, rpcUrl: "http://127.0.0.1:8545"}
  - {key: sepolia, name: Sepolia, symbol: ETH, decimals: 18, chainId: 11155111, rpcUrl: "https://rpc.sepolia.org"}
`))
		require.NoError(t, err)
		assert.Equal(t, "local", s.Default().Key)
		assert.Equal(t, "local", s.Resolve("mainnet").Key)
	})
	t.Run("empty table should error", func(t *testing.T) {
		t.Parallel()

		_, err := Parse([]byte("networks: []"))
		assert.ErrorIs(t, err, ErrEmptyTable)
	})
	t.Run("duplicate key should error", func(t *testing.T) {
		t.Parallel()

		_, err := Parse([]byte(`
networks:
  - {key: a, decimals: 18, chainId: 1, rpcUrl: "http://a"}
  - {key: a, decimals: 18, chainId: 2, rpcUrl: "http://b"}
`))
		assert.ErrorIs(t, err, ErrDuplicateKey)
	})
	t.Run("missing rpc url should error", func(t *testing.T) {
		t.Parallel()

		_, err := Parse([]byte(`networks: [{key: a, decimals: 18, chainId: 1}]`))
		assert.ErrorIs(t, err, ErrInvalidProfile)
	})
	t.Run("unknown default should error", func(t *testing.T) {
		t.Parallel()

		_, err := Parse([]byte(`
default: b
networks: [{key: a, decimals: 18, chainId: 1, rpcUrl: "http://a"}]
`))
		assert.ErrorIs(t, err, ErrUnknownDefault)
	})
	t.Run("invalid yaml should error", func(t *testing.T) {
		t.Parallel()

		_, err := Parse([]byte("networks: [::"))
		assert.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "networks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
default: local
networks: [{key: local, name: Anvil, symbol: ETH, decimals: 18, chainId: 31337, rpcUrl: "http://127.0.0.1:8545"}]
`), 0600))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(31337), s.Default().ChainID)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
