package common

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const weiDecimals = 18

func TestParseUnits(t *testing.T) {
	t.Parallel()

	oneEther, _ := new(big.Int).SetString("1000000000000000000", 10)
	tests := []struct {
		in   string
		want *big.Int
	}{
		{"1", oneEther},
		{"0.1", big.NewInt(100000000000000000)},
		{"0.000001", big.NewInt(1000000000000)},
		{"0.000000000000000001", big.NewInt(1)},
		{"123456789.123456789123456789", mustBig(t, "123456789123456789123456789")},
		{" 2.5 ", mustBig(t, "2500000000000000000")},
		{".5", mustBig(t, "500000000000000000")},
		{"0", big.NewInt(0)},
	}
	for _, tt := range tests {
		got, err := ParseUnits(tt.in, weiDecimals)
		require.NoError(t, err, tt.in)
		assert.Equal(t, 0, tt.want.Cmp(got), "%q: want %s got %s", tt.in, tt.want, got)
	}
}

func TestParseUnits_Errors(t *testing.T) {
	t.Parallel()

	_, err := ParseUnits("", weiDecimals)
	assert.ErrorIs(t, err, ErrEmptyAmount)

	for _, in := range []string{"abc", "1.2.3", "-1", "+1", "1e18", ".", "1,5", "0x10"} {
		_, err = ParseUnits(in, weiDecimals)
		assert.ErrorIs(t, err, ErrInvalidDecimal, in)
	}

	_, err = ParseUnits("0.0000000000000000001", weiDecimals)
	assert.ErrorIs(t, err, ErrTooManyDecimals)

	// smaller decimals, as for a 6-decimal asset
	v, err := ParseUnits("0.000001", 6)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Int64())
	_, err = ParseUnits("0.0000001", 6)
	assert.ErrorIs(t, err, ErrTooManyDecimals)
}

func TestFormatUnits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1.0", FormatUnits(mustBig(t, "1000000000000000000"), weiDecimals))
	assert.Equal(t, "0.1", FormatUnits(big.NewInt(100000000000000000), weiDecimals))
	assert.Equal(t, "0.000000000000000001", FormatUnits(big.NewInt(1), weiDecimals))
	assert.Equal(t, "0.0", FormatUnits(big.NewInt(0), weiDecimals))
	assert.Equal(t, "0.0", FormatUnits(nil, weiDecimals))
	assert.Equal(t, "0.024981836", FormatUnits(big.NewInt(24981836), 9))
	assert.Equal(t, "-1.5", FormatUnits(big.NewInt(-1500), 3))
}

func TestFormatParseRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"1.0", "0.000001", "42.424242424242424242"} {
		v, err := ParseUnits(s, weiDecimals)
		require.NoError(t, err)
		assert.Equal(t, s, FormatUnits(v, weiDecimals))
	}
}

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok)
	return v
}
