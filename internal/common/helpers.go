package common

import (
	"fmt"
	"math/big"
	"strings"
)

// FormatUnits converts an integer amount of smallest units to a decimal string by inserting the decimal point.
// Trailing zeros of the fraction are dropped but at least one fractional digit is kept.
// Example: FormatUnits(24981836, 9) = "0.024981836", FormatUnits(10^18, 18) = "1.0"
func FormatUnits(value *big.Int, decimals int) string {
	if value == nil {
		value = new(big.Int)
	}
	sign := ""
	if value.Sign() < 0 {
		sign = "-"
		value = new(big.Int).Neg(value)
	}
	s := value.String()

	// Pad with leading zeros if needed
	if len(s) <= decimals {
		s = strings.Repeat("0", decimals-len(s)+1) + s
	}

	pos := len(s) - decimals
	whole, frac := s[:pos], strings.TrimRight(s[pos:], "0")
	if frac == "" {
		frac = "0"
	}
	return sign + whole + "." + frac
}

// ParseUnits converts a decimal string to an integer amount of smallest units by removing the decimal point.
// More fractional digits than decimals is an error: the amount would not be representable.
// Example: ParseUnits("0.024981836", 9) = 24981836
func ParseUnits(s string, decimals int) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyAmount
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return nil, ErrInvalidDecimal
	}

	whole := parts[0]
	frac := ""
	if len(parts) == 2 {
		frac = parts[1]
	}
	if whole == "" && frac == "" {
		return nil, ErrInvalidDecimal
	}
	if !isDigits(whole) || !isDigits(frac) {
		return nil, ErrInvalidDecimal
	}
	if len(frac) > decimals {
		return nil, fmt.Errorf("%w: %d allowed", ErrTooManyDecimals, decimals)
	}

	// Pad fractional part to exact decimals, then combine and parse
	combined := whole + frac + strings.Repeat("0", decimals-len(frac))
	n, ok := new(big.Int).SetString(combined, 10)
	if !ok {
		return nil, ErrInvalidDecimal
	}
	return n, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
