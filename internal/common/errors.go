package common

import "errors"

// ErrEmptyAmount signals that an empty amount string was provided
var ErrEmptyAmount = errors.New("empty amount")

// ErrInvalidDecimal signals that the amount is not a plain unsigned decimal number
var ErrInvalidDecimal = errors.New("invalid decimal format")

// ErrTooManyDecimals signals that the amount has more fractional digits than the asset supports
var ErrTooManyDecimals = errors.New("too many decimal places")
