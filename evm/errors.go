package evm

import (
	"errors"
	"fmt"
)

// ErrInvalidAddress signals that a destination is not a 0x-prefixed 20 byte hex address
// or fails its mixed-case checksum
var ErrInvalidAddress = errors.New("destination address looks invalid")

// ErrInvalidAmount signals that an amount is empty, malformed, not positive or too precise
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInsufficientFunds signals that the balance does not cover amount plus fee
var ErrInsufficientFunds = errors.New("insufficient funds for amount + fee")

// ErrNetwork signals that the RPC endpoint could not be reached or rejected a call
var ErrNetwork = errors.New("network error")

// ErrConfirmation signals that a broadcast transaction did not reach a successful receipt
var ErrConfirmation = errors.New("confirmation failed")

// ErrReverted signals that the transaction was mined with a failed status
var ErrReverted = fmt.Errorf("%w: transaction reverted", ErrConfirmation)

// ErrDropped signals that the transaction disappeared from the node (dropped or replaced)
var ErrDropped = fmt.Errorf("%w: transaction dropped or replaced", ErrConfirmation)
