package network

import "errors"

// ErrEmptyTable signals that a network table defines no networks
var ErrEmptyTable = errors.New("network table is empty")

// ErrDuplicateKey signals that two networks share the same key
var ErrDuplicateKey = errors.New("duplicate network key")

// ErrInvalidProfile signals that a network definition misses a required field
var ErrInvalidProfile = errors.New("invalid network profile")

// ErrUnknownDefault signals that the default key does not name a network of the table
var ErrUnknownDefault = errors.New("default network not found in table")
