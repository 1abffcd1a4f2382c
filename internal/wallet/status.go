package wallet

import (
	"time"

	"github.com/AlexZinkM/evm-wallet/internal/model"
	"github.com/AlexZinkM/evm-wallet/internal/network"
)

// MinPasswordLength is the shortest password a new wallet accepts
const MinPasswordLength = 6

// State is the lifecycle state of a session
type State int

const (
	StateNoWallet State = iota
	StateCreating
	StateUnlocking
	StateActive
	StateSending
)

func (s State) String() string {
	switch s {
	case StateNoWallet:
		return "no_wallet"
	case StateCreating:
		return "creating"
	case StateUnlocking:
		return "unlocking"
	case StateActive:
		return "active"
	case StateSending:
		return "sending"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// StatusKind tells the UI how to render a status line
type StatusKind string

const (
	StatusInfo    StatusKind = "info"
	StatusPending StatusKind = "pending"
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
)

// Status is the one line the UI shows about the last operation
type Status struct {
	Kind    StatusKind `json:"kind"`
	Message string     `json:"message"`
}

// TransferStatus is the progress of the most recent transfer
type TransferStatus string

const (
	TransferBroadcast TransferStatus = "broadcast"
	TransferConfirmed TransferStatus = "confirmed"
	TransferFailed    TransferStatus = "failed"
)

// TransferRecord describes the most recent transfer
type TransferRecord struct {
	Hash        string         `json:"hash"`
	Network     string         `json:"network"`
	ExplorerURL string         `json:"explorerUrl"`
	To          string         `json:"to"`
	Amount      string         `json:"amount"`
	Status      TransferStatus `json:"status"`
	Error       string         `json:"error,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// Snapshot is a copy of everything the UI can observe about a session
type Snapshot struct {
	SessionID    string              `json:"sessionId"`
	State        State               `json:"state"`
	Address      string              `json:"address,omitempty"`
	Network      network.Profile     `json:"network"`
	Balance      string              `json:"balance,omitempty"`
	BalanceError string              `json:"balanceError,omitempty"`
	Status       Status              `json:"status"`
	LastTransfer *TransferRecord     `json:"lastTransfer,omitempty"`
	Account      *model.Account      `json:"account,omitempty"`
	Identity     *model.HostIdentity `json:"identity,omitempty"`
}

// Created is returned once by Create. The mnemonic is never stored.
type Created struct {
	Address  string
	Mnemonic string
}

// ReceiveInfo is what a payer needs to send funds to the wallet
type ReceiveInfo struct {
	Address     string
	Network     network.Profile
	ExplorerURL string
	QR          []byte // PNG
}
