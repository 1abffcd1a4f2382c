package wallet

import (
	"errors"
	"fmt"

	"github.com/AlexZinkM/evm-wallet/evm"
	"github.com/AlexZinkM/evm-wallet/internal/crypto"
	"github.com/AlexZinkM/evm-wallet/internal/custody"
)

// Error categories, matched with errors.Is. An empty local or remote slot is
// reported with ErrNoLocalWallet or ErrNoBackup instead.
var (
	// ErrValidation signals bad user input: nothing was sent anywhere
	ErrValidation = errors.New("validation error")

	// ErrDecrypt signals a wrong password or a damaged keystore
	ErrDecrypt = errors.New("decrypt error")

	// ErrNetwork signals that the chain RPC endpoint failed
	ErrNetwork = errors.New("network error")

	// ErrBackend signals that the hosted backend failed
	ErrBackend = errors.New("backend error")

	// ErrConfirmation signals that a broadcast transaction did not confirm
	ErrConfirmation = errors.New("confirmation error")

	// ErrPrecondition signals that the operation is not allowed in the current state
	ErrPrecondition = errors.New("precondition failed")
)

var (
	// ErrPasswordTooShort signals a password under MinPasswordLength characters
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)

	// ErrPasswordRequired signals an empty password
	ErrPasswordRequired = fmt.Errorf("%w: password required", ErrValidation)

	// ErrMissingTransferFields signals an empty destination or amount
	ErrMissingTransferFields = fmt.Errorf("%w: destination address and amount required", ErrValidation)

	// ErrMissingCredentials signals an empty email or password
	ErrMissingCredentials = fmt.Errorf("%w: email and password required", ErrValidation)

	// ErrMissingUsername signals an empty username
	ErrMissingUsername = fmt.Errorf("%w: username required", ErrValidation)

	// ErrAccountNotReady signals a linked account without verified email or username
	ErrAccountNotReady = fmt.Errorf("%w: verified email and username required", ErrValidation)

	// ErrNoActiveWallet signals an operation that needs an unlocked wallet
	ErrNoActiveWallet = fmt.Errorf("%w: no active wallet", ErrPrecondition)

	// ErrSendInProgress signals a send while another one is being validated or signed
	ErrSendInProgress = fmt.Errorf("%w: a send is already in progress", ErrPrecondition)

	// ErrSendCooldown signals a send inside the cooldown window of the previous broadcast
	ErrSendCooldown = fmt.Errorf("%w: cooldown active", ErrPrecondition)

	// ErrNotSignedIn signals an account operation without a signed-in account
	ErrNotSignedIn = fmt.Errorf("%w: not signed in", ErrPrecondition)

	// ErrAccountsDisabled signals an account operation without a configured backend
	ErrAccountsDisabled = fmt.Errorf("%w: accounts are not configured", ErrPrecondition)

	// ErrClosed signals an operation on a closed session
	ErrClosed = fmt.Errorf("%w: session closed", ErrPrecondition)

	// ErrNoLocalWallet signals that the local slot is empty
	ErrNoLocalWallet = custody.ErrNoLocalWallet

	// ErrNoBackup signals that the account has no remote backup
	ErrNoBackup = custody.ErrNoBackup
)

func categorize(category, err error) error {
	if err == nil || errors.Is(err, category) {
		return err
	}
	return fmt.Errorf("%w: %w", category, err)
}

// gatewayError puts a gateway failure into its category
func gatewayError(err error) error {
	switch {
	case errors.Is(err, evm.ErrInvalidAddress),
		errors.Is(err, evm.ErrInvalidAmount),
		errors.Is(err, evm.ErrInsufficientFunds):
		return categorize(ErrValidation, err)
	case errors.Is(err, evm.ErrConfirmation):
		return categorize(ErrConfirmation, err)
	default:
		return categorize(ErrNetwork, err)
	}
}

// custodyError puts a custody failure into its category
func custodyError(err error) error {
	switch {
	case errors.Is(err, crypto.ErrDecrypt):
		return categorize(ErrDecrypt, err)
	case errors.Is(err, custody.ErrNoLocalWallet), errors.Is(err, custody.ErrNoBackup):
		return err
	case errors.Is(err, custody.ErrNoRemoteStore), errors.Is(err, custody.ErrEmptyAccountID):
		return categorize(ErrPrecondition, err)
	default:
		return err
	}
}
