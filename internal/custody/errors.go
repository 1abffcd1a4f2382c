package custody

import "errors"

// ErrNoLocalWallet signals that the local slot holds no keystore
var ErrNoLocalWallet = errors.New("no wallet saved on this device")

// ErrNoBackup signals that the account has no keystore in the remote slot
var ErrNoBackup = errors.New("no backup found for this account")

// ErrNoRemoteStore signals that remote operations were requested without a remote store
var ErrNoRemoteStore = errors.New("remote backup store not configured")

// ErrNilDatastore signals that a nil datastore was provided
var ErrNilDatastore = errors.New("nil datastore")

// ErrEmptyAccountID signals that a remote operation was requested without an account
var ErrEmptyAccountID = errors.New("empty account id")
