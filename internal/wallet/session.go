// Package wallet sequences wallet creation, unlocking, backup, deletion, network
// selection and sending, and keeps the status line the UI shows.
package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/AlexZinkM/evm-wallet/evm"
	"github.com/AlexZinkM/evm-wallet/internal/model"
	"github.com/AlexZinkM/evm-wallet/internal/network"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"golang.org/x/sync/errgroup"
)

const qrSize = 256

// Session is one user's wallet. It is safe for concurrent use.
type Session struct {
	id             string
	custody        Custody
	gateway        Gateway
	networks       *network.Selector
	accounts       AccountBackend
	confirmTimeout time.Duration
	sendCooldown   time.Duration
	identity       *model.HostIdentity

	// opMtx serializes create, unlock, restore, backup and delete
	opMtx sync.Mutex

	mtx          sync.RWMutex
	state        State
	profile      network.Profile
	key          *ecdsa.PrivateKey
	address      common.Address
	balance      string
	balanceErr   string
	status       Status
	lastTransfer *TransferRecord
	lastSend     time.Time
	account      *model.Account
	closed       bool

	// epoch changes whenever the wallet or network does, so late balance answers are dropped
	epoch uint64

	sending  atomic.Bool
	ctx      context.Context
	cancel   context.CancelFunc
	watchers errgroup.Group
}

// NewSession creates a session with no wallet on the default network
func NewSession(custody Custody, gateway Gateway, opts ...Option) (*Session, error) {
	if custody == nil {
		return nil, errors.New("custody is nil")
	}
	if gateway == nil {
		return nil, errors.New("gateway is nil")
	}

	cfg := &config{networks: network.Builtin()}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		id:             uuid.New().String(),
		custody:        custody,
		gateway:        gateway,
		networks:       cfg.networks,
		accounts:       cfg.accounts,
		confirmTimeout: cfg.confirmTimeout,
		sendCooldown:   cfg.sendCooldown,
		state:          StateNoWallet,
		profile:        cfg.networks.Resolve(cfg.networkKey),
		ctx:            ctx,
		cancel:         cancel,
	}

	if cfg.identity != nil {
		id, err := cfg.identity.Identity()
		if err != nil {
			log.Warnw("host identity unavailable", "session", s.id, "error", err)
		} else if id != nil {
			log.Infow("host user", "session", s.id, "user", id.UserID, "name", id.DisplayName())
		}
		s.identity = id
	}

	log.Infow("session started", "session", s.id, "network", s.profile.Key)
	return s, nil
}

// ID returns the session identifier used in logs
func (s *Session) ID() string {
	return s.id
}

// Networks returns the selectable network profiles
func (s *Session) Networks() []network.Profile {
	return s.networks.Profiles()
}

// Create generates a new wallet, saves it encrypted on this device and, when an
// account is signed in, backs it up. The mnemonic is returned once.
// A failed backup after the local save still leaves the wallet active.
func (s *Session) Create(ctx context.Context, password []byte) (*Created, error) {
	if len(password) < MinPasswordLength {
		s.setStatus(StatusError, "Password must be at least 6 characters.")
		return nil, ErrPasswordTooShort
	}
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	s.mtx.RLock()
	account := s.account
	s.mtx.RUnlock()
	if account != nil && !account.Ready() {
		s.setStatus(StatusError, "Verify your email and choose a username before creating a wallet.")
		return nil, ErrAccountNotReady
	}

	s.opMtx.Lock()
	defer s.opMtx.Unlock()

	prev := s.enter(StateCreating, "Creating wallet...")

	// Generate key and recovery phrase
	km, err := s.custody.Generate()
	if err != nil {
		s.leave(prev, StatusError, "Create failed: "+err.Error())
		return nil, err
	}

	// Encrypt with password
	blob, err := s.custody.Encrypt(km.PrivateKey, password)
	if err != nil {
		s.leave(prev, StatusError, "Create failed: "+err.Error())
		return nil, err
	}

	// Save on this device
	if err := s.custody.PersistLocal(ctx, blob); err != nil {
		s.leave(prev, StatusError, "Create failed: "+err.Error())
		return nil, err
	}

	s.activate(km.PrivateKey)
	log.Infow("wallet created", "session", s.id, "address", km.Address.Hex())

	created := &Created{Address: km.Address.Hex(), Mnemonic: km.Mnemonic}

	var backupErr error
	if account != nil {
		backupErr = s.custody.PersistRemote(ctx, account.UserID, blob)
		if backupErr != nil {
			log.Warnw("wallet backup failed", "session", s.id, "error", backupErr)
		}
	}

	_ = s.RefreshBalance(ctx)

	switch {
	case backupErr != nil:
		s.setStatus(StatusError, "Wallet saved on this device, but backup failed: "+backupErr.Error())
		return created, categorize(ErrBackend, custodyError(backupErr))
	case account != nil:
		s.setStatus(StatusSuccess, "Wallet created + saved on this device and backed up to your account.")
	default:
		s.setStatus(StatusSuccess, "Wallet created + saved on this device.")
	}
	return created, nil
}

// Unlock decrypts the wallet saved on this device
func (s *Session) Unlock(ctx context.Context, password []byte) error {
	if err := s.checkOpen(); err != nil {
		return err
	}

	s.opMtx.Lock()
	defer s.opMtx.Unlock()

	blob, err := s.custody.LoadLocal(ctx)
	if errors.Is(err, ErrNoLocalWallet) {
		s.setStatus(StatusError, "No wallet saved on this device. Create one first.")
		return ErrNoLocalWallet
	}
	if err != nil {
		s.setStatus(StatusError, "Unlock failed: "+err.Error())
		return err
	}

	return s.open(ctx, blob, password, "Wallet unlocked.")
}

// Restore fetches the account's backup, decrypts it and saves it on this device.
// An empty accountID means the signed-in account.
func (s *Session) Restore(ctx context.Context, accountID string, password []byte) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if accountID == "" {
		s.mtx.RLock()
		if s.account != nil {
			accountID = s.account.UserID
		}
		s.mtx.RUnlock()
	}
	if accountID == "" {
		s.setStatus(StatusError, "Sign in to restore a backup.")
		return ErrNotSignedIn
	}

	s.opMtx.Lock()
	defer s.opMtx.Unlock()

	blob, err := s.custody.LoadRemote(ctx, accountID)
	if errors.Is(err, ErrNoBackup) {
		s.setStatus(StatusError, "No backup found for this account.")
		return ErrNoBackup
	}
	if err != nil {
		s.setStatus(StatusError, "Restore failed: "+err.Error())
		err = custodyError(err)
		if !errors.Is(err, ErrPrecondition) {
			err = categorize(ErrBackend, err)
		}
		return err
	}

	if err := s.open(ctx, blob, password, "Wallet restored from backup."); err != nil {
		return err
	}

	// Keep a copy on this device only once the password proved right
	if err := s.custody.PersistLocal(ctx, blob); err != nil {
		s.setStatus(StatusError, "Wallet restored, but saving on this device failed: "+err.Error())
		return err
	}
	return nil
}

// Backup copies the wallet saved on this device to the signed-in account
func (s *Session) Backup(ctx context.Context) error {
	if err := s.checkOpen(); err != nil {
		return err
	}

	s.mtx.RLock()
	active := s.key != nil
	account := s.account
	s.mtx.RUnlock()

	if !active {
		s.setStatus(StatusError, "Create or unlock a wallet first.")
		return ErrNoActiveWallet
	}
	if account == nil {
		s.setStatus(StatusError, "Sign in to back up the wallet.")
		return ErrNotSignedIn
	}
	if !account.Ready() {
		s.setStatus(StatusError, "Verify your email and choose a username before backing up.")
		return ErrAccountNotReady
	}

	s.opMtx.Lock()
	defer s.opMtx.Unlock()

	blob, err := s.custody.LoadLocal(ctx)
	if err != nil {
		s.setStatus(StatusError, "Backup failed: "+err.Error())
		return err
	}
	if err := s.custody.PersistRemote(ctx, account.UserID, blob); err != nil {
		s.setStatus(StatusError, "Backup failed: "+err.Error())
		return categorize(ErrBackend, custodyError(err))
	}

	log.Infow("wallet backed up", "session", s.id, "account", account.UserID)
	s.setStatus(StatusSuccess, "Wallet backed up to your account.")
	return nil
}

// Delete removes the wallet from this device and from memory. A remote backup is kept.
func (s *Session) Delete(ctx context.Context) error {
	s.opMtx.Lock()
	defer s.opMtx.Unlock()

	if err := s.custody.ClearLocal(ctx); err != nil {
		s.setStatus(StatusError, "Delete failed: "+err.Error())
		return err
	}

	s.mtx.Lock()
	s.dropWallet()
	s.state = StateNoWallet
	s.status = Status{Kind: StatusInfo, Message: "Wallet deleted from this device."}
	s.mtx.Unlock()

	log.Infow("wallet deleted", "session", s.id)
	return nil
}

// Send validates and broadcasts a native transfer, then watches for its
// confirmation in the background. The returned record is a copy.
func (s *Session) Send(ctx context.Context, destination, amount string) (*TransferRecord, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	s.mtx.RLock()
	key, profile, lastSend := s.key, s.profile, s.lastSend
	s.mtx.RUnlock()

	if key == nil {
		s.setStatus(StatusError, "Create or unlock a wallet first.")
		return nil, ErrNoActiveWallet
	}

	if !s.sending.CompareAndSwap(false, true) {
		return nil, ErrSendInProgress
	}
	defer s.sending.Store(false)

	// Check cooldown
	if s.sendCooldown > 0 && !lastSend.IsZero() {
		if remaining := s.sendCooldown - time.Since(lastSend); remaining > 0 {
			err := fmt.Errorf("%w, please wait %v", ErrSendCooldown, remaining.Round(time.Second))
			s.setStatus(StatusError, "Send failed: "+err.Error())
			return nil, err
		}
	}

	destination, amount = strings.TrimSpace(destination), strings.TrimSpace(amount)
	if destination == "" || amount == "" {
		s.setStatus(StatusError, "Enter destination address + amount.")
		return nil, ErrMissingTransferFields
	}
	if _, err := evm.ValidateAddress(destination); err != nil {
		s.setStatus(StatusError, "Destination address looks invalid.")
		return nil, categorize(ErrValidation, err)
	}
	if _, err := evm.ParseAmount(amount, profile.Decimals); err != nil {
		s.setStatus(StatusError, "Amount looks invalid: "+err.Error())
		return nil, categorize(ErrValidation, err)
	}

	prev := s.enter(StateSending, "Sending transaction...")

	hash, err := s.gateway.Submit(ctx, key, profile, destination, amount)
	if err != nil {
		s.leave(prev, StatusError, "Send failed: "+err.Error())
		return nil, gatewayError(err)
	}

	record := &TransferRecord{
		Hash:        hash.Hex(),
		Network:     profile.Key,
		ExplorerURL: profile.TxURL(hash.Hex()),
		To:          destination,
		Amount:      amount,
		Status:      TransferBroadcast,
		CreatedAt:   time.Now(),
	}

	s.mtx.Lock()
	if s.state == StateSending {
		s.state = s.settled(prev)
	}
	s.lastTransfer = record
	s.lastSend = record.CreatedAt
	s.status = Status{Kind: StatusPending, Message: "Broadcasted. Waiting confirmation..."}
	out := *record
	s.mtx.Unlock()

	log.Infow("transfer broadcast", "session", s.id, "network", profile.Key, "tx", record.Hash)
	s.watch(hash, profile)
	return &out, nil
}

// watch waits for the receipt of hash in the background and updates the record.
// Once Close has begun no watcher is started.
func (s *Session) watch(hash common.Hash, profile network.Profile) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.closed {
		return
	}
	s.watchers.Go(func() error {
		ctx, cancel := s.ctx, context.CancelFunc(func() {})
		if s.confirmTimeout > 0 {
			ctx, cancel = context.WithTimeout(s.ctx, s.confirmTimeout)
		}
		defer cancel()

		err := s.gateway.AwaitConfirmation(ctx, hash, profile)

		s.mtx.Lock()
		if s.lastTransfer == nil || s.lastTransfer.Hash != hash.Hex() {
			// deleted or superseded
			s.mtx.Unlock()
			return nil
		}
		if err != nil {
			s.lastTransfer.Status = TransferFailed
			s.lastTransfer.Error = err.Error()
			s.status = Status{Kind: StatusError, Message: "Confirmation failed: " + err.Error() + ". Check the explorer before retrying."}
		} else {
			s.lastTransfer.Status = TransferConfirmed
			s.status = Status{Kind: StatusSuccess, Message: "Confirmed."}
		}
		s.mtx.Unlock()

		if err != nil {
			log.Warnw("transfer not confirmed", "session", s.id, "tx", hash.Hex(), "error", err)
			return nil
		}
		log.Infow("transfer confirmed", "session", s.id, "tx", hash.Hex())
		_ = s.RefreshBalance(s.ctx)
		return nil
	})
}

// SelectNetwork switches the active network. Unknown keys fall back to the default
// network. With an active wallet the balance is refreshed once against the new network.
func (s *Session) SelectNetwork(ctx context.Context, key string) (network.Profile, error) {
	profile := s.networks.Resolve(key)

	s.mtx.Lock()
	s.profile = profile
	s.epoch++
	s.balance, s.balanceErr = "", ""
	active := s.key != nil
	s.mtx.Unlock()

	log.Infow("network selected", "session", s.id, "network", profile.Key)
	if !active {
		return profile, nil
	}
	return profile, s.RefreshBalance(ctx)
}

// RefreshBalance reloads the balance of the active wallet. Without a wallet it does nothing.
func (s *Session) RefreshBalance(ctx context.Context) error {
	s.mtx.RLock()
	active, address, profile, epoch := s.key != nil, s.address, s.profile, s.epoch
	s.mtx.RUnlock()

	if !active {
		return nil
	}

	balance, err := s.gateway.GetBalance(ctx, address, profile)

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if epoch != s.epoch {
		// wallet or network changed meanwhile
		return nil
	}
	if err != nil {
		s.balanceErr = err.Error()
		s.status = Status{Kind: StatusError, Message: "Balance error: " + err.Error()}
		return gatewayError(err)
	}
	s.balance, s.balanceErr = balance, ""
	return nil
}

// Receive returns the wallet address with its explorer link and a QR code
func (s *Session) Receive() (*ReceiveInfo, error) {
	s.mtx.RLock()
	active, address, profile := s.key != nil, s.address.Hex(), s.profile
	s.mtx.RUnlock()

	if !active {
		return nil, ErrNoActiveWallet
	}

	png, err := qrcode.Encode(address, qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	return &ReceiveInfo{
		Address:     address,
		Network:     profile,
		ExplorerURL: profile.AddressURL(address),
		QR:          png,
	}, nil
}

// Snapshot returns a copy of the observable state
func (s *Session) Snapshot() Snapshot {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	snap := Snapshot{
		SessionID:    s.id,
		State:        s.state,
		Network:      s.profile,
		Balance:      s.balance,
		BalanceError: s.balanceErr,
		Status:       s.status,
	}
	if s.key != nil {
		snap.Address = s.address.Hex()
	}
	if s.lastTransfer != nil {
		t := *s.lastTransfer
		snap.LastTransfer = &t
	}
	if s.account != nil {
		a := *s.account
		snap.Account = &a
	}
	if s.identity != nil {
		id := *s.identity
		snap.Identity = &id
	}
	return snap
}

// Close stops confirmation watchers and forgets the key. The session cannot be used afterwards.
func (s *Session) Close() error {
	s.mtx.Lock()
	if s.closed {
		s.mtx.Unlock()
		return nil
	}
	s.closed = true
	s.mtx.Unlock()

	s.cancel()
	err := s.watchers.Wait()

	s.mtx.Lock()
	s.dropWallet()
	s.state = StateNoWallet
	s.mtx.Unlock()

	log.Infow("session closed", "session", s.id)
	return err
}

// open decrypts blob and makes it the active wallet. Must be called with opMtx held.
func (s *Session) open(ctx context.Context, blob, password []byte, success string) error {
	if len(password) == 0 {
		s.setStatus(StatusError, "Enter password to unlock.")
		return ErrPasswordRequired
	}

	prev := s.enter(StateUnlocking, "Unlocking wallet...")

	key, err := s.custody.Decrypt(blob, password)
	if err != nil {
		s.leave(prev, StatusError, "Unlock failed (wrong password).")
		return custodyError(err)
	}

	s.activate(key)
	log.Infow("wallet unlocked", "session", s.id, "address", ethcrypto.PubkeyToAddress(key.PublicKey).Hex())

	_ = s.RefreshBalance(ctx)
	s.setStatus(StatusSuccess, success)
	return nil
}

// activate installs key as the active wallet
func (s *Session) activate(key *ecdsa.PrivateKey) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.dropWallet()
	s.key = key
	s.address = ethcrypto.PubkeyToAddress(key.PublicKey)
	s.state = StateActive
}

// dropWallet forgets everything tied to the current wallet. Must be called with mtx held.
func (s *Session) dropWallet() {
	s.key = nil
	s.address = common.Address{}
	s.balance, s.balanceErr = "", ""
	s.lastTransfer = nil
	s.epoch++
}

// enter moves into a transient state and returns the state to go back to on failure
func (s *Session) enter(state State, message string) State {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	prev := s.state
	s.state = state
	s.status = Status{Kind: StatusPending, Message: message}
	return prev
}

// leave returns from a transient state after a failure
func (s *Session) leave(prev State, kind StatusKind, message string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.state = s.settled(prev)
	s.status = Status{Kind: kind, Message: message}
}

// settled is prev unless the wallet was deleted meanwhile. Must be called with mtx held.
func (s *Session) settled(prev State) State {
	if s.key == nil {
		return StateNoWallet
	}
	return prev
}

func (s *Session) setStatus(kind StatusKind, message string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.status = Status{Kind: kind, Message: message}
}

func (s *Session) checkOpen() error {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	if s.closed {
		return ErrClosed
	}
	return nil
}
