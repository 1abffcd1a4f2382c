package custody

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/AlexZinkM/evm-wallet/internal/crypto"
	"github.com/AlexZinkM/evm-wallet/mock"

	"github.com/ipfs/go-datastore"
	dssync "github.com/ipfs/go-datastore/sync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, opts ...Option) (*Manager, datastore.Datastore) {
	ds := dssync.MutexWrap(datastore.NewMapDatastore())
	m, err := NewManager(ds, append([]Option{KDFParams(crypto.LightParams)}, opts...)...)
	require.NoError(t, err)
	return m, ds
}

func TestNewManager_NilDatastore(t *testing.T) {
	t.Parallel()

	m, err := NewManager(nil)
	assert.Nil(t, m)
	assert.Equal(t, ErrNilDatastore, err)
}

func TestNewManager_OptionError(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("expected error")
	m, err := NewManager(datastore.NewMapDatastore(), func(cfg *config) error { return expectedErr })
	assert.Nil(t, m)
	assert.Equal(t, expectedErr, err)
}

func TestLocalSlot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m, ds := newTestManager(t)

	_, err := m.LoadLocal(ctx)
	assert.Equal(t, ErrNoLocalWallet, err)

	km, err := m.Generate()
	require.NoError(t, err)
	blob, err := m.Encrypt(km.PrivateKey, []byte("secret1"))
	require.NoError(t, err)

	require.NoError(t, m.PersistLocal(ctx, blob))
	stored, err := ds.Get(ctx, datastore.NewKey(WalletEncryptedDatastoreKey))
	require.NoError(t, err)
	assert.Equal(t, blob, stored)

	loaded, err := m.LoadLocal(ctx)
	require.NoError(t, err)
	key, err := m.Decrypt(loaded, []byte("secret1"))
	require.NoError(t, err)
	assert.Equal(t, km.PrivateKey.D, key.D)

	_, err = m.Decrypt(loaded, []byte("wrong12"))
	assert.Equal(t, crypto.ErrDecrypt, err)

	require.NoError(t, m.ClearLocal(ctx))
	_, err = m.LoadLocal(ctx)
	assert.Equal(t, ErrNoLocalWallet, err)

	// clearing an empty slot is fine
	assert.NoError(t, m.ClearLocal(ctx))
}

func TestPersistLocal_Overwrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m, _ := newTestManager(t)

	require.NoError(t, m.PersistLocal(ctx, []byte("first")))
	require.NoError(t, m.PersistLocal(ctx, []byte("second")))

	blob, err := m.LoadLocal(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), blob)
}

func TestRemoteSlot(t *testing.T) {
	t.Parallel()

	t.Run("no remote store should error", func(t *testing.T) {
		t.Parallel()

		m, _ := newTestManager(t)
		assert.Equal(t, ErrNoRemoteStore, m.PersistRemote(context.Background(), "user-1", []byte("x")))
		_, err := m.LoadRemote(context.Background(), "user-1")
		assert.Equal(t, ErrNoRemoteStore, err)
	})
	t.Run("empty account should error", func(t *testing.T) {
		t.Parallel()

		m, _ := newTestManager(t, RemoteBackup(&mock.RemoteStoreStub{}))
		assert.Equal(t, ErrEmptyAccountID, m.PersistRemote(context.Background(), "", []byte("x")))
	})
	t.Run("missing backup should return ErrNoBackup", func(t *testing.T) {
		t.Parallel()

		m, _ := newTestManager(t, RemoteBackup(&mock.RemoteStoreStub{}))
		_, err := m.LoadRemote(context.Background(), "user-1")
		assert.Equal(t, ErrNoBackup, err)
	})
	t.Run("store error is returned", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("expected error")
		m, _ := newTestManager(t, RemoteBackup(&mock.RemoteStoreStub{
			GetBackupCalled: func(ctx context.Context, accountID string) ([]byte, bool, error) {
				return nil, false, expectedErr
			},
		}))
		_, err := m.LoadRemote(context.Background(), "user-1")
		assert.Equal(t, expectedErr, err)
	})
	t.Run("local and remote slots are independent", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		remote := &mock.RemoteStoreStub{}
		m, _ := newTestManager(t, RemoteBackup(remote))

		require.NoError(t, m.PersistLocal(ctx, []byte("local")))
		require.NoError(t, m.PersistRemote(ctx, "user-1", []byte("remote")))
		require.NoError(t, m.ClearLocal(ctx))

		blob, err := m.LoadRemote(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, []byte("remote"), blob)
		assert.Equal(t, 1, remote.PutCount())
	})
}

func TestPersistRemote_Serialized(t *testing.T) {
	t.Parallel()

	var mut sync.Mutex
	inFlight, maxInFlight := 0, 0
	remote := &mock.RemoteStoreStub{
		PutBackupCalled: func(ctx context.Context, accountID string, blob []byte) error {
			mut.Lock()
			inFlight++
			if inFlight > maxInFlight {
				maxInFlight = inFlight
			}
			mut.Unlock()

			mut.Lock()
			inFlight--
			mut.Unlock()
			return nil
		},
	}
	m, _ := newTestManager(t, RemoteBackup(remote))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, m.PersistRemote(context.Background(), "user-1", []byte("x")))
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxInFlight)
}

func TestReencrypt(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t)
	km, err := m.Generate()
	require.NoError(t, err)
	blob, err := m.Encrypt(km.PrivateKey, []byte("secret1"))
	require.NoError(t, err)

	newBlob, err := m.Reencrypt(blob, []byte("secret1"), []byte("secret2"))
	require.NoError(t, err)
	key, err := m.Decrypt(newBlob, []byte("secret2"))
	require.NoError(t, err)
	assert.Equal(t, km.PrivateKey.D, key.D)
}
