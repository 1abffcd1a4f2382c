package mock

import (
	"context"
	"sync"
)

// RemoteStoreStub is an in-memory remote backup slot per account
type RemoteStoreStub struct {
	PutBackupCalled func(ctx context.Context, accountID string, blob []byte) error
	GetBackupCalled func(ctx context.Context, accountID string) ([]byte, bool, error)

	mut     sync.Mutex
	backups map[string][]byte
	puts    int
}

// PutBackup -
func (rs *RemoteStoreStub) PutBackup(ctx context.Context, accountID string, blob []byte) error {
	if rs.PutBackupCalled != nil {
		return rs.PutBackupCalled(ctx, accountID, blob)
	}

	rs.mut.Lock()
	defer rs.mut.Unlock()

	if rs.backups == nil {
		rs.backups = make(map[string][]byte)
	}
	rs.backups[accountID] = append([]byte(nil), blob...)
	rs.puts++
	return nil
}

// GetBackup -
func (rs *RemoteStoreStub) GetBackup(ctx context.Context, accountID string) ([]byte, bool, error) {
	if rs.GetBackupCalled != nil {
		return rs.GetBackupCalled(ctx, accountID)
	}

	rs.mut.Lock()
	defer rs.mut.Unlock()

	blob, ok := rs.backups[accountID]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), blob...), true, nil
}

// PutCount returns how many backups were written through the default implementation
func (rs *RemoteStoreStub) PutCount() int {
	rs.mut.Lock()
	defer rs.mut.Unlock()

	return rs.puts
}

// IsInterfaceNil -
func (rs *RemoteStoreStub) IsInterfaceNil() bool {
	return rs == nil
}
