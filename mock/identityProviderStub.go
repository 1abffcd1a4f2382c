package mock

import "github.com/AlexZinkM/evm-wallet/internal/model"

// IdentityProviderStub -
type IdentityProviderStub struct {
	IdentityCalled func() (*model.HostIdentity, error)
}

// Identity -
func (is *IdentityProviderStub) Identity() (*model.HostIdentity, error) {
	if is.IdentityCalled != nil {
		return is.IdentityCalled()
	}

	return nil, nil
}

// IsInterfaceNil -
func (is *IdentityProviderStub) IsInterfaceNil() bool {
	return is == nil
}
