package model

// CredentialsRequest represents request for POST /account/signup and /account/signin
type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UsernameRequest represents request for POST /account/username
type UsernameRequest struct {
	Username string `json:"username" binding:"required"`
}

// NetworkRequest represents request for POST /networks/select
type NetworkRequest struct {
	Network string `json:"network" binding:"required"`
}

// Account represents the signed-in hosted backend user
type Account struct {
	UserID        string `json:"userId"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"emailVerified"`
	Username      string `json:"username,omitempty"`
	AccessToken   string `json:"-"`
}

// Ready reports whether the account may own a wallet backup
func (a *Account) Ready() bool {
	return a != nil && a.EmailVerified && a.Username != ""
}

// HostIdentity represents the user the chat mini-app shell launched us for
type HostIdentity struct {
	UserID    int64  `json:"userId"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// DisplayName returns first and last name, falling back to the handle
func (h *HostIdentity) DisplayName() string {
	name := h.FirstName
	if h.LastName != "" {
		if name != "" {
			name += " "
		}
		name += h.LastName
	}
	if name == "" {
		name = h.Username
	}
	return name
}

// NetworksResponse represents response for GET /networks
type NetworksResponse struct {
	Selected string        `json:"selected"`
	Networks []NetworkInfo `json:"networks"`
}

// NetworkInfo is the public part of a network profile
type NetworkInfo struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	ChainID  uint64 `json:"chainId"`
	Decimals int    `json:"decimals"`
}
