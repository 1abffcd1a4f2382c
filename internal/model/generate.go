package model

// PasswordRequest represents request for POST /wallet/create, /wallet/unlock and /wallet/restore
type PasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// CreateResponse represents response for POST /wallet/create
type CreateResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Address  string `json:"address,omitempty"`
	Mnemonic string `json:"mnemonic,omitempty"` // shown once, never stored
}

// RestoreRequest represents request for POST /wallet/restore
type RestoreRequest struct {
	AccountID string `json:"accountId,omitempty"` // defaults to the signed-in account
	Password  string `json:"password" binding:"required"`
}

// MessageResponse represents response of operations that only report a status line
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
