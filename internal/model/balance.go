package model

// BalanceResponse represents response for GET /wallet/balance
type BalanceResponse struct {
	Address string `json:"address"`
	Network string `json:"network"`
	Symbol  string `json:"symbol"`
	Balance string `json:"balance"`
}

// ReceiveResponse represents response for GET /wallet/receive
type ReceiveResponse struct {
	Address     string `json:"address"`
	Network     string `json:"network"`
	Symbol      string `json:"symbol"`
	ExplorerURL string `json:"explorerUrl"`
	QR          string `json:"QR"` // base64 PNG
}
