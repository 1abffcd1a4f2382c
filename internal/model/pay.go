package model

// SendRequest represents request for POST /wallet/send
type SendRequest struct {
	ToAddress string `json:"toAddress" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
}

// SendResponse represents response for POST /wallet/send
type SendResponse struct {
	TxHash      string `json:"txHash"`
	ExplorerURL string `json:"explorerUrl"`
	Status      string `json:"status"`
}
