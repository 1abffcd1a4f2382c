package handler

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlexZinkM/evm-wallet/internal/model"
	"github.com/AlexZinkM/evm-wallet/internal/wallet"
)

// WalletHandler exposes one wallet session over HTTP
type WalletHandler struct {
	session *wallet.Session
}

// NewWalletHandler creates a new WalletHandler for session
func NewWalletHandler(session *wallet.Session) (*WalletHandler, error) {
	if session == nil {
		return nil, errors.New("session is nil")
	}
	return &WalletHandler{session: session}, nil
}

// Status handles GET /wallet/status
// @Summary      Get wallet status
// @Description  Returns state, address, network, balance, status line and last transfer of the session
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  wallet.Snapshot
// @Router       /wallet/status [get]
func (h *WalletHandler) Status(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, h.session.Snapshot())
}

// Create handles POST /wallet/create
// @Summary      Create new wallet
// @Description  Generates a wallet, saves it encrypted on this device and backs it up when signed in. The mnemonic is returned once.
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.PasswordRequest  true  "Wallet password"
// @Success      200      {object}  model.CreateResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /wallet/create [post]
func (h *WalletHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.PasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}
	password := []byte(req.Password)
	defer clear(password)

	created, err := h.session.Create(r.Context(), password)
	if err != nil && created == nil {
		writeError(w, err)
		return
	}

	// A failed backup still leaves the wallet saved here, and the mnemonic must reach the user
	writeJSON(w, http.StatusOK, model.CreateResponse{
		Success:  err == nil,
		Message:  h.session.Snapshot().Status.Message,
		Address:  created.Address,
		Mnemonic: created.Mnemonic,
	})
}

// Unlock handles POST /wallet/unlock
// @Summary      Unlock wallet
// @Description  Decrypts the wallet saved on this device
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.PasswordRequest  true  "Wallet password"
// @Success      200      {object}  model.MessageResponse
// @Failure      401      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Router       /wallet/unlock [post]
func (h *WalletHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.PasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}
	password := []byte(req.Password)
	defer clear(password)

	if err := h.session.Unlock(r.Context(), password); err != nil {
		writeError(w, err)
		return
	}
	h.writeStatus(w)
}

// Restore handles POST /wallet/restore
// @Summary      Restore wallet from backup
// @Description  Fetches the account backup, decrypts it and saves it on this device
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.RestoreRequest  true  "Account and wallet password"
// @Success      200      {object}  model.MessageResponse
// @Failure      401      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Router       /wallet/restore [post]
func (h *WalletHandler) Restore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.RestoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}
	password := []byte(req.Password)
	defer clear(password)

	if err := h.session.Restore(r.Context(), req.AccountID, password); err != nil {
		writeError(w, err)
		return
	}
	h.writeStatus(w)
}

// Backup handles POST /wallet/backup
// @Summary      Back up wallet
// @Description  Copies the wallet saved on this device to the signed-in account
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.MessageResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /wallet/backup [post]
func (h *WalletHandler) Backup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	if err := h.session.Backup(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	h.writeStatus(w)
}

// Delete handles POST /wallet/delete
// @Summary      Delete wallet from this device
// @Description  Removes the local wallet and forgets the key. A remote backup is kept.
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.MessageResponse
// @Router       /wallet/delete [post]
func (h *WalletHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	if err := h.session.Delete(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	h.writeStatus(w)
}

// GetBalance handles GET /wallet/balance
// @Summary      Get wallet balance
// @Description  Refreshes and returns the native balance on the selected network
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.BalanceResponse
// @Failure      409  {object}  model.ErrorResponse
// @Failure      502  {object}  model.ErrorResponse
// @Router       /wallet/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	if h.session.Snapshot().Address == "" {
		writeError(w, wallet.ErrNoActiveWallet)
		return
	}
	if err := h.session.RefreshBalance(r.Context()); err != nil {
		writeError(w, err)
		return
	}

	snap := h.session.Snapshot()
	writeJSON(w, http.StatusOK, model.BalanceResponse{
		Address: snap.Address,
		Network: snap.Network.Key,
		Symbol:  snap.Network.Symbol,
		Balance: snap.Balance,
	})
}

// Receive handles GET /wallet/receive
// @Summary      Get receive address
// @Description  Returns the wallet address, its explorer link and a QR code (base64 PNG)
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.ReceiveResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /wallet/receive [get]
func (h *WalletHandler) Receive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	info, err := h.session.Receive()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ReceiveResponse{
		Address:     info.Address,
		Network:     info.Network.Key,
		Symbol:      info.Network.Symbol,
		ExplorerURL: info.ExplorerURL,
		QR:          base64.StdEncoding.EncodeToString(info.QR),
	})
}

// Send handles POST /wallet/send
// @Summary      Send native asset
// @Description  Validates and broadcasts a native transfer on the selected network. Confirmation is tracked in /wallet/status.
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.SendRequest  true  "Transfer data"
// @Success      200      {object}  model.SendResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /wallet/send [post]
func (h *WalletHandler) Send(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}

	record, err := h.session.Send(r.Context(), req.ToAddress, req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.SendResponse{
		TxHash:      record.Hash,
		ExplorerURL: record.ExplorerURL,
		Status:      string(record.Status),
	})
}

func (h *WalletHandler) writeStatus(w http.ResponseWriter) {
	status := h.session.Snapshot().Status
	writeJSON(w, http.StatusOK, model.MessageResponse{
		Success: status.Kind != wallet.StatusError,
		Message: status.Message,
	})
}
