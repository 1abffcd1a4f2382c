package handler

import (
	"encoding/json"
	"net/http"

	"github.com/AlexZinkM/evm-wallet/internal/model"
)

// Account handles GET /account
// @Summary      Get account
// @Description  Re-reads the signed-in account, picking up a confirmed email
// @Tags         account
// @Produce      json
// @Success      200  {object}  model.Account
// @Failure      401  {object}  model.ErrorResponse
// @Router       /account [get]
func (h *WalletHandler) Account(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	acct, err := h.session.RefreshAccount(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, acct)
}

// SignUp handles POST /account/signup
// @Summary      Sign up
// @Description  Registers an account with the hosted backend
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        request  body      model.CredentialsRequest  true  "Email and password"
// @Success      200      {object}  model.Account
// @Failure      400      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /account/signup [post]
func (h *WalletHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}

	acct, err := h.session.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, acct)
}

// SignIn handles POST /account/signin
// @Summary      Sign in
// @Description  Starts an account session with the hosted backend
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        request  body      model.CredentialsRequest  true  "Email and password"
// @Success      200      {object}  model.Account
// @Failure      400      {object}  model.ErrorResponse
// @Failure      502      {object}  model.ErrorResponse
// @Router       /account/signin [post]
func (h *WalletHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}

	acct, err := h.session.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, acct)
}

// SetUsername handles POST /account/username
// @Summary      Set username
// @Description  Saves the username of the signed-in account
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        request  body      model.UsernameRequest  true  "Username"
// @Success      200      {object}  model.Account
// @Failure      401      {object}  model.ErrorResponse
// @Router       /account/username [post]
func (h *WalletHandler) SetUsername(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.UsernameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}

	acct, err := h.session.SetUsername(r.Context(), req.Username)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, acct)
}

// SignOut handles POST /account/signout
// @Summary      Sign out
// @Description  Ends the account session. The wallet on this device is not touched.
// @Tags         account
// @Produce      json
// @Success      200  {object}  model.MessageResponse
// @Router       /account/signout [post]
func (h *WalletHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	if err := h.session.SignOut(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	h.writeStatus(w)
}
