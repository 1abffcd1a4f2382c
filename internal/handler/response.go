package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlexZinkM/evm-wallet/internal/model"
	"github.com/AlexZinkM/evm-wallet/internal/wallet"
)

// errorStatus maps a session error to its HTTP status code and error code
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, wallet.ErrNoLocalWallet), errors.Is(err, wallet.ErrNoBackup):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, wallet.ErrNotSignedIn):
		return http.StatusUnauthorized, "not_signed_in"
	case errors.Is(err, wallet.ErrValidation):
		return http.StatusBadRequest, "validation"
	case errors.Is(err, wallet.ErrDecrypt):
		return http.StatusUnauthorized, "decrypt"
	case errors.Is(err, wallet.ErrPrecondition):
		return http.StatusConflict, "precondition"
	case errors.Is(err, wallet.ErrNetwork):
		return http.StatusBadGateway, "network"
	case errors.Is(err, wallet.ErrBackend):
		return http.StatusBadGateway, "backend"
	case errors.Is(err, wallet.ErrConfirmation):
		return http.StatusBadGateway, "confirmation"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status, code := errorStatus(err)
	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: code})
}

func writeBadRequest(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: "bad_request"})
}
