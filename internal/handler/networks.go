package handler

import (
	"encoding/json"
	"net/http"

	"github.com/AlexZinkM/evm-wallet/internal/model"
	"github.com/AlexZinkM/evm-wallet/internal/network"
)

// ListNetworks handles GET /networks
// @Summary      List networks
// @Description  Lists the selectable EVM networks and the selected one
// @Tags         networks
// @Produce      json
// @Success      200  {object}  model.NetworksResponse
// @Router       /networks [get]
func (h *WalletHandler) ListNetworks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	profiles := h.session.Networks()
	resp := model.NetworksResponse{
		Selected: h.session.Snapshot().Network.Key,
		Networks: make([]model.NetworkInfo, 0, len(profiles)),
	}
	for _, p := range profiles {
		resp.Networks = append(resp.Networks, networkInfo(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

// SelectNetwork handles POST /networks/select
// @Summary      Select network
// @Description  Switches the active network. Unknown keys fall back to the default network.
// @Tags         networks
// @Accept       json
// @Produce      json
// @Param        request  body      model.NetworkRequest  true  "Network key"
// @Success      200      {object}  model.NetworkInfo
// @Failure      502      {object}  model.ErrorResponse
// @Router       /networks/select [post]
func (h *WalletHandler) SelectNetwork(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.NetworkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}

	// The switch happened even if the refresh failed; the balance error stays in /wallet/status
	profile, _ := h.session.SelectNetwork(r.Context(), req.Network)
	writeJSON(w, http.StatusOK, networkInfo(profile))
}

func networkInfo(p network.Profile) model.NetworkInfo {
	return model.NetworkInfo{
		Key:      p.Key,
		Name:     p.Name,
		Symbol:   p.Symbol,
		ChainID:  p.ChainID,
		Decimals: p.Decimals,
	}
}
