package handlers

import "net/http"

// handleGetScoreboard returns the derived standing with the ledger.
func (h *Handlers) handleGetScoreboard(w http.ResponseWriter, r *http.Request) {
	board, err := h.Scoreboard.GetScoreboard(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, board)
}

// handleShareLink returns the address other devices should open.
func (h *Handlers) handleShareLink(w http.ResponseWriter, r *http.Request) {
	link, err := h.Share.ShareLink(r.Context())
	if err != nil {
		respondError(w, BadRequest("Share link is not configured"))
		return
	}
	respondOK(w, ShareResponse{Link: link})
}

// handleShareQR serves the join link as a PNG QR code.
func (h *Handlers) handleShareQR(w http.ResponseWriter, r *http.Request) {
	png, err := h.Share.ShareQR(r.Context())
	if err != nil {
		respondError(w, BadRequest("Share link is not configured"))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
