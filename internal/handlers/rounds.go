package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"gincana/internal/auth"
)

// handleGetRounds returns the full enriched ledger.
func (h *Handlers) handleGetRounds(w http.ResponseWriter, r *http.Request) {
	rounds, err := h.Ledger.ListRounds(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, rounds)
}

// handleCreateRound records a round outcome for the logged-in facilitator.
func (h *Handlers) handleCreateRound(w http.ResponseWriter, r *http.Request) {
	var req RoundCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	createdBy := ""
	if sess, ok := auth.SessionFromContext(r.Context()); ok {
		createdBy = sess.UserID
	}

	round, err := h.Ledger.AddRound(r.Context(), req.GameID, req.TeamWinnerID, req.Participants, createdBy)
	if err != nil {
		respondError(w, err)
		return
	}
	if round == nil {
		respondError(w, BadRequest("Round needs an existing game, an existing team and at least one participant"))
		return
	}

	h.broadcastScoreboard(r)
	respondCreated(w, round)
}

// handleDeleteRound removes one ledger entry and rebroadcasts the standing.
func (h *Handlers) handleDeleteRound(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Ledger.DeleteRound(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	h.broadcastScoreboard(r)
	respondDeleted(w)
}
