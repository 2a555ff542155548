package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleGetTeams returns the fixed team roster.
func (h *Handlers) handleGetTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.Catalog.ListTeams(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, teams)
}

// handleGetGames returns built-in games followed by custom ones.
func (h *Handlers) handleGetGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.Catalog.ListGames(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, games)
}

// handleCreateGame adds a custom game to the catalog.
func (h *Handlers) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req GameCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	game, err := h.Catalog.AddGame(r.Context(), req.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	if game == nil {
		respondError(w, BadRequest("Game name is required"))
		return
	}
	respondCreated(w, game)
}

// handleDeleteGame removes a custom game and its rounds. Scores can move,
// so the scoreboard is rebroadcast.
func (h *Handlers) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Catalog.DeleteGame(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	h.broadcastScoreboard(r)
	respondDeleted(w)
}

// handleGetGameRounds returns the ledger entries for one game.
func (h *Handlers) handleGetGameRounds(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rounds, err := h.Scoreboard.RoundsForGame(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, rounds)
}
