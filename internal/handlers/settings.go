package handlers

import (
	"net/http"
	"strings"
)

// handleGetSettings returns the event settings.
func (h *Handlers) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	eventName, err := h.Settings.GetEventName(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	baseURL, err := h.Settings.GetBaseURL(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, SettingsResponse{EventName: eventName, BaseURL: baseURL})
}

// handleUpdateSettings stores the event settings. Only fields present in
// the request change.
func (h *Handlers) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if req.EventName != "" {
		if err := h.Settings.SetEventName(r.Context(), req.EventName); err != nil {
			respondError(w, err)
			return
		}
	}
	if strings.TrimSpace(req.BaseURL) != "" {
		if err := h.Settings.SetBaseURL(r.Context(), strings.TrimSpace(req.BaseURL)); err != nil {
			respondError(w, err)
			return
		}
	}

	h.broadcastScoreboard(r)
	respondSuccess(w, "Settings updated")
}
