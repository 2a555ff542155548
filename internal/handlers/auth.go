package handlers

import (
	"net/http"
	"strings"

	"gincana/internal/auth"
)

// handleRegister creates an account and logs it in right away.
func (h *Handlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" {
		respondError(w, BadRequest("Username and email are required"))
		return
	}
	if req.Password != req.ConfirmPassword {
		respondError(w, BadRequest("Passwords do not match"))
		return
	}

	user, err := h.User.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	token := h.Auth.StartSession(user.ID, user.Username)
	auth.SetSessionCookie(w, token)
	respondCreated(w, toUserResponse(user))
}

// handleLogin checks credentials and opens a session.
func (h *Handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	user, err := h.User.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	token := h.Auth.StartSession(user.ID, user.Username)
	auth.SetSessionCookie(w, token)
	respondOK(w, toUserResponse(user))
}

// handleLogout closes the session behind the cookie, if any.
func (h *Handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		h.Auth.EndSession(cookie.Value)
	}

	auth.ClearSessionCookie(w)
	respondSuccess(w, "Logged out")
}

// handleMe reports who is behind the current session.
func (h *Handlers) handleMe(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		respondError(w, ErrUnauthorized)
		return
	}
	respondOK(w, UserResponse{ID: sess.UserID, Username: sess.Username, Role: "user"})
}
