package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// conditionalHTTPLogger only logs HTTP requests when HTTP logging is enabled
func (h *Handlers) conditionalHTTPLogger(next http.Handler) http.Handler {
	logger := middleware.Logger(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Log != nil && h.Log.IsHTTPLoggingEnabled() {
			logger.ServeHTTP(w, r)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

// handleIndex serves the scoreboard page.
func (h *Handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	if h.staticFS == nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFileFS(w, r, h.staticFS, "index.html")
}

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.conditionalHTTPLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)
	r.Use(middleware.Timeout(60 * time.Second))

	// Static files (served from embedded filesystem)
	if h.staticServer != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", h.staticServer))
	}

	// Scoreboard page
	r.Get("/", h.handleIndex)

	// WebSocket
	if h.Hub != nil {
		r.Get("/ws", h.Hub.ServeWs)
	}

	// Auth (public)
	r.Post("/api/auth/register", h.handleRegister)
	r.Post("/api/auth/login", h.handleLogin)
	r.Post("/api/auth/logout", h.handleLogout)

	// Read-only API (public, the scoreboard must work without an account)
	r.Get("/api/teams", h.handleGetTeams)
	r.Get("/api/games", h.handleGetGames)
	r.Get("/api/games/{id}/rounds", h.handleGetGameRounds)
	r.Get("/api/rounds", h.handleGetRounds)
	r.Get("/api/scoreboard", h.handleGetScoreboard)
	r.Get("/api/settings", h.handleGetSettings)
	r.Get("/api/share", h.handleShareLink)
	r.Get("/api/share/qr", h.handleShareQR)

	// Writes require a logged-in facilitator
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.RequireAuthAPI)

		r.Get("/api/auth/me", h.handleMe)

		r.Post("/api/games", h.handleCreateGame)
		r.Delete("/api/games/{id}", h.handleDeleteGame)

		r.Post("/api/rounds", h.handleCreateRound)
		r.Delete("/api/rounds/{id}", h.handleDeleteRound)

		r.Put("/api/settings", h.handleUpdateSettings)
	})

	return r
}
