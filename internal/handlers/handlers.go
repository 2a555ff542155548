package handlers

import (
	"io/fs"
	"net/http"

	"gincana/internal/auth"
	"gincana/internal/services"
	"gincana/internal/websocket"
)

// NewStaticServer creates a static file server from an fs.FS
func NewStaticServer(staticFS fs.FS) http.Handler {
	return http.FileServer(http.FS(staticFS))
}

// HTTPLogger is an interface for loggers that support HTTP logging control
type HTTPLogger interface {
	IsHTTPLoggingEnabled() bool
}

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Catalog    services.CatalogServicer
	Ledger     services.LedgerServicer
	Scoreboard services.ScoreboardServicer
	User       services.UserServicer
	Settings   services.SettingsServicer
	Share      services.ShareServicer
	Auth       *auth.Auth
	Hub        *websocket.Hub
	Log        HTTPLogger

	staticFS     fs.FS
	staticServer http.Handler
}

// New creates a new Handlers instance with all dependencies
func New(
	catalog services.CatalogServicer,
	ledger services.LedgerServicer,
	scoreboard services.ScoreboardServicer,
	user services.UserServicer,
	settings services.SettingsServicer,
	share services.ShareServicer,
	staticFS fs.FS,
	sessions *auth.Auth,
	hub *websocket.Hub,
	log HTTPLogger,
) *Handlers {
	return &Handlers{
		Catalog:      catalog,
		Ledger:       ledger,
		Scoreboard:   scoreboard,
		User:         user,
		Settings:     settings,
		Share:        share,
		Auth:         sessions,
		Hub:          hub,
		Log:          log,
		staticFS:     staticFS,
		staticServer: NewStaticServer(staticFS),
	}
}

// NoopHTTPLogger is a test logger that always returns false for HTTP logging
type NoopHTTPLogger struct{}

func (NoopHTTPLogger) IsHTTPLoggingEnabled() bool { return false }

// broadcastScoreboard pushes a fresh standing to websocket viewers after a
// write that can move scores. The hub is optional in tests.
func (h *Handlers) broadcastScoreboard(r *http.Request) {
	if h.Hub != nil {
		h.Hub.BroadcastScoreboard(r.Context())
	}
}
