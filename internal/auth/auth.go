package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"
)

const (
	CookieName    = "gincana_session"
	SessionExpiry = 24 * time.Hour
)

type contextKey string

// userKey carries the logged-in session through request contexts.
const userKey contextKey = "gincana_user"

// Session is one logged-in facilitator.
type Session struct {
	UserID   string
	Username string
	Expiry   time.Time
}

// Auth tracks logged-in sessions in memory. Tokens do not survive a
// restart; facilitators just log in again.
type Auth struct {
	sessions map[string]Session
	mu       sync.RWMutex
}

// New creates a new Auth instance
func New() *Auth {
	return &Auth{sessions: make(map[string]Session)}
}

// StartSession issues a token for a freshly authenticated user.
func (a *Auth) StartSession(userID, username string) string {
	token := generateToken()
	a.mu.Lock()
	a.sessions[token] = Session{
		UserID:   userID,
		Username: username,
		Expiry:   time.Now().Add(SessionExpiry),
	}
	a.mu.Unlock()
	return token
}

// EndSession invalidates a session token
func (a *Auth) EndSession(token string) {
	a.mu.Lock()
	delete(a.sessions, token)
	a.mu.Unlock()
}

// SessionFor returns the session behind a token, expiring it lazily.
func (a *Auth) SessionFor(token string) (Session, bool) {
	a.mu.RLock()
	sess, exists := a.sessions[token]
	a.mu.RUnlock()

	if !exists {
		return Session{}, false
	}
	if time.Now().After(sess.Expiry) {
		a.mu.Lock()
		delete(a.sessions, token)
		a.mu.Unlock()
		return Session{}, false
	}
	return sess, true
}

// SessionFromRequest extracts and validates the session cookie.
func (a *Auth) SessionFromRequest(r *http.Request) (Session, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Session{}, false
	}
	return a.SessionFor(cookie.Value)
}

// RequireAuthAPI middleware for API endpoints (returns 401)
func (a *Auth) RequireAuthAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := a.SessionFromRequest(r)
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"code":"UNAUTHORIZED","error":"Unauthorized - please log in"}`))
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, sess)))
	})
}

// SessionFromContext returns the session placed by RequireAuthAPI.
func SessionFromContext(ctx context.Context) (Session, bool) {
	sess, ok := ctx.Value(userKey).(Session)
	return sess, ok
}

// SetSessionCookie sets the session cookie on the response
func SetSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(SessionExpiry.Seconds()),
	})
}

// ClearSessionCookie removes the session cookie
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// generateToken creates a random session token
func generateToken() string {
	bytes := make([]byte, 32)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
