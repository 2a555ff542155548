package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	a := New()

	if a == nil {
		t.Fatal("expected auth to be created")
	}
	if a.sessions == nil {
		t.Error("expected sessions map to be initialized")
	}
}

func TestStartSession_IssuesToken(t *testing.T) {
	a := New()

	token := a.StartSession("u1", "maria")

	if token == "" {
		t.Error("expected token to be returned")
	}
	if len(token) != 64 { // 32 bytes = 64 hex chars
		t.Errorf("expected 64-char token, got %d chars", len(token))
	}

	sess, ok := a.SessionFor(token)
	if !ok {
		t.Fatal("expected session to be valid after start")
	}
	if sess.UserID != "u1" || sess.Username != "maria" {
		t.Errorf("unexpected session identity: %+v", sess)
	}
}

func TestEndSession_InvalidatesToken(t *testing.T) {
	a := New()
	token := a.StartSession("u1", "maria")

	a.EndSession(token)

	if _, ok := a.SessionFor(token); ok {
		t.Error("expected session to be invalid after end")
	}
}

func TestSessionFor_InvalidToken(t *testing.T) {
	a := New()

	if _, ok := a.SessionFor("nonexistent-token"); ok {
		t.Error("expected false for nonexistent token")
	}
}

func TestSessionFor_ExpiredSession(t *testing.T) {
	a := New()
	token := a.StartSession("u1", "maria")

	// Manually expire the session
	a.mu.Lock()
	sess := a.sessions[token]
	sess.Expiry = time.Now().Add(-1 * time.Hour)
	a.sessions[token] = sess
	a.mu.Unlock()

	if _, ok := a.SessionFor(token); ok {
		t.Error("expected expired session to be invalid")
	}

	// Verify session was cleaned up
	a.mu.RLock()
	_, exists := a.sessions[token]
	a.mu.RUnlock()
	if exists {
		t.Error("expected expired session to be removed")
	}
}

func TestSessionFromRequest_ValidCookie(t *testing.T) {
	a := New()
	token := a.StartSession("u1", "maria")

	req := httptest.NewRequest("GET", "/api/rounds", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})

	sess, ok := a.SessionFromRequest(req)
	if !ok {
		t.Fatal("expected valid session from request")
	}
	if sess.Username != "maria" {
		t.Errorf("expected username maria, got %s", sess.Username)
	}
}

func TestSessionFromRequest_NoCookie(t *testing.T) {
	a := New()

	req := httptest.NewRequest("GET", "/api/rounds", nil)

	if _, ok := a.SessionFromRequest(req); ok {
		t.Error("expected false when no cookie present")
	}
}

func TestRequireAuthAPI_AllowsValidSession(t *testing.T) {
	a := New()
	token := a.StartSession("u1", "maria")

	handler := a.RequireAuthAPI(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		if !ok {
			t.Error("expected session in request context")
		}
		if sess.UserID != "u1" {
			t.Errorf("expected user u1 in context, got %s", sess.UserID)
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/api/rounds", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rr.Code)
	}
}

func TestRequireAuthAPI_Returns401WithoutSession(t *testing.T) {
	a := New()

	handler := a.RequireAuthAPI(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/api/rounds", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
	if rr.Header().Get("Content-Type") != "application/json" {
		t.Error("expected JSON content type")
	}
	if !strings.Contains(rr.Body.String(), "UNAUTHORIZED") {
		t.Errorf("expected UNAUTHORIZED code in body, got: %s", rr.Body.String())
	}
}

func TestSetSessionCookie(t *testing.T) {
	rr := httptest.NewRecorder()

	SetSessionCookie(rr, "test-token")

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}

	cookie := cookies[0]
	if cookie.Name != CookieName {
		t.Errorf("expected cookie name %s, got %s", CookieName, cookie.Name)
	}
	if cookie.Value != "test-token" {
		t.Errorf("expected cookie value 'test-token', got %s", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Error("expected HttpOnly to be true")
	}
}

func TestClearSessionCookie(t *testing.T) {
	rr := httptest.NewRecorder()

	ClearSessionCookie(rr)

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge != -1 {
		t.Errorf("expected MaxAge -1 (delete), got %d", cookies[0].MaxAge)
	}
}

func TestConcurrentSessionAccess(t *testing.T) {
	a := New()

	done := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		go func() {
			token := a.StartSession("u1", "maria")
			a.SessionFor(token)
			a.EndSession(token)
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
