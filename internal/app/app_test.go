package app

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"gincana/internal/auth"
	"gincana/internal/logger"
)

func createTestApp(t *testing.T) *App {
	t.Helper()
	staticFS := fstest.MapFS{
		"index.html": &fstest.MapFile{
			Data: []byte(`<html><body>Placar</body></html>`),
		},
	}
	log := logger.New(slog.LevelError)
	sessions := auth.New()

	app, err := New(log, ":memory:", staticFS, sessions)
	if err != nil {
		t.Fatalf("failed to create test app: %v", err)
	}
	return app
}

func TestNew_InitializesApp(t *testing.T) {
	app := createTestApp(t)
	defer app.Close()

	if app.handlers == nil {
		t.Error("expected handlers to be initialized")
	}
	if app.repo == nil {
		t.Error("expected repo to be initialized")
	}
}

func TestNew_FailsWithBadDBPath(t *testing.T) {
	log := logger.New(slog.LevelError)

	_, err := New(log, "/nonexistent/path/db.sqlite", fstest.MapFS{}, auth.New())
	if err == nil {
		t.Error("expected error for invalid db path")
	}
}

func TestApp_Router_ServesRequests(t *testing.T) {
	app := createTestApp(t)
	defer app.Close()

	server := httptest.NewServer(app.Router())
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/teams")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 for /api/teams, got %d", resp.StatusCode)
	}
}

func TestSetDefaultBaseURL_SetsWhenEmpty(t *testing.T) {
	app := createTestApp(t)
	defer app.Close()

	app.setDefaultBaseURL("http://192.168.1.100:8080")

	val, err := app.repo.GetSetting(context.Background(), "base_url")
	if err != nil {
		t.Fatalf("failed to get setting: %v", err)
	}
	if val != "http://192.168.1.100:8080" {
		t.Errorf("expected base_url to be set, got: %s", val)
	}
}

func TestSetDefaultBaseURL_ReplacesLocalhost(t *testing.T) {
	app := createTestApp(t)
	defer app.Close()
	ctx := context.Background()

	if err := app.repo.SetSetting(ctx, "base_url", "http://localhost:8080"); err != nil {
		t.Fatalf("failed to set initial setting: %v", err)
	}

	app.setDefaultBaseURL("http://192.168.1.100:8080")

	val, err := app.repo.GetSetting(ctx, "base_url")
	if err != nil {
		t.Fatalf("failed to get setting: %v", err)
	}
	if val != "http://192.168.1.100:8080" {
		t.Errorf("expected base_url to be replaced, got: %s", val)
	}
}

func TestSetDefaultBaseURL_DoesNotOverwriteValidURL(t *testing.T) {
	app := createTestApp(t)
	defer app.Close()
	ctx := context.Background()

	if err := app.repo.SetSetting(ctx, "base_url", "http://192.168.1.50:8080"); err != nil {
		t.Fatalf("failed to set initial setting: %v", err)
	}

	app.setDefaultBaseURL("http://192.168.1.100:8080")

	val, err := app.repo.GetSetting(ctx, "base_url")
	if err != nil {
		t.Fatalf("failed to get setting: %v", err)
	}
	if val != "http://192.168.1.50:8080" {
		t.Errorf("expected base_url to remain unchanged, got: %s", val)
	}
}

func TestGetPreferredIP_ReturnsValidIP(t *testing.T) {
	ip := getPreferredIP(realNetworkProvider{})

	if ip == "" {
		t.Error("expected non-empty IP")
	}
	if ip != "localhost" {
		if parsed := net.ParseIP(ip); parsed == nil {
			t.Errorf("expected valid IP, got: %s", ip)
		}
	}
}

func TestIsPrivate172(t *testing.T) {
	tests := []struct {
		ip       string
		expected bool
	}{
		{"172.16.0.1", true},
		{"172.31.255.255", true},
		{"172.15.0.1", false},
		{"172.32.0.1", false},
		{"192.168.1.1", false},
		{"10.0.0.1", false},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			if got := isPrivate172(net.ParseIP(tt.ip)); got != tt.expected {
				t.Errorf("isPrivate172(%s) = %v, want %v", tt.ip, got, tt.expected)
			}
		})
	}
}

// mockInterface implements networkInterface for testing
type mockInterface struct {
	flags net.Flags
	addrs []net.Addr
	err   error
}

func (m mockInterface) Flags() net.Flags           { return m.flags }
func (m mockInterface) Addrs() ([]net.Addr, error) { return m.addrs, m.err }

// mockNetworkProvider implements networkProvider for testing
type mockNetworkProvider struct {
	interfaces []networkInterface
	err        error
}

func (m mockNetworkProvider) Interfaces() ([]networkInterface, error) {
	return m.interfaces, m.err
}

func TestGetPreferredIP_NetworkError(t *testing.T) {
	provider := mockNetworkProvider{err: net.ErrClosed}

	if ip := getPreferredIP(provider); ip != "localhost" {
		t.Errorf("expected 'localhost' on error, got: %s", ip)
	}
}

func TestGetPreferredIP_PrefersPrivateAddress(t *testing.T) {
	publicIP := &net.IPNet{IP: net.ParseIP("8.8.8.8"), Mask: net.CIDRMask(24, 32)}
	privateIP := &net.IPNet{IP: net.ParseIP("192.168.1.50"), Mask: net.CIDRMask(24, 32)}

	provider := mockNetworkProvider{
		interfaces: []networkInterface{
			mockInterface{flags: net.FlagUp, addrs: []net.Addr{publicIP, privateIP}},
		},
	}

	if ip := getPreferredIP(provider); ip != "192.168.1.50" {
		t.Errorf("expected private address preferred, got: %s", ip)
	}
}

func TestGetPreferredIP_PublicIPFallback(t *testing.T) {
	publicIP := &net.IPNet{IP: net.ParseIP("8.8.8.8"), Mask: net.CIDRMask(24, 32)}

	provider := mockNetworkProvider{
		interfaces: []networkInterface{
			mockInterface{flags: net.FlagUp, addrs: []net.Addr{publicIP}},
		},
	}

	if ip := getPreferredIP(provider); ip != "8.8.8.8" {
		t.Errorf("expected '8.8.8.8' (public IP fallback), got: %s", ip)
	}
}

func TestGetPreferredIP_SkipsLoopback(t *testing.T) {
	loopbackIP := &net.IPNet{IP: net.ParseIP("127.0.0.1"), Mask: net.CIDRMask(8, 32)}
	validIP := &net.IPNet{IP: net.ParseIP("192.168.1.50"), Mask: net.CIDRMask(24, 32)}

	provider := mockNetworkProvider{
		interfaces: []networkInterface{
			mockInterface{flags: net.FlagUp, addrs: []net.Addr{loopbackIP, validIP}},
		},
	}

	if ip := getPreferredIP(provider); ip != "192.168.1.50" {
		t.Errorf("expected '192.168.1.50' (skipping loopback), got: %s", ip)
	}
}
