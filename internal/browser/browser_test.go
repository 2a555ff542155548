package browser

import (
	"errors"
	"strings"
	"testing"
)

type mockLauncher struct {
	name string
	args []string
	err  error
}

func (m *mockLauncher) Start(name string, args ...string) error {
	m.name = name
	m.args = args
	return m.err
}

func TestOpenWith_PerPlatformCommand(t *testing.T) {
	url := "http://192.168.1.100:8080"

	tests := []struct {
		goos     string
		command  string
		lastArg  string
		argCount int
	}{
		{"linux", "xdg-open", url, 1},
		{"darwin", "open", url, 1},
		{"windows", "rundll32", url, 2},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			mock := &mockLauncher{}
			if err := OpenWith(url, mock, tt.goos); err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if mock.name != tt.command {
				t.Errorf("expected command %q, got %q", tt.command, mock.name)
			}
			if len(mock.args) != tt.argCount {
				t.Fatalf("expected %d args, got %v", tt.argCount, mock.args)
			}
			if mock.args[len(mock.args)-1] != tt.lastArg {
				t.Errorf("expected URL %q as last arg, got %v", tt.lastArg, mock.args)
			}
		})
	}
}

func TestOpenWith_UnsupportedPlatform(t *testing.T) {
	mock := &mockLauncher{}

	err := OpenWith("http://localhost:8080", mock, "plan9")
	if err == nil {
		t.Fatal("expected error for unsupported platform")
	}
	if !strings.Contains(err.Error(), "plan9") {
		t.Errorf("expected platform name in error, got: %v", err)
	}
	if mock.name != "" {
		t.Errorf("launcher should not have been called, got %q", mock.name)
	}
}

func TestOpenWith_LauncherError(t *testing.T) {
	injected := errors.New("launch failed")
	mock := &mockLauncher{err: injected}

	if err := OpenWith("http://localhost:8080", mock, "linux"); !errors.Is(err, injected) {
		t.Errorf("expected injected error, got: %v", err)
	}
}

func TestOpen_UsesDefaultLauncher(t *testing.T) {
	original := defaultLauncher
	defer func() { defaultLauncher = original }()

	mock := &mockLauncher{}
	defaultLauncher = mock

	if err := Open("http://localhost:8080"); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if mock.name == "" {
		t.Error("expected default launcher to be called")
	}
}
