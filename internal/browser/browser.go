package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Launcher starts an external command. It exists so tests can intercept
// the browser launch.
type Launcher interface {
	Start(name string, args ...string) error
}

type execLauncher struct{}

func (execLauncher) Start(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

var defaultLauncher Launcher = execLauncher{}

// Open opens url in the default browser of the current platform.
func Open(url string) error {
	return OpenWith(url, defaultLauncher, runtime.GOOS)
}

// OpenWith opens url using the given launcher and GOOS value.
func OpenWith(url string, launcher Launcher, goos string) error {
	switch goos {
	case "linux":
		return launcher.Start("xdg-open", url)
	case "darwin":
		return launcher.Start("open", url)
	case "windows":
		return launcher.Start("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", goos)
	}
}
