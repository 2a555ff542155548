package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"gincana/internal/app"
	"gincana/internal/auth"
	"gincana/internal/logger"
	"gincana/web"
)

// ANSI escape codes
const (
	reset  = "\033[0m"
	yellow = "\033[33m"
	red    = "\033[31m"
	green  = "\033[32m"
	cyan   = "\033[36m"
	bold   = "\033[1m"
)

var (
	version = "dev"
)

// printBanner displays the Gincana logo
func printBanner() {
	width := 58
	border := ""
	for i := 0; i < width; i++ {
		border += "═"
	}

	logo := []string{
		`      ____ _                                    `,
		`     / ___(_)_ __   ___ __ _ _ __   __ _        `,
		`    | |  _| | '_ \ / __/ _' | '_ \ / _' |       `,
		`    | |_| | | | | | (_| (_| | | | | (_| |       `,
		`     \____|_|_| |_|\___\__,_|_| |_|\__,_|       `,
		`                                                `,
	}

	fmt.Printf("\n  %s╔%s╗%s\n", cyan, border, reset)
	for _, line := range logo {
		for len(line) < width {
			line += " "
		}
		fmt.Printf("  %s║%s%s%s║%s\n", cyan, yellow, line, cyan, reset)
	}
	fmt.Printf("  %s╚%s╝%s\n\n", cyan, border, reset)
}

// cycleLogLevel cycles through debug -> info -> warn -> error
func cycleLogLevel(appLog *logger.SlogLogger) {
	var next slog.Level
	switch appLog.Level() {
	case slog.LevelDebug:
		next = slog.LevelInfo
	case slog.LevelInfo:
		next = slog.LevelWarn
	case slog.LevelWarn:
		next = slog.LevelError
	default:
		next = slog.LevelDebug
	}

	appLog.SetLevel(next)
	fmt.Printf("%sLog level: %s%s%s\n", green, yellow, next, reset)
}

// printKeyboardHelp displays all available keyboard shortcuts
func printKeyboardHelp() {
	fmt.Printf("\n%s%s  Keyboard Shortcuts:%s\n", bold, green, reset)
	fmt.Printf("    %ss%s      - Open scoreboard in browser\n", cyan, reset)
	fmt.Printf("    %sh%s      - Toggle HTTP request logging\n", cyan, reset)
	fmt.Printf("    %sl%s      - Cycle log level (debug, info, warn, error)\n", cyan, reset)
	fmt.Printf("    %sq%s      - Quit server\n", cyan, reset)
	fmt.Printf("    %s?%s      - Show this help\n\n", cyan, reset)
}

// envString returns the environment variable value or fallback when unset.
func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envInt returns the environment variable parsed as int or fallback.
func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func main() {
	// .env is optional; flags and real environment still win
	_ = godotenv.Load()

	port := flag.Int("port", envInt("GINCANA_PORT", 8080), "HTTP server port")
	dbPath := flag.String("db", envString("GINCANA_DB", "gincana.db"), "SQLite database path")
	logLevel := flag.String("loglevel", envString("GINCANA_LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	noBanner := flag.Bool("nobanner", false, "Skip the startup banner")
	noKeyboard := flag.Bool("nokeyboard", false, "Disable keyboard shortcuts")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Gincana - Community Event Scoring

Usage:
  gincana [options]

Options:
  -port int      HTTP server port (default 8080)
  -db string     SQLite database path (default "gincana.db")
  -loglevel str  Log level: debug, info, warn, error (default "info")
  -nobanner      Skip the startup banner
  -nokeyboard    Disable keyboard shortcuts
  -version       Show version and exit
  -help          Show this help message

Environment (also read from .env):
  GINCANA_PORT        Default for -port
  GINCANA_DB          Default for -db
  GINCANA_LOG_LEVEL   Default for -loglevel

Keyboard Shortcuts (when enabled):
  s              Open scoreboard in browser
  h              Toggle HTTP request logging
  l              Cycle log level (debug, info, warn, error)
  q              Quit server
  ?              Show keyboard help

Examples:
  gincana                            # Run on port 8080 with gincana.db
  gincana -port 80 -db /data/ev.db   # Production example
  gincana -nokeyboard                # Disable keyboard shortcuts

`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("gincana %s\n", version)
		os.Exit(0)
	}

	if !*noBanner {
		printBanner()
	}

	appLog := logger.New(logger.ParseLevel(*logLevel))
	sessions := auth.New()

	a, err := app.New(appLog, *dbPath, web.GetStaticFS(), sessions)
	if err != nil {
		log.Fatal("Failed to initialize application:", err)
	}
	defer a.Close()

	addr := fmt.Sprintf(":%d", *port)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.Run(addr)
	}()

	// Give the listener a moment before printing URLs
	time.Sleep(100 * time.Millisecond)

	scoreboardURL := fmt.Sprintf("http://localhost:%d/", *port)

	if !*noKeyboard {
		printKeyboardHelp()
		go listenForKeyboard(scoreboardURL, appLog)
	} else {
		fmt.Printf("\n%sKeyboard shortcuts disabled (use -nokeyboard=false to enable)%s\n\n", yellow, reset)
	}

	if err := <-serverErr; err != nil {
		log.Fatal(err)
	}
}
