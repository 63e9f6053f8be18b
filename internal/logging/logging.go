// Package logging builds the application's zerolog logger.
//
// The terminal belongs to the UI, so log output goes to a file under the
// XDG state directory instead of stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

const (
	appName     = "notice"
	logFileName = "notice.log"
)

// Config selects the log level and destination.
type Config struct {
	Level string // trace, debug, info, warn, error (default: info)
	Path  string // empty means $XDG_STATE_HOME/notice/notice.log
}

// Open creates the log file (and its directory) and returns a logger that
// writes JSON lines to it. The returned closer closes the file.
func Open(cfg Config) (zerolog.Logger, io.Closer, error) {
	path := cfg.Path
	if path == "" {
		var err error
		path, err = xdg.StateFile(filepath.Join(appName, logFileName))
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("resolve log path: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	return New(f, cfg.Level), f, nil
}

// New returns a timestamped logger writing to w.
func New(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).
		Level(ParseLevel(level, zerolog.InfoLevel)).
		With().
		Timestamp().
		Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// ParseLevel maps a level name to a zerolog level, falling back to def for
// empty or unknown names.
func ParseLevel(s string, def zerolog.Level) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off", "disabled":
		return zerolog.Disabled
	default:
		return def
	}
}
