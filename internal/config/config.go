package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/notice/internal/alert"
	"github.com/llehouerou/notice/internal/logging"
)

const appName = "notice"

type Config struct {
	// Defaults applied to every notification the app shows
	Notifications NotificationsConfig `koanf:"notifications"`

	Log LogConfig `koanf:"log"`

	// Retired notifications log (sqlite)
	History HistoryConfig `koanf:"history"`

	// Mirror announcements to desktop notifications (D-Bus)
	Desktop DesktopConfig `koanf:"desktop"`
}

// NotificationsConfig holds per-notification defaults.
type NotificationsConfig struct {
	Variant            string `koanf:"variant"`              // "outlined", "filled", "soft" (default: outlined)
	Dismissible        *bool  `koanf:"dismissible"`          // default: true
	AutoExpiryMs       *int   `koanf:"auto_expiry_ms"`       // default: 5000, <=0 disables
	PauseOnInteraction *bool  `koanf:"pause_on_interaction"` // default: true
	AutoFocus          bool   `koanf:"auto_focus"`
	HeadingLevel       int    `koanf:"heading_level"` // 2-6, anything else renders the title as emphasis
	Placement          string `koanf:"placement"`     // "bottom-right", "top-right", "bottom-left", "top-left"
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `koanf:"level"` // default: info
	Path  string `koanf:"path"`  // default: $XDG_STATE_HOME/notice/notice.log
}

// HistoryConfig holds notification history configuration.
type HistoryConfig struct {
	Enabled *bool  `koanf:"enabled"` // default: true
	Path    string `koanf:"path"`    // default: $XDG_DATA_HOME/notice/notice.db
	Limit   int    `koanf:"limit"`   // entries shown in the history panel (default: 20)
	Retain  *int   `koanf:"retain"`  // entries kept on disk (default: 1000, <=0 keeps all)
}

// DesktopConfig holds desktop notification mirroring configuration.
type DesktopConfig struct {
	Enabled       bool  `koanf:"enabled"`
	AssertiveOnly *bool `koanf:"assertive_only"` // only mirror error notifications (default: true)
	TimeoutMs     int   `koanf:"timeout_ms"`     // default: 5000
}

const (
	defaultAutoExpiryMs   = 5000
	defaultHistoryLimit   = 20
	defaultHistoryRetain  = 1000
	defaultDesktopTimeout = 5000
	defaultPlacement      = "bottom-right"
)

var placements = map[string]bool{
	"bottom-right": true,
	"top-right":    true,
	"bottom-left":  true,
	"top-left":     true,
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order (last wins), skipping
// files that do not exist.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Log.Path != "" {
		cfg.Log.Path = expandPath(cfg.Log.Path)
	}
	if cfg.History.Path != "" {
		cfg.History.Path = expandPath(cfg.History.Path)
	}
	cfg.Notifications.Placement = strings.ToLower(strings.TrimSpace(cfg.Notifications.Placement))

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/notice/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Alert builds the controller configuration for a notification of the
// given severity, with defaults applied. Invalid values never fail: they
// fall back to the behavior the controller treats as "disabled".
func (c *Config) Alert(sev alert.Severity) alert.Config {
	n := c.Notifications
	variant, _ := alert.ParseVariant(n.Variant)

	expiry := defaultAutoExpiryMs
	if n.AutoExpiryMs != nil {
		expiry = *n.AutoExpiryMs
	}

	return alert.Config{
		Severity:           sev,
		Variant:            variant,
		Dismissible:        n.Dismissible == nil || *n.Dismissible,
		AutoExpiry:         time.Duration(expiry) * time.Millisecond,
		PauseOnInteraction: alert.Bool(n.PauseOnInteraction == nil || *n.PauseOnInteraction),
		AutoFocus:          n.AutoFocus,
		HeadingLevel:       n.HeadingLevel,
	}
}

// Placement returns the screen corner notifications are drawn in.
func (c *Config) Placement() string {
	if placements[c.Notifications.Placement] {
		return c.Notifications.Placement
	}
	return defaultPlacement
}

// Logging returns the logger configuration.
func (c *Config) Logging() logging.Config {
	return logging.Config{Level: c.Log.Level, Path: c.Log.Path}
}

// HistoryEnabled reports whether retired notifications are persisted.
func (c *Config) HistoryEnabled() bool {
	return c.History.Enabled == nil || *c.History.Enabled
}

// HistoryLimit returns how many entries the history panel lists.
func (c *Config) HistoryLimit() int {
	if c.History.Limit <= 0 {
		return defaultHistoryLimit
	}
	return c.History.Limit
}

// HistoryRetain returns how many entries the history store keeps, 0 for
// all of them.
func (c *Config) HistoryRetain() int {
	if c.History.Retain == nil {
		return defaultHistoryRetain
	}
	return max(*c.History.Retain, 0)
}

// DesktopAssertiveOnly reports whether only assertive announcements are
// mirrored to the desktop.
func (c *Config) DesktopAssertiveOnly() bool {
	return c.Desktop.AssertiveOnly == nil || *c.Desktop.AssertiveOnly
}

// DesktopTimeout returns the desktop notification timeout.
func (c *Config) DesktopTimeout() time.Duration {
	if c.Desktop.TimeoutMs <= 0 {
		return defaultDesktopTimeout * time.Millisecond
	}
	return time.Duration(c.Desktop.TimeoutMs) * time.Millisecond
}
