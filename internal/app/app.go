// internal/app/app.go
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/notice/internal/alert"
	"github.com/llehouerou/notice/internal/app/popupctl"
	"github.com/llehouerou/notice/internal/clock"
	"github.com/llehouerou/notice/internal/config"
	"github.com/llehouerou/notice/internal/keymap"
	"github.com/llehouerou/notice/internal/keysource"
	"github.com/llehouerou/notice/internal/notify"
	"github.com/llehouerou/notice/internal/ui"
	"github.com/llehouerou/notice/internal/ui/toast"
)

// Deps are the services the application is built from.
type Deps struct {
	Config    *config.Config
	History   HistoryStore      // nil disables history
	Announcer *notify.Announcer // nil disables the desktop mirror
	Logger    zerolog.Logger

	// Scheduler runs notification timers. Nil means tea-driven ticks.
	Scheduler clock.Scheduler
	Now       func() time.Time

	// StartupErrors are shown as an error notification once the UI runs.
	StartupErrors []string
}

// Model is the root application model containing all state.
type Model struct {
	Toast     *toast.Model
	Keys      *keysource.Source
	Resolver  *keymap.Resolver
	Popups    *popupctl.Manager
	Help      help.Model
	History   HistoryStore
	Announcer *notify.Announcer
	Config    *config.Config
	Log       zerolog.Logger

	// Settings applied to the next notification shown
	Variant     alert.Variant
	Persistent  bool
	Dismissible bool
	AutoFocus   bool

	Status  string
	Shown   int // notifications shown so far, picks the sample text
	startup []string
	now     func() time.Time
	Width   int
	Height  int
}

// New creates the application model.
func New(deps Deps) Model {
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	keys := keysource.New()
	t := toast.New(toast.Options{
		Scheduler:   deps.Scheduler,
		Keys:        keys,
		Logger:      deps.Logger,
		Placement:   toast.ParsePlacement(cfg.Placement()),
		BottomInset: ui.FooterHeight,
		Now:         now,
	})

	popups := popupctl.New()
	popups.SetClock(now)

	defaults := cfg.Alert(alert.SeverityDefault)
	return Model{
		Toast:       t,
		Keys:        keys,
		Resolver:    keymap.NewResolver(keymap.ByContext("global")),
		Popups:      popups,
		Help:        help.New(),
		History:     deps.History,
		Announcer:   deps.Announcer,
		Config:      cfg,
		Log:         deps.Logger,
		Variant:     defaults.Variant,
		Persistent:  defaults.Expiry() == 0,
		Dismissible: defaults.Dismissible,
		AutoFocus:   defaults.AutoFocus,
		startup:     deps.StartupErrors,
		now:         now,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if len(m.startup) == 0 {
		return nil
	}
	return m.showError(m.startup...)
}
