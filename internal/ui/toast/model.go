// Package toast hosts one notification at a time in a screen corner. It
// feeds pointer, focus and timer events into the notification's controller
// and draws whatever directive the controller projects.
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/notice/internal/alert"
	"github.com/llehouerou/notice/internal/clock"
	"github.com/llehouerou/notice/internal/keysource"
	"github.com/llehouerou/notice/internal/ui"
)

// Options configures a toast host.
type Options struct {
	// Scheduler runs the controller timers. Defaults to a clock.Tea whose
	// ticks are returned from Update.
	Scheduler clock.Scheduler
	// Keys is the document-wide key source the cancel key arrives on.
	Keys      *keysource.Source
	Logger    zerolog.Logger
	Placement Placement
	// BottomInset keeps rows clear below bottom placements.
	BottomInset int
	Now         func() time.Time
}

// Model is the toast host. It is used through a pointer.
type Model struct {
	ui.Base

	sched clock.Scheduler
	ticks *clock.Tea // nil unless sched is tea-driven
	keys  *keysource.Source
	log   zerolog.Logger
	now   func() time.Time

	placement   Placement
	bottomInset int

	ctrl          *alert.Controller
	seq           uint64
	announce      bool
	fading        bool
	fadeFrame     int
	pointerInside bool
	retired       []Record
}

// New creates an empty toast host.
func New(opts Options) *Model {
	m := &Model{
		sched:       opts.Scheduler,
		keys:        opts.Keys,
		log:         opts.Logger,
		now:         opts.Now,
		placement:   opts.Placement,
		bottomInset: opts.BottomInset,
	}
	if m.sched == nil {
		m.sched = clock.NewTea()
	}
	m.ticks, _ = m.sched.(*clock.Tea)
	if m.placement == "" {
		m.placement = BottomRight
	}
	return m
}

// Show raises the open signal for new content. A notification already on
// screen is destroyed and replaced.
func (m *Model) Show(content alert.Content, cfg alert.Config) tea.Cmd {
	if m.ctrl != nil {
		m.ctrl.Destroy()
	}
	m.seq++
	id := m.seq
	m.announce = true
	m.fading = false
	m.fadeFrame = 0
	m.pointerInside = false
	m.SetFocused(false)

	var ctrl *alert.Controller
	ctrl = alert.Open(cfg, content, alert.Deps{
		Scheduler: m.sched,
		Keys:      m.keys,
		Logger:    m.log.With().Uint64("toast", id).Logger(),
		Now:       m.now,
		OnDismiss: func() { m.onRetired(id, ctrl) },
	})
	m.ctrl = ctrl
	return m.flush()
}

// Close drops the open signal: the notification leaves through its normal
// exit transition.
func (m *Model) Close() tea.Cmd {
	if m.ctrl != nil {
		m.ctrl.SetOpen(false)
	}
	return m.flush()
}

// ActivateClose is the close affordance being activated.
func (m *Model) ActivateClose() tea.Cmd {
	if m.ctrl != nil && m.ctrl.Config().Dismissible {
		m.ctrl.Dismiss(alert.ReasonClose)
	}
	return m.flush()
}

// Destroy unmounts the notification immediately.
func (m *Model) Destroy() tea.Cmd {
	if m.ctrl != nil {
		m.ctrl.Destroy()
	}
	return m.flush()
}

// Focus moves input focus into the notification.
func (m *Model) Focus() tea.Cmd {
	if !m.Mounted() {
		return nil
	}
	m.SetFocused(true)
	m.ctrl.FocusIn()
	return m.flush()
}

// Blur moves input focus back to the host.
func (m *Model) Blur() tea.Cmd {
	m.SetFocused(false)
	if m.ctrl != nil {
		m.ctrl.FocusOut()
	}
	return m.flush()
}

// HandleKey handles keys while the notification has focus. Enter and space
// activate the close affordance.
func (m *Model) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !m.IsFocused() || !m.Mounted() {
		return false, nil
	}
	switch msg.String() {
	case "enter", " ":
		if m.ctrl.Config().Dismissible {
			return true, m.ActivateClose()
		}
	}
	return false, nil
}

// Update handles timer ticks, animation frames and mouse events.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case clock.FireMsg:
		if m.ticks != nil {
			m.ticks.Handle(msg)
		}
	case FadeMsg:
		cmd = m.handleFade(msg)
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	}
	return m, tea.Batch(cmd, m.flush())
}

// Flush collects commands for state changes that happened outside Update,
// such as timers fired by a caller-driven scheduler.
func (m *Model) Flush() tea.Cmd {
	return m.flush()
}

func (m *Model) handleFade(msg FadeMsg) tea.Cmd {
	if msg.Version != m.seq || !m.fading || !m.Mounted() {
		return nil
	}
	m.fadeFrame = msg.Frame
	if msg.Frame >= fadeFrames {
		return nil
	}
	return FadeCmd(m.seq, msg.Frame+1)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.Mounted() {
		return nil
	}
	inside := m.Bounds().Contains(msg.X, msg.Y)
	if inside != m.pointerInside {
		m.pointerInside = inside
		if inside {
			m.ctrl.PointerEnter()
		} else {
			m.ctrl.PointerLeave()
		}
	}
	if msg.Action == tea.MouseActionPress &&
		msg.Button == tea.MouseButtonLeft &&
		m.CloseBounds().Contains(msg.X, msg.Y) {
		return m.ActivateClose()
	}
	return nil
}

// flush turns controller state changes into messages for the host.
func (m *Model) flush() tea.Cmd {
	var cmds []tea.Cmd
	if c := m.ctrl; c != nil {
		id := m.seq
		if m.announce {
			m.announce = false
			if c.Phase() == alert.PhaseVisible {
				d := c.Directive()
				cmds = append(cmds, func() tea.Msg { return AnnounceMsg{ID: id, Directive: d} })
			}
		}
		if c.TakeFocusRequest() {
			m.SetFocused(true)
			c.FocusIn()
			cmds = append(cmds, func() tea.Msg { return FocusRequestMsg{ID: id} })
		}
		if c.Phase() == alert.PhaseDismissing && !m.fading {
			m.fading = true
			m.fadeFrame = 0
			cmds = append(cmds, FadeCmd(id, 1))
		}
		if c.Phase() == alert.PhaseRetired && m.IsFocused() {
			m.SetFocused(false)
		}
	}
	for _, r := range m.retired {
		cmds = append(cmds, func() tea.Msg { return RetiredMsg{Record: r} })
	}
	m.retired = nil
	if m.ticks != nil {
		cmds = append(cmds, m.ticks.Cmd())
	}
	return tea.Batch(cmds...)
}

func (m *Model) onRetired(id uint64, c *alert.Controller) {
	if c == nil {
		return
	}
	m.retired = append(m.retired, Record{
		ID:        id,
		Severity:  c.Config().Severity,
		Content:   c.Content(),
		Reason:    c.Reason(),
		ShownAt:   c.ShownAt(),
		RetiredAt: c.RetiredAt(),
	})
}

// Controller returns the current notification's controller, or nil.
func (m *Model) Controller() *alert.Controller {
	return m.ctrl
}

// Directive returns the current render directive. With no notification it
// is the zero Directive, which is not mounted.
func (m *Model) Directive() alert.Directive {
	if m.ctrl == nil {
		return alert.Directive{}
	}
	return m.ctrl.Directive()
}

// Mounted reports whether anything is drawn.
func (m *Model) Mounted() bool {
	return m.ctrl != nil && m.ctrl.Phase() != alert.PhaseRetired
}

// Placement returns the corner the toast is drawn in.
func (m *Model) Placement() Placement {
	return m.placement
}

// fadeProgress is how far the exit animation has run, from 0 to 1.
func (m *Model) fadeProgress() float64 {
	if !m.fading {
		return 0
	}
	return float64(min(m.fadeFrame, fadeFrames)) / fadeFrames
}
