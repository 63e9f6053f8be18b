// Package confirm provides a yes/no confirmation popup component.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/notice/internal/ui"
	"github.com/llehouerou/notice/internal/ui/action"
	"github.com/llehouerou/notice/internal/ui/popup"
	"github.com/llehouerou/notice/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Model is a yes/no confirmation popup. The "No" button is selected first
// so a stray enter does not confirm a destructive action.
type Model struct {
	ui.Base
	title   string
	message string
	context any
	active  bool
	yes     bool // selected button
}

// New creates a new confirmation model.
func New() Model {
	return Model{}
}

// Show displays the confirmation popup.
func (m *Model) Show(title, message string, context any, width, height int) {
	m.title = title
	m.message = message
	m.context = context
	m.SetSize(width, height)
	m.active = true
	m.yes = false
}

// Reset clears the confirmation state.
func (m *Model) Reset() {
	*m = Model{Base: m.Base}
}

// Active returns whether the confirmation is currently shown.
func (m Model) Active() bool {
	return m.active
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "left", "right", "tab", "shift+tab", "h", "l":
		m.yes = !m.yes
	case "enter":
		return m, m.finish(m.yes)
	case "y", "Y":
		return m, m.finish(true)
	case "esc", "n", "N":
		return m, m.finish(false)
	}
	return m, nil
}

func (m *Model) finish(confirmed bool) tea.Cmd {
	m.active = false
	return action.Cmd(Source, Result{Confirmed: confirmed, Context: m.context})
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active || !m.Sized() {
		return ""
	}

	t := styles.T()
	title := lipgloss.NewStyle().Bold(true).Foreground(t.Warning).Render(m.title)
	message := t.S().Base.Render(m.message)
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		button("Yes", m.yes),
		"  ",
		button("No", !m.yes),
	)
	hint := t.S().Subtle.Render("y/n · ←/→ select · enter confirm")

	return title + "\n\n" + message + "\n\n" + buttons + "\n\n" + hint
}

func button(label string, selected bool) string {
	t := styles.T()
	if selected {
		return lipgloss.NewStyle().
			Bold(true).
			Foreground(t.BgBase).
			Background(t.Primary).
			Render("[ " + label + " ]")
	}
	return t.S().Muted.Render("[ " + label + " ]")
}
