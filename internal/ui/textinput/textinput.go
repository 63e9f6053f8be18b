// Package textinput provides a single-line text input popup.
package textinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/notice/internal/ui"
	"github.com/llehouerou/notice/internal/ui/action"
	"github.com/llehouerou/notice/internal/ui/popup"
	"github.com/llehouerou/notice/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

const charLimit = 256

// Model is a text input popup.
type Model struct {
	ui.Base
	title   string
	input   textinput.Model
	context any // passed through to Result action
}

// New creates a new text input model.
func New() Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = charLimit
	return Model{input: ti}
}

// Start initializes the input with a title, optional initial text and a
// placeholder shown while it is empty.
func (m *Model) Start(title, initialText, placeholder string, context any, width, height int) {
	m.title = title
	m.context = context
	m.input.Placeholder = placeholder
	m.input.SetValue(initialText)
	m.input.CursorEnd()
	m.input.Focus()
	m.SetSize(width, height)
}

// SetSize sets the popup size and fits the input field to it.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(min(width-12, 60), 10)
}

// Value returns the current text.
func (m *Model) Value() string {
	return m.input.Value()
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, action.Cmd(Source, Result{Canceled: true, Context: m.context})
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			return m, action.Cmd(Source, Result{Text: text, Context: m.context})
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.Sized() {
		return ""
	}

	t := styles.T()
	title := lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render(m.title)
	hint := t.S().Subtle.Render("enter confirm · esc cancel")

	return title + "\n\n" + m.input.View() + "\n\n" + hint
}
