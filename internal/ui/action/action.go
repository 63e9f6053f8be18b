// Package action defines how popups report results to the app.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action represents an action from a UI component.
// The ActionType method returns a string identifier used in logs.
type Action interface {
	ActionType() string
}

// Msg wraps a UI action with its source component name.
type Msg struct {
	Source string // "confirm", "textinput", "historypanel", "helpbindings"
	Action Action
}

// Ensure Msg implements tea.Msg (compile-time check).
var _ tea.Msg = Msg{}

// Cmd returns a command delivering a as a Msg from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}
