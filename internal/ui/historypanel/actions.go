package historypanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/notice/internal/ui/action"
)

// Source identifies history panel actions.
const Source = "historypanel"

// Close signals the history panel should close.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "historypanel.close" }

// ClearRequested asks the app to confirm and then clear the history.
type ClearRequested struct {
	Count int
}

// ActionType implements action.Action.
func (a ClearRequested) ActionType() string { return "historypanel.clear_requested" }

func closeCmd() tea.Cmd { return action.Cmd(Source, Close{}) }

func clearCmd(n int) tea.Cmd { return action.Cmd(Source, ClearRequested{Count: n}) }
