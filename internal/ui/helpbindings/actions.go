package helpbindings

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/notice/internal/ui/action"
)

// Source identifies help popup actions.
const Source = "helpbindings"

// Close signals the help popup should close.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "helpbindings.close" }

func closeCmd() tea.Cmd { return action.Cmd(Source, Close{}) }
