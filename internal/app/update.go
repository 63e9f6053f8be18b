// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/notice/internal/app/popupctl"
	"github.com/llehouerou/notice/internal/clock"
	"github.com/llehouerou/notice/internal/ui/action"
	"github.com/llehouerou/notice/internal/ui/toast"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowSize(msg)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		// popups are modal
		if m.Popups.ActivePopup() != popupctl.None {
			return m, nil
		}
		_, cmd := m.Toast.Update(msg)
		return m, cmd

	case clock.FireMsg, toast.FadeMsg:
		_, cmd := m.Toast.Update(msg)
		return m, cmd

	case toast.AnnounceMsg:
		m.handleAnnounce(msg)
		return m, nil

	case toast.FocusRequestMsg:
		m.Status = "notification focused"
		return m, nil

	case toast.RetiredMsg:
		return m, m.handleRetired(msg.Record)

	case action.Msg:
		return m, m.handleAction(msg)
	}

	// cursor blinks and other component messages
	return m, m.Popups.HandleMsg(msg)
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Toast.SetSize(msg.Width, msg.Height)
	m.Popups.SetSize(msg.Width, msg.Height)
	m.Help.Width = msg.Width
}
