// internal/app/keys.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/notice/internal/alert"
	"github.com/llehouerou/notice/internal/app/handler"
)

// handleKey offers a key to, in order: the active popup, the focused
// notification, cancel-key listeners, and the global bindings.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	_, cmd := handler.Chain(msg,
		m.handlePopupKeys,
		m.handleToastKeys,
		m.handleCancelKey,
		m.handleActionKeys,
	)
	return cmd
}

func (m *Model) handlePopupKeys(msg tea.KeyMsg) handler.Result {
	return handler.From(m.Popups.HandleKey(msg))
}

func (m *Model) handleToastKeys(msg tea.KeyMsg) handler.Result {
	return handler.From(m.Toast.HandleKey(msg))
}

// handleCancelKey delivers the cancel key to every subscribed notification.
func (m *Model) handleCancelKey(msg tea.KeyMsg) handler.Result {
	key := msg.String()
	if key != alert.CancelKey {
		return handler.NotHandled
	}
	if m.Keys.Dispatch(key) == 0 {
		return handler.NotHandled
	}
	return handler.Handled(m.Toast.Flush())
}

func (m *Model) handleActionKeys(msg tea.KeyMsg) handler.Result {
	a := m.Resolver.Resolve(msg.String())
	if a == "" {
		return handler.NotHandled
	}
	return handler.Handled(m.runAction(a))
}
