// internal/app/handlers.go
package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/notice/internal/alert"
	"github.com/llehouerou/notice/internal/app/popupctl"
	"github.com/llehouerou/notice/internal/keymap"
	"github.com/llehouerou/notice/internal/ui/action"
	"github.com/llehouerou/notice/internal/ui/confirm"
	"github.com/llehouerou/notice/internal/ui/helpbindings"
	"github.com/llehouerou/notice/internal/ui/historypanel"
	"github.com/llehouerou/notice/internal/ui/textinput"
)

// variantCycle is the order the variant toggle steps through.
var variantCycle = []alert.Variant{
	alert.VariantOutlined,
	alert.VariantFilled,
	alert.VariantSoft,
}

// showActions maps the show bindings to severities.
var showActions = map[keymap.Action]alert.Severity{
	keymap.ActionShowDefault: alert.SeverityDefault,
	keymap.ActionShowInfo:    alert.SeverityInfo,
	keymap.ActionShowSuccess: alert.SeveritySuccess,
	keymap.ActionShowWarning: alert.SeverityWarning,
	keymap.ActionShowError:   alert.SeverityError,
}

// runAction executes a global key binding.
func (m *Model) runAction(a keymap.Action) tea.Cmd {
	if sev, ok := showActions[a]; ok {
		return m.showSample(sev)
	}

	switch a {
	case keymap.ActionQuit:
		return m.quit()
	case keymap.ActionHelp:
		return m.Popups.ShowHelp([]string{"global", "notification", "history"})
	case keymap.ActionCompose:
		return m.Popups.ShowTextInput("New notification", "", "[severity:] [title |] message", nil)
	case keymap.ActionClose:
		return m.Toast.Close()
	case keymap.ActionDismiss:
		m.Status = "nothing to dismiss"
	case keymap.ActionFocusToast:
		return m.toggleToastFocus()
	case keymap.ActionCycleVariant:
		m.cycleVariant()
	case keymap.ActionToggleExpiry:
		return m.toggleExpiry()
	case keymap.ActionToggleDismissible:
		return m.toggleDismissible()
	case keymap.ActionToggleAutoFocus:
		m.AutoFocus = !m.AutoFocus
		m.Status = "autofocus " + onOff(m.AutoFocus)
	case keymap.ActionHistory:
		return m.openHistory()
	case keymap.ActionShowDefault, keymap.ActionShowInfo, keymap.ActionShowSuccess,
		keymap.ActionShowWarning, keymap.ActionShowError,
		keymap.ActionActivate, keymap.ActionClearHistory,
		keymap.ActionMoveUp, keymap.ActionMoveDown:
		// handled above or by the focused component
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	if err := m.Announcer.Withdraw(); err != nil {
		m.Log.Warn().Err(err).Msg("withdraw desktop notification")
	}
	return tea.Quit
}

func (m *Model) toggleToastFocus() tea.Cmd {
	if m.Toast.IsFocused() {
		return m.Toast.Blur()
	}
	if !m.Toast.Mounted() {
		m.Status = "no notification to focus"
		return nil
	}
	return m.Toast.Focus()
}

func (m *Model) cycleVariant() {
	next := variantCycle[0]
	for i, v := range variantCycle {
		if v == m.Variant {
			next = variantCycle[(i+1)%len(variantCycle)]
		}
	}
	m.Variant = next
	m.Status = "variant " + string(next)
}

// toggleExpiry switches auto-dismiss for new notifications and reconfigures
// the one on screen.
func (m *Model) toggleExpiry() tea.Cmd {
	m.Persistent = !m.Persistent
	m.Status = "auto-dismiss " + onOff(!m.Persistent)
	if c := m.Toast.Controller(); c != nil {
		c.SetAutoExpiry(m.alertConfig(c.Config().Severity).AutoExpiry)
	}
	return m.Toast.Flush()
}

// toggleDismissible switches the close affordance and cancel key for new
// notifications and for the one on screen.
func (m *Model) toggleDismissible() tea.Cmd {
	m.Dismissible = !m.Dismissible
	m.Status = "dismissible " + onOff(m.Dismissible)
	if c := m.Toast.Controller(); c != nil {
		c.SetDismissible(m.Dismissible)
	}
	return m.Toast.Flush()
}

// handleAction routes results reported by popups.
func (m *Model) handleAction(msg action.Msg) tea.Cmd {
	switch a := msg.Action.(type) {
	case helpbindings.Close:
		m.Popups.Hide(popupctl.Help)
	case historypanel.Close:
		m.Popups.Hide(popupctl.History)
	case historypanel.ClearRequested:
		return m.confirmClearHistory(a.Count)
	case confirm.Result:
		m.Popups.Hide(popupctl.Confirm)
		if _, ok := a.Context.(clearHistoryContext); ok && a.Confirmed {
			return m.clearHistory()
		}
	case textinput.Result:
		m.Popups.Hide(popupctl.TextInput)
		if a.Canceled || a.Text == "" {
			return nil
		}
		sev, content := parseComposed(a.Text)
		return m.show(sev, content)
	default:
		m.Log.Debug().Str("source", msg.Source).Str("action", fmt.Sprintf("%T", a)).Msg("unhandled popup action")
	}
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
