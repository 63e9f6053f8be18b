// internal/app/history.go
package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/notice/internal/app/popupctl"
	"github.com/llehouerou/notice/internal/errmsg"
)

// clearHistoryContext tags the confirmation that clears the history.
type clearHistoryContext struct{}

// openHistory loads recent entries and shows the history panel.
func (m *Model) openHistory() tea.Cmd {
	if m.History == nil {
		m.Status = "history is disabled"
		return nil
	}
	entries, err := m.History.Recent(m.Config.HistoryLimit())
	if err != nil {
		return m.showOpError(errmsg.OpHistoryLoad, err)
	}
	counts, err := m.History.CountByReason()
	if err != nil {
		return m.showOpError(errmsg.OpHistoryLoad, err)
	}
	return m.Popups.ShowHistory(entries, counts)
}

// refreshHistory reloads the history panel if it is open.
func (m *Model) refreshHistory() tea.Cmd {
	hp := m.Popups.History()
	if hp == nil || m.History == nil {
		return nil
	}
	entries, err := m.History.Recent(m.Config.HistoryLimit())
	if err != nil {
		return m.showOpError(errmsg.OpHistoryLoad, err)
	}
	counts, err := m.History.CountByReason()
	if err != nil {
		return m.showOpError(errmsg.OpHistoryLoad, err)
	}
	hp.SetEntries(entries, counts)
	return nil
}

// confirmClearHistory asks before deleting n history entries.
func (m *Model) confirmClearHistory(n int) tea.Cmd {
	msg := fmt.Sprintf("Delete %s retired notifications?", humanize.Comma(int64(n)))
	if n == 1 {
		msg = "Delete 1 retired notification?"
	}
	return m.Popups.ShowConfirm("Clear history", msg, clearHistoryContext{})
}

// clearHistory deletes every history entry.
func (m *Model) clearHistory() tea.Cmd {
	if m.History == nil {
		return nil
	}
	if err := m.History.Clear(); err != nil {
		return m.showOpError(errmsg.OpHistoryClear, err)
	}
	m.Log.Info().Msg("history cleared")
	m.Status = "history cleared"
	if m.Popups.IsVisible(popupctl.History) {
		return m.refreshHistory()
	}
	return nil
}
