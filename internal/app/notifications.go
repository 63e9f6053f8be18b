// internal/app/notifications.go
package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/notice/internal/alert"
	"github.com/llehouerou/notice/internal/errmsg"
	"github.com/llehouerou/notice/internal/history"
	"github.com/llehouerou/notice/internal/ui/toast"
)

// alertConfig builds the controller configuration for the next
// notification from the file config and the runtime toggles.
func (m *Model) alertConfig(sev alert.Severity) alert.Config {
	cfg := m.Config.Alert(sev)
	cfg.Variant = m.Variant
	cfg.Dismissible = m.Dismissible
	cfg.AutoFocus = m.AutoFocus
	if m.Persistent {
		cfg.AutoExpiry = 0
	}
	return cfg
}

// show raises a notification, replacing the one on screen.
func (m *Model) show(sev alert.Severity, content alert.Content) tea.Cmd {
	m.Shown++
	m.Log.Debug().
		Str("severity", sev.String()).
		Str("title", content.Title).
		Msg("show notification")
	return m.Toast.Show(content, m.alertConfig(sev))
}

// showSample raises the next demo notification of a severity.
func (m *Model) showSample(sev alert.Severity) tea.Cmd {
	return m.show(sev, sample(sev, m.Shown))
}

// showError surfaces error messages as an error notification. Errors
// always stay until dismissed and can always be dismissed.
func (m *Model) showError(msgs ...string) tea.Cmd {
	cfg := m.Config.Alert(alert.SeverityError)
	cfg.Variant = m.Variant
	cfg.Dismissible = true
	cfg.AutoExpiry = 0
	m.Shown++
	return m.Toast.Show(alert.Content{
		Title:   "Error",
		Message: strings.Join(msgs, "\n"),
	}, cfg)
}

// showOpError reports a failed operation, or does nothing when err is nil.
func (m *Model) showOpError(op errmsg.Op, err error) tea.Cmd {
	if err == nil {
		return nil
	}
	m.Log.Error().Err(err).Str("op", string(op)).Msg("operation failed")
	return m.showError(errmsg.Format(op, err))
}

// parseComposed reads "[severity:] [title |] message" typed into the
// compose prompt.
func parseComposed(text string) (alert.Severity, alert.Content) {
	sev := alert.SeverityInfo
	if prefix, rest, ok := strings.Cut(text, ":"); ok {
		if s, known := alert.ParseSeverity(prefix); known && strings.TrimSpace(prefix) != "" {
			sev = s
			text = rest
		}
	}

	var content alert.Content
	if title, msg, ok := strings.Cut(text, "|"); ok {
		content.Title = strings.TrimSpace(title)
		content.Message = strings.TrimSpace(msg)
	} else {
		content.Message = strings.TrimSpace(text)
	}
	return sev, content
}

// handleRetired records a notification that left the screen.
func (m *Model) handleRetired(rec toast.Record) tea.Cmd {
	m.Log.Info().
		Uint64("id", rec.ID).
		Str("severity", rec.Severity.String()).
		Str("reason", rec.Reason.String()).
		Dur("shown", rec.Shown()).
		Msg("notification retired")

	if m.History == nil {
		return nil
	}
	_, err := m.History.Record(history.Entry{
		Severity:  rec.Severity.String(),
		Title:     rec.Content.Title,
		Message:   rec.Content.Message,
		Reason:    rec.Reason.String(),
		ShownAt:   rec.ShownAt,
		RetiredAt: rec.RetiredAt,
	})
	if err != nil {
		// reported in the status line, never as a notification
		m.Log.Error().Err(err).Msg("record notification")
		m.Status = errmsg.Format(errmsg.OpHistoryRecord, err)
		return nil
	}
	return m.refreshHistory()
}

// handleAnnounce mirrors a new notification's announcement to the desktop.
func (m *Model) handleAnnounce(msg toast.AnnounceMsg) {
	m.Log.Debug().
		Uint64("id", msg.ID).
		Str("urgency", string(msg.Directive.Urgency)).
		Str("text", msg.Directive.Announcement()).
		Msg("announce")

	if _, err := m.Announcer.Announce(msg.Directive); err != nil {
		m.Status = errmsg.Format(errmsg.OpDesktopNotify, err)
	}
}
