// internal/app/view.go
package app

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/notice/internal/alert"
	"github.com/llehouerou/notice/internal/keymap"
	"github.com/llehouerou/notice/internal/ui"
	"github.com/llehouerou/notice/internal/ui/headerbar"
	"github.com/llehouerou/notice/internal/ui/render"
	"github.com/llehouerou/notice/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	bodyHeight := max(m.Height-headerbar.Height-ui.FooterHeight, ui.BorderHeight)
	view := strings.Join([]string{
		m.renderHeader(),
		m.renderBody(bodyHeight),
		m.renderFooter(),
	}, "\n")

	view = m.Toast.Overlay(view)
	return m.Popups.RenderOverlay(view)
}

func (m Model) renderHeader() string {
	expiry := "off"
	if !m.Persistent {
		if d := m.Config.Alert(alert.SeverityDefault).Expiry(); d > 0 {
			expiry = d.String()
		}
	}
	return headerbar.Render("notice", []headerbar.Item{
		{Label: "variant", Value: string(m.Variant), On: true},
		{Label: "auto-dismiss", Value: expiry, On: !m.Persistent},
		{Label: "dismissible", Value: onOff(m.Dismissible), On: m.Dismissible},
		{Label: "autofocus", Value: onOff(m.AutoFocus), On: m.AutoFocus},
	}, m.Width)
}

func (m Model) renderBody(height int) string {
	inner := max(m.Width-ui.BorderHeight-2, 1)
	lines := m.inspectorLines(inner)
	if room := height - ui.BorderHeight; len(lines) > room {
		lines = lines[:max(room, 0)]
	}

	return styles.PanelStyle(m.Toast.IsFocused()).
		Padding(0, 1).
		Width(m.Width - ui.BorderHeight).
		Height(height - ui.BorderHeight).
		Render(strings.Join(lines, "\n"))
}

// inspectorLines describe the live state of the notification on screen.
func (m Model) inspectorLines(width int) []string {
	s := styles.T().S()
	label := func(name string) string {
		return s.Muted.Render(render.Pad(name, 12))
	}

	lines := []string{s.Title.Render("Notification"), ""}

	c := m.Toast.Controller()
	if c == nil {
		lines = append(lines, s.Subtle.Render("Press 0-4 to show a notification, n to compose one, ? for help."))
	} else {
		d := c.Directive()
		reason := "-"
		if r := c.Reason(); r != alert.ReasonNone {
			reason = r.String()
		}
		rows := [][2]string{
			{"severity", c.Config().Severity.String()},
			{"phase", c.Phase().String()},
			{"reason", reason},
			{"paused", yesNo(c.Paused())},
			{"timer", armed(c.TimerArmed())},
			{"cancel key", armed(c.KeyListenerActive())},
			{"urgency", string(d.Urgency)},
		}
		for _, r := range rows {
			lines = append(lines, label(r[0])+s.Base.Render(r[1]))
		}
		if tr := m.Toast.Transcript(); tr != "" {
			lines = append(lines, label("transcript")+s.Base.Render(render.Sanitize(tr)))
		}
	}

	if m.Status != "" {
		lines = append(lines, "", s.Warning.Render(render.Sanitize(m.Status)))
	}

	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "…")
	}
	return lines
}

func (m Model) renderFooter() string {
	context := "global"
	if m.Toast.IsFocused() {
		context = "notification"
	}
	return ansi.Truncate(m.Help.View(keymap.NewHelpKeys(context)), m.Width, "")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func armed(b bool) string {
	if b {
		return "armed"
	}
	return "idle"
}
