package toast

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/notice/internal/alert"
	"github.com/llehouerou/notice/internal/ui"
	"github.com/llehouerou/notice/internal/ui/overlay"
	"github.com/llehouerou/notice/internal/ui/render"
	"github.com/llehouerou/notice/internal/ui/styles"
)

const (
	closeGlyph      = "[×]"
	closeWidth      = 3
	maxMessageLines = 8
	// border + horizontal padding on each side
	boxChrome = 4
)

// Rect is a screen area in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return r.W > 0 && r.H > 0 &&
		x >= r.X && x < r.X+r.W &&
		y >= r.Y && y < r.Y+r.H
}

// View renders the notification box, or "" when nothing is mounted.
func (m *Model) View() string {
	if !m.Mounted() {
		return ""
	}
	d := m.ctrl.Directive()
	t := styles.T()

	pal := t.ToastPalette(d.Severity, d.Variant)
	if d.Phase == alert.PhaseDismissing {
		pal = t.Faded(pal, m.fadeProgress())
	}
	base := lipgloss.NewStyle().Foreground(pal.Fg)
	if pal.Bg != "" {
		base = base.Background(pal.Bg)
	}

	width := m.boxWidth(d)
	inner := width - boxChrome

	lines := []string{m.headerLine(d, pal, base, inner)}
	for _, l := range m.messageLines(d, inner) {
		lines = append(lines, base.Render(render.Pad(l, inner)))
	}
	if hint := hintText(d, m.IsFocused()); hint != "" {
		muted := base.Foreground(styles.Blend(pal.Fg, t.BgBase, 0.45))
		lines = append(lines, muted.Render(render.TruncateAndPad(hint, inner)))
	}

	border := lipgloss.RoundedBorder()
	if m.IsFocused() {
		border = lipgloss.ThickBorder()
	}
	box := lipgloss.NewStyle().
		Border(border).
		BorderForeground(pal.Border).
		Padding(0, 1).
		Width(width - 2)
	if pal.Bg != "" {
		box = box.Background(pal.Bg).BorderBackground(pal.Bg)
	}
	return box.Render(strings.Join(lines, "\n"))
}

func (m *Model) headerLine(d alert.Directive, pal styles.ToastColors, base lipgloss.Style, inner int) string {
	icon := base.Foreground(pal.Accent).Bold(true).Render(styles.SeverityIcon(d.Severity))

	right := ""
	titleRoom := inner - 2
	if d.Dismissible {
		right = base.Foreground(pal.Accent).Render(closeGlyph)
		titleRoom -= closeWidth + 1
	}

	left := icon
	if d.Title != "" {
		titleStyle := base.Italic(true)
		if d.HeadingLevel > 0 {
			titleStyle = base.Bold(true)
		}
		left += base.Render(" ") + titleStyle.Render(render.Truncate(d.Title, titleRoom))
	}

	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return left + base.Render(strings.Repeat(" ", gap)) + right
}

func (m *Model) messageLines(d alert.Directive, inner int) []string {
	if d.Message == "" {
		return nil
	}
	lines := render.Wrap(d.Message, inner)
	if len(lines) > maxMessageLines {
		lines = lines[:maxMessageLines]
		lines[maxMessageLines-1] = render.Truncate(lines[maxMessageLines-1]+" ...", inner)
	}
	return lines
}

func hintText(d alert.Directive, focused bool) string {
	var parts []string
	if d.Dismissible {
		if focused {
			parts = append(parts, "enter close")
		}
		parts = append(parts, alert.CancelKey+" dismiss")
	}
	if d.Paused {
		parts = append(parts, "paused")
	}
	return strings.Join(parts, " · ")
}

// boxWidth fits the content between the minimum toast width and what the
// screen allows.
func (m *Model) boxWidth(d alert.Directive) int {
	limit := ui.MaxToastWidth
	if w := m.Width(); w > 0 {
		limit = min(limit, w-2*ui.ToastMargin)
	}

	natural := lipgloss.Width(d.Title) + 2
	if d.Dismissible {
		natural += closeWidth + 1
	}
	for _, l := range strings.Split(d.Message, "\n") {
		natural = max(natural, lipgloss.Width(l))
	}
	natural = max(natural, lipgloss.Width(hintText(d, true)))

	return max(min(natural+boxChrome, limit), min(ui.MinToastWidth, limit), boxChrome+closeWidth+2)
}

// Bounds returns where the box is drawn on screen.
func (m *Model) Bounds() Rect {
	view := m.View()
	if view == "" {
		return Rect{}
	}
	w, h := lipgloss.Width(view), lipgloss.Height(view)
	x, y := m.placement.origin(w, h, m.Width(), m.Height(), ui.ToastMargin, m.bottomInset)
	return Rect{X: x, Y: y, W: w, H: h}
}

// CloseBounds returns the hit area of the close affordance, empty when the
// notification is not dismissible.
func (m *Model) CloseBounds() Rect {
	if !m.Mounted() || !m.ctrl.Config().Dismissible {
		return Rect{}
	}
	b := m.Bounds()
	// inside the right border and padding, on the header row
	return Rect{X: b.X + b.W - 2 - closeWidth, Y: b.Y + 1, W: closeWidth, H: 1}
}

// Overlay draws the notification on top of base.
func (m *Model) Overlay(base string) string {
	if !m.Mounted() {
		return base
	}
	b := m.Bounds()
	return overlay.Place(base, m.View(), b.X, b.Y, m.Width())
}

// Transcript returns what assistive technology is given for the current
// notification: its role, politeness and the atomic announcement with the
// severity prefix first.
func (m *Model) Transcript() string {
	if !m.Mounted() {
		return ""
	}
	d := m.ctrl.Directive()
	return fmt.Sprintf("[%s %s] %s", d.Role, d.Urgency, d.Announcement())
}
