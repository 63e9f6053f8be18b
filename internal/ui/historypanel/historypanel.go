// Package historypanel lists retired notifications.
package historypanel

import (
	"fmt"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/notice/internal/alert"
	"github.com/llehouerou/notice/internal/history"
	"github.com/llehouerou/notice/internal/ui"
	"github.com/llehouerou/notice/internal/ui/popup"
	"github.com/llehouerou/notice/internal/ui/render"
	"github.com/llehouerou/notice/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// reasonOrder fixes the order of the summary line.
var reasonOrder = []string{"close", "key", "expiry", "controlled", "destroyed"}

// chrome is the number of rows taken by title, summary, footer and spacing.
const chrome = 8

// Model holds the state for the history panel popup.
type Model struct {
	ui.Base
	entries []history.Entry
	counts  map[string]int
	offset  int
	now     func() time.Time
}

// New creates an empty history panel.
func New() Model {
	return Model{now: time.Now}
}

// SetClock overrides the time source used for relative times.
func (m *Model) SetClock(now func() time.Time) {
	m.now = now
}

// SetEntries replaces the listed entries (newest first) and the per-reason
// totals.
func (m *Model) SetEntries(entries []history.Entry, counts map[string]int) {
	m.entries = entries
	m.counts = counts
	m.offset = min(m.offset, m.maxScroll())
}

// Len returns the number of listed entries.
func (m *Model) Len() int {
	return len(m.entries)
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "h", "esc", "q":
		return m, closeCmd()
	case "X":
		if len(m.entries) > 0 {
			return m, clearCmd(len(m.entries))
		}
	case "j", "down":
		if m.offset < m.maxScroll() {
			m.offset++
		}
	case "k", "up":
		if m.offset > 0 {
			m.offset--
		}
	case "g", "home":
		m.offset = 0
	case "G", "end":
		m.offset = m.maxScroll()
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.Sized() {
		return ""
	}

	s := styles.T().S()
	var b strings.Builder
	b.WriteString(s.Title.Render("History"))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render(m.summary()))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(s.Subtle.Render("No notifications yet"))
	} else {
		end := min(m.offset+m.visibleHeight(), len(m.entries))
		rows := make([]string, 0, end-m.offset)
		for _, e := range m.entries[m.offset:end] {
			rows = append(rows, m.renderEntry(e))
		}
		b.WriteString(strings.Join(rows, "\n"))
	}

	b.WriteString("\n\n")
	b.WriteString(s.Subtle.Render(m.footer()))
	return b.String()
}

func (m Model) renderEntry(e history.Entry) string {
	t := styles.T()
	sev, _ := alert.ParseSeverity(e.Severity)

	icon := lipgloss.NewStyle().Foreground(t.SeverityColor(sev)).Render(styles.SeverityIcon(sev))
	when := humanize.RelTime(e.RetiredAt, m.now(), "ago", "from now")
	right := fmt.Sprintf("%s · %s", e.Reason, when)

	text := e.Title
	if e.Message != "" {
		if text != "" {
			text += ": "
		}
		text += e.Message
	}
	text = render.Sanitize(text)

	width := m.rowWidth()
	textWidth := max(width-lipgloss.Width(right)-4, 1)
	return icon + " " + render.TruncateAndPad(text, textWidth) + "  " + t.S().Muted.Render(right)
}

func (m Model) summary() string {
	if len(m.counts) == 0 {
		return "0 retired"
	}

	total := 0
	var parts []string
	for _, r := range reasonOrder {
		if n := m.counts[r]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", r, n))
			total += n
		}
	}
	// reasons written by other versions still count toward the total
	for r, n := range m.counts {
		if !slices.Contains(reasonOrder, r) {
			total += n
		}
	}
	return fmt.Sprintf("%s retired · %s", humanize.Comma(int64(total)), strings.Join(parts, " · "))
}

func (m Model) footer() string {
	parts := []string{"X clear", "h/esc close"}
	if m.maxScroll() > 0 {
		parts = append([]string{"j/k scroll"}, parts...)
	}
	return strings.Join(parts, " · ")
}

func (m Model) rowWidth() int {
	return min(max(m.Width()-8, 30), 90)
}

func (m Model) visibleHeight() int {
	return max(m.Height()-chrome, 3)
}

func (m Model) maxScroll() int {
	return max(len(m.entries)-m.visibleHeight(), 0)
}
