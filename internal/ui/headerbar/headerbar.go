// internal/ui/headerbar/headerbar.go
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/notice/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Item is one setting shown on the right of the header.
type Item struct {
	Label string
	Value string
	On    bool // highlights the value
}

// Render returns the header bar: the gradient title on the left and the
// settings on the right. Items that do not fit are dropped from the left.
func Render(title string, items []Item, width int) string {
	if width <= 0 {
		return ""
	}
	t := styles.T()
	left := " " + styles.ApplyBoldGradient(title, t.Primary, t.Secondary)

	labelStyle := lipgloss.NewStyle().Foreground(t.FgMuted)
	offStyle := lipgloss.NewStyle().Foreground(t.FgSubtle)
	onStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)
	separator := offStyle.Render(" │ ")

	parts := make([]string, 0, len(items))
	for _, it := range items {
		value := offStyle.Render(it.Value)
		if it.On {
			value = onStyle.Render(it.Value)
		}
		parts = append(parts, labelStyle.Render(it.Label)+" "+value)
	}

	room := width - lipgloss.Width(left) - 2
	right := strings.Join(parts, separator)
	for len(parts) > 0 && lipgloss.Width(right) > room {
		parts = parts[1:]
		right = strings.Join(parts, separator)
	}

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right)-1, 1)
	return ansi.Truncate(left+strings.Repeat(" ", gap)+right+" ", width, "")
}
