// Package overlay composes pre-rendered boxes on top of a base view.
// Both functions are ANSI-aware and keep wide characters aligned.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose overlays content on top of a base view.
// Leading and trailing spaces of each overlay line are transparent; the
// visible span replaces the base at the same columns.
func Compose(base, overlay string, width, _ int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plainOverlay := ansi.Strip(overlayLine)
		if strings.TrimSpace(plainOverlay) == "" {
			continue
		}

		startCol := 0
		for _, r := range plainOverlay {
			if r != ' ' {
				break
			}
			startCol++
		}
		endCol := ansi.StringWidth(strings.TrimRight(plainOverlay, " "))

		content := ansi.Cut(overlayLine, startCol, endCol)
		baseLines[i] = splice(baseLines[i], content, startCol, endCol, width)
	}

	return strings.Join(baseLines, "\n")
}

// Place draws box opaquely with its top-left cell at (x, y). Rows that fall
// outside the base are dropped.
func Place(base, box string, x, y, width int) string {
	if box == "" {
		return base
	}
	x = max(x, 0)
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(box, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		end := min(x+ansi.StringWidth(line), width)
		if end <= x {
			continue
		}
		baseLines[row] = splice(baseLines[row], ansi.Truncate(line, end-x, ""), x, end, width)
	}
	return strings.Join(baseLines, "\n")
}

// splice replaces columns [start, end) of line with content.
func splice(line, content string, start, end, width int) string {
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}

	// a wide character cut by the boundary leaves the prefix short
	prefix := ansi.Cut(line, 0, start)
	if pw := ansi.StringWidth(prefix); pw < start {
		prefix += strings.Repeat(" ", start-pw)
	}

	result := prefix + content
	if end >= width {
		return result
	}
	suffix := ansi.Cut(line, end, width)
	want := width - end
	switch sw := ansi.StringWidth(suffix); {
	case sw > want:
		suffix = " " + ansi.Cut(suffix, sw-want+1, sw)
	case sw < want:
		suffix = strings.Repeat(" ", want-sw) + suffix
	}
	return result + suffix
}
