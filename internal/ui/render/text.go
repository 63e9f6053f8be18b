// Package render provides text rendering utilities for TUI components.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Sanitize removes control characters (except tab) and invalid UTF-8 bytes
// so notification text from other processes cannot break the layout.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
			i++
			continue
		case r != '\t' && unicode.IsControl(r):
		case r == '\u00a0':
			b.WriteByte(' ')
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func needsSanitize(s string) bool {
	for i := range len(s) {
		c := s[i]
		if c < 0x20 && c != '\t' {
			return true
		}
		if c == 0x7f || (c >= 0x80 && c <= 0x9f) {
			return true
		}
		// U+00A0 and the C1 controls are encoded with a 0xc2 lead byte
		if c == 0xc2 && i+1 < len(s) && (s[i+1] == 0xa0 || s[i+1] <= 0x9f) {
			return true
		}
	}
	return !utf8.ValidString(s)
}

// Truncate shortens a string to fit within maxWidth, adding an ellipsis if
// truncated. Wide characters (CJK, emoji) count double.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// Pad fills a string with spaces to reach the specified width.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad truncates a string if necessary, then pads to the exact width.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row creates a row with left and right aligned content separated by spaces.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal separator line of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", width)
}

// Wrap breaks s into lines no wider than width, at Unicode line break
// opportunities. Explicit newlines are kept; a word wider than width on its
// own is cut at grapheme boundaries.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for para := range strings.SplitSeq(s, "\n") {
		lines = append(lines, wrapParagraph(Sanitize(para), width)...)
	}
	return lines
}

func wrapParagraph(s string, width int) []string {
	if s == "" {
		return []string{""}
	}

	var lines []string
	var line strings.Builder
	lineW := 0
	flush := func() {
		lines = append(lines, strings.TrimRight(line.String(), " "))
		line.Reset()
		lineW = 0
	}

	state := -1
	for s != "" {
		var segment string
		var mustBreak bool
		segment, s, mustBreak, state = uniseg.FirstLineSegmentInString(s, state)

		segW := uniseg.StringWidth(strings.TrimRight(segment, " "))
		if lineW > 0 && lineW+segW > width {
			flush()
		}
		for segW > width {
			var head string
			head, segment = cutWidth(segment, width)
			lines = append(lines, head)
			segW = uniseg.StringWidth(strings.TrimRight(segment, " "))
		}
		line.WriteString(segment)
		lineW += uniseg.StringWidth(segment)

		if mustBreak {
			flush()
		}
	}
	if line.Len() > 0 {
		flush()
	}
	return lines
}

// cutWidth splits s after at most width cells. The first grapheme is always
// kept so a cluster wider than width still makes progress.
func cutWidth(s string, width int) (head, rest string) {
	g := uniseg.NewGraphemes(s)
	w := 0
	for g.Next() {
		gw := g.Width()
		if w > 0 && w+gw > width {
			start, _ := g.Positions()
			return s[:start], s[start:]
		}
		w += gw
	}
	return s, ""
}
