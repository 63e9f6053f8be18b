package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/notice/internal/alert"
)

// ToastColors is the palette of one notification box.
type ToastColors struct {
	Border lipgloss.Color
	Fg     lipgloss.Color
	Accent lipgloss.Color
	Bg     lipgloss.Color // empty: terminal background
}

// ToastPalette returns the colors for a severity and variant.
//
//	filled:   accent background, dark text
//	outlined: accent border, normal text
//	soft:     tinted background, accent text
func (t *Theme) ToastPalette(sev alert.Severity, variant alert.Variant) ToastColors {
	accent := t.SeverityColor(sev)
	switch variant {
	case alert.VariantFilled:
		return ToastColors{Border: accent, Fg: t.BgBase, Accent: t.BgBase, Bg: accent}
	case alert.VariantSoft:
		return ToastColors{Border: t.Border, Fg: accent, Accent: accent, Bg: Blend(accent, t.BgBase, 0.8)}
	default:
		return ToastColors{Border: accent, Fg: t.FgBase, Accent: accent}
	}
}

// Faded returns the palette blended toward the theme background by
// progress (0 = unchanged, 1 = fully faded).
func (t *Theme) Faded(c ToastColors, progress float64) ToastColors {
	if progress <= 0 {
		return c
	}
	out := ToastColors{
		Border: Blend(c.Border, t.BgBase, progress),
		Fg:     Blend(c.Fg, t.BgBase, progress),
		Accent: Blend(c.Accent, t.BgBase, progress),
	}
	if c.Bg != "" {
		out.Bg = Blend(c.Bg, t.BgBase, progress)
	}
	return out
}
