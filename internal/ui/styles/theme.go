package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/notice/internal/alert"
)

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - focused items, active states
	Secondary lipgloss.Color // Gold/orange - secondary accent

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase lipgloss.Color // Panel backgrounds, fade target

	// Borders
	Border      lipgloss.Color // Unfocused panel borders
	BorderFocus lipgloss.Color // Focused panel borders

	// Severity colors
	Info    lipgloss.Color // Blue
	Success lipgloss.Color // Green
	Error   lipgloss.Color // Red
	Warning lipgloss.Color // Yellow/orange

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style // Default text
	Muted   lipgloss.Style // Dimmed text
	Subtle  lipgloss.Style // Very dim text
	Title   lipgloss.Style // Bold, bright
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	// Bright purple accent
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgBase: lipgloss.Color("#1a1a1a"),

	// Borders
	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	// Severity
	Info:    lipgloss.Color("#61afef"),
	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}

// SeverityColor returns the accent color for a severity.
func (t *Theme) SeverityColor(sev alert.Severity) lipgloss.Color {
	switch sev {
	case alert.SeverityInfo:
		return t.Info
	case alert.SeveritySuccess:
		return t.Success
	case alert.SeverityWarning:
		return t.Warning
	case alert.SeverityError:
		return t.Error
	default:
		return t.Primary
	}
}

// SeverityIcon returns the glyph drawn before a notification title.
func SeverityIcon(sev alert.Severity) string {
	switch sev {
	case alert.SeverityInfo:
		return "ℹ"
	case alert.SeveritySuccess:
		return "✓"
	case alert.SeverityWarning:
		return "⚠"
	case alert.SeverityError:
		return "✗"
	default:
		return "•"
	}
}
