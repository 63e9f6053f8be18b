// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// HeaderHeight is the space for header + separator in panels.
	HeaderHeight = 2

	// PanelOverhead is the total vertical overhead (border + header + separator).
	// Used to calculate available list height: listHeight = panelHeight - PanelOverhead
	PanelOverhead = BorderHeight + HeaderHeight

	// ToastMargin is the gap kept between a toast and the screen edge.
	ToastMargin = 1

	// MinToastWidth is the narrowest a toast box is drawn, border included.
	MinToastWidth = 24

	// MaxToastWidth caps toast width on wide terminals.
	MaxToastWidth = 56

	// FooterHeight is the space reserved for the key help footer.
	FooterHeight = 1
)
