package ui

// Base carries the size and focus state shared by the toast and the popup
// components. Embed it to satisfy the SetSize and SetFocused halves of the
// popup contract:
//
//	type Model struct {
//	    ui.Base
//	    entries []history.Entry
//	}
type Base struct {
	width, height int
	focused       bool
}

// SetFocused marks the component as holding keyboard focus.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused reports whether the component holds keyboard focus.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize records the area the component may draw into.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the drawable width.
func (b Base) Width() int {
	return b.width
}

// Height returns the drawable height.
func (b Base) Height() int {
	return b.height
}

// Sized reports whether a non-empty area has been assigned. Views render
// nothing until it has.
func (b Base) Sized() bool {
	return b.width > 0 && b.height > 0
}
