package toast

// Placement is the screen corner a toast is drawn in.
type Placement string

const (
	BottomRight Placement = "bottom-right"
	BottomLeft  Placement = "bottom-left"
	TopRight    Placement = "top-right"
	TopLeft     Placement = "top-left"
)

// ParsePlacement returns the placement named by s, or BottomRight.
func ParsePlacement(s string) Placement {
	switch p := Placement(s); p {
	case BottomRight, BottomLeft, TopRight, TopLeft:
		return p
	}
	return BottomRight
}

// origin returns the top-left cell of a w×h box in a screen of sw×sh,
// keeping margin cells from the edges and bottomInset rows clear at the
// bottom.
func (p Placement) origin(w, h, sw, sh, margin, bottomInset int) (x, y int) {
	switch p {
	case TopLeft, BottomLeft:
		x = margin
	default:
		x = sw - w - margin
	}
	switch p {
	case TopLeft, TopRight:
		y = margin
	default:
		y = sh - h - margin - bottomInset
	}
	return max(x, 0), max(y, 0)
}
