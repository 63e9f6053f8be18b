package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func blank(w, h int) string {
	lines := make([]string, h)
	for i := range lines {
		lines[i] = strings.Repeat(".", w)
	}
	return strings.Join(lines, "\n")
}

func TestPlace(t *testing.T) {
	got := Place(blank(10, 4), "ab\ncd", 7, 2, 10)
	want := "..........\n..........\n.......ab.\n.......cd."
	if got != want {
		t.Errorf("Place() =\n%s\nwant\n%s", got, want)
	}
}

func TestPlace_ClipsRightEdge(t *testing.T) {
	got := Place(blank(6, 1), "wxyz", 4, 0, 6)
	if got != "....wx" {
		t.Errorf("Place() = %q, want %q", got, "....wx")
	}
}

func TestPlace_DropsRowsOutsideBase(t *testing.T) {
	got := Place(blank(4, 2), "a\nb\nc", 0, 1, 4)
	want := "....\na..."
	if got != want {
		t.Errorf("Place() = %q, want %q", got, want)
	}
}

func TestPlace_SpacesAreOpaque(t *testing.T) {
	got := Place(blank(5, 1), " x ", 1, 0, 5)
	if got != ". x ." {
		t.Errorf("Place() = %q, want %q", got, ". x .")
	}
}

func TestPlace_EmptyBox(t *testing.T) {
	base := blank(3, 1)
	if got := Place(base, "", 0, 0, 3); got != base {
		t.Errorf("Place() = %q, want base unchanged", got)
	}
}

func TestPlace_StyledBoxKeepsWidth(t *testing.T) {
	box := "\x1b[31mhey\x1b[0m"
	got := Place(blank(8, 1), box, 2, 0, 8)
	if w := ansi.StringWidth(got); w != 8 {
		t.Errorf("width = %d, want 8", w)
	}
	if ansi.Strip(got) != "..hey..." {
		t.Errorf("Place() = %q, want %q", ansi.Strip(got), "..hey...")
	}
}

func TestCompose_SpacesAreTransparent(t *testing.T) {
	got := Compose(blank(7, 2), "  ab \n", 7, 2)
	want := "..ab...\n......."
	if got != want {
		t.Errorf("Compose() = %q, want %q", got, want)
	}
}

func TestCompose_PadsShortBase(t *testing.T) {
	got := Compose("..", "   z", 5, 1)
	if got != ".. z " {
		t.Errorf("Compose() = %q, want %q", got, ".. z ")
	}
}
