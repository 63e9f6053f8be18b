package keymap

import (
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/x/ansi"
)

func TestNewHelpKeys_Short(t *testing.T) {
	hk := NewHelpKeys("global")

	var got []string
	for _, b := range hk.ShortHelp() {
		got = append(got, b.Help().Key)
	}
	want := []string{"q/ctrl+c", "?", "1", "4", "n", "esc", "tab", "h"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("short help keys = %v, want %v", got, want)
	}
}

func TestNewHelpKeys_FullColumns(t *testing.T) {
	hk := NewHelpKeys("global")

	total := 0
	for i, col := range hk.FullHelp() {
		if len(col) > 5 {
			t.Errorf("column %d has %d bindings, want at most 5", i, len(col))
		}
		total += len(col)
	}
	if total != len(ByContext("global")) {
		t.Errorf("full help lists %d bindings, want %d", total, len(ByContext("global")))
	}
}

func TestNewHelpKeys_MatchesKeys(t *testing.T) {
	hk := NewHelpKeys("notification")
	full := hk.FullHelp()
	if len(full) != 1 {
		t.Fatalf("FullHelp() has %d columns, want 1", len(full))
	}
	activate := full[0][0]
	if activate.Help().Key != "enter/space" {
		t.Errorf("help key = %q, want %q", activate.Help().Key, "enter/space")
	}
	if !slices.Contains(activate.Keys(), " ") {
		t.Errorf("binding keys = %v, want space included", activate.Keys())
	}
}

func TestHelpView_RendersFooter(t *testing.T) {
	h := help.New()
	h.Width = 200
	out := ansi.Strip(h.View(NewHelpKeys("global")))

	for _, want := range []string{"show error", "dismiss notification", "quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("footer %q missing %q", out, want)
		}
	}
}
