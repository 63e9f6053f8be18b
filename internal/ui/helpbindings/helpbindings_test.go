package helpbindings

import (
	"strings"
	"testing"

	"github.com/llehouerou/notice/internal/ui/testutil"
)

var allContexts = []string{"global", "notification", "history"}

func newTestHelpPopup(contexts []string, height int) (*testutil.PopupHarness, *Model) {
	m := New()
	m.SetContexts(contexts)
	m.SetSize(80, height)
	return testutil.NewPopupHarness(&m), &m
}

func assertClosed(t *testing.T, h *testutil.PopupHarness) {
	t.Helper()
	msg, ok := h.LastAction()
	if !ok {
		t.Fatal("expected an action")
	}
	if msg.Source != Source {
		t.Errorf("Source = %q, want %q", msg.Source, Source)
	}
	if _, ok := msg.Action.(Close); !ok {
		t.Fatalf("expected Close, got %T", msg.Action)
	}
}

func TestHelpBindings_Close(t *testing.T) {
	for _, key := range []string{"q", "?"} {
		t.Run(key, func(t *testing.T) {
			h, _ := newTestHelpPopup([]string{"global"}, 24)
			h.SendKey(key)
			assertClosed(t, h)
		})
	}

	t.Run("esc", func(t *testing.T) {
		h, _ := newTestHelpPopup([]string{"global"}, 24)
		h.SendEscape()
		assertClosed(t, h)
	})
}

func TestHelpBindings_Scroll(t *testing.T) {
	h, m := newTestHelpPopup(allContexts, 24)

	h.SendDown()
	h.SendKey("j")
	if m.scrollOffset != 2 {
		t.Errorf("scrollOffset = %d, want 2", m.scrollOffset)
	}

	h.SendUp()
	h.SendKey("k")
	h.SendKey("k")
	if m.scrollOffset != 0 {
		t.Errorf("scrollOffset = %d, want 0 (clamped)", m.scrollOffset)
	}
}

func TestHelpBindings_ScrollClampedAtEnd(t *testing.T) {
	h, m := newTestHelpPopup(allContexts, 24)

	for range 100 {
		h.SendDown()
	}
	if m.scrollOffset != m.maxScroll() {
		t.Errorf("scrollOffset = %d, want %d", m.scrollOffset, m.maxScroll())
	}
	if !h.ViewContains("Close history") {
		t.Error("last binding should be visible when scrolled to the end")
	}
}

func TestHelpBindings_NoScrollWhenContentFits(t *testing.T) {
	h, m := newTestHelpPopup([]string{"notification"}, 40)

	h.SendDown()
	if m.scrollOffset != 0 {
		t.Errorf("scrollOffset = %d, want 0", m.scrollOffset)
	}
	if !h.ViewContains("?/esc close") || h.ViewContains("j/k scroll") {
		t.Errorf("footer should not offer scrolling:\n%s", h.View())
	}
}

func TestHelpBindings_ViewShowsCategories(t *testing.T) {
	h, _ := newTestHelpPopup(allContexts, 60)
	view := h.View()

	for _, want := range []string{"Help", "Global", "Focused Notification", "History", "enter, space", "Dismiss notification"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHelpBindings_ContextOrderIsFixed(t *testing.T) {
	_, m := newTestHelpPopup([]string{"history", "global"}, 24)

	if len(m.bindings) == 0 || m.bindings[0].Context != "global" {
		t.Errorf("first binding context = %q, want global", m.bindings[0].Context)
	}
}

func TestHelpBindings_EmptyWithoutSize(t *testing.T) {
	m := New()
	m.SetContexts(allContexts)
	if m.View() != "" {
		t.Error("View() without size should be empty")
	}
}
