package textinput

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/notice/internal/ui/testutil"
)

const testContext = "test-ctx"

func newTestInput(initialText string, context any) *testutil.PopupHarness {
	m := New()
	m.Start("New notification", initialText, "Message...", context, 80, 24)
	return testutil.NewPopupHarness(&m)
}

func getResult(t *testing.T, h *testutil.PopupHarness) Result {
	t.Helper()
	msg, ok := h.LastAction()
	if !ok {
		t.Fatal("expected an action")
	}
	if msg.Source != Source {
		t.Errorf("Source = %q, want %q", msg.Source, Source)
	}
	result, ok := msg.Action.(Result)
	if !ok {
		t.Fatalf("expected Result, got %T", msg.Action)
	}
	return result
}

func TestTextInput_TypeCharacters(t *testing.T) {
	h := newTestInput("", nil)

	for _, r := range "Build ok" {
		h.SendKey(string(r))
	}
	h.SendEnter()

	result := getResult(t, h)
	if result.Text != "Build ok" {
		t.Errorf("Text = %q, want %q", result.Text, "Build ok")
	}
	if result.Canceled {
		t.Error("expected Canceled=false")
	}
}

func TestTextInput_InitialText(t *testing.T) {
	h := newTestInput("hello", nil)

	h.SendKey("!")
	h.SendEnter()

	if got := getResult(t, h).Text; got != "hello!" {
		t.Errorf("Text = %q, want %q", got, "hello!")
	}
}

func TestTextInput_Backspace(t *testing.T) {
	h := newTestInput("hello", nil)

	h.SendSpecialKey(tea.KeyBackspace)
	h.SendSpecialKey(tea.KeyBackspace)
	h.SendEnter()

	if got := getResult(t, h).Text; got != "hel" {
		t.Errorf("Text = %q, want %q", got, "hel")
	}
}

func TestTextInput_TrimsWhitespace(t *testing.T) {
	h := newTestInput("  spaced  ", nil)
	h.SendEnter()

	if got := getResult(t, h).Text; got != "spaced" {
		t.Errorf("Text = %q, want %q", got, "spaced")
	}
}

func TestTextInput_CharLimit(t *testing.T) {
	m := New()
	m.Start("t", strings.Repeat("x", charLimit+10), "", nil, 80, 24)

	if got := len(m.Value()); got != charLimit {
		t.Errorf("len(Value()) = %d, want %d", got, charLimit)
	}
}

func TestTextInput_Cancel(t *testing.T) {
	h := newTestInput("typed", testContext)

	h.SendEscape()

	result := getResult(t, h)
	if !result.Canceled {
		t.Error("expected Canceled=true")
	}
	if result.Context != testContext {
		t.Errorf("Context = %v, want %q", result.Context, testContext)
	}
}

func TestTextInput_InitBlinks(t *testing.T) {
	h := newTestInput("", nil)
	if len(h.Commands()) != 1 {
		t.Errorf("expected the blink command from Init, got %d commands", len(h.Commands()))
	}
}

func TestTextInput_View(t *testing.T) {
	h := newTestInput("", nil)

	for _, want := range []string{"New notification", ">", "enter confirm"} {
		if !h.ViewContains(want) {
			t.Errorf("view missing %q:\n%s", want, h.View())
		}
	}
}
