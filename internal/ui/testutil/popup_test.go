package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/notice/internal/ui/action"
	"github.com/llehouerou/notice/internal/ui/popup"
)

type done struct{}

func (done) ActionType() string { return "mock.done" }

// mockPopup is a simple popup implementation for testing the harness.
type mockPopup struct {
	content    string
	width      int
	height     int
	keyHistory []string
}

var _ popup.Popup = (*mockPopup)(nil)

func (m *mockPopup) Init() tea.Cmd {
	return func() tea.Msg { return "init" }
}

func (m *mockPopup) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		m.keyHistory = append(m.keyHistory, key.String())
		if key.Type == tea.KeyEnter {
			return m, action.Cmd("mock", done{})
		}
	}
	return m, nil
}

func (m *mockPopup) View() string {
	return "\x1b[1m" + m.content + "\x1b[0m"
}

func (m *mockPopup) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func TestNewPopupHarness_CapturesInit(t *testing.T) {
	mock := &mockPopup{content: "test content"}
	h := NewPopupHarness(mock)

	if h.Popup() != mock {
		t.Error("Popup() should return the underlying popup")
	}
	if len(h.Commands()) != 1 {
		t.Errorf("expected 1 init command, got %d", len(h.Commands()))
	}
}

func TestPopupHarness_Keys(t *testing.T) {
	mock := &mockPopup{}
	h := NewPopupHarness(mock)

	h.SendKey("a")
	h.SendEscape()
	h.SendUp()
	h.SendDown()

	want := []string{"a", "esc", "up", "down"}
	if len(mock.keyHistory) != len(want) {
		t.Fatalf("keyHistory = %v, want %v", mock.keyHistory, want)
	}
	for i := range want {
		if mock.keyHistory[i] != want[i] {
			t.Errorf("keyHistory[%d] = %q, want %q", i, mock.keyHistory[i], want[i])
		}
	}
}

func TestPopupHarness_LastAction(t *testing.T) {
	h := NewPopupHarness(&mockPopup{})
	h.ClearCommands()

	if _, ok := h.LastAction(); ok {
		t.Error("LastAction() with no commands should report false")
	}

	h.SendEnter()
	msg, ok := h.LastAction()
	if !ok {
		t.Fatal("expected an action after enter")
	}
	if msg.Source != "mock" || msg.Action.ActionType() != "mock.done" {
		t.Errorf("LastAction() = %+v", msg)
	}
}

func TestPopupHarness_ViewIsStripped(t *testing.T) {
	h := NewPopupHarness(&mockPopup{content: "hello"})

	if h.View() != "hello" {
		t.Errorf("View() = %q, want %q", h.View(), "hello")
	}
	if !h.ViewContains("ell") {
		t.Error("ViewContains(ell) = false, want true")
	}
}

func TestExecuteCmd_Nil(t *testing.T) {
	if ExecuteCmd(nil) != nil {
		t.Error("ExecuteCmd(nil) should return nil")
	}
}
