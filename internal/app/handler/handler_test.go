package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var escKey = tea.KeyMsg{Type: tea.KeyEscape}

func TestHandled(t *testing.T) {
	if NotHandled.Handled || NotHandled.Cmd != nil {
		t.Error("NotHandled should be the zero Result")
	}

	cmd := func() tea.Msg { return "test" }
	r := Handled(cmd)
	if !r.Handled || r.Cmd == nil {
		t.Errorf("Handled(cmd) = %+v, want handled with command", r)
	}
	if r := Handled(nil); !r.Handled || r.Cmd != nil {
		t.Errorf("Handled(nil) = %+v, want handled without command", r)
	}
}

func TestFrom(t *testing.T) {
	if r := From(false, nil); r.Handled {
		t.Error("From(false, nil) should not be handled")
	}
	cmd := func() tea.Msg { return nil }
	if r := From(true, cmd); !r.Handled || r.Cmd == nil {
		t.Errorf("From(true, cmd) = %+v", r)
	}
}

func TestChain_NoHandlers(t *testing.T) {
	handled, cmd := Chain(escKey)
	if handled || cmd != nil {
		t.Error("Chain with no handlers should not handle")
	}
}

func TestChain_PassesKey(t *testing.T) {
	var got string
	h := func(msg tea.KeyMsg) Result {
		got = msg.String()
		return NotHandled
	}
	Chain(escKey, h)
	if got != "esc" {
		t.Errorf("handler saw %q, want esc", got)
	}
}

func TestChain_Order(t *testing.T) {
	tests := []struct {
		name      string
		results   []Result
		wantOrder []int
		handled   bool
		wantCmd   bool
	}{
		{
			name:      "first handler handles",
			results:   []Result{Handled(nil), Handled(nil)},
			wantOrder: []int{0},
			handled:   true,
		},
		{
			name:      "middle handler handles with command",
			results:   []Result{NotHandled, Handled(func() tea.Msg { return "middle" }), Handled(nil)},
			wantOrder: []int{0, 1},
			handled:   true,
			wantCmd:   true,
		},
		{
			name:      "no handler handles",
			results:   []Result{NotHandled, NotHandled, NotHandled},
			wantOrder: []int{0, 1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var order []int
			handlers := make([]Handler, len(tt.results))
			for i, r := range tt.results {
				handlers[i] = func(tea.KeyMsg) Result {
					order = append(order, i)
					return r
				}
			}

			handled, cmd := Chain(escKey, handlers...)
			if handled != tt.handled {
				t.Errorf("handled = %v, want %v", handled, tt.handled)
			}
			if (cmd != nil) != tt.wantCmd {
				t.Errorf("cmd != nil is %v, want %v", cmd != nil, tt.wantCmd)
			}
			if len(order) != len(tt.wantOrder) {
				t.Fatalf("call order = %v, want %v", order, tt.wantOrder)
			}
			for i := range order {
				if order[i] != tt.wantOrder[i] {
					t.Errorf("call order = %v, want %v", order, tt.wantOrder)
				}
			}
		})
	}
}
