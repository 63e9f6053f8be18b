package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "hello world", "hello world"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with multiple codes", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"truecolor", "\x1b[38;2;255;85;85mx\x1b[0m", "x"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"hello    world", "hello world"},
		{"hello\t\nworld", "hello world"},
		{"  hello  ", "hello"},
	}

	for _, tt := range tests {
		if got := NormalizeWhitespace(tt.input); got != tt.want {
			t.Errorf("NormalizeWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFindLine(t *testing.T) {
	output := "line one\nline two\nline three"

	if got := FindLine(output, "two"); got != "line two" {
		t.Errorf("FindLine(two) = %q, want %q", got, "line two")
	}
	if got := FindLine(output, "four"); got != "" {
		t.Errorf("FindLine(four) = %q, want empty", got)
	}
	if !ContainsLine(output, "three") {
		t.Error("ContainsLine(three) = false, want true")
	}
	if ContainsLine(output, "one\nline") {
		t.Error("ContainsLine should not match across lines")
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\nb\n\n  \n")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("SplitLines() = %q, want [a b]", got)
	}
}

func TestMeasureWidth(t *testing.T) {
	if got := MeasureWidth("\x1b[1m日本\x1b[0m"); got != 4 {
		t.Errorf("MeasureWidth() = %d, want 4", got)
	}
}

type pingMsg struct{ n int }

func TestCollectMsgs(t *testing.T) {
	cmd := tea.Batch(
		func() tea.Msg { return pingMsg{1} },
		nil,
		tea.Batch(
			func() tea.Msg { return pingMsg{2} },
			func() tea.Msg { return pingMsg{3} },
		),
		func() tea.Msg { return nil },
	)

	msgs := CollectMsgs(cmd)
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want 3: %v", len(msgs), msgs)
	}
	for i, m := range msgs {
		if p, ok := m.(pingMsg); !ok || p.n != i+1 {
			t.Errorf("msgs[%d] = %v, want pingMsg{%d}", i, m, i+1)
		}
	}
}

func TestCollectMsgs_Nil(t *testing.T) {
	if msgs := CollectMsgs(nil); msgs != nil {
		t.Errorf("CollectMsgs(nil) = %v, want nil", msgs)
	}
}

func TestFindMsg(t *testing.T) {
	msgs := []tea.Msg{"text", pingMsg{7}}

	p, ok := FindMsg[pingMsg](msgs)
	if !ok || p.n != 7 {
		t.Errorf("FindMsg[pingMsg] = %v, %v; want {7}, true", p, ok)
	}
	if _, ok := FindMsg[tea.KeyMsg](msgs); ok {
		t.Error("FindMsg[tea.KeyMsg] found a message, want none")
	}
}
