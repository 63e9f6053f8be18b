package ui

import "testing"

func TestBase_Sized(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want bool
	}{
		{"unset", 0, 0, false},
		{"zero height", 80, 0, false},
		{"zero width", 0, 24, false},
		{"sized", 80, 24, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Base
			b.SetSize(tt.w, tt.h)
			if got := b.Sized(); got != tt.want {
				t.Errorf("Sized() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBase_Focus(t *testing.T) {
	var b Base
	if b.IsFocused() {
		t.Fatal("zero Base should not be focused")
	}
	b.SetFocused(true)
	if !b.IsFocused() {
		t.Error("SetFocused(true) did not stick")
	}
}
