// ABOUTME: Tests for the note color enumeration.
// ABOUTME: Covers parsing, formatting, and rejection of unknown colors.

package models

import (
	"errors"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"yellow", Yellow, false},
		{"GREEN", Green, false},
		{" pink ", Pink, false},
		{"blue", Blue, false},
		{"purple", Purple, false},
		{"orange", Orange, false},
		{"", DefaultColor, false},
		{"magenta", DefaultColor, true},
		{"bg-note-red", DefaultColor, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Fatalf("expected ErrInvalidColor, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorsAreValid(t *testing.T) {
	colors := Colors()
	if len(colors) != 6 {
		t.Fatalf("expected 6 colors, got %d", len(colors))
	}
	for _, c := range colors {
		if !c.IsValid() {
			t.Errorf("expected %v to be valid", c)
		}
		parsed, err := ParseColor(c.String())
		if err != nil || parsed != c {
			t.Errorf("expected %q to parse back to itself", c.String())
		}
	}
}

func TestColorText(t *testing.T) {
	text, err := Purple.MarshalText()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(text) != "purple" {
		t.Errorf("expected 'purple', got %q", text)
	}

	if _, err := Color(99).MarshalText(); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}

	var c Color
	if err := c.UnmarshalText([]byte("teal")); err == nil {
		t.Error("expected error unmarshaling unknown color")
	}
	if err := c.UnmarshalText([]byte("orange")); err != nil || c != Orange {
		t.Errorf("expected orange, got %v (%v)", c, err)
	}
}

func TestColorLabel(t *testing.T) {
	if Yellow.Label() != "Yellow" {
		t.Errorf("expected 'Yellow', got %q", Yellow.Label())
	}
	if Color(7).IsValid() {
		t.Error("expected Color(7) to be invalid")
	}
}
