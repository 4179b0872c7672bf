package tui

import (
	"strings"
	"testing"

	"github.com/sopgen/sopgen/internal/config"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		maxWidth int
		expected string
	}{
		{"inventory", 20, "inventory"},
		{"inventory", 9, "inventory"},
		{"demand forecast", 7, "demand…"},
		{"kpi", 0, ""},
		{"production", 2, "pr"},
	}

	for _, tt := range tests {
		if got := Truncate(tt.input, tt.maxWidth); got != tt.expected {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.expected)
		}
	}
}

func TestPadding(t *testing.T) {
	if got := PadRight("P1", 5); got != "P1   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadLeft("42", 5); got != "   42" {
		t.Errorf("PadLeft = %q", got)
	}
	if got := PadLeft("123456", 3); got != "123456" {
		t.Errorf("PadLeft wider input = %q", got)
	}
}

func TestContentWidth(t *testing.T) {
	tests := []struct {
		term, min, max, expected int
	}{
		{60, 40, 80, 60},
		{20, 40, 80, 40},
		{200, 40, 80, 80},
		{200, 40, 0, 200},
	}

	for _, tt := range tests {
		if got := ContentWidth(tt.term, tt.min, tt.max); got != tt.expected {
			t.Errorf("ContentWidth(%d, %d, %d) = %d, want %d", tt.term, tt.min, tt.max, got, tt.expected)
		}
	}
}

func TestProgressBar(t *testing.T) {
	theme := NewTheme(config.ColorSchemeGreen)

	half := theme.ProgressBar(5, 10, 22)
	if strings.Count(half, "█") != 10 || strings.Count(half, "░") != 10 {
		t.Errorf("half bar = %q", half)
	}

	if full := theme.ProgressBar(11, 11, 22); strings.Contains(full, "░") {
		t.Errorf("full bar has empty cells: %q", full)
	}

	if empty := theme.ProgressBar(0, 0, 22); strings.Contains(empty, "█") {
		t.Errorf("empty bar has filled cells: %q", empty)
	}
}

func TestNewTheme_Schemes(t *testing.T) {
	for _, scheme := range []config.ColorScheme{config.ColorSchemeGreen, config.ColorSchemeAmber, config.ColorSchemeWhite, ""} {
		theme := NewTheme(scheme)
		if theme.PrimaryColor == "" {
			t.Errorf("scheme %q has no primary color", scheme)
		}
	}
	if NewTheme(config.ColorSchemeAmber).PrimaryColor != "#FFAA00" {
		t.Error("amber scheme should use amber primary")
	}
}
