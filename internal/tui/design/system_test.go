package design

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"toolbox/internal/lifecycle"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		isDarkMode bool
		expected   bool
	}{
		{"set dark mode", true, true},
		{"set light mode", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Initialize(tt.isDarkMode)
			if lipgloss.HasDarkBackground() != tt.expected {
				t.Errorf("lipgloss.HasDarkBackground() got %v, want %v after Initialize(%v)", lipgloss.HasDarkBackground(), tt.expected, tt.isDarkMode)
			}
		})
	}
}

func TestGetPhaseStyle(t *testing.T) {
	tests := []struct {
		phase lifecycle.Phase
		want  lipgloss.TerminalColor
	}{
		{lifecycle.PhaseIdle, ColorTextSecondary},
		{lifecycle.PhaseLoading, ColorWarning},
		{lifecycle.PhaseSuccess, ColorSuccess},
		{lifecycle.PhaseError, ColorError},
	}

	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			if got := GetPhaseStyle(tt.phase).GetForeground(); got != tt.want {
				t.Errorf("GetPhaseStyle(%v) foreground = %v, want %v", tt.phase, got, tt.want)
			}
		})
	}
}

func TestCenterHorizontal(t *testing.T) {
	out := CenterHorizontal(10, "ab")
	if lipgloss.Width(out) != 10 {
		t.Errorf("CenterHorizontal width = %d, want 10", lipgloss.Width(out))
	}
	if got := CenterHorizontal(1, "abc"); got != "abc" {
		t.Errorf("CenterHorizontal should leave wide content alone, got %q", got)
	}
}
