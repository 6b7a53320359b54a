package view

import (
	"strings"

	"toolbox/internal/tui/design"
)

// PrepareLogContent applies color styles based on log level keywords.
// The viewport handles overflow, so lines are not truncated to maxWidth.
func PrepareLogContent(lines []string, maxWidth int) string {
	out := make([]string, len(lines))
	for i, rawLine := range lines {
		out[i] = styleLogLine(rawLine)
	}
	return strings.Join(out, "\n")
}

// styleLogLine returns the line wrapped in appropriate lipgloss style depending
// on markers contained in the text.
func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}
