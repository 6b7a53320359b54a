package components

import (
	"github.com/charmbracelet/lipgloss"

	"toolbox/internal/tui/design"
)

// Layout helps organize the dashboard into sections
type Layout struct {
	Width  int
	Height int
}

// NewLayout creates a new layout manager
func NewLayout(width, height int) *Layout {
	return &Layout{
		Width:  width,
		Height: height,
	}
}

// CalculateContentArea returns the available content area after accounting for header and status bar
func (l *Layout) CalculateContentArea(headerHeight, statusBarHeight int) int {
	contentHeight := l.Height - headerHeight - statusBarHeight
	if contentHeight < 0 {
		contentHeight = 0
	}
	return contentHeight
}

// GridColumns returns how many cards fit next to the sidebar, at least one.
func (l *Layout) GridColumns() int {
	available := l.Width - design.SidebarWidth - design.SpaceXS
	cols := available / design.CardWidth
	if cols < 1 {
		cols = 1
	}
	return cols
}

// JoinHorizontal joins components horizontally with optional gap
func JoinHorizontal(gap int, components ...string) string {
	if gap > 0 {
		spacer := lipgloss.NewStyle().Width(gap).Render("")
		parts := make([]string, 0, len(components)*2-1)
		for i, comp := range components {
			if i > 0 {
				parts = append(parts, spacer)
			}
			parts = append(parts, comp)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, components...)
}

// JoinVertical joins components vertically
func JoinVertical(components ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, components...)
}

// CenterContent centers content within the given dimensions
func CenterContent(width, height int, content string) string {
	return design.CenterVertical(height, design.CenterHorizontal(width, content))
}
