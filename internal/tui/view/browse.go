package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"toolbox/internal/catalog"
	"toolbox/internal/tui/components"
	"toolbox/internal/tui/design"
	"toolbox/internal/tui/model"
	"toolbox/internal/tui/utils"
)

// renderBrowse draws the category sidebar next to the searchable tool grid.
func renderBrowse(m *model.Model) string {
	header := renderHeader(m)
	statusBar := renderStatusBar(m, m.Width)

	layout := components.NewLayout(m.Width, m.Height)
	contentHeight := layout.CalculateContentArea(lipgloss.Height(header), lipgloss.Height(statusBar))

	sidebar := renderSidebar(m, contentHeight)
	gridWidth := m.Width - lipgloss.Width(sidebar) - design.SpaceXS
	main := components.JoinVertical(
		renderSearch(m, gridWidth),
		renderGrid(m, layout.GridColumns(), contentHeight-3),
	)

	body := lipgloss.NewStyle().
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(components.JoinHorizontal(design.SpaceXS, sidebar, main))

	return components.JoinVertical(header, body, statusBar)
}

func renderSidebar(m *model.Model, height int) string {
	style := design.SidebarStyle
	if m.Focus == model.FocusSidebar {
		style = design.SidebarFocusedStyle
	}
	inner := design.SidebarWidth - style.GetHorizontalFrameSize()

	var lines []string
	lines = append(lines, design.TitleStyle.Render("Categories"))
	for i, id := range m.SidebarEntries() {
		name := catalog.DisplayName(id)
		count := len(catalog.Tools(id))
		label := utils.TruncateWithEllipsis(name, inner-6)
		line := label + strings.Repeat(" ", max(1, inner-4-lipgloss.Width(label)-len(itoa(count)))) + design.DimStyle.Render(itoa(count))
		if i == m.SidebarIndex {
			lines = append(lines, design.ListItemSelectedStyle.Render("› "+line))
		} else {
			lines = append(lines, design.ListItemStyle.Render(line))
		}
	}

	h := height - style.GetVerticalBorderSize()
	if h < 1 {
		h = 1
	}
	return style.
		Width(design.SidebarWidth - style.GetHorizontalBorderSize()).
		Height(h).
		Render(strings.Join(lines, "\n"))
}

func renderSearch(m *model.Model, width int) string {
	style := design.SearchStyle
	if m.Focus == model.FocusSearch {
		style = design.SearchFocusedStyle
	}
	w := width - style.GetHorizontalBorderSize()
	if w < 10 {
		w = 10
	}
	return style.Width(w).Render(m.SearchInput.View())
}

// renderGrid lays out one card per visible tool, scrolled so the selected
// card stays on screen.
func renderGrid(m *model.Model, columns, height int) string {
	tools := m.VisibleTools()
	if len(tools) == 0 {
		return design.TextSecondaryStyle.Render(IconText(IconSearch, "No tools match your search."))
	}
	if columns < 1 {
		columns = model.GridColumnsDefault
	}

	selected, _ := m.SelectedTool()
	visibleRows := height / design.CardHeight
	if visibleRows < 1 {
		visibleRows = 1
	}
	selectedRow := m.GridIndex / columns
	firstRow := 0
	if selectedRow >= visibleRows {
		firstRow = selectedRow - visibleRows + 1
	}

	var rows []string
	for start := firstRow * columns; start < len(tools) && len(rows) < visibleRows; start += columns {
		end := start + columns
		if end > len(tools) {
			end = len(tools)
		}
		var cards []string
		for _, t := range tools[start:end] {
			cards = append(cards, components.Card{
				Icon:        SafeIcon(ToolGlyph(t.Icon)),
				Title:       t.Name,
				Description: t.Description,
				Selected:    m.Focus != model.FocusSidebar && t.ID == selected.ID,
			}.Render())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}
