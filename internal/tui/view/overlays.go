package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"toolbox/internal/tui/design"
	"toolbox/internal/tui/model"
)

// renderHelpOverlay lists every key binding in columns.
func renderHelpOverlay(m *model.Model) string {
	titleView := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")

	var helpLines []string
	columnSeparator := "  "
	interColumnGap := "   "
	descColumnWidth := 22

	keyBindingColumns := m.Keys.FullHelp()
	if len(keyBindingColumns) == 0 {
		helpLines = append(helpLines, "No keybindings configured.")
	} else {
		maxKeyWidths := make([]int, len(keyBindingColumns))
		maxRows := 0
		for c, column := range keyBindingColumns {
			for _, binding := range column {
				if w := lipgloss.Width(binding.Help().Key); w > maxKeyWidths[c] {
					maxKeyWidths[c] = w
				}
			}
			if len(column) > maxRows {
				maxRows = len(column)
			}
		}

		for r := 0; r < maxRows; r++ {
			var line strings.Builder
			for c, column := range keyBindingColumns {
				last := c == len(keyBindingColumns)-1
				if r >= len(column) {
					if !last {
						line.WriteString(strings.Repeat(" ", maxKeyWidths[c]+len(columnSeparator)+descColumnWidth+len(interColumnGap)))
					}
					continue
				}
				keyText := column[r].Help().Key
				descText := column[r].Help().Desc
				line.WriteString(keyText)
				line.WriteString(strings.Repeat(" ", maxKeyWidths[c]-lipgloss.Width(keyText)))
				line.WriteString(columnSeparator)
				line.WriteString(descText)
				if !last {
					if w := lipgloss.Width(descText); w < descColumnWidth {
						line.WriteString(strings.Repeat(" ", descColumnWidth-w))
					}
					line.WriteString(interColumnGap)
				}
			}
			helpLines = append(helpLines, line.String())
		}
	}

	container := design.CenteredOverlayContainerStyle.Render(titleView + "\n" + strings.Join(helpLines, "\n"))
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, container, overlayBackdrop)
}

// logOverlayTitle is the heading of the activity log overlay.
var logOverlayTitle = SafeIcon(IconScroll) + " Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)"

// renderLogOverlay shows the activity log above the status bar. It sizes
// the log viewport to 80% x 70% of the screen.
func renderLogOverlay(m *model.Model) string {
	titleView := design.LogPanelTitleStyle.Render(logOverlayTitle)
	titleHeight := lipgloss.Height(titleView)

	overlayTotalWidth := int(float64(m.Width) * 0.8)
	overlayTotalHeight := int(float64(m.Height) * 0.7)

	newViewportWidth := overlayTotalWidth - design.LogOverlayStyle.GetHorizontalFrameSize()
	newViewportHeight := overlayTotalHeight - design.LogOverlayStyle.GetVerticalFrameSize() - titleHeight
	if newViewportWidth < 0 {
		newViewportWidth = 0
	}
	if newViewportHeight < 0 {
		newViewportHeight = 0
	}

	dimensionsChanged := m.LogViewport.Width != newViewportWidth || m.LogViewport.Height != newViewportHeight
	m.LogViewport.Width = newViewportWidth
	m.LogViewport.Height = newViewportHeight
	if m.ActivityLogDirty || dimensionsChanged {
		m.LogViewport.SetContent(PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, titleView, m.LogViewport.View())
	overlay := design.LogOverlayStyle.Copy().
		Width(overlayTotalWidth - design.LogOverlayStyle.GetHorizontalFrameSize()).
		Height(overlayTotalHeight - design.LogOverlayStyle.GetVerticalFrameSize()).
		Render(content)

	overlayCanvas := lipgloss.Place(m.Width, m.Height-1, lipgloss.Center, lipgloss.Center, overlay, overlayBackdrop)
	return lipgloss.JoinVertical(lipgloss.Left, overlayCanvas, renderStatusBar(m, m.Width))
}
