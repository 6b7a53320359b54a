package components

import (
	"github.com/charmbracelet/lipgloss"

	"toolbox/internal/tui/design"
	"toolbox/internal/tui/utils"
)

// Card is one tool tile of the browse grid.
type Card struct {
	Icon        string
	Title       string
	Description string
	Selected    bool
}

// Render draws the card at design.CardWidth x design.CardHeight.
func (c Card) Render() string {
	style := design.CardStyle
	if c.Selected {
		style = design.CardSelectedStyle
	}
	inner := design.CardWidth - style.GetHorizontalFrameSize()

	titleStyle := design.TextStyle.Copy().Bold(true)
	if c.Selected {
		titleStyle = titleStyle.Foreground(design.ColorPrimary)
	}
	title := utils.TruncateWithEllipsis(c.Icon+c.Title, inner)
	desc := utils.TruncateWithEllipsis(c.Description, inner)

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		design.TextSecondaryStyle.Render(desc),
	))
}
