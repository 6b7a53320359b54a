package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"toolbox/internal/lifecycle"
	"toolbox/internal/tui/design"
	"toolbox/internal/tui/utils"
)

// PanelType defines the visual style of a panel
type PanelType int

const (
	PanelTypeDefault PanelType = iota
	PanelTypeSuccess
	PanelTypeError
	PanelTypeWarning
	PanelTypeInfo
)

// String returns the panel type name.
func (pt PanelType) String() string {
	switch pt {
	case PanelTypeDefault:
		return "Default"
	case PanelTypeSuccess:
		return "Success"
	case PanelTypeError:
		return "Error"
	case PanelTypeWarning:
		return "Warning"
	case PanelTypeInfo:
		return "Info"
	default:
		return "Unknown"
	}
}

// PanelTypeForPhase picks the border colour of a result panel.
func PanelTypeForPhase(phase lifecycle.Phase) PanelType {
	switch phase {
	case lifecycle.PhaseSuccess:
		return PanelTypeSuccess
	case lifecycle.PhaseError:
		return PanelTypeError
	case lifecycle.PhaseLoading:
		return PanelTypeWarning
	default:
		return PanelTypeDefault
	}
}

// Panel represents a reusable panel component
type Panel struct {
	Title    string
	Content  string
	Width    int
	Height   int
	Focused  bool
	Type     PanelType
	ShowIcon bool
	Icon     string
}

// NewPanel creates a new panel with default settings
func NewPanel(title string) *Panel {
	return &Panel{
		Title:    title,
		Width:    design.MinPanelWidth,
		Height:   design.MinPanelHeight,
		Type:     PanelTypeDefault,
		ShowIcon: true,
	}
}

// WithContent sets the panel content
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithDimensions sets the panel dimensions
func (p *Panel) WithDimensions(width, height int) *Panel {
	p.Width = width
	p.Height = height
	return p
}

// WithType sets the panel type for styling
func (p *Panel) WithType(panelType PanelType) *Panel {
	p.Type = panelType
	return p
}

// WithIcon sets a custom icon for the panel
func (p *Panel) WithIcon(icon string) *Panel {
	p.Icon = icon
	return p
}

// SetFocused updates the focus state
func (p *Panel) SetFocused(focused bool) *Panel {
	p.Focused = focused
	return p
}

// Render returns the styled panel
func (p *Panel) Render() string {
	if p.Width < design.MinPanelWidth {
		p.Width = design.MinPanelWidth
	}
	if p.Height < design.MinPanelHeight {
		p.Height = design.MinPanelHeight
	}

	style := p.getStyle()

	innerWidth := p.Width - style.GetHorizontalFrameSize()
	innerHeight := p.Height - style.GetVerticalFrameSize()
	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}

	var lines []string
	if p.Title != "" {
		lines = append(lines, p.renderTitle(innerWidth))
		if p.Content != "" {
			lines = append(lines, "")
		}
	}

	if p.Content != "" {
		contentLines := strings.Split(p.Content, "\n")
		availableHeight := innerHeight - len(lines)

		if availableHeight > 0 {
			if len(contentLines) > availableHeight {
				if availableHeight > 1 {
					contentLines = contentLines[:availableHeight-1]
					contentLines = append(contentLines, "...")
				} else {
					contentLines = []string{"..."}
				}
			}

			for _, line := range contentLines {
				if lipgloss.Width(line) > innerWidth && innerWidth > 3 {
					line = utils.TruncateString(line, innerWidth-3) + "..."
				} else if innerWidth <= 3 {
					line = "..."
				}
				lines = append(lines, line)
			}
		}
	}

	for len(lines) < innerHeight {
		lines = append(lines, "")
	}
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}

	return style.
		Width(p.Width - style.GetHorizontalBorderSize()).
		Height(p.Height - style.GetVerticalBorderSize()).
		Render(strings.Join(lines, "\n"))
}

// getStyle returns the appropriate style based on panel state
func (p *Panel) getStyle() lipgloss.Style {
	baseStyle := design.PanelStyle
	if p.Focused {
		baseStyle = design.PanelFocusedStyle
	}

	switch p.Type {
	case PanelTypeSuccess:
		return baseStyle.Copy().BorderForeground(design.ColorSuccess)
	case PanelTypeError:
		return baseStyle.Copy().BorderForeground(design.ColorError)
	case PanelTypeWarning:
		return baseStyle.Copy().BorderForeground(design.ColorWarning)
	case PanelTypeInfo:
		return baseStyle.Copy().BorderForeground(design.ColorInfo)
	default:
		return baseStyle
	}
}

// renderTitle renders the panel title with optional icon
func (p *Panel) renderTitle(width int) string {
	if p.Title == "" {
		return ""
	}

	var titleParts []string
	if p.ShowIcon && p.Icon != "" {
		titleParts = append(titleParts, p.getIconStyle().Render(p.Icon))
	}

	titleStyle := design.TitleStyle.Copy().MarginBottom(0)
	if p.Focused {
		titleStyle = titleStyle.Foreground(design.ColorPrimary)
	}
	titleParts = append(titleParts, titleStyle.Render(p.Title))

	title := strings.Join(titleParts, " ")
	if lipgloss.Width(title) > width {
		title = utils.TruncateString(title, width-3) + "..."
	}
	return title
}

// getIconStyle returns the appropriate icon style
func (p *Panel) getIconStyle() lipgloss.Style {
	switch p.Type {
	case PanelTypeSuccess:
		return design.IconSuccessStyle
	case PanelTypeError:
		return design.IconErrorStyle
	case PanelTypeWarning:
		return design.IconWarningStyle
	case PanelTypeInfo:
		return design.IconInfoStyle
	default:
		if p.Focused {
			return design.IconPrimaryStyle
		}
		return design.IconDefaultStyle
	}
}
