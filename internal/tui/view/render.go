package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"toolbox/internal/catalog"
	"toolbox/internal/lifecycle"
	"toolbox/internal/tui/components"
	"toolbox/internal/tui/design"
	"toolbox/internal/tui/model"
)

// overlayBackdrop dims whatever sits behind an overlay.
var overlayBackdrop = lipgloss.WithWhitespaceBackground(lipgloss.AdaptiveColor{Light: "rgba(0,0,0,0.1)", Dark: "rgba(0,0,0,0.6)"})

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	if m.Width == 0 || m.Height == 0 {
		return design.TextSecondaryStyle.Render("Initializing... (waiting for window size)")
	}

	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return design.TextSecondaryStyle.Render("Bye.")
	case model.ModeBrowse:
		return renderBrowse(m)
	case model.ModePanel:
		if m.Panel == nil {
			return renderBrowse(m)
		}
		return renderToolPanel(m)
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	default:
		return design.TextErrorStyle.Render(fmt.Sprintf("Unhandled application mode: %s", m.CurrentAppMode.String()))
	}
}

// renderHeader draws the title row. The spinner shows while the open panel
// waits for a response.
func renderHeader(m *model.Model) string {
	h := components.NewHeader(IconText(IconTools, "Toolbox")).
		WithWidth(m.Width).
		WithRightContent(design.DimStyle.Render("? help  •  L log  •  ") + design.QuitKeyStyle.Render("q") + design.DimStyle.Render(" quit"))

	if m.Panel != nil {
		h = h.WithSubtitle(catalog.DisplayName(m.Panel.Tool.Category) + " / " + m.Panel.Tool.Name)
		if m.Panel.Controller.State().Phase == lifecycle.PhaseLoading {
			h = h.WithSpinner(m.Spinner.View())
		}
	} else {
		h = h.WithSubtitle(catalog.DisplayName(m.SelectedCategory))
	}
	return h.Render()
}

// renderStatusBar draws the bottom row: a transient message when one is
// set, the tool count and backend otherwise.
func renderStatusBar(m *model.Model, width int) string {
	left := fmt.Sprintf("%d tools", len(m.VisibleTools()))
	if q := m.SearchInput.Value(); q != "" {
		left += fmt.Sprintf(" matching %q", q)
	}
	right := "offline"
	if m.Service != nil {
		right = "service connected"
	}
	right += " • " + m.Policy.String()

	return components.NewStatusBar(width).
		WithLeftText(left).
		WithRightText(right).
		WithMessage(m.StatusBarMessage, m.StatusBarMessageType).
		Render()
}
