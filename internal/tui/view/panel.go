package view

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"toolbox/internal/lifecycle"
	"toolbox/internal/present"
	"toolbox/internal/schema"
	"toolbox/internal/tui/components"
	"toolbox/internal/tui/design"
	"toolbox/internal/tui/model"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// renderToolPanel draws the open tool: its inputs, the request phase and
// the result.
func renderToolPanel(m *model.Model) string {
	p := m.Panel
	header := renderHeader(m)
	statusBar := renderStatusBar(m, m.Width)

	intro := design.SubtitleStyle.Render(IconText(ToolGlyph(p.Tool.Icon), p.Tool.Description))
	inputs := renderFields(p)
	actions := renderActions(p.View())
	result := renderResult(m, p)
	hints := design.TextTertiaryStyle.Render(panelHints(p))

	body := components.JoinVertical(intro, inputs, "", actions, result, hints)

	layout := components.NewLayout(m.Width, m.Height)
	contentHeight := layout.CalculateContentArea(lipgloss.Height(header), lipgloss.Height(statusBar))
	body = lipgloss.NewStyle().
		Padding(0, design.SpaceSM).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(body)

	return components.JoinVertical(header, body, statusBar)
}

func renderFields(p *model.ToolPanel) string {
	if len(p.Fields) == 0 {
		return design.TextInfoStyle.Render("This tool takes no input. Press enter to run it.")
	}

	var rows []string
	for i, f := range p.Fields {
		focused := i == p.FocusIndex
		labelStyle := design.FieldLabelStyle
		marker := "  "
		if focused {
			labelStyle = design.FieldLabelFocusedStyle
			marker = "› "
		}
		label := f.Label
		if f.Required {
			label += " *"
		}
		rows = append(rows, marker+labelStyle.Render(label))
		rows = append(rows, "  "+renderControl(p, f, focused))
	}
	return strings.Join(rows, "\n")
}

// renderControl draws the editor for one field.
func renderControl(p *model.ToolPanel, f schema.Field, focused bool) string {
	value := p.Values.Raw(f.Name)

	switch f.Kind {
	case schema.KindCheckbox:
		box := "[ ]"
		if schema.ParseBool(value) {
			box = "[x]"
		}
		return box
	case schema.KindSelect:
		var opts []string
		for _, o := range f.Options {
			if o.Value == value {
				opts = append(opts, design.ListItemSelectedStyle.Copy().PaddingLeft(0).Render(o.Label))
			} else {
				opts = append(opts, design.DimStyle.Render(o.Label))
			}
		}
		return "‹ " + strings.Join(opts, "  ") + " ›"
	case schema.KindRange:
		return renderSlider(f, value, focused)
	}

	if ti, ok := p.Inputs[f.Name]; ok {
		line := ti.View()
		if f.Kind == schema.KindColor && hexColor.MatchString(strings.TrimSpace(value)) {
			swatch := lipgloss.NewStyle().Background(lipgloss.Color(strings.TrimSpace(value))).Render("    ")
			line = swatch + " " + line
		}
		return line
	}
	if ta, ok := p.Areas[f.Name]; ok {
		return ta.View()
	}
	return value
}

const sliderWidth = 20

func renderSlider(f schema.Field, value string, focused bool) string {
	if f.Min == nil || f.Max == nil || *f.Max <= *f.Min {
		return value
	}
	v, err := parseFloat(value)
	if err != nil {
		return value
	}
	pos := int((v - *f.Min) / (*f.Max - *f.Min) * sliderWidth)
	if pos < 0 {
		pos = 0
	}
	if pos > sliderWidth {
		pos = sliderWidth
	}
	bar := strings.Repeat("━", pos) + "●" + strings.Repeat("─", sliderWidth-pos)
	if focused {
		bar = design.IconPrimaryStyle.Render(bar)
	}
	return fmt.Sprintf("%s %s", bar, value)
}

// renderActions draws the button row. Run is disabled while a request is in
// flight; Copy and Download follow the result affordances.
func renderActions(v present.View) string {
	run := design.ButtonStyle.Render("Run")
	if v.Phase == lifecycle.PhaseLoading {
		run = design.ButtonDisabledStyle.Render("Running...")
	}
	buttons := []string{run, actionButton("Copy", v.CanCopy)}
	if v.HasImage() {
		buttons = append(buttons, actionButton("Download", v.CanDownload))
	}
	return components.JoinHorizontal(design.SpaceXS, buttons...)
}

func actionButton(label string, enabled bool) string {
	if enabled {
		return design.ButtonSecondaryStyle.Render(label)
	}
	return design.ButtonDisabledStyle.Render(label)
}

// renderResult draws the phase line and, once a request has been made, the
// result viewport framed by a panel coloured after the phase.
func renderResult(m *model.Model, p *model.ToolPanel) string {
	v := p.View()

	title := phaseLabel(m, v)
	if p.Copied {
		title += "  " + IconText(IconClipboard, "Copied!")
	}
	if v.Phase == lifecycle.PhaseIdle {
		return design.GetPhaseStyle(v.Phase).Render(title)
	}

	body := p.ResultViewport.View()
	if v.IsError {
		body = design.TextErrorStyle.Render(body)
	}
	if v.HasImage() {
		title += "  " + IconText(IconPicture, "image")
	}

	frame := design.PanelStyle.GetHorizontalFrameSize()
	return components.NewPanel(title).
		WithContent(body).
		WithType(components.PanelTypeForPhase(v.Phase)).
		WithDimensions(p.ResultViewport.Width+frame, p.ResultViewport.Height+design.PanelStyle.GetVerticalFrameSize()+2).
		Render()
}

func phaseLabel(m *model.Model, v present.View) string {
	switch v.Phase {
	case lifecycle.PhaseLoading:
		return m.Spinner.View() + " Running..."
	case lifecycle.PhaseSuccess:
		return IconText(IconCheck, "Done")
	case lifecycle.PhaseError:
		return IconText(IconCross, "Failed")
	default:
		return "Ready"
	}
}

// panelHints lists the keys that do something right now.
func panelHints(p *model.ToolPanel) string {
	hints := []string{"tab next field", "ctrl+s run", "esc back"}
	if !p.EditsMultiline() {
		hints[1] = "enter/ctrl+s run"
	}
	if f, ok := p.FocusedField(); ok {
		switch f.Kind {
		case schema.KindSelect, schema.KindRange:
			hints = append(hints, "←/→ change")
		case schema.KindCheckbox:
			hints = append(hints, "space toggle")
		}
	}
	v := p.View()
	if v.CanCopy {
		hints = append(hints, "ctrl+y copy")
	}
	if v.CanDownload {
		hints = append(hints, "ctrl+d download")
	}
	return strings.Join(hints, "  •  ")
}
