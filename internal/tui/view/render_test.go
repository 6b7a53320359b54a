package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbox/internal/catalog"
	"toolbox/internal/lifecycle"
	"toolbox/internal/operation"
	"toolbox/internal/present"
	"toolbox/internal/tui/design"
	"toolbox/internal/tui/model"
)

func newTestModel(t *testing.T) *model.Model {
	t.Helper()
	m := model.InitializeModel(model.TUIConfig{}, nil)
	m.Width = 120
	m.Height = 40
	return m
}

func openTool(t *testing.T, m *model.Model, id string) *model.ToolPanel {
	t.Helper()
	tool, err := catalog.Find(id)
	require.NoError(t, err)
	m.OpenPanel(tool)
	require.NotNil(t, m.Panel)
	return m.Panel
}

func TestRender_WaitsForWindowSize(t *testing.T) {
	m := model.InitializeModel(model.TUIConfig{}, nil)
	assert.Contains(t, Render(m), "waiting for window size")
}

func TestRender_Browse(t *testing.T) {
	m := newTestModel(t)
	out := Render(m)

	assert.Contains(t, out, "Toolbox")
	assert.Contains(t, out, "Categories")
	assert.Contains(t, out, "Text Tools")
	assert.Contains(t, out, "Case Converter")
	assert.Contains(t, out, "offline")
}

func TestRender_BrowseNoMatches(t *testing.T) {
	m := newTestModel(t)
	m.SearchInput.SetValue("zzzz-nothing")

	out := Render(m)
	assert.Contains(t, out, "No tools match your search.")
	assert.Contains(t, out, "0 tools")
}

func TestRender_BrowseCategory(t *testing.T) {
	m := newTestModel(t)
	for i, id := range m.SidebarEntries() {
		if id == "color" {
			m.SelectCategory(i)
		}
	}

	out := Render(m)
	assert.Contains(t, out, "Color Converter")
	assert.NotContains(t, out, "Case Converter")
}

func TestRender_ToolPanelIdle(t *testing.T) {
	m := newTestModel(t)
	openTool(t, m, "case-converter")

	out := Render(m)
	assert.Contains(t, out, "Case Converter")
	assert.Contains(t, out, "Ready")
	assert.Contains(t, out, "esc back")
}

func TestRender_ToolPanelResult(t *testing.T) {
	m := newTestModel(t)
	p := openTool(t, m, "case-converter")

	call := p.Trigger()
	assert.Contains(t, Render(m), "Running...")

	p.Apply(lifecycle.Outcome{Seq: call.Seq, Result: operation.Result{Shape: operation.ShapePlainText, Text: "HELLO WORLD"}})
	out := Render(m)
	assert.Contains(t, out, "Done")
	assert.Contains(t, out, "HELLO WORLD")
	assert.Contains(t, out, "ctrl+y copy")
}

func TestRenderActions(t *testing.T) {
	idle := renderActions(present.View{Phase: lifecycle.PhaseIdle})
	assert.Contains(t, idle, "Run")
	assert.Contains(t, idle, "Copy")
	assert.NotContains(t, idle, "Download")

	loading := renderActions(present.View{Phase: lifecycle.PhaseLoading})
	assert.Contains(t, loading, "Running...")

	image := renderActions(present.Render(lifecycle.State{Phase: lifecycle.PhaseSuccess, Image: "data:image/png;base64,AAAA"}))
	assert.Contains(t, image, "Download")
	assert.Equal(t, 1, lipgloss.Height(image))
}

func TestRender_HeaderQuitHint(t *testing.T) {
	m := newTestModel(t)
	assert.Contains(t, Render(m), "q quit")
}

func TestRender_ToolPanelCopied(t *testing.T) {
	m := newTestModel(t)
	p := openTool(t, m, "case-converter")
	call := p.Trigger()
	p.Apply(lifecycle.Outcome{Seq: call.Seq, Result: operation.Result{Shape: operation.ShapePlainText, Text: "ok"}})
	p.MarkCopied()

	assert.Contains(t, Render(m), "Copied!")
}

func TestRender_HelpOverlay(t *testing.T) {
	m := newTestModel(t)
	m.CurrentAppMode = model.ModeHelpOverlay

	out := Render(m)
	assert.Contains(t, out, "KEYBOARD SHORTCUTS")
	assert.Contains(t, out, "ctrl+y")
}

func TestRender_LogOverlay(t *testing.T) {
	m := newTestModel(t)
	m.CurrentAppMode = model.ModeLogOverlay
	model.AddRawLineToActivityLog(m, "12:00:00.000 [INFO] [TUI] hello log")

	out := Render(m)
	assert.Contains(t, out, "Activity Log")
	assert.Contains(t, out, "hello log")
	assert.Equal(t, 96, m.LogViewport.Width+design.LogOverlayStyle.GetHorizontalFrameSize())
}

func TestPrepareLogContent(t *testing.T) {
	lines := []string{"a [ERROR] x", "b [WARN] y", "c [DEBUG] z", "d"}
	out := PrepareLogContent(lines, 80)
	assert.Equal(t, 4, len(strings.Split(out, "\n")))
	for _, l := range lines {
		assert.Contains(t, out, l)
	}
}

func TestToolGlyph_CoversCatalogue(t *testing.T) {
	for _, tool := range catalog.Tools(catalog.AllCategories) {
		assert.NotEqual(t, IconFallback, ToolGlyph(tool.Icon), tool.ID)
	}
	assert.Equal(t, IconFallback, ToolGlyph("unknown"))
}
