package controller

import (
	"errors"
	"net/http"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbox/internal/catalog"
	"toolbox/internal/lifecycle"
	"toolbox/internal/operation"
	"toolbox/internal/toolsvc"
	"toolbox/internal/toolsvc/toolsvctest"
	"toolbox/internal/tui/model"
	"toolbox/pkg/logging"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, svc lifecycle.Service) *model.Model {
	t.Helper()
	m := model.InitializeModel(model.TUIConfig{Service: svc}, nil)
	m, _ = Update(tea.WindowSizeMsg{Width: 120, Height: 40}, m)
	return m
}

func press(m *model.Model, msgs ...tea.KeyMsg) (*model.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = Update(msg, m)
	}
	return m, cmd
}

func openTool(t *testing.T, m *model.Model, id string) *model.ToolPanel {
	t.Helper()
	tool, err := catalog.Find(id)
	require.NoError(t, err)
	m.OpenPanel(tool)
	return m.Panel
}

func TestBrowse_OpenAndCloseTool(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.Panel)
	assert.Equal(t, model.ModePanel, m.CurrentAppMode)
	assert.Equal(t, "case-converter", m.Panel.Tool.ID)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.Panel)
	assert.Equal(t, model.ModeBrowse, m.CurrentAppMode)
}

func TestBrowse_GridNavigation(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.GridIndex)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 4, m.GridIndex)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.GridIndex, "moving above the first row is ignored")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.GridIndex)
	assert.Equal(t, model.FocusSidebar, m.Focus)
}

func TestBrowse_SidebarSelectsCategory(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, model.FocusSidebar, m.Focus)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "text", m.SelectedCategory)
	for _, tool := range m.VisibleTools() {
		assert.Equal(t, catalog.LabelText, tool.Category)
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, m.SidebarEntries()[len(m.SidebarEntries())-1], m.SelectedCategory, "sidebar wraps")
}

func TestBrowse_Search(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = press(m, runes("/"))
	assert.Equal(t, model.FocusSearch, m.Focus)

	m, _ = press(m, runes("json"))
	assert.Equal(t, "json", m.SearchInput.Value())
	tools := m.VisibleTools()
	require.NotEmpty(t, tools)
	assert.Equal(t, "json-formatter", tools[0].ID)

	// q is typed into the search box rather than quitting.
	m, cmd := press(m, runes("q"))
	assert.False(t, m.QuitApp)
	_ = cmd

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, model.FocusGrid, m.Focus)
	assert.Equal(t, "jsonq", m.SearchInput.Value())

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.SearchInput.Value())
}

func TestBrowse_Quit(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := press(m, runes("q"))

	assert.True(t, m.QuitApp)
	assert.Equal(t, model.ModeQuitting, m.CurrentAppMode)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestOverlays_ReturnToPreviousMode(t *testing.T) {
	m := newTestModel(t, nil)
	openTool(t, m, "uuid-generator")

	m, _ = press(m, runes("?"))
	assert.Equal(t, model.ModeHelpOverlay, m.CurrentAppMode)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, model.ModePanel, m.CurrentAppMode)

	m, _ = press(m, runes("L"))
	assert.Equal(t, model.ModeLogOverlay, m.CurrentAppMode)
	m, _ = press(m, runes("L"))
	assert.Equal(t, model.ModePanel, m.CurrentAppMode)
}

func TestPanel_RunAgainstService(t *testing.T) {
	srv := toolsvctest.New()
	defer srv.Close()
	m := newTestModel(t, toolsvc.New(srv.URL))
	p := openTool(t, m, "case-converter")

	m, _ = press(m, runes("hello"))
	assert.Equal(t, "hello", p.Values.Raw("text"))

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.Equal(t, lifecycle.PhaseLoading, p.View().Phase)

	m, _ = Update(cmd(), m)
	v := m.Panel.View()
	assert.Equal(t, lifecycle.PhaseSuccess, v.Phase)
	assert.Equal(t, "HELLO", v.Text)
	assert.True(t, v.CanCopy)
	assert.Equal(t, 1, srv.CallCount())
}

func TestPanel_RemoteErrorIsShown(t *testing.T) {
	srv := toolsvctest.New()
	defer srv.Close()
	srv.Fail(http.MethodPost, "/api/tools/math/calculate", http.StatusBadRequest, "Invalid expression")
	m := newTestModel(t, toolsvc.New(srv.URL))
	openTool(t, m, "calculator")

	m, _ = press(m, runes("2+"))
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = Update(cmd(), m)

	v := m.Panel.View()
	assert.Equal(t, lifecycle.PhaseError, v.Phase)
	assert.True(t, v.IsError)
	assert.Equal(t, "Error: Invalid expression", v.Text)
}

func TestPanel_OutcomeForClosedPanelIsDropped(t *testing.T) {
	m := newTestModel(t, nil)
	first := openTool(t, m, "case-converter")
	call := first.Trigger()
	staleGen := first.Generation

	second := openTool(t, m, "case-converter")
	require.NotEqual(t, staleGen, second.Generation)

	m, _ = Update(model.ToolOutcomeMsg{
		Generation: staleGen,
		Outcome:    lifecycle.Outcome{Seq: call.Seq, Result: operation.Result{Shape: operation.ShapePlainText, Text: "stale"}},
	}, m)
	assert.Equal(t, lifecycle.PhaseIdle, m.Panel.View().Phase)
	assert.Empty(t, m.Panel.View().Text)
}

func TestPanel_AdvanceSelectWithArrows(t *testing.T) {
	m := newTestModel(t, nil)
	p := openTool(t, m, "case-converter")
	require.Equal(t, "upper", p.Values.Raw("case_type"))

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	f, ok := p.FocusedField()
	require.True(t, ok)
	require.Equal(t, "case_type", f.Name)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "lower", p.Values.Raw("case_type"))
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, f.Options[len(f.Options)-1].Value, p.Values.Raw("case_type"))
}

func TestPanel_TypingQDoesNotQuit(t *testing.T) {
	m := newTestModel(t, nil)
	p := openTool(t, m, "case-converter")

	m, _ = press(m, runes("q"))
	assert.False(t, m.QuitApp)
	assert.Equal(t, "q", p.Values.Raw("text"))
}

func TestPanel_CopyFeedbackExpires(t *testing.T) {
	m := newTestModel(t, nil)
	p := openTool(t, m, "case-converter")

	p.MarkCopied()
	p.MarkCopied()
	assert.True(t, p.Copied)

	// The first timer was superseded.
	m, _ = Update(model.CopyFeedbackExpiredMsg{Generation: p.Generation, Seq: 1}, m)
	assert.True(t, p.Copied)

	m, _ = Update(model.CopyFeedbackExpiredMsg{Generation: p.Generation, Seq: 2}, m)
	assert.False(t, p.Copied)
}

func TestImageSavedMsg(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = Update(model.ImageSavedMsg{Path: "out/generated.png"}, m)
	assert.Equal(t, "Saved out/generated.png", m.StatusBarMessage)
	assert.Equal(t, model.StatusBarSuccess, m.StatusBarMessageType)

	m, _ = Update(model.ImageSavedMsg{Err: errors.New("disk full")}, m)
	assert.Contains(t, m.StatusBarMessage, "disk full")
	assert.Equal(t, model.StatusBarError, m.StatusBarMessageType)

	m, _ = Update(model.ClearStatusBarMsg{}, m)
	assert.Empty(t, m.StatusBarMessage)
}

func TestNewLogEntryMsg(t *testing.T) {
	m := newTestModel(t, nil)
	ts := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)

	m, _ = Update(model.NewLogEntryMsg{Entry: logging.LogEntry{Timestamp: ts, Level: logging.LevelDebug, Subsystem: "X", Message: "hidden"}}, m)
	assert.Empty(t, m.ActivityLog)

	m, _ = Update(model.NewLogEntryMsg{Entry: logging.LogEntry{Timestamp: ts, Level: logging.LevelError, Subsystem: "X", Message: "boom", Err: errors.New("cause")}}, m)
	require.Len(t, m.ActivityLog, 1)
	assert.Equal(t, "15:04:05.000 [ERROR] [X] boom -- Error: cause", m.ActivityLog[0])
	assert.False(t, m.ActivityLogDirty)

	m.DebugMode = true
	m, _ = Update(model.NewLogEntryMsg{Entry: logging.LogEntry{Timestamp: ts, Level: logging.LevelDebug, Subsystem: "X", Message: "shown"}}, m)
	assert.Len(t, m.ActivityLog, 2)
}
