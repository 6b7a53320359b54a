package controller

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"toolbox/internal/tui/components"
	"toolbox/internal/tui/model"
)

// handleKeyMsg routes a key press by mode. ctrl+c quits from anywhere.
func handleKeyMsg(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if keyMsg.String() == "ctrl+c" {
		return quit(m)
	}

	switch m.CurrentAppMode {
	case model.ModeLogOverlay:
		return handleKeyMsgLogOverlay(m, keyMsg)
	case model.ModeHelpOverlay:
		if key.Matches(keyMsg, m.Keys.Esc) || key.Matches(keyMsg, m.Keys.Help) {
			m.CurrentAppMode = m.LastAppMode
		}
		return m, nil
	case model.ModePanel:
		return handleKeyMsgPanel(m, keyMsg)
	default:
		return handleKeyMsgBrowse(m, keyMsg)
	}
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	m.ClosePanel()
	m.CurrentAppMode = model.ModeQuitting
	m.QuitApp = true
	return m, tea.Quit
}

// openOverlay shows mode on top of the current screen.
func openOverlay(m *model.Model, mode model.AppMode) {
	m.LastAppMode = m.CurrentAppMode
	m.CurrentAppMode = mode
	if mode == model.ModeLogOverlay {
		m.LogViewport.GotoBottom()
	}
}

func handleKeyMsgLogOverlay(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "L", "esc":
		m.CurrentAppMode = m.LastAppMode
		return m, nil
	case "y":
		if err := clipboard.WriteAll(strings.Join(m.ActivityLog, "\n")); err != nil {
			LogError(controllerSubsystem, err, "Failed to copy logs")
			return m, m.SetStatusMessage("Copy logs failed", model.StatusBarError, statusMessageTTL)
		}
		return m, m.SetStatusMessage("Logs copied to clipboard", model.StatusBarSuccess, statusMessageTTL)
	case "k", "up", "j", "down", "pgup", "pgdown", "home", "end":
		var vpCmd tea.Cmd
		m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
		return m, vpCmd
	default:
		return m, nil
	}
}

// handleKeyMsgBrowse drives the sidebar, the search box and the tool grid.
func handleKeyMsgBrowse(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if m.Focus == model.FocusSearch {
		return handleKeyMsgSearch(m, keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m)
	case key.Matches(keyMsg, m.Keys.Help):
		openOverlay(m, model.ModeHelpOverlay)
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleLog):
		openOverlay(m, model.ModeLogOverlay)
		return m, nil
	case key.Matches(keyMsg, m.Keys.Search):
		m.Focus = model.FocusSearch
		return m, m.SearchInput.Focus()
	case key.Matches(keyMsg, m.Keys.Tab), key.Matches(keyMsg, m.Keys.ShiftTab):
		if m.Focus == model.FocusSidebar {
			m.Focus = model.FocusGrid
		} else {
			m.Focus = model.FocusSidebar
		}
		return m, nil
	case key.Matches(keyMsg, m.Keys.Esc):
		if m.SearchInput.Value() != "" {
			m.SearchInput.SetValue("")
			m.GridIndex = 0
		}
		return m, nil
	}

	if m.Focus == model.FocusSidebar {
		switch {
		case key.Matches(keyMsg, m.Keys.Up):
			m.SelectCategory(m.SidebarIndex - 1)
		case key.Matches(keyMsg, m.Keys.Down):
			m.SelectCategory(m.SidebarIndex + 1)
		case key.Matches(keyMsg, m.Keys.Right), key.Matches(keyMsg, m.Keys.Enter):
			m.Focus = model.FocusGrid
		}
		return m, nil
	}

	columns := components.NewLayout(m.Width, m.Height).GridColumns()
	switch {
	case key.Matches(keyMsg, m.Keys.Up):
		moveGrid(m, -columns)
	case key.Matches(keyMsg, m.Keys.Down):
		moveGrid(m, columns)
	case key.Matches(keyMsg, m.Keys.Left):
		if m.GridIndex%columns == 0 {
			m.Focus = model.FocusSidebar
		} else {
			moveGrid(m, -1)
		}
	case key.Matches(keyMsg, m.Keys.Right):
		moveGrid(m, 1)
	case key.Matches(keyMsg, m.Keys.Enter):
		t, ok := m.SelectedTool()
		if !ok {
			return m, nil
		}
		m.OpenPanel(t)
		LogInfo(controllerSubsystem, "Opened %s", t.Name)
		return m, m.Panel.FocusField(0)
	}
	return m, nil
}

// moveGrid moves the grid cursor by delta, staying on the grid.
func moveGrid(m *model.Model, delta int) {
	n := len(m.VisibleTools())
	if n == 0 {
		m.GridIndex = 0
		return
	}
	i := m.GridIndex + delta
	if i < 0 || i >= n {
		return
	}
	m.GridIndex = i
}

func handleKeyMsgSearch(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc", "enter", "tab", "down":
		m.SearchInput.Blur()
		m.Focus = model.FocusGrid
		return m, nil
	}

	var cmd tea.Cmd
	before := m.SearchInput.Value()
	m.SearchInput, cmd = m.SearchInput.Update(keyMsg)
	if m.SearchInput.Value() != before {
		m.GridIndex = 0
	}
	return m, cmd
}
