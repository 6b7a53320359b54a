package model

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"toolbox/internal/catalog"
	"toolbox/internal/lifecycle"
	"toolbox/internal/present"
	"toolbox/pkg/logging"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeBrowse AppMode = iota
	ModePanel
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "Browse"
	case ModePanel:
		return "Panel"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// FocusArea is the part of the browse screen receiving keys.
type FocusArea int

const (
	FocusSidebar FocusArea = iota
	FocusGrid
	FocusSearch
)

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines = 1000
	GridColumnsDefault  = 3
)

// TUIConfig carries everything the dashboard needs from bootstrap.
type TUIConfig struct {
	DebugMode   bool
	Service     lifecycle.Service
	Policy      lifecycle.Policy
	DownloadDir string
	Fetcher     present.Fetcher
}

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Tab       key.Binding
	ShiftTab  key.Binding
	Enter     key.Binding
	Esc       key.Binding
	Search    key.Binding
	Run       key.Binding
	Copy      key.Binding
	Download  key.Binding
	Toggle    key.Binding
	Quit      key.Binding
	Help      key.Binding
	ToggleLog key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Tab, k.ShiftTab},
		{k.Enter, k.Search, k.Esc},
		{k.Run, k.Copy, k.Download, k.Toggle},
		{k.Help, k.ToggleLog, k.Quit},
	}
}

// Model represents the state of the dashboard.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	QuitApp        bool
	CurrentAppMode AppMode
	LastAppMode    AppMode
	DebugMode      bool

	// Browse state
	Categories       []catalog.Category
	SelectedCategory string
	SidebarIndex     int
	GridIndex        int
	Focus            FocusArea
	SearchInput      textinput.Model

	// The open tool panel, nil while browsing.
	Panel *ToolPanel
	// nextGeneration numbers panels so outcomes for closed panels are dropped.
	nextGeneration uint64

	// Request plumbing
	Service     lifecycle.Service
	Policy      lifecycle.Policy
	DownloadDir string
	Fetcher     present.Fetcher

	// UI State & Output
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model
	Spinner              spinner.Model
	Keys                 KeyMap
	Help                 help.Model
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// Logging
	LogChannel <-chan logging.LogEntry
}

// VisibleTools returns the tools of the selected category that match the
// search query.
func (m *Model) VisibleTools() []catalog.Tool {
	return catalog.Filter(catalog.Tools(m.SelectedCategory), m.SearchInput.Value())
}

// SelectedTool returns the tool under the grid cursor.
func (m *Model) SelectedTool() (catalog.Tool, bool) {
	tools := m.VisibleTools()
	if len(tools) == 0 {
		return catalog.Tool{}, false
	}
	if m.GridIndex >= len(tools) {
		m.GridIndex = len(tools) - 1
	}
	if m.GridIndex < 0 {
		m.GridIndex = 0
	}
	return tools[m.GridIndex], true
}

// SidebarEntries lists the selectable category ids, "all" first.
func (m *Model) SidebarEntries() []string {
	ids := make([]string, 0, len(m.Categories)+1)
	ids = append(ids, catalog.AllCategories)
	for _, c := range m.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}

// SelectCategory moves the sidebar cursor to index and resets the grid.
func (m *Model) SelectCategory(index int) {
	entries := m.SidebarEntries()
	if index < 0 {
		index = len(entries) - 1
	}
	if index >= len(entries) {
		index = 0
	}
	m.SidebarIndex = index
	m.SelectedCategory = entries[index]
	m.GridIndex = 0
}

// OpenPanel mounts a fresh panel for t and switches to panel mode.
func (m *Model) OpenPanel(t catalog.Tool) {
	m.ClosePanel()
	m.nextGeneration++
	m.Panel = NewToolPanel(t, m.nextGeneration, m.Service, m.Policy)
	m.Panel.Resize(m.Width, m.Height)
	m.CurrentAppMode = ModePanel
	logging.Debug("TUI", "Opened panel %s (generation %d)", t.ID, m.nextGeneration)
}

// ClosePanel unmounts the open panel, cancelling its scoped timers.
func (m *Model) ClosePanel() {
	if m.Panel == nil {
		return
	}
	m.Panel.Close()
	m.Panel = nil
	m.CurrentAppMode = ModeBrowse
}

// SetStatusMessage updates the status bar message
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}
