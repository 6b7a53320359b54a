package model

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"toolbox/internal/catalog"
	"toolbox/pkg/logging"
)

// InitializeModel creates the dashboard model, browsing all tools.
func InitializeModel(cfg TUIConfig, logChannel <-chan logging.LogEntry) *Model {
	m := &Model{
		CurrentAppMode:   ModeBrowse,
		DebugMode:        cfg.DebugMode,
		Categories:       catalog.Categories(),
		SelectedCategory: catalog.AllCategories,
		Focus:            FocusGrid,

		Service:     cfg.Service,
		Policy:      cfg.Policy,
		DownloadDir: cfg.DownloadDir,
		Fetcher:     cfg.Fetcher,

		Spinner:     spinner.New(),
		LogViewport: viewport.New(80, 20),
		SearchInput: textinput.New(),
		Help:        help.New(),
		Keys:        DefaultKeyMap(),

		LogChannel:  logChannel,
		ActivityLog: []string{},
	}

	if m.DownloadDir == "" {
		m.DownloadDir = "."
	}

	// Configure spinner
	m.Spinner.Spinner = spinner.Dot

	// Configure search input
	m.SearchInput.Placeholder = "Search tools..."
	m.SearchInput.Prompt = "/ "
	m.SearchInput.CharLimit = 64
	m.SearchInput.Width = 30

	return m
}

// Init starts the spinner and the log listener.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.Spinner.Tick,
		ListenForLogEntriesCmd(m.LogChannel),
	)
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left / previous option"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right / next option"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field / pane"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field / pane"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open tool / run"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back / close"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search tools"),
		),
		Run: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "run tool"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy result"),
		),
		Download: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "download image"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle / next option"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log"),
		),
	}
}
