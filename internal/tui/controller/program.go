package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"toolbox/internal/tui/model"
	"toolbox/pkg/logging"
)

// NewProgram creates the dashboard program on the alternate screen.
func NewProgram(cfg model.TUIConfig, logChannel <-chan logging.LogEntry) (*tea.Program, error) {
	m := model.InitializeModel(cfg, logChannel)
	app := NewAppModel(m)
	return tea.NewProgram(app, tea.WithAltScreen()), nil
}
