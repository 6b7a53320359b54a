package controller

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"toolbox/internal/tui/model"
	"toolbox/internal/tui/view"
	"toolbox/pkg/logging"
)

const statusMessageTTL = 3 * time.Second

// Update is the central message router of the dashboard. Every state
// change of the model happens here, on the program's update goroutine.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg.(type) {
	case spinner.TickMsg, tea.MouseMsg, model.NewLogEntryMsg:
	default:
		LogDebug(m, controllerSubsystem, "Received msg: %T", msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsg(m, msg)

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case model.ToolOutcomeMsg:
		return handleToolOutcome(m, msg)

	case model.CopyFeedbackExpiredMsg:
		if m.Panel != nil && m.Panel.Generation == msg.Generation {
			m.Panel.ExpireCopied(msg.Seq)
		}
		return m, nil

	case model.ImageSavedMsg:
		if msg.Err != nil {
			LogError(controllerSubsystem, msg.Err, "Image download failed")
			return m, m.SetStatusMessage(fmt.Sprintf("Download failed: %v", msg.Err), model.StatusBarError, statusMessageTTL)
		}
		LogInfo(controllerSubsystem, "Saved image to %s", msg.Path)
		return m, m.SetStatusMessage("Saved "+msg.Path, model.StatusBarSuccess, statusMessageTTL)

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		if m.StatusBarClearCancel != nil {
			close(m.StatusBarClearCancel)
			m.StatusBarClearCancel = nil
		}
		return m, nil

	case spinner.TickMsg:
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		if m.CurrentAppMode == model.ModeLogOverlay {
			m.LogViewport, cmd = m.LogViewport.Update(msg)
		} else if m.Panel != nil {
			m.Panel.ResultViewport, cmd = m.Panel.ResultViewport.Update(msg)
		}
		cmds = append(cmds, cmd)

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	default:
		if m.Panel != nil {
			cmds = append(cmds, m.Panel.UpdateEditor(msg))
		} else if m.Focus == model.FocusSearch {
			m.SearchInput, cmd = m.SearchInput.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	if m.ActivityLogDirty {
		atBottom := m.LogViewport.AtBottom()
		m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
		if atBottom {
			m.LogViewport.GotoBottom()
		}
		m.ActivityLogDirty = false
	}

	return m, tea.Batch(cmds...)
}

// handleWindowSizeMsg stores the terminal size and refits the open panel.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	if m.Panel != nil {
		m.Panel.Resize(msg.Width, msg.Height)
	}
	m.Help.Width = msg.Width
	return m, nil
}

// handleToolOutcome applies an outcome to the panel that triggered it.
// Outcomes of panels that have since been closed are dropped.
func handleToolOutcome(m *model.Model, msg model.ToolOutcomeMsg) (*model.Model, tea.Cmd) {
	if m.Panel == nil || m.Panel.Generation != msg.Generation {
		LogDebug(m, controllerSubsystem, "Dropping outcome %d of closed panel %d", msg.Outcome.Seq, msg.Generation)
		return m, nil
	}
	if !m.Panel.Apply(msg.Outcome) {
		return m, nil
	}
	if msg.Outcome.Err != nil {
		logging.Warn(controllerSubsystem, "%s failed after %s: %v", m.Panel.Tool.ID, msg.Outcome.Elapsed.Round(time.Millisecond), msg.Outcome.Err)
	} else {
		LogDebug(m, controllerSubsystem, "%s finished in %s", m.Panel.Tool.ID, msg.Outcome.Elapsed.Round(time.Millisecond))
	}
	return m, nil
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	entry := msg.Entry

	// Debug entries only show in debug mode.
	if entry.Level >= logging.LevelInfo || m.DebugMode {
		logLine := fmt.Sprintf("%s [%s] [%s] %s",
			entry.Timestamp.Format("15:04:05.000"),
			entry.Level.String(),
			entry.Subsystem,
			entry.Message)

		if entry.Err != nil {
			logLine = fmt.Sprintf("%s -- Error: %v", logLine, entry.Err)
		}
		model.AddRawLineToActivityLog(m, logLine)
	}
	return m
}
