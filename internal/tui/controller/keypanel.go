package controller

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"toolbox/internal/tui/model"
)

// handleKeyMsgPanel drives an open tool panel. Plain letter shortcuts only
// apply while the focused field does not take text.
func handleKeyMsgPanel(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	p := m.Panel
	if p == nil {
		m.CurrentAppMode = model.ModeBrowse
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Esc):
		LogDebug(m, controllerSubsystem, "Closing panel %s", p.Tool.ID)
		m.ClosePanel()
		return m, nil
	case key.Matches(keyMsg, m.Keys.Tab):
		return m, p.FocusField(p.FocusIndex + 1)
	case key.Matches(keyMsg, m.Keys.ShiftTab):
		return m, p.FocusField(p.FocusIndex - 1)
	case key.Matches(keyMsg, m.Keys.Run):
		return m, runTool(m)
	case key.Matches(keyMsg, m.Keys.Enter) && !p.EditsMultiline():
		return m, runTool(m)
	case key.Matches(keyMsg, m.Keys.Copy):
		return m, copyResult(m)
	case key.Matches(keyMsg, m.Keys.Download):
		return m, downloadImage(m)
	case keyMsg.String() == "pgup" || keyMsg.String() == "pgdown":
		var cmd tea.Cmd
		p.ResultViewport, cmd = p.ResultViewport.Update(keyMsg)
		return m, cmd
	}

	if !p.EditsText() {
		switch {
		case key.Matches(keyMsg, m.Keys.Quit):
			return quit(m)
		case key.Matches(keyMsg, m.Keys.Help):
			openOverlay(m, model.ModeHelpOverlay)
			return m, nil
		case key.Matches(keyMsg, m.Keys.ToggleLog):
			openOverlay(m, model.ModeLogOverlay)
			return m, nil
		case key.Matches(keyMsg, m.Keys.Left):
			p.AdvanceFocused(-1)
			return m, nil
		case key.Matches(keyMsg, m.Keys.Right), key.Matches(keyMsg, m.Keys.Toggle):
			p.AdvanceFocused(1)
			return m, nil
		case key.Matches(keyMsg, m.Keys.Up):
			return m, p.FocusField(p.FocusIndex - 1)
		case key.Matches(keyMsg, m.Keys.Down):
			return m, p.FocusField(p.FocusIndex + 1)
		}
		return m, nil
	}

	if !p.EditsMultiline() {
		switch keyMsg.String() {
		case "up":
			return m, p.FocusField(p.FocusIndex - 1)
		case "down":
			return m, p.FocusField(p.FocusIndex + 1)
		}
	}
	return m, p.UpdateEditor(keyMsg)
}

// runTool triggers the panel's operation and runs it off the update loop.
func runTool(m *model.Model) tea.Cmd {
	p := m.Panel
	call := p.Trigger()
	LogDebug(m, controllerSubsystem, "Running %s (request %d)", p.Tool.ID, call.Seq)
	return model.RunToolCmd(call, p.Generation)
}

func copyResult(m *model.Model) tea.Cmd {
	v := m.Panel.View()
	if !v.CanCopy {
		return nil
	}
	if err := clipboard.WriteAll(v.Text); err != nil {
		LogError(controllerSubsystem, err, "Failed to copy result of %s", m.Panel.Tool.ID)
		return m.SetStatusMessage("Copy failed", model.StatusBarError, statusMessageTTL)
	}
	return m.Panel.MarkCopied()
}

func downloadImage(m *model.Model) tea.Cmd {
	v := m.Panel.View()
	if !v.CanDownload {
		return nil
	}
	return tea.Batch(
		m.SetStatusMessage("Downloading image...", model.StatusBarInfo, statusMessageTTL),
		model.SaveImageCmd(v.Image, m.DownloadDir, m.Fetcher),
	)
}
