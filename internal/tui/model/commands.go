package model

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"toolbox/internal/lifecycle"
	"toolbox/internal/present"
	"toolbox/pkg/logging"
)

// RunToolCmd executes call off the update loop. Only the update loop
// applies the resulting outcome.
func RunToolCmd(call lifecycle.Call, generation uint64) tea.Cmd {
	return func() tea.Msg {
		return ToolOutcomeMsg{
			Generation: generation,
			Outcome:    call.Run(context.Background()),
		}
	}
}

// SaveImageCmd downloads ref into dir.
func SaveImageCmd(ref, dir string, fetcher present.Fetcher) tea.Cmd {
	return func() tea.Msg {
		path, err := present.SaveImage(context.Background(), ref, dir, fetcher)
		return ImageSavedMsg{Path: path, Err: err}
	}
}

// ListenForLogEntriesCmd waits for the next log entry. It returns nil once
// the channel is closed, which ends the listening loop.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}
