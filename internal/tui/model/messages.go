package model

import (
	"toolbox/internal/lifecycle"
	"toolbox/pkg/logging"
)

// ---- Tool panel messages ----

// ToolOutcomeMsg carries the outcome of a run back to the update loop.
// Generation identifies the panel that triggered it.
type ToolOutcomeMsg struct {
	Generation uint64
	Outcome    lifecycle.Outcome
}

// CopyFeedbackExpiredMsg ends the copy confirmation of copy number Seq.
type CopyFeedbackExpiredMsg struct {
	Generation uint64
	Seq        uint64
}

// ImageSavedMsg reports the result of a download.
type ImageSavedMsg struct {
	Path string
	Err  error
}

// ---- Logging ----

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ---- Misc overlay / status bar ----

type ClearStatusBarMsg struct{}
