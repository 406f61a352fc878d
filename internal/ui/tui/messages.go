// Package tui provides the Bubble Tea survey editor.
package tui

import "github.com/imamik/surveykit/internal/export"

// ExportDoneMsg reports a written archive.
type ExportDoneMsg struct {
	Result export.Result
	// Key is the object key when the archive was also uploaded.
	Key string
}

// ExportFailedMsg carries the export error shown in the blocking notice.
type ExportFailedMsg struct{ Err error }

// statusExpiredMsg clears the status line if no newer status replaced it.
type statusExpiredMsg struct{ seq int }
