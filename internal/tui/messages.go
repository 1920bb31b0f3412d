package tui

import (
	"github.com/xonecas/pipr/internal/shell"
)

// ---------------------------------------------------------------------------
// ELM messages
// ---------------------------------------------------------------------------

// evalResultMsg carries a finished evaluation. seq identifies the run so
// results of superseded runs can be dropped.
type evalResultMsg struct {
	seq     int
	command string
	result  shell.Result
}

// autoevalMsg fires after the debounce delay following an edit.
type autoevalMsg struct{ seq int }

// noticeClearMsg clears a transient status notice.
type noticeClearMsg struct{ seq int }
