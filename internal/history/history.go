// Package history walks previously evaluated commands the way a shell's
// up/down history does.
package history

import "slices"

// Navigator steps through command snapshots, newest first. It keeps the
// command being edited when navigation started so it can be restored.
type Navigator struct {
	entries [][]string // oldest first
	pos     int        // index into entries; len(entries) means "at the draft"
	draft   []string
	active  bool
	limit   int // 0 means unbounded
}

// NewNavigator creates a navigator over entries, which are ordered oldest
// first. Only the newest maxEntries are kept, matching the store's trim;
// maxEntries <= 0 keeps everything.
func NewNavigator(entries [][]string, maxEntries int) *Navigator {
	n := &Navigator{limit: max(maxEntries, 0)}
	for _, e := range entries {
		n.Add(e)
	}
	n.pos = len(n.entries)
	return n
}

// Add records a command. Empty commands and a repeat of the newest entry are
// ignored. The oldest entries are dropped past the limit. Navigation is
// reset.
func (n *Navigator) Add(lines []string) {
	defer n.Reset()
	if isEmpty(lines) {
		return
	}
	if k := len(n.entries); k > 0 && slices.Equal(n.entries[k-1], lines) {
		return
	}
	n.entries = append(n.entries, slices.Clone(lines))
	if n.limit > 0 && len(n.entries) > n.limit {
		n.entries = slices.Delete(n.entries, 0, len(n.entries)-n.limit)
	}
}

// Len returns the number of entries.
func (n *Navigator) Len() int { return len(n.entries) }

// Entries returns a copy of the entries, oldest first.
func (n *Navigator) Entries() [][]string {
	out := make([][]string, len(n.entries))
	for i, e := range n.entries {
		out[i] = slices.Clone(e)
	}
	return out
}

// Active reports whether a history entry is currently shown instead of the
// draft.
func (n *Navigator) Active() bool { return n.active }

// Prev moves to the next older entry. current is the command on screen; it
// is remembered as the draft when navigation starts. It returns false when
// there is nothing older.
func (n *Navigator) Prev(current []string) ([]string, bool) {
	if len(n.entries) == 0 {
		return nil, false
	}
	if !n.active {
		n.draft = slices.Clone(current)
		n.pos = len(n.entries)
		n.active = true
	}
	if n.pos == 0 {
		return nil, false
	}
	n.pos--
	return slices.Clone(n.entries[n.pos]), true
}

// Next moves to the next newer entry. Moving past the newest entry returns
// the remembered draft and ends navigation. It returns false when not
// navigating.
func (n *Navigator) Next() ([]string, bool) {
	if !n.active {
		return nil, false
	}
	n.pos++
	if n.pos >= len(n.entries) {
		draft := n.draft
		n.Reset()
		if draft == nil {
			draft = []string{""}
		}
		return draft, true
	}
	return slices.Clone(n.entries[n.pos]), true
}

// Reset ends navigation. The draft is forgotten.
func (n *Navigator) Reset() {
	n.active = false
	n.pos = len(n.entries)
	n.draft = nil
}

func isEmpty(lines []string) bool {
	for _, l := range lines {
		if l != "" {
			return false
		}
	}
	return true
}
