package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/pipr/internal/tui/editor"
)

// keyHandler runs for a matching binding. It reports whether it consumed the
// key; unconsumed keys fall through to the editor.
type keyHandler struct {
	binding key.Binding
	fn      func(*Model, tea.KeyPressMsg) (tea.Cmd, bool)
}

// handleKeyPress routes a key press: overlays first, then the bookmark
// sidebar when focused, then application bindings, then the editor.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	if m.outputView != nil {
		return m.handleOutputViewKey(msg)
	}
	if m.searchModal != nil {
		return m.handleSearchModalKey(msg)
	}
	if m.sidebar == sidebarBookmarks && m.bmFocus {
		if cmd, handled := m.handleBookmarkKey(msg); handled {
			return cmd
		}
	}
	for _, h := range m.keyPressHandlers() {
		if !key.Matches(msg, h.binding) {
			continue
		}
		if cmd, handled := h.fn(m, msg); handled {
			return cmd
		}
		break
	}
	return m.applyEdit(msg)
}

func (m *Model) keyPressHandlers() []keyHandler {
	return []keyHandler{
		{m.keys.Quit, (*Model).handleQuit},
		{m.keys.Eval, (*Model).handleEval},
		{m.keys.Autoeval, (*Model).handleToggleAutoeval},
		{m.keys.Help, (*Model).handleToggleHelp},
		{m.keys.Bookmarks, (*Model).handleToggleBookmarks},
		{m.keys.Bookmark, (*Model).handleToggleBookmark},
		{m.keys.HistPrev, (*Model).handleHistPrev},
		{m.keys.HistNext, (*Model).handleHistNext},
		{m.keys.Search, (*Model).handleOpenSearch},
		{m.keys.Output, (*Model).handleOpenOutput},
		{m.keys.ScrollUp, (*Model).handleScrollUp},
		{m.keys.ScrollDn, (*Model).handleScrollDown},
		{m.keys.Close, (*Model).handleClose},
	}
}

// applyEdit feeds msg to the editor core.
func (m *Model) applyEdit(msg tea.KeyPressMsg) tea.Cmd {
	handled, changed := m.cmd.ApplyKey(msg)
	if !handled {
		return nil
	}
	if !changed {
		return nil
	}
	return m.onEdit()
}

// insertPaste inserts pasted text. Newlines in the paste become line breaks
// in the command pane.
func (m *Model) insertPaste(text string) tea.Cmd {
	if m.outputView != nil || m.searchModal != nil {
		return nil
	}
	changed := false
	for _, r := range text {
		if m.cmd.Apply(editor.InsertChar(r)) {
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return m.onEdit()
}

// onEdit runs after the command text changed.
func (m *Model) onEdit() tea.Cmd {
	m.nav.Reset()
	m.commandChanged()
	return m.scheduleAutoeval()
}

// commandChanged refreshes state derived from the command text.
func (m *Model) commandChanged() {
	m.bookmarked = m.store.IsBookmarked(m.cmd.Snapshot())
	m.relayout()
}

func (m *Model) handleQuit(tea.KeyPressMsg) (tea.Cmd, bool) {
	return m.flushAndQuit(), true
}

func (m *Model) flushAndQuit() tea.Cmd {
	if m.runCancel != nil {
		m.runCancel()
	}
	cancel := m.cancel
	st := m.store
	return func() tea.Msg {
		cancel()
		st.Flush()
		return tea.Quit()
	}
}

func (m *Model) handleEval(tea.KeyPressMsg) (tea.Cmd, bool) {
	snapshot := m.cmd.Snapshot()
	m.store.AddHistory(snapshot)
	m.nav.Add(snapshot)
	return m.evaluate(), true
}

func (m *Model) handleToggleAutoeval(tea.KeyPressMsg) (tea.Cmd, bool) {
	m.autoeval = !m.autoeval
	if !m.autoeval {
		m.editSeq++ // drop a pending debounce
		return m.setNotice("autoeval off"), true
	}
	return tea.Batch(m.setNotice("autoeval on"), m.scheduleAutoeval()), true
}

func (m *Model) handleToggleHelp(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	// '?' is an ordinary character once the command has text.
	if msg.Keystroke() != "f2" && !m.cmd.Empty() {
		return nil, false
	}
	if m.sidebar == sidebarHelp {
		m.sidebar = sidebarNone
	} else {
		m.sidebar = sidebarHelp
	}
	m.bmFocus = false
	m.relayout()
	return nil, true
}

func (m *Model) handleClose(tea.KeyPressMsg) (tea.Cmd, bool) {
	if m.sidebar == sidebarNone {
		return nil, false
	}
	m.closeSidebar()
	return nil, true
}

func (m *Model) closeSidebar() {
	m.sidebar = sidebarNone
	m.bmFocus = false
	m.relayout()
}

func (m *Model) handleHistPrev(tea.KeyPressMsg) (tea.Cmd, bool) {
	lines, ok := m.nav.Prev(m.cmd.Snapshot())
	if !ok {
		return nil, true
	}
	return m.loadCommand(lines), true
}

func (m *Model) handleHistNext(tea.KeyPressMsg) (tea.Cmd, bool) {
	lines, ok := m.nav.Next()
	if !ok {
		return nil, true
	}
	return m.loadCommand(lines), true
}

// loadCommand replaces the command without ending history navigation.
func (m *Model) loadCommand(lines []string) tea.Cmd {
	m.cmd.LoadSnapshot(lines)
	m.commandChanged()
	return m.scheduleAutoeval()
}

func (m *Model) handleScrollUp(tea.KeyPressMsg) (tea.Cmd, bool) {
	m.scrollOutput(-m.outputPageSize())
	return nil, true
}

func (m *Model) handleScrollDown(tea.KeyPressMsg) (tea.Cmd, bool) {
	m.scrollOutput(m.outputPageSize())
	return nil, true
}
