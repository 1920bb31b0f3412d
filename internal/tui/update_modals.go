package tui

import (
	"slices"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/pipr/internal/tui/modal"
)

const searchLimit = 200

// ---------------------------------------------------------------------------
// History search
// ---------------------------------------------------------------------------

func (m *Model) handleOpenSearch(tea.KeyPressMsg) (tea.Cmd, bool) {
	entries := m.nav.Entries()
	slices.Reverse(entries) // newest first
	searchFn := func(query string) []modal.Item {
		q := strings.ToLower(query)
		var items []modal.Item
		for _, lines := range entries {
			text := strings.Join(lines, "")
			if q != "" && !strings.Contains(strings.ToLower(text), q) {
				continue
			}
			item := modal.Item{Name: text, Value: lines}
			if n := len(lines); n > 1 {
				item.Desc = plural(n, "line")
			}
			items = append(items, item)
			if len(items) == searchLimit {
				break
			}
		}
		return items
	}
	md := modal.New(searchFn, "History: ", m.modalColors())
	m.searchModal = &md
	return nil, true
}

func (m *Model) handleSearchModalKey(msg tea.KeyPressMsg) tea.Cmd {
	action, cmd := m.searchModal.HandleMsg(msg)
	switch a := action.(type) {
	case modal.ActionClose:
		m.searchModal = nil
	case modal.ActionSelect:
		m.searchModal = nil
		if lines, ok := a.Item.Value.([]string); ok {
			m.nav.Reset()
			return m.loadCommand(lines)
		}
	}
	return cmd
}

// ---------------------------------------------------------------------------
// Full output viewer
// ---------------------------------------------------------------------------

func (m *Model) handleOpenOutput(tea.KeyPressMsg) (tea.Cmd, bool) {
	if !m.evaluated {
		return nil, true
	}
	content := m.result.Stdout
	if errText := m.stderrText(); errText != "" {
		content = strings.TrimRight(content, "\n") + "\n\n── stderr ──\n" + errText
	}
	v := modal.NewViewer(strings.TrimSpace(m.lastCommand), expandTabs(content), m.modalColors())
	m.outputView = &v
	return nil, true
}

func (m *Model) handleOutputViewKey(msg tea.KeyPressMsg) tea.Cmd {
	action, cmd := m.outputView.HandleMsg(msg)
	if _, ok := action.(modal.ActionClose); ok {
		m.outputView = nil
	}
	return cmd
}

// ---------------------------------------------------------------------------
// Bookmarks
// ---------------------------------------------------------------------------

func (m *Model) handleToggleBookmarks(tea.KeyPressMsg) (tea.Cmd, bool) {
	if m.sidebar == sidebarBookmarks {
		m.closeSidebar()
		return nil, true
	}
	m.reloadBookmarks()
	m.sidebar = sidebarBookmarks
	m.bmFocus = true
	m.bmSelected = 0
	m.relayout()
	return nil, true
}

func (m *Model) handleToggleBookmark(tea.KeyPressMsg) (tea.Cmd, bool) {
	if m.cmd.Empty() {
		return nil, true
	}
	on, err := m.store.ToggleBookmark(m.cmd.Snapshot())
	if err != nil {
		log.Warn().Err(err).Msg("failed to toggle bookmark")
		return m.setNotice("bookmark failed"), true
	}
	m.bookmarked = on
	if m.sidebar == sidebarBookmarks {
		m.reloadBookmarks()
	}
	if on {
		return m.setNotice("bookmarked"), true
	}
	return m.setNotice("bookmark removed"), true
}

func (m *Model) reloadBookmarks() {
	bms, err := m.store.Bookmarks()
	if err != nil {
		log.Warn().Err(err).Msg("failed to load bookmarks")
	}
	m.bookmarks = bms
	m.bmSelected = min(m.bmSelected, max(len(bms)-1, 0))
}

// handleBookmarkKey drives the focused bookmark list.
func (m *Model) handleBookmarkKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch msg.Keystroke() {
	case "up":
		if m.bmSelected > 0 {
			m.bmSelected--
		}
		return nil, true
	case "down":
		if m.bmSelected < len(m.bookmarks)-1 {
			m.bmSelected++
		}
		return nil, true
	case "enter":
		return m.selectBookmark(m.bmSelected), true
	case "esc":
		m.closeSidebar()
		return nil, true
	}
	return nil, false
}

// selectBookmark loads bookmark i into the command pane and returns focus
// to the editor.
func (m *Model) selectBookmark(i int) tea.Cmd {
	if i < 0 || i >= len(m.bookmarks) {
		return nil
	}
	m.bmSelected = i
	m.bmFocus = false
	m.nav.Reset()
	return m.loadCommand(m.bookmarks[i])
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}
