package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) renderSidebar() []string {
	r := m.layout.sidebar
	if r.Empty() {
		return nil
	}
	switch m.sidebar {
	case sidebarHelp:
		body := strings.Split(m.help.FullHelpView(m.keys.FullHelp()), "\n")
		return m.renderBox(r, "Help", body, m.styles.Border)
	case sidebarBookmarks:
		border := m.styles.Border
		if m.bmFocus {
			border = m.styles.BorderFocus
		}
		return m.renderBox(r, "Bookmarks", m.bookmarkLines(), border)
	}
	return nil
}

// bookmarkScroll is the first bookmark shown so the selection stays visible.
func (m Model) bookmarkScroll() int {
	h := inner(m.layout.sidebar).Dy()
	if h <= 0 {
		return 0
	}
	return max(m.bmSelected-h+1, 0)
}

func (m Model) bookmarkLines() []string {
	if len(m.bookmarks) == 0 {
		return []string{m.styles.Dim.Render("none yet, ctrl+s adds one")}
	}
	w := inner(m.layout.sidebar).Dx()
	var out []string
	for i := m.bookmarkScroll(); i < len(m.bookmarks); i++ {
		text := strings.Join(m.bookmarks[i], "")
		if lipgloss.Width(text) > w {
			text = ansi.Truncate(text, w, "...")
		}
		if i == m.bmSelected && m.bmFocus {
			text += strings.Repeat(" ", max(w-lipgloss.Width(text), 0))
			out = append(out, m.styles.Selected.Render(text))
			continue
		}
		out = append(out, m.styles.Text.Render(text))
	}
	return out
}
