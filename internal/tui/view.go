package tui

import (
	"image"
	"strings"

	tea "charm.land/bubbletea/v2"
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() tea.View {
	content := m.renderContent()
	switch {
	case m.outputView != nil:
		content = m.outputView.View(m.width, m.height)
	case m.searchModal != nil:
		content = m.searchModal.View(m.width, m.height)
	}
	v := tea.NewView(content)
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	if x, y, ok := m.cursorPos(); ok {
		v.Cursor = tea.NewCursor(x, y)
	}
	return v
}

// renderContent produces the string content for the view: every row is
// exactly m.width cells wide.
func (m Model) renderContent() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	ly := m.layout
	panes := []struct {
		rect  image.Rectangle
		lines []string
	}{
		{ly.sidebar, m.renderSidebar()},
		{ly.command, m.renderCommandPane()},
		{ly.stdout, m.renderStdoutPane()},
		{ly.stderr, m.renderStderrPane()},
	}

	var b strings.Builder
	for row := 0; row < ly.status.Min.Y; row++ {
		for _, p := range panes {
			r := p.rect
			if row < r.Min.Y || row >= r.Max.Y || r.Dx() == 0 {
				continue
			}
			if idx := row - r.Min.Y; idx < len(p.lines) {
				b.WriteString(p.lines[idx])
			}
		}
		b.WriteByte('\n')
	}
	m.renderStatusBar(&b)
	return b.String()
}

// cursorPos is the terminal cursor position inside the command pane. It is
// hidden while an overlay or the bookmark list has focus.
func (m Model) cursorPos() (x, y int, ok bool) {
	if m.outputView != nil || m.searchModal != nil || m.bmFocus {
		return 0, 0, false
	}
	body := inner(m.layout.command)
	if body.Dx() <= 0 || body.Dy() <= 0 {
		return 0, 0, false
	}
	cx, cy := m.cmd.CursorCell(body.Dx())
	cy -= m.commandScroll()
	if cy < 0 || cy >= body.Dy() {
		return 0, 0, false
	}
	return body.Min.X + cx, body.Min.Y + cy, true
}
