package tui

import (
	tea "charm.land/bubbletea/v2"
)

// handleResize applies a window size change and re-derives layout.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height
	m.relayout()
}

// relayout recomputes pane rectangles. Called whenever something that
// affects geometry changes: size, sidebar, command line count, stderr.
func (m *Model) relayout() {
	m.layout = generateLayout(m.width, m.height, m.sidebar != sidebarNone, m.cmd.LineCount(), m.hasStderr())
	m.clampOutputScroll()
}
