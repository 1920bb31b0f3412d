package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// ---------------------------------------------------------------------------
// Mouse filter: throttle high-frequency events at program level.
// ---------------------------------------------------------------------------

var lastMouseEvent time.Time

const wheelStep = 3

// MouseEventFilter rate-limits wheel and motion events (15 ms).
// Pass to tea.WithFilter. Never drops clicks or releases.
func MouseEventFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	switch msg.(type) {
	case tea.MouseWheelMsg, tea.MouseMotionMsg:
		now := time.Now()
		if now.Sub(lastMouseEvent) < 15*time.Millisecond {
			return nil
		}
		lastMouseEvent = now
	}
	return msg
}

// ---------------------------------------------------------------------------
// Mouse handling: overlays first, then by pane under the pointer.
// ---------------------------------------------------------------------------

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.outputView != nil {
		action, cmd := m.outputView.HandleMsg(msg)
		if action != nil {
			m.outputView = nil
		}
		return m, cmd
	}
	if m.searchModal != nil {
		return m, nil
	}

	mouse := msg.Mouse()
	x, y := mouse.X, mouse.Y

	switch msg := msg.(type) {
	case tea.MouseWheelMsg:
		if !inRect(x, y, m.layout.stdout) {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseWheelUp:
			m.scrollOutput(-wheelStep)
		case tea.MouseWheelDown:
			m.scrollOutput(wheelStep)
		}
	case tea.MouseClickMsg:
		if msg.Button != tea.MouseLeft || m.sidebar != sidebarBookmarks {
			return m, nil
		}
		body := inner(m.layout.sidebar)
		if !inRect(x, y, body) {
			return m, nil
		}
		return m, m.selectBookmark(y - body.Min.Y + m.bookmarkScroll())
	}
	return m, nil
}
