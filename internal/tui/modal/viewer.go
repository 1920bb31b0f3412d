package modal

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Viewer is a read-only modal that displays text with scrolling.
type Viewer struct {
	title   string
	content string
	scroll  int
	colors  Colors
}

// NewViewer creates a viewer modal.
func NewViewer(title, content string, colors Colors) Viewer {
	return Viewer{
		title:   title,
		content: content,
		colors:  colors,
	}
}

// HandleMsg processes key events. Returns ActionClose when the modal should close.
func (v *Viewer) HandleMsg(msg tea.Msg) (Action, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.Keystroke() {
		case "esc", "q", "enter", "ctrl+o":
			return ActionClose{}, nil
		case "up", "k":
			v.scrollBy(-1)
		case "down", "j":
			v.scrollBy(1)
		case "pgup":
			v.scrollBy(-10)
		case "pgdown", "space":
			v.scrollBy(10)
		case "home", "g":
			v.scroll = 0
		}
	case tea.MouseWheelMsg:
		if msg.Button == tea.MouseWheelUp {
			v.scrollBy(-1)
		} else if msg.Button == tea.MouseWheelDown {
			v.scrollBy(1)
		}
	}
	return nil, nil
}

// scrollBy moves the view; the upper bound is clamped at render time.
func (v *Viewer) scrollBy(n int) {
	v.scroll = max(v.scroll+n, 0)
}

// View renders the modal centered in the terminal at appWidth x appHeight.
func (v *Viewer) View(appWidth, appHeight int) string {
	w := max(appWidth*80/100, 30)
	h := max(appHeight*80/100, 8)
	innerW := max(w-6, 10) // border (2) + padding (2)

	bg := lipgloss.Color(v.colors.Bg)
	fg := lipgloss.Color(v.colors.Fg)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(v.colors.Dim)).Background(bg)
	fgStyle := lipgloss.NewStyle().Foreground(fg).Background(bg)

	wrapped := strings.Split(ansi.Hardwrap(v.content, innerW, true), "\n")

	// Title row + divider = 2 rows overhead inside the box.
	bodyH := max(h-4, 1)
	maxScroll := max(len(wrapped)-bodyH, 0)
	v.scroll = min(v.scroll, maxScroll)

	var hint string
	switch {
	case v.scroll > 0 && v.scroll < maxScroll:
		hint = "↑↓"
	case v.scroll > 0:
		hint = "↑"
	case maxScroll > 0:
		hint = "↓"
	}
	title := truncate(v.title, innerW-lipgloss.Width(hint)-1)
	gap := max(innerW-lipgloss.Width(title)-lipgloss.Width(hint), 1)

	var sb strings.Builder
	sb.WriteString(fgStyle.Bold(true).Render(title))
	sb.WriteString(fgStyle.Render(strings.Repeat(" ", gap)))
	sb.WriteString(dimStyle.Render(hint))
	sb.WriteByte('\n')
	sb.WriteString(dimStyle.Render(strings.Repeat("─", innerW)))

	end := min(v.scroll+bodyH, len(wrapped))
	for _, l := range wrapped[v.scroll:end] {
		sb.WriteByte('\n')
		sb.WriteString(fgStyle.Render(padRight(l, innerW)))
	}
	// Pad remaining lines so the box has consistent height.
	for i := end - v.scroll; i < bodyH; i++ {
		sb.WriteByte('\n')
		sb.WriteString(fgStyle.Render(strings.Repeat(" ", innerW)))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(v.colors.Border)).
		BorderBackground(bg).
		Foreground(fg).
		Background(bg).
		Padding(0, 1).
		Width(w - 2).
		Render(sb.String())

	return lipgloss.Place(appWidth, appHeight, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceStyle(lipgloss.NewStyle().Background(bg)))
}

func truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= maxW {
		return s
	}
	if maxW <= 3 {
		return ansi.Truncate(s, maxW, "")
	}
	return ansi.Truncate(s, maxW, "...")
}
