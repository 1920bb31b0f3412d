package editor

import "github.com/charmbracelet/x/ansi"

// truncTail marks a line cut short for display.
const truncTail = "..."

// VisibleLines returns the buffer lines cut to width terminal cells. Long
// lines end in "..."; the buffer itself is never modified.
func (s *State) VisibleLines(width int) []string {
	out := make([]string, len(s.lines))
	for i, line := range s.lines {
		out[i] = truncateLine(line, width)
	}
	return out
}

// CursorCell returns the cursor's (x, y) cell inside a pane of the given
// width, clamped so a cursor past a truncated line stays on screen.
func (s *State) CursorCell(width int) (x, y int) {
	x = s.DisplayedCursorColumn()
	if width > 0 && x > width-1 {
		x = width - 1
	}
	return x, s.cur.Line
}

func truncateLine(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if DisplayWidth(line) <= width {
		return line
	}
	if width <= len(truncTail) {
		return ansi.Truncate(line, width, "")
	}
	return ansi.Truncate(line, width, truncTail)
}
