package tui

import (
	"image"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// renderBox draws a rounded box filling r with title in the top border.
// Every returned line is exactly r.Dx() cells wide. Body lines are padded or
// truncated to fit; missing lines are blank.
func (m Model) renderBox(r image.Rectangle, title string, body []string, border lipgloss.Style) []string {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}
	if w < 2 || h < 2 {
		blank := m.styles.BgFill.Render(strings.Repeat(" ", w))
		out := make([]string, h)
		for i := range out {
			out[i] = blank
		}
		return out
	}

	innerW := w - 2
	out := make([]string, 0, h)

	label := ""
	if title != "" && innerW > 3 {
		label = " " + ansi.Truncate(title, innerW-3, "…") + " "
	}
	fill := max(innerW-1-lipgloss.Width(label), 0)
	top := border.Render("╭─") + m.styles.Title.Render(label) + border.Render(strings.Repeat("─", fill)+"╮")
	if label == "" {
		top = border.Render("╭" + strings.Repeat("─", innerW) + "╮")
	}
	out = append(out, top)

	side := border.Render("│")
	for i := 0; i < h-2; i++ {
		line := ""
		if i < len(body) {
			line = body[i]
		}
		out = append(out, side+m.padCell(line, innerW)+side)
	}

	out = append(out, border.Render("╰"+strings.Repeat("─", innerW)+"╯"))
	return out
}

// padCell truncates or pads line to exactly width cells.
func (m Model) padCell(line string, width int) string {
	lw := lipgloss.Width(line)
	if lw > width {
		line = ansi.Truncate(line, width, "")
		lw = lipgloss.Width(line)
	}
	if lw < width {
		line += m.styles.BgFill.Render(strings.Repeat(" ", width-lw))
	}
	return line
}

// commandScroll is the first command line shown so the cursor line stays
// visible when the command is taller than its pane.
func (m Model) commandScroll() int {
	h := inner(m.layout.command).Dy()
	if h <= 0 {
		return 0
	}
	return max(m.cmd.Cursor().Line-h+1, 0)
}

func (m Model) commandTitle() string {
	if m.autoeval {
		return "Command [Autoeval]"
	}
	return "Command"
}

func (m Model) renderCommandPane() []string {
	r := m.layout.command
	if r.Empty() {
		return nil
	}
	lines := m.cmd.VisibleLines(inner(r).Dx())
	lines = lines[min(m.commandScroll(), len(lines)):]
	body := make([]string, len(lines))
	for i, l := range lines {
		body[i] = m.styles.Text.Render(l)
	}
	border := m.styles.Border
	if !m.bmFocus {
		border = m.styles.BorderFocus
	}
	return m.renderBox(r, m.commandTitle(), body, border)
}

func (m Model) renderStdoutPane() []string {
	r := m.layout.stdout
	if r.Empty() {
		return nil
	}
	title := "Output"
	if m.running {
		title += " (running)"
	}
	var body []string
	switch {
	case m.evaluated:
		lines := m.stdoutLines()
		lines = lines[min(m.outScroll, len(lines)):]
		for _, l := range lines {
			body = append(body, l+ansi.ResetStyle)
		}
	case !m.running:
		body = []string{m.styles.Dim.Render("enter evaluates the command, f1 toggles autoeval")}
	}
	return m.renderBox(r, title, body, m.styles.Border)
}

func (m Model) renderStderrPane() []string {
	r := m.layout.stderr
	if r.Empty() {
		return nil
	}
	lines := wrapOutput(m.stderrText(), inner(r).Dx())
	body := make([]string, len(lines))
	for i, l := range lines {
		body[i] = m.styles.Error.Render(ansi.Strip(l))
	}
	return m.renderBox(r, "Stderr", body, m.styles.Border)
}
