package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
)

// renderStatusBar writes the status row.
func (m Model) renderStatusBar(b *strings.Builder) {
	st := m.styles
	sep := st.StatusText.Render("  ")

	// -- Left segments --
	var leftParts []string

	switch {
	case m.running:
		leftParts = append(leftParts, st.StatusText.Render(" … running"))
	case m.evaluated:
		if m.result.ExitCode == 0 && m.result.Err == nil {
			leftParts = append(leftParts, st.StatusOK.Render(" ✓ 0"))
		} else {
			leftParts = append(leftParts, st.Error.Render(" ✗ "+strconv.Itoa(m.result.ExitCode)))
		}
		leftParts = append(leftParts, st.StatusText.Render(formatDuration(m.result.Duration)))
		if m.diffAdded+m.diffRemoved > 0 {
			leftParts = append(leftParts, strings.Join([]string{
				st.StatusAdd.Render("+" + strconv.Itoa(m.diffAdded)),
				st.StatusDel.Render("-" + strconv.Itoa(m.diffRemoved)),
			}, st.StatusText.Render(" ")))
		}
	default:
		leftParts = append(leftParts, st.StatusText.Render(" "))
	}
	if m.notice != "" {
		leftParts = append(leftParts, st.Accent.Render(m.notice))
	}
	left := strings.Join(leftParts, sep)

	// -- Right segments --
	var rightParts []string
	if m.bookmarked {
		rightParts = append(rightParts, st.Accent.Render("★"))
	}
	if m.autoeval {
		rightParts = append(rightParts, st.StatusText.Render("autoeval"))
	}
	rightParts = append(rightParts, m.help.ShortHelpView(m.keys.ShortHelp()))
	right := strings.Join(rightParts, sep)

	// -- Compose: left + gap + right + trailing space --
	leftW := lipgloss.Width(left)
	rightW := lipgloss.Width(right)
	gap := m.width - leftW - rightW - 1
	if gap < 0 {
		b.WriteString(m.padCell(left, m.width))
		return
	}
	b.WriteString(left)
	b.WriteString(st.BgFill.Render(strings.Repeat(" ", gap)))
	b.WriteString(right)
	b.WriteString(st.BgFill.Render(" "))
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
