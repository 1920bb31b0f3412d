package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const tabWidth = 8

// wrapOutput turns command output into visual lines of at most width cells.
// Colored output (ls --color, grep --color) keeps its styling on every
// wrapped line.
func wrapOutput(s string, width int) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(expandTabs(s), "\n") {
		out = append(out, wrapANSI(line, width)...)
	}
	return out
}

// expandTabs replaces tabs with spaces up to the next tab stop. Escape
// sequences take no columns.
func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		col := 0
		for len(line) > 0 {
			tab := strings.IndexByte(line, '\t')
			if tab < 0 {
				b.WriteString(line)
				break
			}
			seg := line[:tab]
			b.WriteString(seg)
			col += ansi.StringWidth(seg)
			pad := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", pad))
			col += pad
			line = line[tab+1:]
		}
	}
	return b.String()
}

// wrapANSI wraps an ANSI-styled string to the given width. Styles are
// re-opened on each continuation line and closed at the end of every line
// but the last, so each line renders on its own.
func wrapANSI(s string, width int) []string {
	if width <= 0 || s == "" {
		return []string{s}
	}
	lines := strings.Split(ansi.Wrap(s, width, ""), "\n")
	if len(lines) == 1 {
		return lines
	}

	var active []string // SGR sequences in effect
	for i, line := range lines {
		if i > 0 && len(active) > 0 {
			lines[i] = strings.Join(active, "") + line
		}
		active = scanSGR(line, active)
		if i < len(lines)-1 && len(active) > 0 {
			lines[i] += ansi.ResetStyle
		}
	}
	return lines
}

// scanSGR updates the active SGR list with the sequences found in line. A
// reset clears the list.
func scanSGR(line string, active []string) []string {
	for j := 0; j+1 < len(line); j++ {
		if line[j] != '\x1b' || line[j+1] != '[' {
			continue
		}
		k := j + 2
		for k < len(line) && line[k] != 'm' && line[k] != '\x1b' {
			k++
		}
		if k >= len(line) || line[k] != 'm' {
			continue
		}
		if params := line[j+2 : k]; params == "" || params == "0" {
			active = active[:0]
		} else {
			active = append(active, line[j:k+1])
		}
		j = k
	}
	return active
}
