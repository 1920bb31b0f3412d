package tui

// stdoutLines is the wrapped stdout pane content.
func (m Model) stdoutLines() []string {
	return wrapOutput(m.result.Stdout, inner(m.layout.stdout).Dx())
}

func (m Model) outputPageSize() int {
	return max(inner(m.layout.stdout).Dy()-1, 1)
}

func (m *Model) scrollOutput(delta int) {
	m.outScroll += delta
	m.clampOutputScroll()
}

func (m *Model) clampOutputScroll() {
	maxScroll := max(len(m.stdoutLines())-inner(m.layout.stdout).Dy(), 0)
	m.outScroll = max(min(m.outScroll, maxScroll), 0)
}
