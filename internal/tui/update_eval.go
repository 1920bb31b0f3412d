package tui

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
)

// evaluate starts a run of the current command. A run still in flight is
// cancelled; its result would be dropped anyway.
func (m *Model) evaluate() tea.Cmd {
	if m.shell == nil {
		return nil
	}
	if m.runCancel != nil {
		m.runCancel()
	}
	m.evalSeq++
	m.running = true

	ctx, cancel := context.WithCancel(m.ctx)
	m.runCancel = cancel
	seq, command, sh := m.evalSeq, m.cmd.ContentText(), m.shell
	return func() tea.Msg {
		defer cancel()
		return evalResultMsg{seq: seq, command: command, result: sh.Run(ctx, command)}
	}
}

// scheduleAutoeval arms the debounce timer when autoeval is on.
func (m *Model) scheduleAutoeval() tea.Cmd {
	if !m.autoeval {
		return nil
	}
	m.editSeq++
	if m.debounce <= 0 {
		return m.evaluate()
	}
	seq := m.editSeq
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return autoevalMsg{seq: seq}
	})
}

func (m *Model) handleEvalResult(msg evalResultMsg) {
	if msg.seq != m.evalSeq {
		log.Debug().Int("seq", msg.seq).Int("current", m.evalSeq).Msg("dropping stale evaluation")
		return
	}
	res := msg.result
	if m.evaluated {
		m.diffAdded, m.diffRemoved = diffStats(m.result.Stdout, res.Stdout)
	} else {
		m.diffAdded, m.diffRemoved = 0, 0
	}
	m.result = res
	m.lastCommand = msg.command
	m.evaluated = true
	m.running = false
	m.runCancel = nil
	m.outScroll = 0

	log.Debug().
		Str("command", msg.command).
		Int("exit", res.ExitCode).
		Dur("took", res.Duration).
		Int("stdout", len(res.Stdout)).
		Int("stderr", len(res.Stderr)).
		Msg("evaluated")
	m.relayout()
}

// stderrText is the stderr pane content: the command's stderr plus any
// failure the interpreter reported that the command did not print itself.
func (m Model) stderrText() string {
	out := m.result.Stderr
	if errText := m.result.ErrText(); errText != "" && !strings.Contains(out, errText) {
		if out != "" && !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		out += "pipr: " + errText
	}
	return out
}

func (m Model) hasStderr() bool {
	return m.evaluated && m.stderrText() != ""
}

// setNotice shows a transient message in the status bar.
func (m *Model) setNotice(text string) tea.Cmd {
	m.noticeSeq++
	m.notice = text
	seq := m.noticeSeq
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeClearMsg{seq: seq}
	})
}
