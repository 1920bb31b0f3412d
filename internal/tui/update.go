package tui

import (
	tea "charm.land/bubbletea/v2"
)

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// -- Window resize -------------------------------------------------------
	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil

	// -- Paste (bracketed paste) ---------------------------------------------
	case tea.PasteMsg:
		return m, m.insertPaste(msg.Content)

	// -- Mouse ---------------------------------------------------------------
	case tea.MouseMsg:
		return m.handleMouse(msg)

	// -- Keyboard ------------------------------------------------------------
	case tea.KeyPressMsg:
		cmd := m.handleKeyPress(msg)
		return m, cmd

	// -- Evaluation ----------------------------------------------------------
	case autoevalMsg:
		if msg.seq == m.editSeq && m.autoeval {
			return m, m.evaluate()
		}
		return m, nil

	case evalResultMsg:
		m.handleEvalResult(msg)
		return m, nil

	case noticeClearMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}

	// Modal debounce ticks.
	if m.searchModal != nil {
		_, cmd := m.searchModal.HandleMsg(msg)
		return m, cmd
	}
	return m, nil
}
