package editor

import tea "charm.land/bubbletea/v2"

var keyEvents = map[string]Event{
	"alt+enter":     SplitLine,
	"backspace":     Backspace,
	"delete":        DeleteForward,
	"ctrl+u":        ClearAll,
	"left":          MoveLeft,
	"right":         MoveRight,
	"up":            MoveUp,
	"down":          MoveDown,
	"home":          MoveHome,
	"ctrl+a":        MoveHome,
	"end":           MoveEnd,
	"ctrl+e":        MoveEnd,
	"ctrl+w":        KillWordBackward,
	"alt+backspace": KillWordBackward,
}

// DecodeKey translates a key press into edit events. Keys that are not
// editing keys decode to nil. Pasted or composed text decodes to one
// InsertChar per rune.
func DecodeKey(msg tea.KeyPressMsg) []Event {
	if ev, ok := keyEvents[msg.Keystroke()]; ok {
		return []Event{ev}
	}
	if msg.Text == "" {
		return nil
	}
	evs := make([]Event, 0, len(msg.Text))
	for _, r := range msg.Text {
		evs = append(evs, InsertChar(r))
	}
	return evs
}

// ApplyKey decodes msg and applies the resulting events. It reports whether
// msg was an editing key and whether the text changed.
func (s *State) ApplyKey(msg tea.KeyPressMsg) (handled, changed bool) {
	evs := DecodeKey(msg)
	for _, ev := range evs {
		if s.Apply(ev) {
			changed = true
		}
	}
	return len(evs) > 0, changed
}
