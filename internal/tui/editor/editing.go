package editor

import (
	"fmt"
	"slices"
)

// Kind identifies an edit event.
type Kind int

const (
	KindInsertChar Kind = iota
	KindSplitLine
	KindBackspace
	KindDeleteForward
	KindClearAll
	KindMoveLeft
	KindMoveRight
	KindMoveUp
	KindMoveDown
	KindMoveHome
	KindMoveEnd
	KindKillWordBackward
)

var kindNames = [...]string{
	KindInsertChar:       "insert-char",
	KindSplitLine:        "split-line",
	KindBackspace:        "backspace",
	KindDeleteForward:    "delete-forward",
	KindClearAll:         "clear-all",
	KindMoveLeft:         "move-left",
	KindMoveRight:        "move-right",
	KindMoveUp:           "move-up",
	KindMoveDown:         "move-down",
	KindMoveHome:         "move-home",
	KindMoveEnd:          "move-end",
	KindKillWordBackward: "kill-word-backward",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Event is one edit. Char is only meaningful for KindInsertChar.
type Event struct {
	Kind Kind
	Char rune
}

// InsertChar returns an event inserting r at the cursor.
func InsertChar(r rune) Event { return Event{Kind: KindInsertChar, Char: r} }

// Parameterless events.
var (
	SplitLine        = Event{Kind: KindSplitLine}
	Backspace        = Event{Kind: KindBackspace}
	DeleteForward    = Event{Kind: KindDeleteForward}
	ClearAll         = Event{Kind: KindClearAll}
	MoveLeft         = Event{Kind: KindMoveLeft}
	MoveRight        = Event{Kind: KindMoveRight}
	MoveUp           = Event{Kind: KindMoveUp}
	MoveDown         = Event{Kind: KindMoveDown}
	MoveHome         = Event{Kind: KindMoveHome}
	MoveEnd          = Event{Kind: KindMoveEnd}
	KillWordBackward = Event{Kind: KindKillWordBackward}
)

func (e Event) String() string {
	if e.Kind == KindInsertChar {
		return fmt.Sprintf("%s(%q)", e.Kind, e.Char)
	}
	return e.Kind.String()
}

// Apply performs one edit. Events whose precondition does not hold are
// no-ops. It reports whether the text (not just the cursor) changed.
func (s *State) Apply(ev Event) bool {
	switch ev.Kind {
	case KindInsertChar:
		return s.insertChar(ev.Char)
	case KindSplitLine:
		s.splitLine()
		return true
	case KindBackspace:
		return s.deleteBack()
	case KindDeleteForward:
		return s.deleteForward()
	case KindClearAll:
		changed := !s.Empty()
		s.Reset()
		return changed
	case KindMoveLeft:
		s.moveLeft()
	case KindMoveRight:
		s.moveRight()
	case KindMoveUp:
		if s.cur.Line > 0 {
			s.gotoLine(s.cur.Line - 1)
		}
	case KindMoveDown:
		if s.cur.Line < s.lastLine() {
			s.gotoLine(s.cur.Line + 1)
		}
	case KindMoveHome:
		s.cur.Col = 0
	case KindMoveEnd:
		s.cur.Col = len(s.CurrentLine())
	case KindKillWordBackward:
		return s.killWordBack()
	}
	return false
}

func (s *State) insertChar(r rune) bool {
	switch r {
	case '\n':
		s.splitLine()
		return true
	case '\r':
		return false
	}
	line := s.CurrentLine()
	col := s.cur.Col
	line = line[:col] + string(r) + line[col:]
	s.setCurrentLine(line)
	s.cur.Col = NextBoundary(line, col)
	return true
}

func (s *State) splitLine() {
	line := s.CurrentLine()
	rest := line[s.cur.Col:]
	s.setCurrentLine(line[:s.cur.Col])
	s.lines = slices.Insert(s.lines, s.cur.Line+1, rest)
	s.cur = Position{Line: s.cur.Line + 1}
}

func (s *State) deleteBack() bool {
	if s.cur.Col > 0 {
		line := s.CurrentLine()
		prev := PrevBoundary(line, s.cur.Col)
		s.setCurrentLine(line[:prev] + line[s.cur.Col:])
		s.cur.Col = prev
		return true
	}
	if s.cur.Line == 0 {
		return false
	}
	// Join with the previous line.
	removed := s.CurrentLine()
	s.lines = slices.Delete(s.lines, s.cur.Line, s.cur.Line+1)
	s.cur.Line--
	s.cur.Col = len(s.CurrentLine())
	s.setCurrentLine(s.CurrentLine() + removed)
	return true
}

func (s *State) deleteForward() bool {
	line := s.CurrentLine()
	if s.cur.Col < len(line) {
		next := NextBoundary(line, s.cur.Col)
		s.setCurrentLine(line[:s.cur.Col] + line[next:])
		return true
	}
	if s.cur.Line == s.lastLine() {
		return false
	}
	next := s.lines[s.cur.Line+1]
	s.lines = slices.Delete(s.lines, s.cur.Line+1, s.cur.Line+2)
	s.setCurrentLine(line + next)
	return true
}

func (s *State) moveLeft() {
	if s.cur.Col > 0 {
		s.cur.Col = PrevBoundary(s.CurrentLine(), s.cur.Col)
	} else if s.cur.Line > 0 {
		s.cur.Line--
		s.cur.Col = len(s.CurrentLine())
	}
}

func (s *State) moveRight() {
	if s.cur.Col < len(s.CurrentLine()) {
		s.cur.Col = NextBoundary(s.CurrentLine(), s.cur.Col)
	} else if s.cur.Line < s.lastLine() {
		s.cur.Line++
		s.cur.Col = 0
	}
}

// killWordBack deletes backwards up to and including the nearest word
// delimiter, or to the start of the line.
func (s *State) killWordBack() bool {
	if s.CurrentLine() == "" || s.cur.Col == 0 {
		return false
	}
	for s.cur.Col > 0 {
		line := s.CurrentLine()
		prev := PrevBoundary(line, s.cur.Col)
		deleted := line[prev:s.cur.Col]
		s.setCurrentLine(line[:prev] + line[s.cur.Col:])
		s.cur.Col = prev
		if isWordDelimiter(deleted) {
			break
		}
	}
	return true
}

func isWordDelimiter(ch string) bool {
	switch ch {
	case " ", "/", "\\", ":", "_", "-":
		return true
	}
	return false
}
