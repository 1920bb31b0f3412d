// Package editor is the command-pane text buffer: a multi-line, UTF-8 aware
// line buffer with a byte-offset cursor, mutated only through Events.
//
// Lines never contain newlines; line breaks are structural. The cursor column
// is a byte offset that always sits on a rune boundary of the current line.
package editor

import "strings"

// Position addresses a location in the buffer.
type Position struct {
	Line int // index into the line list
	Col  int // byte offset into that line, always on a rune boundary
}

// State is the buffer and its cursor. The zero value is not usable; call New.
type State struct {
	lines []string
	cur   Position
}

// New returns an empty buffer: one empty line, cursor at 0,0.
func New() *State {
	return &State{lines: []string{""}}
}

// SetContent replaces every line and moves the cursor to the end of the last
// line. An empty list becomes a single empty line. Embedded newlines split
// into separate lines and invalid UTF-8 is replaced, so the line invariants
// hold for whatever a caller hands in.
func (s *State) SetContent(lines []string) {
	s.lines = normalizeLines(lines)
	last := len(s.lines) - 1
	s.cur = Position{Line: last, Col: len(s.lines[last])}
}

// Reset returns the buffer to its initial empty state.
func (s *State) Reset() {
	s.lines = []string{""}
	s.cur = Position{}
}

// CurrentLine returns the line under the cursor.
func (s *State) CurrentLine() string { return s.lines[s.cur.Line] }

// Cursor returns the cursor position.
func (s *State) Cursor() Position { return s.cur }

// LineCount returns the number of lines (always >= 1).
func (s *State) LineCount() int { return len(s.lines) }

// ContentText returns all lines concatenated without separators. This is the
// text handed to the evaluator; it does not round-trip line boundaries.
func (s *State) ContentText() string { return strings.Join(s.lines, "") }

// ContentLines returns a copy of the line list.
func (s *State) ContentLines() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Empty reports whether the buffer holds no text at all.
func (s *State) Empty() bool {
	return len(s.lines) == 1 && s.lines[0] == ""
}

func (s *State) setCurrentLine(line string) { s.lines[s.cur.Line] = line }

func (s *State) lastLine() int { return len(s.lines) - 1 }

// gotoLine moves to line n keeping the column when it still fits, otherwise
// clamping to the end of the target line.
func (s *State) gotoLine(n int) {
	s.cur.Line = n
	if s.cur.Col > len(s.lines[n]) {
		s.cur.Col = len(s.lines[n])
	}
	// A kept column can land inside a multi-byte rune of the new line.
	if !IsBoundary(s.lines[n], s.cur.Col) {
		s.cur.Col = PrevBoundary(s.lines[n], s.cur.Col)
	}
}

func normalizeLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.ToValidUTF8(l, "\uFFFD")
		l = strings.ReplaceAll(l, "\r", "")
		out = append(out, strings.Split(l, "\n")...)
	}
	if len(out) == 0 {
		out = append(out, "")
	}
	return out
}
