package editor

import "github.com/mattn/go-runewidth"

// widthCond pins the ambiguous-width table so column math does not change
// with the user's locale.
var widthCond = &runewidth.Condition{
	EastAsianWidth:     false,
	StrictEmojiNeutral: true,
}

// DisplayWidth returns the number of terminal cells text occupies: 2 for wide
// glyphs, 0 for combining marks, 1 for everything else printable.
func DisplayWidth(text string) int {
	return widthCond.StringWidth(text)
}

// DisplayedCursorColumn returns the terminal column of the cursor within the
// current line. Rendering positions the visual cursor with this, never with
// the byte offset.
func (s *State) DisplayedCursorColumn() int {
	return DisplayWidth(s.CurrentLine()[:s.cur.Col])
}
