package editor

// Snapshot returns the buffer as a plain line list for history and bookmark
// storage. No cursor information is kept.
func (s *State) Snapshot() []string {
	return s.ContentLines()
}

// LoadSnapshot restores a stored entry. The cursor always lands at the end of
// the last line, not where it was when the entry was saved.
func (s *State) LoadSnapshot(lines []string) {
	s.SetContent(lines)
}
