package editor

import "unicode/utf8"

// NextBoundary returns the smallest rune boundary in line greater than
// offset, or len(line) when offset is at or past the last boundary.
func NextBoundary(line string, offset int) int {
	if offset >= len(line) {
		return len(line)
	}
	if offset < 0 {
		return 0
	}
	next := offset + 1
	for next < len(line) && !utf8.RuneStart(line[next]) {
		next++
	}
	return next
}

// PrevBoundary returns the largest rune boundary in line less than offset,
// or 0 when offset is at the start.
func PrevBoundary(line string, offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset > len(line) {
		return len(line)
	}
	prev := offset - 1
	for prev > 0 && !utf8.RuneStart(line[prev]) {
		prev--
	}
	return prev
}

// IsBoundary reports whether offset is a valid cursor column in line.
func IsBoundary(line string, offset int) bool {
	if offset < 0 || offset > len(line) {
		return false
	}
	return offset == len(line) || utf8.RuneStart(line[offset])
}
