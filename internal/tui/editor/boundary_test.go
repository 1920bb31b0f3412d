package editor

import (
	"math/rand"
	"testing"
	"unicode/utf8"
)

func TestBoundaries(t *testing.T) {
	line := "aä漢😀b" // 1 + 2 + 3 + 4 + 1 bytes
	tests := []struct {
		offset   int
		wantNext int
		wantPrev int
	}{
		{-1, 0, 0},
		{0, 1, 0},
		{1, 3, 0},
		{2, 3, 1}, // inside ä
		{3, 6, 1},
		{4, 6, 3}, // inside 漢
		{6, 10, 3},
		{8, 10, 6}, // inside 😀
		{10, 11, 6},
		{11, 11, 10},
		{15, 11, 11},
	}
	for _, tt := range tests {
		if got := NextBoundary(line, tt.offset); got != tt.wantNext {
			t.Errorf("NextBoundary(%d) = %d, want %d", tt.offset, got, tt.wantNext)
		}
		if got := PrevBoundary(line, tt.offset); got != tt.wantPrev {
			t.Errorf("PrevBoundary(%d) = %d, want %d", tt.offset, got, tt.wantPrev)
		}
	}
}

func TestIsBoundary(t *testing.T) {
	line := "ä!"
	for offset, want := range map[int]bool{-1: false, 0: true, 1: false, 2: true, 3: true, 4: false} {
		if got := IsBoundary(line, offset); got != want {
			t.Errorf("IsBoundary(%d) = %v, want %v", offset, got, want)
		}
	}
}

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"äöü", 3},
		{"漢字", 4},
		{"é", 1},
		{"ｱ", 1}, // halfwidth katakana
		{"한글", 4},
	}
	for _, tt := range tests {
		if got := DisplayWidth(tt.in); got != tt.want {
			t.Errorf("DisplayWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

var fuzzEvents = []Event{
	SplitLine, Backspace, DeleteForward, ClearAll,
	MoveLeft, MoveRight, MoveUp, MoveDown, MoveHome, MoveEnd,
	KillWordBackward,
	InsertChar('a'), InsertChar(' '), InsertChar('/'), InsertChar('ä'),
	InsertChar('漢'), InsertChar('😀'), InsertChar('\u0301'), InsertChar('\n'),
}

func assertInvariants(t *testing.T, s *State, step int, ev Event) {
	t.Helper()
	lines := s.ContentLines()
	if len(lines) == 0 {
		t.Fatalf("step %d (%s): zero lines", step, ev)
	}
	cur := s.Cursor()
	if cur.Line < 0 || cur.Line >= len(lines) {
		t.Fatalf("step %d (%s): cursor line %d out of range [0,%d)", step, ev, cur.Line, len(lines))
	}
	if !IsBoundary(lines[cur.Line], cur.Col) {
		t.Fatalf("step %d (%s): col %d is not a boundary of %q", step, ev, cur.Col, lines[cur.Line])
	}
	for i, l := range lines {
		if !utf8.ValidString(l) {
			t.Fatalf("step %d (%s): line %d is not valid UTF-8: %q", step, ev, i, l)
		}
	}
}

func TestRandomEventSequencesKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for run := 0; run < 200; run++ {
		s := New()
		for step := 0; step < 300; step++ {
			ev := fuzzEvents[rng.Intn(len(fuzzEvents))]
			s.Apply(ev)
			assertInvariants(t, s, step, ev)
		}
	}
}

func FuzzApply(f *testing.F) {
	for _, seed := range [][]byte{
		{},
		{0, 1, 2, 3},
		{15, 15, 0, 4, 4, 2, 10},
		[]byte("kill-word-seed"),
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		s := New()
		for i, b := range data {
			ev := fuzzEvents[int(b)%len(fuzzEvents)]
			s.Apply(ev)
			assertInvariants(t, s, i, ev)
		}
		restored := New()
		restored.LoadSnapshot(s.Snapshot())
		got, want := restored.ContentLines(), s.ContentLines()
		if len(got) != len(want) {
			t.Fatalf("round trip changed line count: %d vs %d", len(got), len(want))
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("round trip changed line %d: %q vs %q", i, got[i], want[i])
			}
		}
	})
}
