package history

import (
	"reflect"
	"testing"
)

func TestNavigatorWalk(t *testing.T) {
	n := NewNavigator([][]string{{"one"}, {"two"}, {"three"}}, 0)
	draft := []string{"dra", "ft"}

	steps := []struct {
		prev bool
		want []string
		ok   bool
	}{
		{true, []string{"three"}, true},
		{true, []string{"two"}, true},
		{true, []string{"one"}, true},
		{true, nil, false}, // oldest reached
		{false, []string{"two"}, true},
		{false, []string{"three"}, true},
		{false, []string{"dra", "ft"}, true}, // back to the draft
		{false, nil, false},
	}
	for i, st := range steps {
		var got []string
		var ok bool
		if st.prev {
			got, ok = n.Prev(draft)
		} else {
			got, ok = n.Next()
		}
		if ok != st.ok || !reflect.DeepEqual(got, st.want) {
			t.Fatalf("step %d: got %q, %v; want %q, %v", i, got, ok, st.want, st.ok)
		}
	}
	if n.Active() {
		t.Error("navigation still active after returning to draft")
	}
}

func TestNavigatorDraftTakenOnFirstPrevOnly(t *testing.T) {
	n := NewNavigator([][]string{{"a"}, {"b"}}, 0)

	n.Prev([]string{"draft"})
	n.Prev([]string{"a"}) // screen now shows an entry; must not replace the draft
	n.Next()
	got, ok := n.Next()
	if !ok || !reflect.DeepEqual(got, []string{"draft"}) {
		t.Fatalf("got %q, %v", got, ok)
	}
}

func TestNavigatorResetOnEdit(t *testing.T) {
	n := NewNavigator([][]string{{"a"}, {"b"}}, 0)

	n.Prev([]string{""})
	n.Prev([]string{""})
	n.Reset()

	got, ok := n.Prev([]string{"edited a"})
	if !ok || !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("after reset Prev = %q, %v; want newest", got, ok)
	}
	got, _ = n.Next()
	if !reflect.DeepEqual(got, []string{"edited a"}) {
		t.Fatalf("draft = %q", got)
	}
}

func TestNavigatorAdd(t *testing.T) {
	n := NewNavigator(nil, 0)

	if _, ok := n.Prev([]string{"x"}); ok {
		t.Fatal("Prev on empty history")
	}
	n.Add([]string{""})
	n.Add([]string{"ls"})
	n.Add([]string{"ls"})
	n.Add([]string{"pwd"})

	want := [][]string{{"ls"}, {"pwd"}}
	if got := n.Entries(); !reflect.DeepEqual(got, want) {
		t.Fatalf("entries = %q, want %q", got, want)
	}
}

func TestNavigatorReturnsCopies(t *testing.T) {
	n := NewNavigator([][]string{{"orig"}}, 0)

	got, _ := n.Prev(nil)
	got[0] = "changed"
	n.Reset()
	got, _ = n.Prev(nil)
	if got[0] != "orig" {
		t.Fatalf("entry mutated through returned slice: %q", got)
	}

	got, _ = n.Next()
	if !reflect.DeepEqual(got, []string{""}) {
		t.Fatalf("nil draft restored as %q", got)
	}
}

func TestNavigatorKeepsNewestEntries(t *testing.T) {
	n := NewNavigator([][]string{{"a"}, {"b"}, {"c"}, {"d"}}, 3)
	want := [][]string{{"b"}, {"c"}, {"d"}}
	if got := n.Entries(); !reflect.DeepEqual(got, want) {
		t.Fatalf("entries = %q, want %q", got, want)
	}

	n.Add([]string{"e"})
	want = [][]string{{"c"}, {"d"}, {"e"}}
	if got := n.Entries(); !reflect.DeepEqual(got, want) {
		t.Fatalf("after Add: entries = %q, want %q", got, want)
	}

	// The oldest reachable entry is the oldest kept one.
	var last []string
	for {
		lines, ok := n.Prev([]string{"draft"})
		if !ok {
			break
		}
		last = lines
	}
	if !reflect.DeepEqual(last, []string{"c"}) {
		t.Fatalf("oldest reachable = %q, want [c]", last)
	}
}
