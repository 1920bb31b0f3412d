package tui

import (
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// diffStats counts the lines added and removed between two outputs.
func diffStats(before, after string) (added, removed int) {
	if before == after {
		return 0, 0
	}
	edits := myers.ComputeEdits(span.URIFromPath("before"), before, after)
	unified := gotextdiff.ToUnified("before", "after", before, edits)
	for _, h := range unified.Hunks {
		for _, l := range h.Lines {
			switch l.Kind {
			case gotextdiff.Insert:
				added++
			case gotextdiff.Delete:
				removed++
			}
		}
	}
	return added, removed
}
