package tui

import "image"

const (
	statusRows   = 1
	sidebarPct   = 30
	minOutputH   = 3
	paneChrome   = 2 // top and bottom border rows
	minSidebarW  = 16
	minCommandIn = 1
)

// layout holds the screen rectangles of every pane. Empty rectangles are
// not drawn.
type layout struct {
	sidebar image.Rectangle
	command image.Rectangle
	stdout  image.Rectangle
	stderr  image.Rectangle
	status  image.Rectangle
}

// generateLayout splits the screen: an optional sidebar on the left, then
// the command pane sized to its content, the output panes below it and a
// status row at the bottom.
func generateLayout(width, height int, sidebar bool, cmdLines int, splitStderr bool) layout {
	var ly layout
	if width <= 0 || height <= 0 {
		return ly
	}
	contentH := max(height-statusRows, 0)
	ly.status = image.Rect(0, contentH, width, height)

	mainX := 0
	if sidebar {
		sw := max(width*sidebarPct/100, minSidebarW)
		if sw < width {
			mainX = sw
			ly.sidebar = image.Rect(0, 0, sw, contentH)
		}
	}

	cmdH := max(cmdLines, minCommandIn) + paneChrome
	cmdH = min(cmdH, max(contentH-minOutputH, minCommandIn+paneChrome))
	cmdH = min(cmdH, contentH)
	ly.command = image.Rect(mainX, 0, width, cmdH)

	outH := contentH - cmdH
	if outH <= 0 {
		return ly
	}
	if splitStderr && outH >= 2*paneChrome+2 {
		top := outH / 2
		ly.stdout = image.Rect(mainX, cmdH, width, cmdH+top)
		ly.stderr = image.Rect(mainX, cmdH+top, width, contentH)
	} else {
		ly.stdout = image.Rect(mainX, cmdH, width, contentH)
	}
	return ly
}

// inner returns the content area of a bordered pane.
func inner(r image.Rectangle) image.Rectangle {
	if r.Dx() < 2 || r.Dy() < 2 {
		return image.Rectangle{Min: r.Min, Max: r.Min}
	}
	return image.Rect(r.Min.X+1, r.Min.Y+1, r.Max.X-1, r.Max.Y-1)
}

func inRect(x, y int, r image.Rectangle) bool {
	return image.Pt(x, y).In(r)
}
