package tui

import (
	"charm.land/bubbles/v2/help"
	"charm.land/lipgloss/v2"

	"github.com/xonecas/pipr/internal/theme"
)

// styles holds every lipgloss style the view uses, derived from one palette.
type styles struct {
	BgFill      lipgloss.Style
	Text        lipgloss.Style
	Border      lipgloss.Style
	BorderFocus lipgloss.Style
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Muted       lipgloss.Style
	Accent      lipgloss.Style
	Error       lipgloss.Style
	Selected    lipgloss.Style
	StatusText  lipgloss.Style
	StatusOK    lipgloss.Style
	StatusAdd   lipgloss.Style
	StatusDel   lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	bg := lipgloss.Color(p.Bg)
	base := lipgloss.NewStyle().Background(bg)
	return styles{
		BgFill:      base,
		Text:        base.Foreground(lipgloss.Color(p.Fg)),
		Border:      base.Foreground(lipgloss.Color(p.Dim)),
		BorderFocus: base.Foreground(lipgloss.Color(p.Accent)),
		Title:       base.Foreground(lipgloss.Color(p.Fg)).Bold(true),
		Dim:         base.Foreground(lipgloss.Color(p.Dim)),
		Muted:       base.Foreground(lipgloss.Color(p.Muted)),
		Accent:      base.Foreground(lipgloss.Color(p.Accent)),
		Error:       base.Foreground(lipgloss.Color(p.Error)),
		Selected:    lipgloss.NewStyle().Foreground(bg).Background(lipgloss.Color(p.Accent)),
		StatusText:  base.Foreground(lipgloss.Color(p.Muted)),
		StatusOK:    base.Foreground(lipgloss.Color(p.Accent)),
		StatusAdd:   base.Foreground(lipgloss.Color(p.Accent)),
		StatusDel:   base.Foreground(lipgloss.Color(p.Error)),
	}
}

// helpStyles maps the palette onto the bubbles help renderer.
func helpStyles(p theme.Palette) help.Styles {
	bg := lipgloss.Color(p.Bg)
	keyStyle := lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(p.Accent))
	descStyle := lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(p.Muted))
	sepStyle := lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(p.Dim))
	return help.Styles{
		Ellipsis:       sepStyle,
		ShortKey:       keyStyle,
		ShortDesc:      descStyle,
		ShortSeparator: sepStyle,
		FullKey:        keyStyle,
		FullDesc:       descStyle,
		FullSeparator:  sepStyle,
	}
}
