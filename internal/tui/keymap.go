package tui

import "charm.land/bubbles/v2/key"

// keyMap holds the application bindings. Editing keys are decoded by the
// editor package and listed here only for the help sidebar.
type keyMap struct {
	Eval      key.Binding
	Autoeval  key.Binding
	Help      key.Binding
	Bookmarks key.Binding
	Bookmark  key.Binding
	HistPrev  key.Binding
	HistNext  key.Binding
	Search    key.Binding
	Output    key.Binding
	ScrollUp  key.Binding
	ScrollDn  key.Binding
	Close     key.Binding
	Quit      key.Binding

	// Editing, help only.
	Newline  key.Binding
	KillWord key.Binding
	Clear    key.Binding
	LineHome key.Binding
	LineEnd  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Eval:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "evaluate")),
		Autoeval:  key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "toggle autoeval")),
		Help:      key.NewBinding(key.WithKeys("f2", "?"), key.WithHelp("?", "help")),
		Bookmarks: key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "bookmarks")),
		Bookmark:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "toggle bookmark")),
		HistPrev:  key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "previous command")),
		HistNext:  key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next command")),
		Search:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "search history")),
		Output:    key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "view full output")),
		ScrollUp:  key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll output up")),
		ScrollDn:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdown", "scroll output down")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close sidebar")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		Newline:  key.NewBinding(key.WithKeys("alt+enter"), key.WithHelp("alt+enter", "new line")),
		KillWord: key.NewBinding(key.WithKeys("ctrl+w", "alt+backspace"), key.WithHelp("ctrl+w", "delete word")),
		Clear:    key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear command")),
		LineHome: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("ctrl+a", "line start")),
		LineEnd:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("ctrl+e", "line end")),
	}
}

// ShortHelp is shown in the status bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help}
}

// FullHelp is shown in the help sidebar, one column.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{
		k.Eval, k.Autoeval, k.Newline,
		k.HistPrev, k.HistNext, k.Search,
		k.Bookmark, k.Bookmarks,
		k.Output, k.ScrollUp, k.ScrollDn,
		k.KillWord, k.Clear, k.LineHome, k.LineEnd,
		k.Help, k.Close, k.Quit,
	}}
}
