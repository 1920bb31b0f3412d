// Package tui is the interactive front end: a command pane backed by the
// editor core, live output panes, history and bookmarks.
package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/pipr/internal/config"
	"github.com/xonecas/pipr/internal/history"
	"github.com/xonecas/pipr/internal/shell"
	"github.com/xonecas/pipr/internal/store"
	"github.com/xonecas/pipr/internal/theme"
	"github.com/xonecas/pipr/internal/tui/editor"
	"github.com/xonecas/pipr/internal/tui/modal"
)

type sidebarMode int

const (
	sidebarNone sidebarMode = iota
	sidebarHelp
	sidebarBookmarks
)

const noticeTTL = 2 * time.Second

// Options configures the TUI model.
type Options struct {
	Shell *shell.Shell
	Store *store.Store // may be nil: history and bookmarks are then in-memory only
	Eval  config.EvalConfig
	Theme string
	// HistoryMax caps in-memory history like the store's history.max_entries.
	HistoryMax int
}

// Model is the application model.
type Model struct {
	width  int
	height int
	layout layout

	palette theme.Palette
	styles  styles
	keys    keyMap
	help    help.Model

	cmd   *editor.State
	shell *shell.Shell
	store *store.Store
	nav   *history.Navigator

	autoeval  bool
	debounce  time.Duration
	editSeq   int // autoeval debounce counter
	evalSeq   int // evaluation counter; only the latest result is shown
	running   bool
	runCancel context.CancelFunc

	result      shell.Result
	evaluated   bool
	lastCommand string
	diffAdded   int
	diffRemoved int
	outScroll   int

	sidebar    sidebarMode
	bookmarks  [][]string
	bmSelected int
	bmFocus    bool
	bookmarked bool

	notice    string
	noticeSeq int

	searchModal *modal.Model
	outputView  *modal.Viewer

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates the application model.
func New(opts Options) Model {
	palette := theme.FromStyle(opts.Theme)

	entries, err := opts.Store.History()
	if err != nil {
		log.Warn().Err(err).Msg("failed to load history")
	}

	h := help.New()
	h.Styles = helpStyles(palette)

	ctx, cancel := context.WithCancel(context.Background())
	m := Model{
		palette:  palette,
		styles:   newStyles(palette),
		keys:     defaultKeyMap(),
		help:     h,
		cmd:      editor.New(),
		shell:    opts.Shell,
		store:    opts.Store,
		nav:      history.NewNavigator(entries, opts.HistoryMax),
		autoeval: opts.Eval.Autoeval,
		debounce: opts.Eval.Debounce(),
		ctx:      ctx,
		cancel:   cancel,
	}
	return m
}

// Init initializes the TUI (required by BubbleTea).
func (m Model) Init() tea.Cmd {
	return nil
}

// Command returns the command text as it would be evaluated.
func (m Model) Command() string {
	return m.cmd.ContentText()
}

// modalColors maps the palette onto modal colors.
func (m Model) modalColors() modal.Colors {
	return modal.Colors{
		Fg:     m.palette.Fg,
		Bg:     m.palette.Bg,
		Dim:    m.palette.Dim,
		SelFg:  m.palette.Bg,
		SelBg:  m.palette.Accent,
		Border: m.palette.Border,
	}
}
