package tui

import (
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/golden"

	"github.com/xonecas/pipr/internal/config"
	"github.com/xonecas/pipr/internal/shell"
	"github.com/xonecas/pipr/internal/store"
)

// stripANSI removes ANSI escape codes for golden file comparison
func stripANSI(s string) string {
	ansiRe := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return ansiRe.ReplaceAllString(s, "")
}

func newTestModel(t *testing.T, autoeval bool) Model {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"), 50)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	sh := shell.New(shell.Options{
		Dir:        t.TempDir(),
		BlockFuncs: shell.DefaultBlockFuncs(config.DefaultBlockedCommands),
		Timeout:    5 * time.Second,
		MaxOutput:  1 << 16,
	})
	eval := config.Default().Eval
	eval.Autoeval = autoeval
	return New(Options{Shell: sh, Store: st, Eval: eval, Theme: "github-dark", HistoryMax: 50})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func resize(t *testing.T, m Model, w, h int) Model {
	t.Helper()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: w, Height: h})
	return m
}

func TestLayout(t *testing.T) {
	m := newTestModel(t, false)
	m = resize(t, m, 40, 10)
	m = typeText(t, m, "ls -la")

	t.Run("40x10", func(t *testing.T) {
		output := m.renderContent()
		t.Run("Stripped", func(t *testing.T) {
			golden.RequireEqual(t, []byte(stripANSI(output)))
		})
	})
}

func TestRenderFillsScreen(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		setup  func(*testing.T, Model) Model
	}{
		{"80x24 empty", 80, 24, func(_ *testing.T, m Model) Model { return m }},
		{"120x40 help", 120, 40, func(t *testing.T, m Model) Model {
			m, _ = update(t, m, keyPress("f2"))
			return m
		}},
		{"80x24 stderr", 80, 24, func(t *testing.T, m Model) Model {
			m = typeText(t, m, "echo out; echo err >&2")
			return evalNow(t, m)
		}},
		{"60x20 bookmarks", 60, 20, func(t *testing.T, m Model) Model {
			m = typeText(t, m, "echo a very long command that will not fit in the sidebar")
			m, _ = update(t, m, keyPress("ctrl+s"))
			m, _ = update(t, m, keyPress("ctrl+b"))
			return m
		}},
		{"30x6 tiny", 30, 6, func(t *testing.T, m Model) Model {
			m, _ = update(t, m, tea.PasteMsg{Content: "a\nb\nc\nd\ne"})
			return m
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, false)
			m = resize(t, m, tt.width, tt.height)
			m = tt.setup(t, m)

			lines := strings.Split(m.renderContent(), "\n")
			if len(lines) != tt.height {
				t.Fatalf("got %d rows, want %d", len(lines), tt.height)
			}
			for i, l := range lines {
				if w := ansi.StringWidth(l); w != tt.width {
					t.Errorf("row %d is %d cells wide, want %d: %q", i, w, tt.width, stripANSI(l))
				}
			}
		})
	}
}
