package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/pipr/internal/config"
	"github.com/xonecas/pipr/internal/shell"
	"github.com/xonecas/pipr/internal/store"
	"github.com/xonecas/pipr/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to the config file (default ~/.config/pipr/pipr.toml)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if err := run(*configPath, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "pipr: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, debug bool) error {
	dataDir, err := config.EnsureDataDir()
	if err != nil {
		return fmt.Errorf("data dir: %w", err)
	}

	logFile, err := setupLogging(dataDir, debug)
	if err != nil {
		return err
	}
	defer logFile.Close()

	if configPath == "" {
		configPath = filepath.Join(dataDir, config.FileName)
		if wrote, err := config.WriteDefault(configPath); err != nil {
			log.Warn().Err(err).Msg("could not write default config")
		} else if wrote {
			log.Info().Str("path", configPath).Msg("wrote default config")
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// History is a convenience; pipr still runs without it.
	st, err := store.Open(cfg.DBPath(dataDir), cfg.History.MaxEntries)
	if err != nil {
		log.Warn().Err(err).Msg("history disabled")
		st = nil
	}
	defer st.Close()

	sh := shell.New(shell.Options{
		Dir:        cfg.Shell.Dir,
		BlockFuncs: shell.DefaultBlockFuncs(cfg.Shell.BlockedCommands),
		Timeout:    cfg.Eval.Timeout(),
		MaxOutput:  cfg.Eval.MaxOutputBytes,
	})
	log.Info().Str("dir", sh.Dir()).Bool("autoeval", cfg.Eval.Autoeval).Msg("starting")

	p := tea.NewProgram(
		tui.New(tui.Options{
			Shell: sh,
			Store: st,
			Eval:  cfg.Eval,
			Theme: cfg.UI.Theme,

			HistoryMax: cfg.History.MaxEntries,
		}),
		tea.WithFilter(tui.MouseEventFilter),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running pipr: %w", err)
	}
	return nil
}

// setupLogging sends the global logger to a file in the data directory; the
// terminal belongs to the UI.
func setupLogging(dataDir string, debug bool) (*os.File, error) {
	f, err := os.OpenFile(filepath.Join(dataDir, "pipr.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        f,
		NoColor:    true,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
	return f, nil
}
