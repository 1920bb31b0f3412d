// Package config handles configuration loading from TOML files and environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// FileName is the config file name inside the data directory.
const FileName = "pipr.toml"

// Config is the root configuration structure.
type Config struct {
	Eval    EvalConfig    `toml:"eval"`
	Shell   ShellConfig   `toml:"shell"`
	History HistoryConfig `toml:"history"`
	UI      UIConfig      `toml:"ui"`
}

// EvalConfig controls how and when the command is evaluated.
type EvalConfig struct {
	// Autoeval re-runs the command after every edit (debounced).
	Autoeval       bool `toml:"autoeval"`
	DebounceMS     int  `toml:"debounce_ms"`
	TimeoutMS      int  `toml:"timeout_ms"`
	MaxOutputBytes int  `toml:"max_output_bytes"`
}

// Debounce returns the autoeval debounce as a duration.
func (e EvalConfig) Debounce() time.Duration {
	return time.Duration(e.DebounceMS) * time.Millisecond
}

// Timeout returns the per-evaluation deadline as a duration.
func (e EvalConfig) Timeout() time.Duration {
	return time.Duration(e.TimeoutMS) * time.Millisecond
}

// ShellConfig holds interpreter settings.
type ShellConfig struct {
	// BlockedCommands are refused by the interpreter. Autoeval runs whatever
	// is typed, so destructive commands must never get through.
	BlockedCommands []string `toml:"blocked_commands"`
	// Dir is the working directory for evaluation. Empty means the cwd pipr
	// was started in.
	Dir string `toml:"dir"`
}

// HistoryConfig holds persistence settings.
type HistoryConfig struct {
	MaxEntries int    `toml:"max_entries"`
	DB         string `toml:"db"`
}

// UIConfig holds user-interface settings.
type UIConfig struct {
	// Theme is a Chroma style name; UI colors are derived from it.
	Theme string `toml:"theme"`
}

// DefaultBlockedCommands is the default block list.
var DefaultBlockedCommands = []string{
	"rm", "rmdir", "shred", "dd", "mkfs", "fdisk", "parted",
	"mv", "truncate", "chmod", "chown",
	"shutdown", "reboot", "halt", "poweroff", "kill", "killall", "pkill",
	"sudo", "su", "doas",
}

// Default returns the built-in configuration.
func Default() *Config {
	blocked := make([]string, len(DefaultBlockedCommands))
	copy(blocked, DefaultBlockedCommands)
	return &Config{
		Eval: EvalConfig{
			Autoeval:       false,
			DebounceMS:     300,
			TimeoutMS:      2000,
			MaxOutputBytes: 1 << 20,
		},
		Shell: ShellConfig{BlockedCommands: blocked},
		History: HistoryConfig{
			MaxEntries: 500,
			DB:         "pipr.db",
		},
		UI: UIConfig{Theme: "github-dark"},
	}
}

// Load reads configuration from a TOML file over the defaults and applies
// environment variable overrides. A missing file is not an error; the
// defaults are used.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return nil, fmt.Errorf("config path is required")
	}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat config: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WriteDefault writes the default configuration to path unless a file is
// already there. It reports whether a file was written.
func WriteDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(Default()); err != nil {
		return false, fmt.Errorf("encode default config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return false, fmt.Errorf("write default config: %w", err)
	}
	return true, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	if c.Eval.DebounceMS < 0 {
		errs = append(errs, fmt.Errorf("eval.debounce_ms=%d must not be negative", c.Eval.DebounceMS))
	}
	if c.Eval.TimeoutMS < 100 || c.Eval.TimeoutMS > 60000 {
		errs = append(errs, fmt.Errorf("eval.timeout_ms=%d must be between 100 and 60000", c.Eval.TimeoutMS))
	}
	if c.Eval.MaxOutputBytes <= 0 {
		errs = append(errs, fmt.Errorf("eval.max_output_bytes=%d must be positive", c.Eval.MaxOutputBytes))
	}
	if c.History.MaxEntries <= 0 {
		errs = append(errs, fmt.Errorf("history.max_entries=%d must be positive", c.History.MaxEntries))
	}
	if c.History.DB == "" {
		errs = append(errs, errors.New("history.db is required"))
	}
	if c.Shell.Dir != "" {
		if fi, err := os.Stat(c.Shell.Dir); err != nil || !fi.IsDir() {
			errs = append(errs, fmt.Errorf("shell.dir=%q is not a directory", c.Shell.Dir))
		}
	}
	for i, name := range c.Shell.BlockedCommands {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, fmt.Errorf("shell.blocked_commands[%d] is empty", i))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	for _, setter := range []struct {
		env   string
		apply func(string)
	}{
		{"PIPR_THEME", func(v string) {
			if v != "" {
				cfg.UI.Theme = v
			}
		}},
		{"PIPR_AUTOEVAL", func(v string) {
			switch strings.ToLower(v) {
			case "1", "true", "yes":
				cfg.Eval.Autoeval = true
			case "0", "false", "no":
				cfg.Eval.Autoeval = false
			}
		}},
	} {
		setter.apply(os.Getenv(setter.env))
	}
}

// DBPath resolves the history database path against dataDir.
func (c *Config) DBPath(dataDir string) string {
	if filepath.IsAbs(c.History.DB) {
		return c.History.DB
	}
	return filepath.Join(dataDir, c.History.DB)
}

// DataDir returns the path to the pipr data directory (~/.config/pipr).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "pipr"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	return dir, nil
}
