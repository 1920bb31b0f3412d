package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("PIPR_THEME", "")
	t.Setenv("PIPR_AUTOEVAL", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.Eval != def.Eval || cfg.History != def.History || cfg.UI != def.UI {
		t.Fatalf("got %+v, want defaults %+v", cfg, def)
	}
	if len(cfg.Shell.BlockedCommands) != len(DefaultBlockedCommands) {
		t.Fatalf("blocked commands = %v", cfg.Shell.BlockedCommands)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Setenv("PIPR_THEME", "")
	t.Setenv("PIPR_AUTOEVAL", "")
	path := writeConfig(t, `
[eval]
autoeval = true
timeout_ms = 500

[shell]
blocked_commands = ["rm"]

[ui]
theme = "dracula"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Eval.Autoeval || cfg.Eval.TimeoutMS != 500 {
		t.Errorf("eval = %+v", cfg.Eval)
	}
	if cfg.Eval.DebounceMS != 300 {
		t.Errorf("debounce_ms = %d, want default 300", cfg.Eval.DebounceMS)
	}
	if len(cfg.Shell.BlockedCommands) != 1 || cfg.Shell.BlockedCommands[0] != "rm" {
		t.Errorf("blocked = %v", cfg.Shell.BlockedCommands)
	}
	if cfg.UI.Theme != "dracula" {
		t.Errorf("theme = %q", cfg.UI.Theme)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PIPR_THEME", "nord")
	t.Setenv("PIPR_AUTOEVAL", "true")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Theme != "nord" || !cfg.Eval.Autoeval {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := writeConfig(t, "[eval\nautoeval = ")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "failed to parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestLoadRequiresPath(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatal("expected error")
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Eval.TimeoutMS = 5
	cfg.Eval.MaxOutputBytes = 0
	cfg.History.MaxEntries = -1
	cfg.Shell.BlockedCommands = []string{"rm", " "}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{
		"eval.timeout_ms",
		"eval.max_output_bytes",
		"history.max_entries",
		"shell.blocked_commands[1]",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	t.Setenv("PIPR_THEME", "")
	t.Setenv("PIPR_AUTOEVAL", "")
	path := filepath.Join(t.TempDir(), FileName)
	wrote, err := WriteDefault(path)
	if err != nil || !wrote {
		t.Fatalf("WriteDefault = %v, %v", wrote, err)
	}
	wrote, err = WriteDefault(path)
	if err != nil || wrote {
		t.Fatalf("second WriteDefault = %v, %v; want no write", wrote, err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Eval != Default().Eval {
		t.Fatalf("eval = %+v", cfg.Eval)
	}
}

func TestDBPath(t *testing.T) {
	cfg := Default()
	if got := cfg.DBPath("/data"); got != filepath.Join("/data", "pipr.db") {
		t.Errorf("relative: %q", got)
	}
	cfg.History.DB = "/tmp/h.db"
	if got := cfg.DBPath("/data"); got != "/tmp/h.db" {
		t.Errorf("absolute: %q", got)
	}
}
