package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		flagConfig = ""
		flagDifficulty = ""
		flagSound = false
		flagBackend = "tui"
		flagDefaults = false
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestBackendsListsFrontends(t *testing.T) {
	out, err := execute(t, "backends")
	if err != nil {
		t.Fatalf("backends error = %v", err)
	}
	for _, id := range []string{"tui", "gl"} {
		if !strings.Contains(out, "  "+id+" ") {
			t.Errorf("output missing %q:\n%s", id, out)
		}
	}
}

func TestConfigAppliesOverrides(t *testing.T) {
	path := writeConfig(t, "grid:\n  columns: 20\n  rows: 10\n")

	out, err := execute(t, "config", "--config", path, "--difficulty", "hard", "--sound")
	if err != nil {
		t.Fatalf("config error = %v", err)
	}

	cfg, err := config.Parse([]byte(out))
	if err != nil {
		t.Fatalf("output is not a valid config: %v\n%s", err, out)
	}
	if cfg.Grid.Columns != 20 || cfg.Grid.Rows != 10 {
		t.Errorf("grid = %dx%d, want 20x10", cfg.Grid.Columns, cfg.Grid.Rows)
	}
	if !cfg.Difficulty.Enabled || cfg.Gameplay.MoveEveryTicks != 4 {
		t.Errorf("hard preset not applied: %+v %+v", cfg.Difficulty, cfg.Gameplay)
	}
	if !cfg.Audio.Enabled {
		t.Error("--sound not applied")
	}
}

func TestConfigDefaults(t *testing.T) {
	out, err := execute(t, "config", "--defaults")
	if err != nil {
		t.Fatalf("config --defaults error = %v", err)
	}
	if !strings.Contains(out, "move_every_ticks") || !strings.HasPrefix(out, "# Default Snake configuration.") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestKeysShowsBindings(t *testing.T) {
	path := writeConfig(t, "keys:\n  left: [h]\n  right: [l]\n  up: [k]\n  down: [j]\n")

	out, err := execute(t, "keys", "--config", path)
	if err != nil {
		t.Fatalf("keys error = %v", err)
	}
	for _, want := range []string{"left      h", "up        k", "stop      space", "restart   space, r"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestUnknownDifficulty(t *testing.T) {
	path := writeConfig(t, "")
	if _, err := execute(t, "config", "--config", path, "--difficulty", "insane"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestUnknownBackend(t *testing.T) {
	_, err := execute(t, "play", "--backend", "vr")
	if err == nil || !strings.Contains(err.Error(), "unknown backend") {
		t.Errorf("error = %v, want unknown backend", err)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	if _, _, err := newLogger("tui", "loud", ""); err == nil {
		t.Error("expected error for invalid level")
	}

	path := filepath.Join(t.TempDir(), "snake.log")
	logger, closeLog, err := newLogger("tui", "info", path)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Info("hello", "score", 10)
	logger.Debug("hidden")
	if err := closeLog(); err != nil {
		t.Fatalf("close error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "hello") || strings.Contains(string(data), "hidden") {
		t.Errorf("log file = %q", data)
	}
}
