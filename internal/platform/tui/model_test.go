package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultSnakeConfig()
	cfg.Gameplay.MoveEveryTicks = 1

	g, err := snake.NewGame(cfg)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	g.Reset(rt)

	m := NewModel(registry.Session{Game: g, Runtime: rt})
	m.screenshotDir = t.TempDir()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelKeyThenTickMoves(t *testing.T) {
	m := newTestModel(t)
	start := m.game.Snapshot().Head()

	m = update(t, m, runeKey('d'))
	m = update(t, m, TickMsg{})

	if !m.State().Moving {
		t.Fatal("snake not moving after d + tick")
	}
	if m.game.Snapshot().Head() == start {
		t.Error("head did not move")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(runeKey('q'))

	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command is not tea.Quit")
	}
	if next.(Model).View() != "" {
		t.Error("View() not empty after quit")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t)
	if m.helpHeight() != 1 {
		t.Fatalf("short help height = %d", m.helpHeight())
	}

	m = update(t, m, runeKey('?'))
	if !m.help.ShowAll || m.helpHeight() != 3 {
		t.Errorf("ShowAll=%v height=%d after ?", m.help.ShowAll, m.helpHeight())
	}
}

func TestModelViewFitsWindow(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()
	if lines := strings.Count(view, "\n") + 1; lines != 24 {
		t.Errorf("view has %d lines, want 24", lines)
	}
	if !strings.Contains(view, "Score: 0") {
		t.Error("view missing HUD")
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.screenshotDir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "snake_") {
		t.Fatalf("screenshots = %v", entries)
	}

	data, err := os.ReadFile(filepath.Join(m.screenshotDir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "Snake") {
		t.Errorf("screenshot missing HUD:\n%s", data)
	}
}

func TestFrontendRegistered(t *testing.T) {
	if !registry.Exists("tui") {
		t.Fatal("tui front-end not registered")
	}
}
