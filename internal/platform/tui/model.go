package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/audio"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Model is the Bubble Tea model that hosts one snake game.
type Model struct {
	game   *snake.Game
	cues   *audio.Cues
	logger *log.Logger
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	config core.RuntimeConfig
	state  core.GameState

	screenshotDir string
	quitting      bool
}

// NewModel creates a model for the session. The game must already be reset.
func NewModel(s registry.Session) Model {
	cfg := s.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:          s.Game,
		cues:          s.Cues,
		logger:        logger,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:          NewKeyMap(s.Game.Config().Keys),
		help:          h,
		config:        cfg,
		state:         s.Game.State(),
		screenshotDir: defaultScreenshotDir(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.game.HandleKey(msg.String())
	return m, nil
}

// handleTick advances one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Tick()
	m.cues.Handle(result)

	for _, ev := range result.Events {
		switch ev {
		case core.EventAte:
			m.logger.Debug("fruit eaten", "score", result.State.Score, "length", len(m.game.Snapshot().Body))
		case core.EventDied:
			m.logger.Info("game over", "score", result.State.Score)
		case core.EventRestarted:
			m.logger.Info("restarted")
		}
	}
	m.state = result.State

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.fitScreen())

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: failed to create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: failed to write screenshot: %w", err)
	}
	return path, nil
}

// fitScreen sizes the game screen to the window minus the help footer.
func (m Model) fitScreen() *core.Screen {
	m.screen.Resize(m.config.ScreenW, max(0, m.config.ScreenH-m.helpHeight()))
	return m.screen
}

func (m Model) helpHeight() int {
	if !m.help.ShowAll {
		return 1
	}
	h := 0
	for _, col := range m.keys.FullHelp() {
		h = max(h, len(col))
	}
	return h
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.fitScreen())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.state
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".snake", "screenshots")
	}
	return filepath.Join(home, ".snake", "screenshots")
}
