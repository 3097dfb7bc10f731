package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/audio"
	"github.com/vovakirdan/tui-snake/internal/platform/audio/device"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Snake.

Controls (defaults, see 'snake keys'):
  W/A/S/D, arrows  - Steer
  Space            - Stop; restart after game over
  R                - Restart after game over
  P                - Pause
  Q/Ctrl+C         - Quit (Esc also closes the window)
  Ctrl+S           - Save a text screenshot (terminal only)

Difficulty options:
  easy   - Slow start, speeds up as you score
  normal - Medium start, speeds up as you score
  hard   - Fast start, speeds up as you score
  fixed  - No speed-up

Examples:
  snake play
  snake play --backend gl --sound
  snake play --difficulty hard
  snake play --seed 42 --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Front-end to play with (see 'snake backends')")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if !registry.Exists(flagBackend) {
		return fmt.Errorf("unknown backend %q, run 'snake backends' to see available front-ends", flagBackend)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagBackend, flagLogLevel, flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := snake.NewGame(cfg)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	game.Reset(rt)

	frontend, err := registry.Create(flagBackend)
	if err != nil {
		return err
	}

	sessionLogger := logger.With("session", uuid.NewString(), "backend", frontend.ID())
	sessionLogger.Info("starting game",
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Columns, cfg.Grid.Rows),
		"fps", rt.TickRate,
		"seed", rt.Seed,
		"sound", cfg.Audio.Enabled,
	)

	player := openAudio(cfg.Audio, sessionLogger)
	defer func() {
		if err := player.Close(); err != nil {
			sessionLogger.Warn("audio shutdown failed", "err", err)
		}
	}()

	err = frontend.Run(registry.Session{
		Game:    game,
		Runtime: rt,
		Cues:    audio.NewCues(player, cfg.Audio),
		Logger:  sessionLogger,
	})
	sessionLogger.Info("session ended", "score", game.State().Score)
	return err
}

// openAudio returns a device player, or a silent one when sound is off or
// the device cannot be opened.
func openAudio(cfg config.AudioConfig, logger *log.Logger) audio.Player {
	if !cfg.Enabled {
		return audio.Nop{}
	}
	player, err := device.Open(cfg.Volume)
	if err != nil {
		logger.Warn("continuing without sound", "err", err)
		return audio.Nop{}
	}
	return player
}
