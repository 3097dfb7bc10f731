package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// loadConfig loads the configuration and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return config.SnakeConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplySnakePreset(&cfg, preset)
	}

	if cmd.Flags().Changed("sound") {
		cfg.Audio.Enabled = flagSound
	}

	if err := cfg.Validate(); err != nil {
		return config.SnakeConfig{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
