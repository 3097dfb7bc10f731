package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads the Snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides what it names.
func LoadSnake(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.Columns < 4 || c.Grid.Columns%2 != 0:
		return fmt.Errorf("grid.columns must be an even number >= 4, got %d", c.Grid.Columns)
	case c.Grid.Rows < 4 || c.Grid.Rows%2 != 0:
		return fmt.Errorf("grid.rows must be an even number >= 4, got %d", c.Grid.Rows)
	case c.Gameplay.Reward <= 0:
		return fmt.Errorf("gameplay.reward must be positive, got %d", c.Gameplay.Reward)
	case c.Gameplay.MoveEveryTicks <= 0:
		return fmt.Errorf("gameplay.move_every_ticks must be positive, got %d", c.Gameplay.MoveEveryTicks)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("audio.volume must be within [0, 1], got %g", c.Audio.Volume)
	case c.Audio.MoveSoundMS < 0:
		return fmt.Errorf("audio.move_sound_ms must not be negative, got %d", c.Audio.MoveSoundMS)
	case c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1:
		return fmt.Errorf("difficulty.initial_level must be within [0, 1], got %g", c.Difficulty.InitialLevel)
	}

	switch c.Difficulty.Progression.Type {
	case "score", "time", "none":
	default:
		return fmt.Errorf("difficulty.progression.type must be score, time or none, got %q", c.Difficulty.Progression.Type)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust pace based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.MoveEveryTicks = 8
	case DifficultyHard:
		cfg.Gameplay.MoveEveryTicks = 4
	}
}
