package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration. It mirrors
// defaults/snake.yaml and is used when the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Columns: 36,
			Rows:    18,
		},
		Gameplay: GameplayConfig{
			Reward:         10,
			MoveEveryTicks: 6,
		},
		Keys: KeysConfig{
			Left:    []string{"a", "left"},
			Right:   []string{"d", "right"},
			Up:      []string{"w", "up"},
			Down:    []string{"s", "down"},
			None:    []string{"space"},
			Restart: []string{"space", "r"},
			Pause:   []string{"p"},
		},
		Audio: AudioConfig{
			Volume:      0.3,
			MoveSoundMS: 300,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 300,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
