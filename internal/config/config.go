// Package config provides YAML-based game configuration loading and
// difficulty management for the snake game.
package config

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Fruit      FruitConfig      `yaml:"fruit"`
	Keys       KeysConfig       `yaml:"keys"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the play-field lattice.
type GridConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// GameplayConfig defines scoring and pacing.
type GameplayConfig struct {
	Reward         int `yaml:"reward"`
	MoveEveryTicks int `yaml:"move_every_ticks"`
}

// FruitConfig defines fruit placement.
type FruitConfig struct {
	AvoidSnake bool `yaml:"avoid_snake"`
}

// KeysConfig lists key names per control.
type KeysConfig struct {
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	None    []string `yaml:"none"`
	Restart []string `yaml:"restart"`
	Pause   []string `yaml:"pause"`
}

// AudioConfig defines sound effects.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Volume      float64 `yaml:"volume"`
	Music       bool    `yaml:"music"`
	MoveSound   bool    `yaml:"move_sound"`
	MoveSoundMS int     `yaml:"move_sound_ms"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name. An empty name is allowed and means "no preset".
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
