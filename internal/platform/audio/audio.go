// Package audio plays procedural sound effects for game events.
package audio

// Sound identifies a sound effect.
type Sound int

const (
	SoundEat Sound = iota
	SoundGameOver
	SoundMove
	SoundMusic // Background loop; started once and kept playing
)

func (s Sound) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundGameOver:
		return "game_over"
	case SoundMove:
		return "move"
	case SoundMusic:
		return "music"
	default:
		return "unknown"
	}
}

// Player plays sounds without blocking the caller.
type Player interface {
	Play(s Sound)
	Close() error
}

// Nop is a Player that discards every sound.
type Nop struct{}

func (Nop) Play(Sound)   {}
func (Nop) Close() error { return nil }
