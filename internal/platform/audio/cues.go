package audio

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Cues turns game events into sounds.
//
// The game-over sound plays once per death, the move sound is throttled to
// MoveSoundMS, and the music loop starts on the first movement.
type Cues struct {
	player    Player
	music     bool
	moveSound bool
	moveGap   time.Duration
	now       func() time.Time

	lastMove     time.Time
	dead         bool
	musicStarted bool
}

// NewCues creates cues for p. A nil player is treated as Nop.
func NewCues(p Player, cfg config.AudioConfig) *Cues {
	if p == nil {
		p = Nop{}
	}
	return &Cues{
		player:    p,
		music:     cfg.Music,
		moveSound: cfg.MoveSound,
		moveGap:   time.Duration(cfg.MoveSoundMS) * time.Millisecond,
		now:       time.Now,
	}
}

// Handle plays the sounds for one frame's events.
func (c *Cues) Handle(res core.StepResult) {
	if c == nil {
		return
	}
	for _, ev := range res.Events {
		switch ev {
		case core.EventAte:
			c.player.Play(SoundEat)
		case core.EventDied:
			if !c.dead {
				c.dead = true
				c.player.Play(SoundGameOver)
			}
		case core.EventRestarted:
			c.dead = false
		case core.EventMoved:
			if c.music && !c.musicStarted {
				c.musicStarted = true
				c.player.Play(SoundMusic)
			}
			if c.moveSound {
				now := c.now()
				if c.lastMove.IsZero() || now.Sub(c.lastMove) >= c.moveGap {
					c.lastMove = now
					c.player.Play(SoundMove)
				}
			}
		}
	}
}
