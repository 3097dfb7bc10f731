// Package device plays generated sounds through the system audio output.
// It is the only package that links the native audio backend.
package device

import (
	"fmt"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/audio"
)

const bitDepth = 0 // 32-bit float (oto.FormatFloat32LE)

// Player plays generated samples through the system audio device.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64

	mu     sync.Mutex
	music  oto.Player
	clips  map[audio.Sound][]byte
	closed bool
}

var _ audio.Player = (*Player)(nil)

// Open opens the audio device. volume is clamped to [0, 1].
func Open(volume float64) (*Player, error) {
	ctx, ready, err := oto.NewContext(audio.SampleRate, audio.ChannelCount, bitDepth)
	if err != nil {
		return nil, fmt.Errorf("audio: failed to open device: %w", err)
	}
	return &Player{
		ctx:    ctx,
		ready:  ready,
		volume: core.ClampF(volume, 0, 1),
		clips:  make(map[audio.Sound][]byte),
	}, nil
}

// Play starts s in the background. Sounds requested before the device is
// ready are dropped.
func (p *Player) Play(s audio.Sound) {
	select {
	case <-p.ready:
	default:
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	if s == audio.SoundMusic {
		p.startMusicLocked()
		return
	}

	samples, ok := p.clips[s]
	if !ok {
		samples = audio.Generate(s)
		p.clips[s] = samples
	}
	if len(samples) == 0 {
		return
	}

	go func() {
		player := p.ctx.NewPlayer(audio.NewClipReader(samples))
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

func (p *Player) startMusicLocked() {
	if p.music != nil {
		return
	}
	player := p.ctx.NewPlayer(audio.NewLoopReader(audio.Music()))
	player.SetVolume(p.volume * audio.MusicGain)
	player.Play()
	p.music = player
}

// Close stops the music loop. Effects already playing finish on their own.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.music == nil {
		return nil
	}
	err := p.music.Close()
	p.music = nil
	if err != nil {
		return fmt.Errorf("audio: failed to stop music: %w", err)
	}
	return nil
}
