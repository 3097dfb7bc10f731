// Package snake implements the Snake simulation, its input mapping and the
// frame-driven game adapter used by the front-ends.
package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game drives a Sim from a fixed-rate frame clock.
//
// Hosts call HandleKey on key events and Tick once per frame. The snake
// moves every MoveEveryTicks frames, so the game pace does not depend on the
// host's frame rate.
type Game struct {
	cfg        config.SnakeConfig
	keymap     Keymap
	controls   map[string]core.Action
	difficulty *config.DifficultyManager

	sim     *Sim
	pending core.InputFrame

	frames     uint64
	moveTicker int
	paused     bool
}

// reservedKeys are handled by the hosts before the game sees them.
var reservedKeys = map[string]bool{
	"q":      true,
	"esc":    true,
	"escape": true,
	"ctrl+c": true,
	"ctrl+s": true,
	"?":      true,
}

// IsReservedKey reports whether a host intercepts key (quit, screenshot, help).
func IsReservedKey(key string) bool {
	return reservedKeys[NormalizeKey(key)]
}

// NewGame creates a game from configuration.
func NewGame(cfg config.SnakeConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake: invalid config: %w", err)
	}

	km, err := NewKeymap(map[Direction][]string{
		DirLeft:  cfg.Keys.Left,
		DirRight: cfg.Keys.Right,
		DirUp:    cfg.Keys.Up,
		DirDown:  cfg.Keys.Down,
		DirNone:  cfg.Keys.None,
	})
	if err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}

	for _, keys := range [][]string{
		cfg.Keys.Left, cfg.Keys.Right, cfg.Keys.Up, cfg.Keys.Down, cfg.Keys.None,
		cfg.Keys.Restart, cfg.Keys.Pause,
	} {
		for _, k := range keys {
			if IsReservedKey(k) {
				return nil, fmt.Errorf("snake: key %q is reserved by the front-ends", NormalizeKey(k))
			}
		}
	}

	controls := make(map[string]core.Action)
	for _, k := range cfg.Keys.Restart {
		controls[NormalizeKey(k)] = core.ActionRestart
	}
	for _, k := range cfg.Keys.Pause {
		key := NormalizeKey(k)
		if _, ok := km.Translate(key); ok {
			return nil, fmt.Errorf("snake: pause key %q is already a movement key", key)
		}
		if controls[key] == core.ActionRestart {
			return nil, fmt.Errorf("snake: key %q bound to both pause and restart", key)
		}
		controls[key] = core.ActionPause
	}

	g := &Game{
		cfg:        cfg,
		keymap:     km,
		controls:   controls,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset starts a new session with a fresh simulation.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g.sim = NewSim(
		Grid{Columns: g.cfg.Grid.Columns, Rows: g.cfg.Grid.Rows},
		WithSeed(seed),
		WithReward(g.cfg.Gameplay.Reward),
		WithAvoidSnake(g.cfg.Fruit.AvoidSnake),
	)
	g.pending.Clear()
	g.frames = 0
	g.moveTicker = 0
	g.paused = false
}

// HandleKey records a key press for the next frame.
// It reports whether the key meant anything in the current state.
func (g *Game) HandleKey(key string) bool {
	key = NormalizeKey(key)

	if g.sim.GameOver() {
		if g.controls[key] == core.ActionRestart {
			g.pending.Set(core.ActionRestart)
			return true
		}
		return false
	}

	if g.controls[key] == core.ActionPause {
		g.pending.Set(core.ActionPause)
		return true
	}
	if dir, ok := g.keymap.Translate(key); ok {
		g.pending.Set(ActionFor(dir))
		return true
	}
	return false
}

// Tick advances one frame using the keys recorded since the previous frame.
func (g *Game) Tick() core.StepResult {
	in := g.pending.Clone()
	g.pending.Clear()
	return g.Step(in)
}

// Step advances one frame with the given input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frames++
	var events []core.Event

	for _, action := range in.Actions {
		switch action {
		case core.ActionRestart:
			if g.sim.Restart() {
				g.moveTicker = 0
				g.paused = false
				events = append(events, core.EventRestarted)
			}
		case core.ActionPause:
			if !g.sim.GameOver() {
				g.paused = !g.paused
			}
		default:
			if dir, ok := DirectionFor(action); ok && !g.paused {
				g.sim.SetDirection(dir)
			}
		}
	}

	if g.paused || g.sim.GameOver() {
		return core.StepResult{State: g.State(), Events: events}
	}

	g.moveTicker++
	if g.moveTicker >= g.MoveEvery() {
		g.moveTicker = 0
		switch g.sim.Step() {
		case OutcomeMoved:
			events = append(events, core.EventMoved)
		case OutcomeAte:
			events = append(events, core.EventMoved, core.EventAte)
		case OutcomeDied:
			events = append(events, core.EventDied)
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// MoveEvery returns the current number of frames between moves.
func (g *Game) MoveEvery() int {
	return g.difficulty.MoveEvery(g.cfg.Gameplay.MoveEveryTicks, g.sim.Score(), int(g.frames))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: g.sim.GameOver(),
		Paused:   g.paused,
		Moving:   g.sim.Direction() != DirNone,
	}
}

// Snapshot returns a read-only copy of the simulation state.
func (g *Game) Snapshot() Snapshot {
	return g.sim.Snapshot()
}

// Keymap returns the direction key table.
func (g *Game) Keymap() Keymap {
	return g.keymap
}

// Config returns the configuration the game was built from.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// ActionFor maps a direction to the platform action that requests it.
func ActionFor(d Direction) core.Action {
	switch d {
	case DirLeft:
		return core.ActionLeft
	case DirRight:
		return core.ActionRight
	case DirUp:
		return core.ActionUp
	case DirDown:
		return core.ActionDown
	default:
		return core.ActionStop
	}
}

// DirectionFor maps a platform action back to a direction.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionStop:
		return DirNone, true
	default:
		return DirNone, false
	}
}
