package snake

import (
	"math/rand"
	"time"
)

// DefaultReward is the score added per fruit.
const DefaultReward = 10

// fruitAttempts bounds rejection sampling when fruit must avoid the body.
const fruitAttempts = 64

// Outcome describes what a single Step did.
type Outcome int

const (
	OutcomeIdle  Outcome = iota // Stopped or game over; nothing changed
	OutcomeMoved                // Snake advanced one cell
	OutcomeAte                  // Snake advanced and picked up the fruit
	OutcomeDied                 // Snake advanced into itself
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeDied:
		return "died"
	default:
		return "unknown"
	}
}

// Sim is the snake simulation. It owns the body, direction, fruit and score
// for one session and is advanced by the host one tick at a time.
//
// Sim is not safe for concurrent use; hosts serialize input and ticks.
type Sim struct {
	grid       Grid
	rng        *rand.Rand
	reward     int
	avoidSnake bool

	body     []Point // Head at index 0
	prev     []Point // Scratch copy of the body before a move
	dir      Direction
	fruit    Point
	score    int
	gameOver bool
	moves    uint64
}

// SimOption configures a Sim.
type SimOption func(*Sim)

// WithRand sets the random source used for fruit placement.
func WithRand(rng *rand.Rand) SimOption {
	return func(s *Sim) { s.rng = rng }
}

// WithSeed seeds the fruit placement source.
func WithSeed(seed int64) SimOption {
	return func(s *Sim) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithReward sets the score per fruit. Non-positive values keep the default.
func WithReward(points int) SimOption {
	return func(s *Sim) {
		if points > 0 {
			s.reward = points
		}
	}
}

// WithAvoidSnake makes fruit placement retry positions that overlap the body.
func WithAvoidSnake(avoid bool) SimOption {
	return func(s *Sim) { s.avoidSnake = avoid }
}

// NewSim creates a simulation on the given grid, already reset.
// Odd or degenerate sizes are rounded up by Grid.Even.
func NewSim(grid Grid, opts ...SimOption) *Sim {
	s := &Sim{
		grid:   grid.Even(),
		reward: DefaultReward,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.Reset()
	return s
}

// Reset returns to a single segment at the origin, stopped, with score 0
// and a freshly sampled fruit.
func (s *Sim) Reset() {
	s.body = append(s.body[:0], Point{})
	s.dir = DirNone
	s.score = 0
	s.gameOver = false
	s.moves = 0
	s.placeFruit()
}

// Restart resets the game if it is over. It reports whether a reset happened.
func (s *Sim) Restart() bool {
	if !s.gameOver {
		return false
	}
	s.Reset()
	return true
}

// SetDirection applies d immediately when IsLegal(current, d) holds.
// Only the current direction is consulted, so a stopped snake may be sent
// back over its own neck.
func (s *Sim) SetDirection(d Direction) bool {
	if !IsLegal(s.dir, d) {
		return false
	}
	s.dir = d
	return true
}

// Step advances the world by one tick.
func (s *Sim) Step() Outcome {
	if s.dir == DirNone || s.gameOver {
		return OutcomeIdle
	}

	s.prev = append(s.prev[:0], s.body...)

	head := s.grid.Advance(s.body[0], s.dir)
	s.body[0] = head
	for i := 1; i < len(s.body); i++ {
		s.body[i] = s.prev[i-1]
	}
	s.moves++

	for i := 1; i < len(s.body); i++ {
		if s.body[i] == head {
			s.gameOver = true
			return OutcomeDied
		}
	}

	if s.grid.Near(head, s.fruit) {
		s.score += s.reward
		s.placeFruit()
		s.body = append(s.body, s.body[len(s.body)-1])
		return OutcomeAte
	}

	return OutcomeMoved
}

// placeFruit samples a fruit position uniformly inside the interior.
// Overlap with the body is only avoided when avoidSnake is set.
func (s *Sim) placeFruit() {
	minX, maxX, minY, maxY := s.grid.Interior()
	for i := 0; i < fruitAttempts; i++ {
		s.fruit = Point{
			X: minX + s.rng.Float64()*(maxX-minX),
			Y: minY + s.rng.Float64()*(maxY-minY),
		}
		if !s.avoidSnake || !s.touchesBody(s.fruit) {
			return
		}
	}
}

func (s *Sim) touchesBody(p Point) bool {
	for _, seg := range s.body {
		if s.grid.Near(seg, p) {
			return true
		}
	}
	return false
}

// Grid returns the play-field lattice.
func (s *Sim) Grid() Grid { return s.grid }

// Direction returns the committed direction.
func (s *Sim) Direction() Direction { return s.dir }

// Score returns the current score.
func (s *Sim) Score() int { return s.score }

// GameOver reports whether the snake has collided with itself.
func (s *Sim) GameOver() bool { return s.gameOver }

// Len returns the number of segments.
func (s *Sim) Len() int { return len(s.body) }

// Head returns the head position.
func (s *Sim) Head() Point { return s.body[0] }

// Fruit returns the fruit position.
func (s *Sim) Fruit() Point { return s.fruit }
