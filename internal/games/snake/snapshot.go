package snake

// Snapshot is a read-only copy of the simulation state, taken once per frame
// by renderers and by tests.
type Snapshot struct {
	Grid      Grid
	Body      []Point // Head at index 0
	Fruit     Point
	Direction Direction
	Score     int
	GameOver  bool
	Moves     uint64
}

// Head returns the head position.
func (s Snapshot) Head() Point {
	return s.Body[0]
}

// Snapshot copies the current state.
func (s *Sim) Snapshot() Snapshot {
	body := make([]Point, len(s.body))
	copy(body, s.body)
	return Snapshot{
		Grid:      s.grid,
		Body:      body,
		Fruit:     s.fruit,
		Direction: s.dir,
		Score:     s.score,
		GameOver:  s.gameOver,
		Moves:     s.moves,
	}
}
