// Package scene converts a snake snapshot into coloured quads in
// normalized field coordinates, ready for an immediate-mode renderer.
package scene

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// gap is the fraction of a cell left empty around each quad.
const gap = 0.08

// Quad is an axis-aligned rectangle with a colour.
type Quad struct {
	X0, Y0 float32
	X1, Y1 float32
	Color  core.Color
}

// Bounds returns the orthographic projection that shows the whole lattice,
// including the cells centred on the -1 and +1 edges.
func Bounds(grid snake.Grid) (left, right, bottom, top float64) {
	hw, hh := grid.CellW()/2, grid.CellH()/2
	return -1 - hw, 1 + hw, -1 - hh, 1 + hh
}

// Build returns the fruit followed by the body from tail to head,
// so the head is drawn last.
func Build(snap snake.Snapshot) []Quad {
	quads := make([]Quad, 0, len(snap.Body)+1)
	quads = append(quads, cellQuad(snap.Grid, snap.Fruit, core.ColorYellow))

	body, head := core.ColorGreen, core.ColorBrightGreen
	if snap.GameOver {
		body, head = core.ColorRed, core.ColorBrightRed
	}
	for i := len(snap.Body) - 1; i >= 0; i-- {
		color := body
		if i == 0 {
			color = head
		}
		quads = append(quads, cellQuad(snap.Grid, snap.Body[i], color))
	}
	return quads
}

func cellQuad(grid snake.Grid, p snake.Point, c core.Color) Quad {
	hw := grid.CellW() * (0.5 - gap)
	hh := grid.CellH() * (0.5 - gap)
	return Quad{
		X0:    float32(p.X - hw),
		Y0:    float32(p.Y - hh),
		X1:    float32(p.X + hw),
		Y1:    float32(p.Y + hh),
		Color: c,
	}
}

// Title returns the window title for the current state.
func Title(state core.GameState, length int, restartKey string) string {
	switch {
	case state.GameOver:
		return fmt.Sprintf("Snake | GAME OVER | Score: %d | %s to restart", state.Score, restartKey)
	case state.Paused:
		return fmt.Sprintf("Snake | Paused | Score: %d", state.Score)
	default:
		return fmt.Sprintf("Snake | Score: %d | Length: %d", state.Score, length)
	}
}
