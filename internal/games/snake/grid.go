package snake

import "math"

// Point is a position in normalized play-field coordinates, both axes in [-1, 1].
type Point struct {
	X, Y float64
}

// Grid describes the play-field lattice.
//
// The field spans [-1, 1] on both axes and is divided into Columns x Rows
// cells, so a cell is 2/Columns wide and 2/Rows tall. Snake segments sit on
// lattice points col/(Columns/2), row/(Rows/2) with col in [-Columns/2, Columns/2]
// and row in [-Rows/2, Rows/2]; the bounds -1 and +1 are both reachable.
// Columns and Rows must be even and positive.
type Grid struct {
	Columns int
	Rows    int
}

// CellW returns the width of one cell.
func (g Grid) CellW() float64 {
	return 2 / float64(g.Columns)
}

// CellH returns the height of one cell.
func (g Grid) CellH() float64 {
	return 2 / float64(g.Rows)
}

// Even returns g with each side rounded up to an even size of at least 2.
func (g Grid) Even() Grid {
	return Grid{Columns: evenSize(g.Columns), Rows: evenSize(g.Rows)}
}

func evenSize(n int) int {
	if n < 2 {
		return 2
	}
	return n + n%2
}

func (g Grid) halfCols() int { return g.Columns / 2 }
func (g Grid) halfRows() int { return g.Rows / 2 }

// Col returns the lattice column nearest to x.
func (g Grid) Col(x float64) int {
	return int(math.Round(x * float64(g.halfCols())))
}

// Row returns the lattice row nearest to y.
func (g Grid) Row(y float64) int {
	return int(math.Round(y * float64(g.halfRows())))
}

// At returns the lattice point for (col, row).
// Division keeps the result identical to the nearest float literal,
// so At(1, 2) on a 20x20 grid is exactly {0.1, 0.2}.
func (g Grid) At(col, row int) Point {
	return Point{
		X: float64(col) / float64(g.halfCols()),
		Y: float64(row) / float64(g.halfRows()),
	}
}

// Advance moves p one cell in direction d, wrapping at the field edges.
// Only the axis of movement is recomputed; the other coordinate is copied as is.
func (g Grid) Advance(p Point, d Direction) Point {
	dx, dy := d.Delta()
	if dx != 0 {
		col := wrapIndex(g.Col(p.X)+dx, g.halfCols())
		p.X = float64(col) / float64(g.halfCols())
	}
	if dy != 0 {
		row := wrapIndex(g.Row(p.Y)+dy, g.halfRows())
		p.Y = float64(row) / float64(g.halfRows())
	}
	return p
}

// wrapIndex maps an index that left [-half, half] onto the opposite bound.
func wrapIndex(i, half int) int {
	if i > half {
		return -half
	}
	if i < -half {
		return half
	}
	return i
}

// Near reports whether a and b are closer than one cell on both axes.
func (g Grid) Near(a, b Point) bool {
	return math.Abs(a.X-b.X) < g.CellW() && math.Abs(a.Y-b.Y) < g.CellH()
}

// Interior returns the bounds fruit may be sampled from.
func (g Grid) Interior() (minX, maxX, minY, maxY float64) {
	return -1 + g.CellW(), 1 - g.CellW(), -1 + g.CellH(), 1 - g.CellH()
}
