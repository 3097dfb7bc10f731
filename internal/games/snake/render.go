package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// hudHeight is the number of rows above the play field.
const hudHeight = 2

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.sim.Snapshot()

	g.renderHUD(dst, snap)

	field, ok := FieldRect(snap.Grid, dst.Width(), dst.Height())
	if !ok {
		w, h := FieldSize(snap.Grid)
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h+hudHeight))
		return
	}

	dst.DrawBox(field, core.ColorGray)
	inner := field.Inset(1)

	if fx, fy := cellOrigin(inner, snap.Grid, snap.Fruit); inner.Contains(fx, fy) {
		dst.DrawTextColored(fx, fy, "()", core.ColorYellow)
	}

	// Tail first so the head wins on overlap.
	for i := len(snap.Body) - 1; i >= 0; i-- {
		x, y := cellOrigin(inner, snap.Grid, snap.Body[i])
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		dst.SetColored(x, y, '█', color)
		dst.SetColored(x+1, y, '█', color)
	}

	switch {
	case snap.GameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Press %s to restart", g.restartHint()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the status line and separator.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Snake — Score: %d  Length: %d", snap.Score, len(snap.Body))
	if g.difficulty.IsEnabled() {
		hud += fmt.Sprintf("  Speed: %d", g.cfg.Gameplay.MoveEveryTicks-g.MoveEvery()+1)
	}
	dst.DrawTextColored(0, 0, hud, core.ColorCyan)

	if snap.Direction == DirNone && !snap.GameOver {
		hint := "press a direction to start "
		dst.DrawText(dst.Width()-len(hint), 0, hint)
	}

	for x, w := 0, dst.Width(); x < w; x++ {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	w, h := maxLen+4, 5
	box := core.NewRect(
		core.Clamp((dst.Width()-w)/2, 0, max(0, dst.Width()-w)),
		core.Clamp((dst.Height()-h)/2, 0, max(0, dst.Height()-h)),
		w, h,
	)

	dst.FillRect(box)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightRed)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}

func (g *Game) restartHint() string {
	if len(g.cfg.Keys.Restart) == 0 {
		return "R"
	}
	return strings.ToUpper(g.cfg.Keys.Restart[0])
}

// FieldSize returns the bordered play-field size in characters.
// Each lattice column takes two characters so cells look square.
func FieldSize(grid Grid) (w, h int) {
	return (grid.Columns+1)*2 + 2, grid.Rows + 1 + 2
}

// FieldRect places the bordered play field below the HUD, centered
// horizontally. ok is false when the screen is too small to hold it.
func FieldRect(grid Grid, screenW, screenH int) (core.Rect, bool) {
	w, h := FieldSize(grid)
	if w > screenW || h+hudHeight > screenH {
		return core.Rect{}, false
	}
	return core.NewRect((screenW-w)/2, hudHeight, w, h), true
}

// cellOrigin maps a field position to the left character of its cell.
// Screen rows grow downwards, so y is flipped.
func cellOrigin(inner core.Rect, grid Grid, p Point) (x, y int) {
	col := grid.Col(p.X) + grid.halfCols()
	row := grid.halfRows() - grid.Row(p.Y)
	return inner.X + col*2, inner.Y + row
}
