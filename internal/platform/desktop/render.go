package desktop

import (
	"github.com/go-gl/gl/v2.1/gl"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/desktop/scene"
)

// draw renders the quads with an orthographic projection over the field.
func draw(grid snake.Grid, quads []scene.Quad, fbW, fbH int) {
	// Keep cells square by letterboxing the viewport.
	side := min(fbW, fbH)
	gl.Viewport(int32((fbW-side)/2), int32((fbH-side)/2), int32(side), int32(side))

	gl.ClearColor(0.05, 0.05, 0.08, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	left, right, bottom, top := scene.Bounds(grid)
	gl.Ortho(left, right, bottom, top, -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()

	gl.Begin(gl.QUADS)
	for _, q := range quads {
		r, g, b := q.Color.RGB()
		gl.Color3f(r, g, b)
		gl.Vertex2f(q.X0, q.Y0)
		gl.Vertex2f(q.X1, q.Y0)
		gl.Vertex2f(q.X1, q.Y1)
		gl.Vertex2f(q.X0, q.Y1)
	}
	gl.End()
}
