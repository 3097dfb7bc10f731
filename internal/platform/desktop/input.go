package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

type namedKey struct {
	key  glfw.Key
	name string
}

// keyNames maps glfw keys to the names used in the key configuration.
var keyNames = func() []namedKey {
	names := []namedKey{
		{glfw.KeySpace, "space"},
		{glfw.KeyLeft, "left"},
		{glfw.KeyRight, "right"},
		{glfw.KeyUp, "up"},
		{glfw.KeyDown, "down"},
		{glfw.KeyEnter, "enter"},
		{glfw.KeyTab, "tab"},
	}
	for k := glfw.KeyA; k <= glfw.KeyZ; k++ {
		names = append(names, namedKey{k, string(rune('a' + (k - glfw.KeyA)))})
	}
	for k := glfw.Key0; k <= glfw.Key9; k++ {
		names = append(names, namedKey{k, string(rune('0' + (k - glfw.Key0)))})
	}
	return names
}()

// Input tracks key state between frames to report fresh presses.
type Input struct {
	prevKeys map[glfw.Key]bool
}

func newInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

// JustPressed reports whether key went down since the previous call.
func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// pressed returns the names of keys that went down this frame.
func (in *Input) pressed(window *glfw.Window) []string {
	var names []string
	for _, k := range keyNames {
		if in.JustPressed(window, k.key) {
			names = append(names, k.name)
		}
	}
	return names
}
