// Package desktop hosts the game in an OpenGL window using glfw.
package desktop

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/desktop/scene"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

const (
	windowSize = 800
	maxFrameDt = 0.25 // Seconds; longer stalls are not caught up
)

func init() {
	// glfw calls must come from the main thread.
	runtime.LockOSThread()

	registry.Register("gl", func() registry.Frontend { return Frontend{} })
}

// Frontend runs the game in a desktop window.
type Frontend struct{}

func (Frontend) ID() string    { return "gl" }
func (Frontend) Title() string { return "Desktop window (OpenGL)" }

// Run opens the window and blocks until it is closed.
func (Frontend) Run(s registry.Session) error {
	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl: init: %w", err)
	}
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger.Debug("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	tickRate := s.Runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	frame := 1.0 / float64(tickRate)

	game := s.Game
	restartKey := "R"
	if keys := game.Config().Keys.Restart; len(keys) > 0 {
		restartKey = strings.ToUpper(keys[0])
	}

	input := newInput()
	title := ""
	acc := 0.0
	last := glfw.GetTime()

	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press || window.GetKey(glfw.KeyQ) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		for _, name := range input.pressed(window) {
			game.HandleKey(name)
		}

		now := glfw.GetTime()
		acc += min(now-last, maxFrameDt)
		last = now
		for acc >= frame {
			acc -= frame
			result := game.Tick()
			s.Cues.Handle(result)
			if result.Has(core.EventDied) {
				logger.Info("game over", "score", result.State.Score)
			}
		}

		snap := game.Snapshot()
		fbW, fbH := window.GetFramebufferSize()
		if fbW > 0 && fbH > 0 {
			draw(snap.Grid, scene.Build(snap), fbW, fbH)
		}

		if t := scene.Title(game.State(), len(snap.Body), restartKey); t != title {
			window.SetTitle(t)
			title = t
		}
		window.SwapBuffers()
	}
	return nil
}

func initWindow() (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("gl: glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(windowSize, windowSize, "Snake", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("gl: create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	return window, nil
}
