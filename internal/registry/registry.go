// Package registry provides a global registry of front-ends.
// Front-ends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/audio"
)

// Frontend hosts a game: it owns the frame clock, reads keys and draws.
type Frontend interface {
	// ID returns a unique identifier (e.g., "tui", "gl").
	// Used for the --backend flag.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run blocks until the player quits.
	Run(s Session) error
}

// Session is everything a front-end needs to host one game.
type Session struct {
	Game    *snake.Game
	Runtime core.RuntimeConfig
	Cues    *audio.Cues // May be nil
	Logger  *log.Logger
}

// FrontendInfo contains metadata about a registered front-end.
type FrontendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new front-end.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a front-end factory to the registry.
// Panics if a front-end with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered front-ends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FrontendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a front-end by its ID.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}

	return f(), nil
}

// Exists checks if a front-end with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
