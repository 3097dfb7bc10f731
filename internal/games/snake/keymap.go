package snake

import (
	"fmt"
	"sort"
	"strings"
)

// Keymap translates key names to directions.
//
// Key names are lower-case: single characters ("a"), "space", and arrow
// names ("left", "right", "up", "down").
type Keymap struct {
	table map[string]Direction
}

// DefaultKeymap returns the classic WASD + arrows table, with space stopping the snake.
func DefaultKeymap() Keymap {
	km, _ := NewKeymap(map[Direction][]string{
		DirLeft:  {"a", "left"},
		DirRight: {"d", "right"},
		DirUp:    {"w", "up"},
		DirDown:  {"s", "down"},
		DirNone:  {"space"},
	})
	return km
}

// NewKeymap builds a keymap from per-direction key lists.
// A key bound to two different directions is an error.
func NewKeymap(bindings map[Direction][]string) (Keymap, error) {
	for dir := range bindings {
		if !dir.Valid() {
			return Keymap{}, fmt.Errorf("keymap: invalid direction %d", dir)
		}
	}

	km := Keymap{table: make(map[string]Direction)}
	for _, dir := range Directions {
		for _, raw := range bindings[dir] {
			key := NormalizeKey(raw)
			if key == "" {
				return Keymap{}, fmt.Errorf("keymap: empty key bound to %s", dir)
			}
			if prev, ok := km.table[key]; ok && prev != dir {
				return Keymap{}, fmt.Errorf("keymap: key %q bound to both %s and %s", key, prev, dir)
			}
			km.table[key] = dir
		}
	}
	return km, nil
}

// NormalizeKey lower-cases a key name and maps a literal space to "space".
func NormalizeKey(key string) string {
	if key == " " {
		return "space"
	}
	return strings.ToLower(strings.TrimSpace(key))
}

// Translate maps a key to a direction.
// The second result is false when the key is not in the table, meaning "no change".
func (km Keymap) Translate(key string) (Direction, bool) {
	dir, ok := km.table[NormalizeKey(key)]
	return dir, ok
}

// Keys returns the keys bound to d, sorted.
func (km Keymap) Keys(d Direction) []string {
	var keys []string
	for k, dir := range km.table {
		if dir == d {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// IsLegal reports whether a snake heading current may switch to requested.
// Unknown directions are rejected, as is an exact reversal while moving.
func IsLegal(current, requested Direction) bool {
	if !requested.Valid() {
		return false
	}
	if current == DirNone {
		return true
	}
	return requested != current.Opposite()
}
