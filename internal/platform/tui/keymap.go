package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// KeyMap defines the key bindings shown in the help line.
// Movement keys are resolved by the game itself; the bindings here only
// describe them and catch the host-level keys.
type KeyMap struct {
	Move       key.Binding
	Stop       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Pause, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Stop},
		{k.Pause, k.Restart},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// NewKeyMap builds bindings from the configured keys.
func NewKeyMap(keys config.KeysConfig) KeyMap {
	move := make([]string, 0, len(keys.Left)+len(keys.Right)+len(keys.Up)+len(keys.Down))
	move = append(move, keys.Up...)
	move = append(move, keys.Left...)
	move = append(move, keys.Down...)
	move = append(move, keys.Right...)

	return KeyMap{
		Move:    binding(move, "move"),
		Stop:    binding(keys.None, "stop"),
		Pause:   binding(keys.Pause, "pause"),
		Restart: binding(keys.Restart, "restart"),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// binding converts config key names to Bubble Tea key strings.
func binding(names []string, desc string) key.Binding {
	keys := make([]string, 0, len(names))
	for _, n := range names {
		keys = append(keys, teaKey(n))
	}
	b := key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
	if len(keys) == 0 {
		b.SetEnabled(false)
	}
	return b
}

// teaKey maps a config key name to the string Bubble Tea reports for it.
func teaKey(name string) string {
	if strings.EqualFold(name, "space") {
		return " "
	}
	return strings.ToLower(name)
}
