package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show key bindings",
	Long:  `Prints the key bindings after applying the configuration file.`,
	Args:  cobra.NoArgs,
	RunE:  runKeys,
}

func runKeys(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	game, err := snake.NewGame(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	km := game.Keymap()
	row := func(name string, keys []string) {
		fmt.Fprintf(out, "  %-9s %s\n", name, strings.Join(keys, ", "))
	}

	fmt.Fprintln(out, "Movement:")
	for _, d := range []snake.Direction{snake.DirUp, snake.DirLeft, snake.DirDown, snake.DirRight, snake.DirNone} {
		name := d.String()
		if d == snake.DirNone {
			name = "stop"
		}
		row(name, km.Keys(d))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Controls:")
	row("restart", cfg.Keys.Restart)
	row("pause", cfg.Keys.Pause)
	row("quit", []string{"q", "ctrl+c", "esc (window)"})
	row("shot", []string{"ctrl+s (terminal)"})
	return nil
}
