package commands

import (
	"gridsnake/game"
	"gridsnake/ui"

	"github.com/spf13/cobra"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "play in a raylib desktop window",
	Run: func(c *cobra.Command, args []string) {
		exit(runWindow())
	},
}

func runWindow() error {
	closeLog, err := setup(false)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := signalContext()
	defer cancel()

	g := newGame()
	w, err := ui.OpenWindow(g.Grid, title)
	if err != nil {
		return err
	}
	defer w.Close()

	l := &game.Loop{
		Game:     g,
		Input:    ui.Input{},
		Renderer: w.Renderer(),
		Clock:    &ui.Clock{},
		Speed:    cfg.Speed,
	}
	return l.Run(ctx)
}
