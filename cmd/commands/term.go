package commands

import (
	"gridsnake/game"
	"gridsnake/ui/term"

	"github.com/spf13/cobra"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "play in the terminal",
	Long:  "play in the terminal. Logs are discarded unless --log-file is set.",
	Run: func(c *cobra.Command, args []string) {
		exit(runTerm())
	},
}

func runTerm() error {
	closeLog, err := setup(true)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := signalContext()
	defer cancel()

	g := newGame()
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Close()

	l := &game.Loop{
		Game:     g,
		Input:    term.NewInput(),
		Renderer: term.NewRenderer(g.Grid, title),
		Clock:    &term.Clock{},
		Speed:    cfg.Speed,
	}
	return l.Run(ctx)
}
