package commands

import (
	"gridsnake/ui/ebitenui"

	"github.com/spf13/cobra"
)

var ebitenCmd = &cobra.Command{
	Use:   "ebiten",
	Short: "play in an ebiten desktop window",
	Run: func(c *cobra.Command, args []string) {
		exit(runEbiten())
	},
}

func runEbiten() error {
	closeLog, err := setup(false)
	if err != nil {
		return err
	}
	defer closeLog()

	return ebitenui.Run(newGame(), cfg.Speed, title)
}
