// reboot is a terminal arcade about reviving old school computers with
// free software instead of sending them to the landfill.
//
// Usage:
//
//	reboot list              - List available games
//	reboot play <game>       - Play a game
//	reboot menu              - Start menu to pick games interactively
//	reboot serve             - Start SSH server for remote play
//	reboot scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.reboot/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/digiresist/reboot-arcade/internal/games/accuracy"
	_ "github.com/digiresist/reboot-arcade/internal/games/arcade"
	_ "github.com/digiresist/reboot-arcade/internal/games/puzzle"
	_ "github.com/digiresist/reboot-arcade/internal/games/shooter"
	_ "github.com/digiresist/reboot-arcade/internal/games/speed"
	_ "github.com/digiresist/reboot-arcade/internal/games/survival"
	_ "github.com/digiresist/reboot-arcade/internal/games/workbench"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reboot",
	Short: "Reboot - Revive old computers, one mini-game at a time",
	Long: `Reboot is a terminal arcade where you restore donated school computers:
blast bloatware out of the sky, install Linux against the clock, and fit
real hardware upgrades on a repair bench. Completed challenges unlock the
next one, and every win feeds your digital resistance campaign.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  reboot list
  reboot play arcade
  reboot menu
  reboot serve --ssh :2222
  reboot scores arcade`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.reboot/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
