// strider is a terminal side-scrolling runner: jump over cacti, rack up
// a score, and chase the leaderboard.
//
// Usage:
//
//	strider play             - Play the game
//	strider scores           - Show high scores
//	strider serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.strider/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "strider",
	Short: "Strider - a side-scrolling runner in your terminal",
	Long: `Strider is a terminal runner. An intrepid explorer sprints through
the desert while you time jumps over the cacti in their way.

Available commands:
  play     - Play the game
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  strider play
  strider play --seed 42
  strider scores
  strider serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.strider/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
