// threes is a TUI merge puzzle with three color families and swappable
// rule variants, playable locally or over SSH.
//
// Usage:
//
//	threes list               - List available variants
//	threes play [variant]     - Play a variant
//	threes scores <variant>   - Show high scores for a variant
//	threes replay <id>        - Re-run a recorded game
//	threes serve              - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.threes/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
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
	Use:   "threes",
	Short: "Threes - A sliding merge puzzle in your terminal",
	Long: `Threes is a terminal puzzle where tiles of three color families
slide one step per swipe and merge up a shared level ladder.

Available commands:
  list     - Show all rule variants
  play     - Play a variant directly
  scores   - View high scores
  replay   - Re-run a recorded game move by move
  serve    - Start SSH server for remote play

Examples:
  threes list
  threes play classic
  threes play mix --preset brutal
  threes scores split --table
  threes replay 3
  threes serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.threes/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
}
