package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-threes/internal/config"
	"github.com/vovakirdan/tui-threes/internal/storage"
	"github.com/vovakirdan/tui-threes/internal/threes"
)

var flagReplayVerbose bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-run a recorded game",
	Long: `Re-run a recorded game from its stored seed and move log, and
verify that the engine reproduces the recorded score.

Replays are recorded automatically when a game ends. Games that used
the catalyst action are not recorded, since the move log only encodes
swipes.

Examples:
  threes replay 3
  threes replay 3 --verbose`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayVerbose, "verbose", false, "Print the board after every move")
}

func runReplay(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: replay ID must be a number, got %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rec, err := store.ReplayByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving replay: %v\n", err)
		os.Exit(1)
	}
	if rec == nil {
		fmt.Fprintf(os.Stderr, "Error: no replay with ID %d\n", id)
		os.Exit(1)
	}

	moves, err := threes.ParseMoves(rec.Moves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing move log: %v\n", err)
		os.Exit(1)
	}

	// Replays assume the variant's stock configuration.
	vcfg, err := config.Load(rec.VariantID, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	gameCfg := vcfg.ToGame(rec.Seed)

	fmt.Printf("Replay #%d  variant=%s  seed=%d  moves=%d\n",
		rec.ID, rec.VariantID, rec.Seed, len(moves))
	fmt.Println()

	var game *threes.Game
	if flagReplayVerbose {
		game, err = threes.New(gameCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}
		printBoard(game)
		for i, d := range moves {
			valid := game.Move(d)
			fmt.Printf("move %d: %s (valid=%v, score=%d)\n", i+1, d, valid, game.Score())
			printBoard(game)
		}
	} else {
		game, err = threes.Replay(gameCfg, moves)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error replaying game: %v\n", err)
			os.Exit(1)
		}
		printBoard(game)
	}

	fmt.Printf("Final score: %d  (recorded: %d)\n", game.Score(), rec.Score)
	if game.Score() == rec.Score {
		fmt.Println("Verification: OK")
	} else {
		fmt.Println("Verification: MISMATCH (was this game played with a custom config?)")
		os.Exit(1)
	}
}

// printBoard prints the grid with tile labels.
func printBoard(g *threes.Game) {
	for _, row := range g.Grid() {
		for _, v := range row {
			label := threes.Tile(v).Label()
			if label == "" {
				label = "--"
			}
			fmt.Printf("%4s", label)
		}
		fmt.Println()
	}
	fmt.Println()
}
