package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-threes/internal/config"
	"github.com/vovakirdan/tui-threes/internal/platform/tui"
	"github.com/vovakirdan/tui-threes/internal/storage"
	"github.com/vovakirdan/tui-threes/internal/threes"
	"github.com/vovakirdan/tui-threes/internal/variant"
)

var (
	flagConfig   string
	flagPreset   string
	flagSize     int
	flagStrategy string
	flagFixture  string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: classic).

Controls:
  Arrows/WASD - Swipe
  C           - Catalyst (mix variant)
  R           - Restart
  ?           - Toggle help
  Q/Ctrl+C    - Quit

Preset options:
  chill    - Fewer starting tiles, single spawn per move
  standard - The variant's configured defaults
  brutal   - More starting tiles, double spawns, edge-biased dealing

Examples:
  threes play
  threes play mix
  threes play split --preset brutal
  threes play classic --seed 42
  threes play classic --config ./my-threes.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom variant config YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Gameplay preset: chill, standard, brutal")
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size override")
	playCmd.Flags().StringVar(&flagStrategy, "strategy", "", "Dealing strategy override: fixed, bag, random, progressive")
	playCmd.Flags().StringVar(&flagFixture, "fixture", "", "Named starting layout instead of a random board")
}

func runPlay(cmd *cobra.Command, args []string) {
	variantID := threes.VariantClassic
	if len(args) > 0 {
		variantID = args[0]
	}

	if !variant.Exists(variantID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantID)
		fmt.Fprintln(os.Stderr, "Run 'threes list' to see available variants.")
		os.Exit(1)
	}

	vcfg, err := config.Load(variantID, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagPreset != "" {
		config.ApplyPreset(&vcfg, config.Preset(flagPreset))
	}

	gameCfg := vcfg.ToGame(flagSeed)
	if flagSize > 0 {
		gameCfg.Size = flagSize
	}
	if flagStrategy != "" {
		gameCfg.Strategy = flagStrategy
	}
	if flagFixture != "" {
		gameCfg.Fixture = flagFixture
	}

	game, err := threes.New(gameCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// The board needs roughly 8 columns per tile plus chrome.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		needW := gameCfg.Size*8 + 4
		needH := gameCfg.Size*3 + 10
		if w < needW || h < needH {
			fmt.Fprintf(os.Stderr, "Warning: terminal %dx%d is small for a %dx%d board (want %dx%d)\n",
				w, h, gameCfg.Size, gameCfg.Size, needW, needH)
		}
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, variantID)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
