package variant

import "github.com/vovakirdan/tui-threes/internal/threes"

func init() {
	Register(Definition{
		Info: Info{
			ID:          threes.VariantClassic,
			Title:       "Classic",
			Description: "Same-color merges, bag dealing, plain scoring",
		},
		Defaults: func() threes.Config {
			cfg := threes.DefaultConfig()
			cfg.Variant = threes.VariantClassic
			cfg.Strategy = threes.StrategyBag
			return cfg
		},
	})

	Register(Definition{
		Info: Info{
			ID:          threes.VariantMix,
			Title:       "Mix",
			Description: "Cross-color base merges, catalyst swaps, multiplier scoring",
		},
		Defaults: func() threes.Config {
			cfg := threes.DefaultConfig()
			cfg.Variant = threes.VariantMix
			cfg.Strategy = threes.StrategyProgressive
			cfg.EdgeBias = true
			cfg.Multiplier = true
			cfg.Catalyst = true
			return cfg
		},
	})

	Register(Definition{
		Info: Info{
			ID:          threes.VariantSplit,
			Title:       "Split",
			Description: "Merges shed shrapnel, pop waves on tier-ups, double spawn queue",
		},
		Defaults: func() threes.Config {
			cfg := threes.DefaultConfig()
			cfg.Variant = threes.VariantSplit
			cfg.Strategy = threes.StrategyProgressive
			cfg.PopOnTierUp = true
			cfg.QueueSpawn = 2
			return cfg
		},
	})
}
