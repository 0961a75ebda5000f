package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-threes/internal/threes"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/mix.yaml
var defaultMixYAML []byte

//go:embed defaults/split.yaml
var defaultSplitYAML []byte

// Default returns the hardcoded configuration for a variant.
// Used as the last-resort fallback when the embedded YAML is unreadable;
// unknown variants fall back to the classic defaults.
func Default(variantID string) VariantConfig {
	cfg := VariantConfig{
		Board: BoardConfig{
			Size: 4,
		},
		Spawn: SpawnConfig{
			Strategy:    threes.StrategyBag,
			ChangedLine: true,
			Queue:       1,
		},
		Rules: RulesConfig{
			Variant: threes.VariantClassic,
		},
		Scoring: ScoringConfig{
			Enabled: true,
		},
	}

	switch variantID {
	case threes.VariantMix:
		cfg.Rules.Variant = threes.VariantMix
		cfg.Rules.Catalyst = true
		cfg.Spawn.Strategy = threes.StrategyProgressive
		cfg.Spawn.EdgeBias = true
		cfg.Scoring.Multiplier = true
	case threes.VariantSplit:
		cfg.Rules.Variant = threes.VariantSplit
		cfg.Rules.PopOnTierUp = true
		cfg.Spawn.Strategy = threes.StrategyProgressive
		cfg.Spawn.Queue = 2
	}

	return cfg
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variantID string) []byte {
	switch variantID {
	case threes.VariantClassic:
		return defaultClassicYAML
	case threes.VariantMix:
		return defaultMixYAML
	case threes.VariantSplit:
		return defaultSplitYAML
	default:
		return nil
	}
}
