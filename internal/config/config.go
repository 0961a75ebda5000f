// Package config provides YAML-based variant configuration loading and
// preset management for the threes platform.
package config

import (
	"github.com/vovakirdan/tui-threes/internal/threes"
)

// VariantConfig contains all tunable parameters for one rule variant.
type VariantConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Rules   RulesConfig   `yaml:"rules"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines the starting board.
type BoardConfig struct {
	Size       int    `yaml:"size"`
	StartTiles int    `yaml:"start_tiles"` // 0 = randomized 3..5
	Fixture    string `yaml:"fixture"`     // named layout, empty for random
}

// SpawnConfig defines how new tiles are dealt after each swipe.
type SpawnConfig struct {
	Strategy    string `yaml:"strategy"` // fixed, bag, random, progressive
	ChangedLine bool   `yaml:"changed_line"`
	EdgeBias    bool   `yaml:"edge_bias"`
	Queue       int    `yaml:"queue"`
	FixedValue  int    `yaml:"fixed_value"` // tile code for the fixed strategy
}

// RulesConfig selects the merge rule set and its optional behaviors.
type RulesConfig struct {
	Variant     string `yaml:"variant"` // classic, mix, split
	PopOnTierUp bool   `yaml:"pop_on_tier_up"`
	Catalyst    bool   `yaml:"catalyst"`
}

// ScoringConfig defines score tracking.
type ScoringConfig struct {
	Enabled    bool `yaml:"enabled"`
	Multiplier bool `yaml:"multiplier"`
}

// ToGame converts a loaded variant config into an engine config.
// The seed is per-session, never part of the YAML.
func (c VariantConfig) ToGame(seed int64) threes.Config {
	return threes.Config{
		Size:             c.Board.Size,
		StartTiles:       c.Board.StartTiles,
		Fixture:          c.Board.Fixture,
		Strategy:         c.Spawn.Strategy,
		SpawnChangedLine: c.Spawn.ChangedLine,
		EdgeBias:         c.Spawn.EdgeBias,
		QueueSpawn:       c.Spawn.Queue,
		FixedValue:       threes.Tile(c.Spawn.FixedValue),
		Variant:          c.Rules.Variant,
		PopOnTierUp:      c.Rules.PopOnTierUp,
		Catalyst:         c.Rules.Catalyst,
		Scoring:          c.Scoring.Enabled,
		Multiplier:       c.Scoring.Multiplier,
		Seed:             seed,
	}
}

// Preset represents a named gameplay preset.
type Preset string

const (
	PresetChill    Preset = "chill"
	PresetStandard Preset = "standard"
	PresetBrutal   Preset = "brutal"
)

// ApplyPreset modifies the config based on a gameplay preset.
// Standard leaves the loaded config untouched.
func ApplyPreset(cfg *VariantConfig, preset Preset) {
	switch preset {
	case PresetChill:
		cfg.Board.StartTiles = 3
		cfg.Spawn.Queue = 1
		cfg.Spawn.EdgeBias = false
	case PresetBrutal:
		cfg.Board.StartTiles = 5
		cfg.Spawn.Queue = 2
		cfg.Spawn.EdgeBias = true
		if cfg.Spawn.Strategy == threes.StrategyBag {
			cfg.Spawn.Strategy = threes.StrategyProgressive
		}
	}
}
