package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-threes/internal/threes"
)

func TestEmbeddedDefaultsParse(t *testing.T) {
	for _, id := range []string{threes.VariantClassic, threes.VariantMix, threes.VariantSplit} {
		cfg, err := Load(id, "")
		if err != nil {
			t.Fatalf("Load(%q): %v", id, err)
		}
		if cfg.Rules.Variant != id {
			t.Errorf("%s: loaded variant = %q", id, cfg.Rules.Variant)
		}
		if cfg.Board.Size != 4 {
			t.Errorf("%s: board size = %d, want 4", id, cfg.Board.Size)
		}
		if !cfg.Scoring.Enabled {
			t.Errorf("%s: scoring disabled by default", id)
		}
	}
}

func TestEmbeddedDefaultsProducePlayableGames(t *testing.T) {
	for _, id := range []string{threes.VariantClassic, threes.VariantMix, threes.VariantSplit} {
		cfg, err := Load(id, "")
		if err != nil {
			t.Fatalf("Load(%q): %v", id, err)
		}
		if _, err := threes.New(cfg.ToGame(42)); err != nil {
			t.Errorf("%s: embedded default does not construct: %v", id, err)
		}
	}
}

func TestLoadUnknownVariant(t *testing.T) {
	if _, err := Load("quantum", ""); err == nil {
		t.Error("Load of an unknown variant should fail")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte(`
board:
  size: 5
  start_tiles: 4
spawn:
  strategy: random
  changed_line: false
  queue: 2
rules:
  variant: split
  pop_on_tier_up: true
scoring:
  enabled: true
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(threes.VariantClassic, path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Board.Size != 5 || cfg.Spawn.Queue != 2 || cfg.Rules.Variant != threes.VariantSplit {
		t.Errorf("custom path not honored: %+v", cfg)
	}
	if cfg.Spawn.ChangedLine {
		t.Error("changed_line: false not honored")
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(threes.VariantClassic, "/nonexistent/threes.yaml"); err == nil {
		t.Error("missing custom path should fail loudly")
	}
}

func TestToGameMapsAllFields(t *testing.T) {
	cfg := VariantConfig{
		Board: BoardConfig{Size: 4, StartTiles: 3, Fixture: "open"},
		Spawn: SpawnConfig{
			Strategy:    threes.StrategyProgressive,
			ChangedLine: true,
			EdgeBias:    true,
			Queue:       2,
			FixedValue:  1,
		},
		Rules:   RulesConfig{Variant: threes.VariantMix, PopOnTierUp: true, Catalyst: true},
		Scoring: ScoringConfig{Enabled: true, Multiplier: true},
	}
	g := cfg.ToGame(99)

	if g.Size != 4 || g.StartTiles != 3 || g.Fixture != "open" {
		t.Errorf("board fields lost: %+v", g)
	}
	if g.Strategy != threes.StrategyProgressive || !g.SpawnChangedLine || !g.EdgeBias || g.QueueSpawn != 2 {
		t.Errorf("spawn fields lost: %+v", g)
	}
	if g.Variant != threes.VariantMix || !g.PopOnTierUp || !g.Catalyst {
		t.Errorf("rule fields lost: %+v", g)
	}
	if !g.Scoring || !g.Multiplier || g.Seed != 99 {
		t.Errorf("scoring/seed fields lost: %+v", g)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default(threes.VariantClassic)
	ApplyPreset(&cfg, PresetBrutal)
	if cfg.Board.StartTiles != 5 || cfg.Spawn.Queue != 2 || !cfg.Spawn.EdgeBias {
		t.Errorf("brutal preset not applied: %+v", cfg)
	}
	if cfg.Spawn.Strategy != threes.StrategyProgressive {
		t.Errorf("brutal preset kept strategy %q", cfg.Spawn.Strategy)
	}

	cfg = Default(threes.VariantSplit)
	ApplyPreset(&cfg, PresetChill)
	if cfg.Board.StartTiles != 3 || cfg.Spawn.Queue != 1 {
		t.Errorf("chill preset not applied: %+v", cfg)
	}

	cfg = Default(threes.VariantMix)
	before := cfg
	ApplyPreset(&cfg, PresetStandard)
	if cfg != before {
		t.Error("standard preset should not modify the config")
	}
}
