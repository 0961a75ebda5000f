package threes

import "testing"

func TestCodecRoundTrip(t *testing.T) {
	for family := 0; family < NumFamilies; family++ {
		for level := 0; level <= 12; level++ {
			v := Encode(family, level)
			if v == Empty {
				t.Fatalf("Encode(%d, %d) produced the reserved Empty value", family, level)
			}
			if got := v.Family(); got != family {
				t.Errorf("Encode(%d, %d).Family() = %d, want %d", family, level, got, family)
			}
			if got := v.Level(); got != level {
				t.Errorf("Encode(%d, %d).Level() = %d, want %d", family, level, got, level)
			}
		}
	}
}

func TestEmptyNeverDecodes(t *testing.T) {
	if got := Empty.Family(); got != -1 {
		t.Errorf("Empty.Family() = %d, want -1", got)
	}
	if got := Empty.Level(); got != -1 {
		t.Errorf("Empty.Level() = %d, want -1", got)
	}
	if got := Empty.Tier(); got != -1 {
		t.Errorf("Empty.Tier() = %d, want -1", got)
	}
}

func TestTier(t *testing.T) {
	tests := []struct {
		level int
		tier  int
	}{
		{0, 0}, {1, 0}, {2, 0},
		{3, 1}, {4, 1}, {5, 1},
		{6, 2}, {9, 3},
	}
	for _, tt := range tests {
		v := Encode(1, tt.level)
		if got := v.Tier(); got != tt.tier {
			t.Errorf("level %d: Tier() = %d, want %d", tt.level, got, tt.tier)
		}
	}
}

func TestDisplayDerivationsAreTotal(t *testing.T) {
	// Out-of-range input must produce deterministic fallbacks, never panic.
	invalid := []Tile{Empty, -1, -99}
	for _, v := range invalid {
		if got := v.Hex(); got != "#000000" {
			t.Errorf("Tile(%d).Hex() = %q, want #000000", v, got)
		}
		if got := v.Label(); got != "" {
			t.Errorf("Tile(%d).Label() = %q, want empty", v, got)
		}
		if got := v.Dots(); got != 0 {
			t.Errorf("Tile(%d).Dots() = %d, want 0", v, got)
		}
	}

	// Levels beyond the palette clamp instead of failing.
	deep := Encode(0, 50)
	if got := deep.Hex(); got == "" || got == "#000000" {
		t.Errorf("deep tile Hex() = %q, want a clamped palette color", got)
	}
	if got := deep.Label(); got != "A50" {
		t.Errorf("deep tile Label() = %q, want A50", got)
	}
}

func TestLabelAndDots(t *testing.T) {
	tests := []struct {
		family, level int
		label         string
		dots          int
	}{
		{0, 0, "A0", 1},
		{1, 2, "R2", 3},
		{2, 3, "M3", 1},
		{0, 5, "A5", 3},
	}
	for _, tt := range tests {
		v := Encode(tt.family, tt.level)
		if got := v.Label(); got != tt.label {
			t.Errorf("Encode(%d, %d).Label() = %q, want %q", tt.family, tt.level, got, tt.label)
		}
		if got := v.Dots(); got != tt.dots {
			t.Errorf("Encode(%d, %d).Dots() = %d, want %d", tt.family, tt.level, got, tt.dots)
		}
	}
}

func TestBaseTile(t *testing.T) {
	for f := 0; f < NumFamilies; f++ {
		v := BaseTile(f)
		if !v.IsBase() {
			t.Errorf("BaseTile(%d) = %d, not a base tile", f, v)
		}
		if v.Family() != f {
			t.Errorf("BaseTile(%d).Family() = %d", f, v.Family())
		}
	}
	if BaseTile(-1) != Empty || BaseTile(NumFamilies) != Empty {
		t.Error("BaseTile out of range should return Empty")
	}
}
