package threes

// RuleSet decides whether two tiles may combine and what they produce.
// Implementations must be pure with respect to their inputs: the same
// (a, b) pair always yields the same decision, and any randomness in
// result selection must come from the RNG passed to Merge, drawing a
// fixed number of values per call so replays stay deterministic.
//
// Merge returns one or more output tiles. The move engine places the
// first output at the merge point and queues the rest for spawning.
type RuleSet interface {
	// CanMerge reports whether a moving tile a may combine into b.
	// Always false when either side is Empty.
	CanMerge(a, b Tile) bool

	// Merge produces the output tiles for a legal (a, b) combination.
	// Callers must check CanMerge first.
	Merge(a, b Tile, rng *RNG) []Tile
}

// ClassicRules merges two tiles with identical encoding into the next
// level of the same family. Fully deterministic; consumes no RNG.
type ClassicRules struct{}

func (ClassicRules) CanMerge(a, b Tile) bool {
	return a != Empty && a == b
}

func (ClassicRules) Merge(a, b Tile, rng *RNG) []Tile {
	return []Tile{Encode(a.Family(), a.Level() + 1)}
}

// MixRules combines two base tiles of different families into the
// level-1 tile of the third family, via a symmetric pairing table.
// Above base level it falls back to same-signature merging so boards
// stay playable. Consumes no RNG.
type MixRules struct{}

// mixPairs maps an unordered pair of base families to the result family.
// With three families the result is always the one not involved.
var mixPairs = [NumFamilies][NumFamilies]int{
	{-1, 2, 1},
	{2, -1, 0},
	{1, 0, -1},
}

func (MixRules) CanMerge(a, b Tile) bool {
	if a == Empty || b == Empty {
		return false
	}
	if a.IsBase() && b.IsBase() {
		return a.Family() != b.Family()
	}
	return a == b
}

func (MixRules) Merge(a, b Tile, rng *RNG) []Tile {
	if a.IsBase() && b.IsBase() {
		return []Tile{Encode(mixPairs[a.Family()][b.Family()], 1)}
	}
	return []Tile{Encode(a.Family(), a.Level() + 1)}
}

// SplitRules merges same-signature tiles like ClassicRules but breaks
// off base-tile shrapnel: an ordinary merge yields two outputs, and a
// milestone merge (result level entering a new tier) yields three. The
// shrapnel family comes from exactly one RNG draw per merge, taken on
// both branches so the stream advances identically regardless of
// milestone status.
type SplitRules struct{}

func (SplitRules) CanMerge(a, b Tile) bool {
	return a != Empty && a == b
}

func (SplitRules) Merge(a, b Tile, rng *RNG) []Tile {
	level := a.Level() + 1
	head := Encode(a.Family(), level)
	fam := rng.Intn(NumFamilies)
	if level%tierSpan == 0 && level > 0 {
		// Milestone split: two shrapnel tiles from adjacent families.
		return []Tile{head, BaseTile(fam), BaseTile((fam + 1) % NumFamilies)}
	}
	return []Tile{head, BaseTile(fam)}
}
