// Package threes implements the deterministic rules engine for a
// sliding-tile merge puzzle: tile encoding, merge rules, one-step move
// physics, spawn placement, next-tile generation and scoring, composed
// into a replayable game state machine.
package threes

// Tile is a single cell value. Zero means empty; positive values pack a
// color family and a level via Encode.
type Tile int

// Empty is the reserved value for a vacant cell.
const Empty Tile = 0

// NumFamilies is the number of color families a tile can belong to.
const NumFamilies = 3

// tierSpan is the number of levels per tier. Crossing a tier boundary is
// what the move engine treats as a "milestone" merge.
const tierSpan = 3

// Encode packs a (family, level) pair into a tile value.
// Family must be in [0, NumFamilies); level must be >= 0.
// Encode never produces Empty.
func Encode(family, level int) Tile {
	return Tile(family + level*NumFamilies + 1)
}

// Family returns the color family of a tile, or -1 for Empty and
// negative values.
func (t Tile) Family() int {
	if t <= 0 {
		return -1
	}
	return (int(t) - 1) % NumFamilies
}

// Level returns the progression level of a tile, or -1 for Empty and
// negative values.
func (t Tile) Level() int {
	if t <= 0 {
		return -1
	}
	return (int(t) - 1) / NumFamilies
}

// Tier returns the tier bucket of a tile (level / 3), or -1 for Empty.
func (t Tile) Tier() int {
	if t <= 0 {
		return -1
	}
	return t.Level() / tierSpan
}

// IsBase reports whether the tile is a level-0 member of its family.
func (t Tile) IsBase() bool {
	return t > 0 && t.Level() == 0
}

// BaseTile returns the level-0 tile of the given family.
// Returns Empty for out-of-range families.
func BaseTile(family int) Tile {
	if family < 0 || family >= NumFamilies {
		return Empty
	}
	return Encode(family, 0)
}

// familyPalettes holds display colors per family, darkest to brightest.
// Levels beyond the palette clamp to the last shade.
var familyPalettes = [NumFamilies][]string{
	{"#1B6CA8", "#2196D4", "#45B8F0", "#7ED3FA", "#B8E8FD", "#E3F6FF"}, // azure
	{"#A8286B", "#D43B8E", "#F063B0", "#FA94CC", "#FDC2E2", "#FFE8F4"}, // rose
	{"#A87B1B", "#D4A221", "#F0C445", "#FADD7E", "#FDEDB8", "#FFF8E3"}, // amber
}

// familyLetters are the short labels per family.
var familyLetters = [NumFamilies]byte{'A', 'R', 'M'}

// Hex returns the display color for a tile as a "#RRGGBB" string.
// Total: Empty and invalid values map to "#000000".
func (t Tile) Hex() string {
	f, lvl := t.Family(), t.Level()
	if f < 0 {
		return "#000000"
	}
	palette := familyPalettes[f]
	if lvl >= len(palette) {
		lvl = len(palette) - 1
	}
	return palette[lvl]
}

// Label returns a short display label like "A3" (family letter plus
// level). Total: Empty and invalid values map to "".
func (t Tile) Label() string {
	f, lvl := t.Family(), t.Level()
	if f < 0 {
		return ""
	}
	// Levels are small in practice; two digits cover any reachable game.
	if lvl < 10 {
		return string([]byte{familyLetters[f], byte('0' + lvl)})
	}
	return string([]byte{familyLetters[f], byte('0' + lvl/10), byte('0' + lvl%10)})
}

// Dots returns the dot count shown on a tile: its position within the
// current tier (1..3). Total: Empty and invalid values map to 0.
func (t Tile) Dots() int {
	if t <= 0 {
		return 0
	}
	return t.Level()%tierSpan + 1
}
