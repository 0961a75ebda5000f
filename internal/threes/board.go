package threes

import (
	"fmt"
	"sort"
)

// Pos is a cell position on the board.
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is a square grid of tile values stored row-major.
// The size is fixed at creation; Clone produces a fully independent copy.
type Board struct {
	size  int
	cells []Tile
}

// NewBoard creates an empty square board of the given size.
func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]Tile, size*size),
	}
}

// FromRows builds a board from a row-major matrix of raw values.
// Returns an error if the matrix is not square or empty.
func FromRows(rows [][]int) (*Board, error) {
	size := len(rows)
	if size == 0 {
		return nil, fmt.Errorf("threes: empty board matrix")
	}
	b := NewBoard(size)
	for r, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("threes: board matrix is not square: row %d has %d cells, want %d", r, len(row), size)
		}
		for c, v := range row {
			b.cells[r*size+c] = Tile(v)
		}
	}
	return b, nil
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether the position refers to a live cell.
func (b *Board) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// At returns the tile at the given position, or Empty if out of bounds.
func (b *Board) At(p Pos) Tile {
	if !b.InBounds(p) {
		return Empty
	}
	return b.cells[p.Row*b.size+p.Col]
}

// Set places a tile at the given position. Out-of-bounds sets are ignored.
func (b *Board) Set(p Pos, t Tile) {
	if b.InBounds(p) {
		b.cells[p.Row*b.size+p.Col] = t
	}
}

// Clone returns a deep copy sharing no storage with the original.
func (b *Board) Clone() *Board {
	cells := make([]Tile, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

// Equal reports whether two boards have identical size and contents.
func (b *Board) Equal(other *Board) bool {
	if b.size != other.size {
		return false
	}
	for i, v := range b.cells {
		if v != other.cells[i] {
			return false
		}
	}
	return true
}

// EmptyCells returns the positions of all empty cells, row-major.
func (b *Board) EmptyCells() []Pos {
	var cells []Pos
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if b.cells[r*b.size+c] == Empty {
				cells = append(cells, Pos{r, c})
			}
		}
	}
	return cells
}

// Rows returns the board contents as a freshly allocated row-major
// matrix of raw values. Mutating the result does not affect the board.
func (b *Board) Rows() [][]int {
	rows := make([][]int, b.size)
	for r := 0; r < b.size; r++ {
		row := make([]int, b.size)
		for c := 0; c < b.size; c++ {
			row[c] = int(b.cells[r*b.size+c])
		}
		rows[r] = row
	}
	return rows
}

// MaxTile returns the highest tile value on the board, or Empty.
func (b *Board) MaxTile() Tile {
	maxVal := Empty
	for _, v := range b.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// fixtures are named reference boards used by tests and fixture mode.
// Raw values follow the codec packing: 1..3 are the base tiles of the
// three families, 4..6 are their level-1 tiles, and so on.
var fixtures = map[string][][]int{
	// A sparse opening position.
	"open": {
		{0, 0, 1, 0},
		{0, 2, 0, 0},
		{0, 0, 0, 3},
		{1, 0, 0, 0},
	},
	// Full board with no two adjacent mergeable tiles under any of the
	// shipped rule sets: every neighbor pair differs in both family and
	// level, and no two base tiles touch.
	"gridlock": {
		{1, 5, 9, 13},
		{6, 10, 14, 3},
		{11, 15, 4, 8},
		{16, 2, 7, 12},
	},
	// Interior cells empty, all edges occupied. Exercises the spawn
	// cascade falling through to interior placement.
	"ring": {
		{1, 5, 9, 2},
		{6, 0, 0, 13},
		{11, 0, 0, 4},
		{3, 15, 8, 12},
	},
}

// Fixture returns a copy of a named fixture board.
func Fixture(name string) (*Board, error) {
	rows, ok := fixtures[name]
	if !ok {
		return nil, fmt.Errorf("threes: unknown fixture %q", name)
	}
	return FromRows(rows)
}

// FixtureNames returns the names of all built-in fixture boards.
func FixtureNames() []string {
	names := make([]string, 0, len(fixtures))
	for name := range fixtures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
