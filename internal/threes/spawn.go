package threes

// oppositeEdge returns the fixed coordinate of the edge a new tile
// spawns on: the edge the swipe moved away from.
func oppositeEdge(b *Board, dir Direction) int {
	switch dir {
	case DirLeft, DirUp:
		return b.Size() - 1 // rightmost column / bottom row
	default:
		return 0 // leftmost column / top row
	}
}

// edgeCell builds the position on the opposite edge for a given line.
func edgeCell(dir Direction, edge, line int) Pos {
	if dir.horizontal() {
		return Pos{Row: line, Col: edge}
	}
	return Pos{Row: edge, Col: line}
}

// SelectSpawn chooses the cell for a new tile after a move, via a
// cascading fallback: empty opposite-edge cells on changed lines, then
// any empty opposite-edge cell, then any empty cell at all. Each tier
// is consulted only if the previous one yields no candidates. Ties are
// broken uniformly with exactly one RNG draw per placed tile.
//
// When changedLineOnly is false the first tier is skipped, giving the
// simpler edge-then-anywhere policy.
//
// Returns ok=false, consuming no RNG, when the board has no empty cell.
func SelectSpawn(b *Board, dir Direction, changedLines []int, rng *RNG, changedLineOnly bool) (Pos, bool) {
	edge := oppositeEdge(b, dir)

	var candidates []Pos
	if changedLineOnly {
		for _, line := range changedLines {
			p := edgeCell(dir, edge, line)
			if b.At(p) == Empty {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) == 0 {
		for line := 0; line < b.Size(); line++ {
			p := edgeCell(dir, edge, line)
			if b.At(p) == Empty {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) == 0 {
		candidates = b.EmptyCells()
	}
	if len(candidates) == 0 {
		return Pos{}, false
	}
	return candidates[rng.Intn(len(candidates))], true
}
