package threes

// ScoreTile returns the base score of a single tile: 3^(level+1).
// Strictly increasing in level (and therefore in tier); 0 for Empty.
func ScoreTile(t Tile) int {
	lvl := t.Level()
	if lvl < 0 {
		return 0
	}
	score := 1
	for i := 0; i <= lvl; i++ {
		score *= 3
	}
	return score
}

// ScoreBoard sums the base scores of every tile on the board.
func ScoreBoard(b *Board) int {
	total := 0
	for r := 0; r < b.Size(); r++ {
		for c := 0; c < b.Size(); c++ {
			total += ScoreTile(b.At(Pos{r, c}))
		}
	}
	return total
}

// ScoreBoardMult sums per-cell scores scaled by a parallel multiplier
// grid: base << multiplier. With an all-zero multiplier grid it equals
// ScoreBoard exactly.
func ScoreBoardMult(b, mult *Board) int {
	total := 0
	for r := 0; r < b.Size(); r++ {
		for c := 0; c < b.Size(); c++ {
			p := Pos{r, c}
			base := ScoreTile(b.At(p))
			if base == 0 {
				continue
			}
			m := int(mult.At(p))
			if m < 0 {
				m = 0
			}
			total += base << uint(m)
		}
	}
	return total
}

// applyEventsToMult replays a move's event log onto the multiplier
// grid so it tracks tile movement 1:1 with the main board: slides
// carry the multiplier along, merges combine the two sources' maximum
// plus one, spawns start at zero.
func applyEventsToMult(mult *Board, events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case EventMove:
			mult.Set(ev.To, mult.At(ev.From))
			mult.Set(ev.From, 0)
		case EventMerge:
			from, to := mult.At(ev.From), mult.At(ev.To)
			if from > to {
				to = from
			}
			mult.Set(ev.To, to+1)
			mult.Set(ev.From, 0)
		case EventSpawn:
			mult.Set(ev.To, 0)
		}
	}
}
