package threes

import (
	"fmt"
	"sort"
)

// Direction is a swipe axis and sign.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Rune returns the single-letter encoding used in stored replays.
func (d Direction) Rune() rune {
	switch d {
	case DirUp:
		return 'U'
	case DirDown:
		return 'D'
	case DirLeft:
		return 'L'
	case DirRight:
		return 'R'
	default:
		return '?'
	}
}

// Delta returns the (row, col) step toward the swipe direction.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	default:
		return 0, 1
	}
}

// horizontal reports whether the swipe moves tiles along rows.
func (d Direction) horizontal() bool {
	return d == DirLeft || d == DirRight
}

// EventKind distinguishes the entries of a move's event log.
type EventKind string

const (
	EventMove  EventKind = "move"
	EventMerge EventKind = "merge"
	EventSpawn EventKind = "spawn"
)

// Event is one entry of the per-move event log. The log is produced
// fresh on every move and consumed by renderers; it is never persisted.
type Event struct {
	Kind       EventKind `json:"kind"`
	From       Pos       `json:"from"`
	To         Pos       `json:"to"`
	Value      Tile      `json:"value"`
	MergedFrom []Tile    `json:"mergedFrom,omitempty"`
}

// MoveResult is the outcome of applying a single swipe.
type MoveResult struct {
	// Board is the post-move board. The input board is never mutated.
	Board *Board
	// Events lists every slide and merge in processing order.
	Events []Event
	// ChangedLines holds the row indices (horizontal swipe) or column
	// indices (vertical swipe) that had at least one event, ascending.
	ChangedLines []int
	// Pending holds extra merge outputs (split-rule shrapnel) that the
	// orchestrator queues for spawning.
	Pending []Tile
	// Valid reports whether anything moved or merged.
	Valid bool
}

// cellAt maps a (line, step) pair to a board position for the given
// direction. Step 0 is the leading edge; processing starts at step 1,
// the cell adjacent to it, so a vacated cell is immediately available
// to the next cell behind it.
func cellAt(d Direction, size, line, step int) Pos {
	switch d {
	case DirLeft:
		return Pos{Row: line, Col: step}
	case DirRight:
		return Pos{Row: line, Col: size - 1 - step}
	case DirUp:
		return Pos{Row: step, Col: line}
	default: // DirDown
		return Pos{Row: size - 1 - step, Col: line}
	}
}

// lineIndex returns the changed-line index of a position: its row for
// horizontal swipes, its column for vertical ones.
func lineIndex(d Direction, p Pos) int {
	if d.horizontal() {
		return p.Row
	}
	return p.Col
}

// ApplyMove applies one discrete swipe to a clone of the board. Each
// non-empty cell is visited at most once, nearest the leading edge
// first, and moves or merges at most one step toward the swipe. A cell
// that already received a merge this move cannot absorb another.
//
// When pop is true, a merge whose result crosses a tier boundary pushes
// the merge point's orthogonal neighbors one further cell outward if
// that cell is empty and the neighbor was not itself part of a merge.
// The pop phase repositions tiles only; it never merges.
func ApplyMove(b *Board, dir Direction, rules RuleSet, rng *RNG, pop bool) MoveResult {
	size := b.Size()
	nb := b.Clone()
	dr, dc := dir.Delta()

	mergedAt := make(map[Pos]bool)
	changed := make(map[int]bool)
	var events []Event
	var pending []Tile
	var tierUps []Pos

	for line := 0; line < size; line++ {
		for step := 1; step < size; step++ {
			src := cellAt(dir, size, line, step)
			v := nb.At(src)
			if v == Empty {
				continue
			}
			dst := Pos{Row: src.Row + dr, Col: src.Col + dc}
			dv := nb.At(dst)

			switch {
			case dv == Empty:
				nb.Set(dst, v)
				nb.Set(src, Empty)
				events = append(events, Event{Kind: EventMove, From: src, To: dst, Value: v})
				changed[lineIndex(dir, src)] = true
			case rules.CanMerge(v, dv) && !mergedAt[dst]:
				outs := rules.Merge(v, dv, rng)
				nb.Set(dst, outs[0])
				nb.Set(src, Empty)
				mergedAt[dst] = true
				pending = append(pending, outs[1:]...)
				events = append(events, Event{
					Kind: EventMerge, From: src, To: dst,
					Value: outs[0], MergedFrom: []Tile{v, dv},
				})
				changed[lineIndex(dir, src)] = true
				if outs[0].Tier() > maxTier(v, dv) {
					tierUps = append(tierUps, dst)
				}
			}
			// Otherwise the tile stays in place: no event.
		}
	}

	if pop {
		events = popNeighbors(nb, dir, tierUps, mergedAt, changed, events)
	}

	lines := make([]int, 0, len(changed))
	for l := range changed {
		lines = append(lines, l)
	}
	sort.Ints(lines)

	return MoveResult{
		Board:        nb,
		Events:       events,
		ChangedLines: lines,
		Pending:      pending,
		Valid:        len(events) > 0,
	}
}

// popNeighbors runs the secondary pop phase for tier-crossing merges.
func popNeighbors(nb *Board, dir Direction, tierUps []Pos, mergedAt map[Pos]bool, changed map[int]bool, events []Event) []Event {
	offsets := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for _, center := range tierUps {
		for _, off := range offsets {
			n := Pos{Row: center.Row + off[0], Col: center.Col + off[1]}
			v := nb.At(n)
			if v == Empty || mergedAt[n] {
				continue
			}
			out := Pos{Row: n.Row + off[0], Col: n.Col + off[1]}
			if !nb.InBounds(out) || nb.At(out) != Empty {
				continue
			}
			nb.Set(out, v)
			nb.Set(n, Empty)
			events = append(events, Event{Kind: EventMove, From: n, To: out, Value: v})
			changed[lineIndex(dir, n)] = true
			changed[lineIndex(dir, out)] = true
		}
	}
	return events
}

// maxTier returns the higher tier of two tiles.
func maxTier(a, b Tile) int {
	ta, tb := a.Tier(), b.Tier()
	if ta > tb {
		return ta
	}
	return tb
}

// HasMove reports whether a swipe in the given direction would change
// the board. It mirrors ApplyMove's merge-lock-free first pass but
// consumes no RNG, so game-over probing never disturbs the stream.
func HasMove(b *Board, dir Direction, rules RuleSet) bool {
	size := b.Size()
	dr, dc := dir.Delta()
	for line := 0; line < size; line++ {
		for step := 1; step < size; step++ {
			src := cellAt(dir, size, line, step)
			v := b.At(src)
			if v == Empty {
				continue
			}
			dst := Pos{Row: src.Row + dr, Col: src.Col + dc}
			dv := b.At(dst)
			if dv == Empty || rules.CanMerge(v, dv) {
				return true
			}
		}
	}
	return false
}

// ParseMoves decodes a replay move string ("LRUD...") into directions.
func ParseMoves(s string) ([]Direction, error) {
	moves := make([]Direction, 0, len(s))
	for i, r := range s {
		switch r {
		case 'U', 'u':
			moves = append(moves, DirUp)
		case 'D', 'd':
			moves = append(moves, DirDown)
		case 'L', 'l':
			moves = append(moves, DirLeft)
		case 'R', 'r':
			moves = append(moves, DirRight)
		default:
			return nil, fmt.Errorf("threes: invalid move %q at offset %d", r, i)
		}
	}
	return moves, nil
}

// FormatMoves encodes a direction sequence as a replay move string.
func FormatMoves(moves []Direction) string {
	runes := make([]rune, len(moves))
	for i, d := range moves {
		runes[i] = d.Rune()
	}
	return string(runes)
}
