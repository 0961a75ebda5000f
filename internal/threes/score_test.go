package threes

import "testing"

func TestScoreTileMonotonic(t *testing.T) {
	if got := ScoreTile(Empty); got != 0 {
		t.Errorf("ScoreTile(Empty) = %d, want 0", got)
	}
	for f := 0; f < NumFamilies; f++ {
		prev := 0
		for level := 0; level < 10; level++ {
			s := ScoreTile(Encode(f, level))
			if s <= prev {
				t.Fatalf("family %d level %d: score %d not increasing (prev %d)", f, level, s, prev)
			}
			prev = s
		}
	}
}

func TestScoreTileValues(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{0, 3}, {1, 9}, {2, 27}, {3, 81},
	}
	for _, tt := range tests {
		if got := ScoreTile(Encode(0, tt.level)); got != tt.want {
			t.Errorf("level %d: ScoreTile = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestScoreBoard(t *testing.T) {
	b := mustBoard(t, [][]int{
		{1, 0, 0, 0},
		{0, int(Encode(1, 1)), 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	if got := ScoreBoard(b); got != 3+9 {
		t.Errorf("ScoreBoard = %d, want 12", got)
	}
}

func TestScoreBoardMultDegradesToBase(t *testing.T) {
	b := mustBoard(t, [][]int{
		{1, 2, 0, 0},
		{0, int(Encode(0, 2)), 0, 0},
		{0, 0, 0, 0},
		{0, 0, 3, 0},
	})
	zero := NewBoard(4)
	if base, mult := ScoreBoard(b), ScoreBoardMult(b, zero); base != mult {
		t.Errorf("all-zero multipliers: ScoreBoardMult = %d, ScoreBoard = %d", mult, base)
	}
}

func TestScoreBoardMultScaling(t *testing.T) {
	b := mustBoard(t, [][]int{
		{1, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	mult := NewBoard(4)
	mult.Set(Pos{0, 0}, 2)
	if got := ScoreBoardMult(b, mult); got != 3<<2 {
		t.Errorf("ScoreBoardMult = %d, want %d", got, 3<<2)
	}
}

func TestMultiplierGridFollowsEvents(t *testing.T) {
	mult := NewBoard(4)
	mult.Set(Pos{0, 2}, 1)
	mult.Set(Pos{0, 1}, 3)

	events := []Event{
		// Slide carries the multiplier.
		{Kind: EventMove, From: Pos{0, 2}, To: Pos{0, 3}},
		// Merge takes the larger source plus one.
		{Kind: EventMerge, From: Pos{0, 1}, To: Pos{0, 0}},
		// Spawn resets its cell.
		{Kind: EventSpawn, From: Pos{2, 2}, To: Pos{2, 2}},
	}
	applyEventsToMult(mult, events)

	if got := mult.At(Pos{0, 3}); got != 1 {
		t.Errorf("moved multiplier = %d, want 1", got)
	}
	if got := mult.At(Pos{0, 2}); got != 0 {
		t.Errorf("vacated multiplier = %d, want 0", got)
	}
	if got := mult.At(Pos{0, 0}); got != 4 {
		t.Errorf("merged multiplier = %d, want 4", got)
	}
	if got := mult.At(Pos{0, 1}); got != 0 {
		t.Errorf("merge source multiplier = %d, want 0", got)
	}
	if got := mult.At(Pos{2, 2}); got != 0 {
		t.Errorf("spawned multiplier = %d, want 0", got)
	}
}
