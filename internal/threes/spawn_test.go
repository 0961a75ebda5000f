package threes

import "testing"

func TestSpawnPrefersChangedLinesOnOppositeEdge(t *testing.T) {
	// Swipe left: spawn edge is the rightmost column. Only row 2 changed.
	b := mustBoard(t, [][]int{
		{1, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 0, 0},
	})

	for seed := int64(1); seed <= 20; seed++ {
		p, ok := SelectSpawn(b, DirLeft, []int{2}, NewRNG(seed), true)
		if !ok {
			t.Fatal("spawn position should exist")
		}
		if p != (Pos{Row: 2, Col: 3}) {
			t.Fatalf("seed %d: spawn at %v, want {2 3}", seed, p)
		}
	}
}

func TestSpawnFallsBackToAnyEdgeCell(t *testing.T) {
	// The changed line's edge cell is occupied: tier 2 takes over and
	// any empty cell on the opposite edge qualifies.
	b := mustBoard(t, [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	for seed := int64(1); seed <= 20; seed++ {
		p, ok := SelectSpawn(b, DirLeft, []int{1}, NewRNG(seed), true)
		if !ok {
			t.Fatal("spawn position should exist")
		}
		if p.Col != 3 || p.Row == 1 {
			t.Fatalf("seed %d: spawn at %v, want an empty rightmost-column cell", seed, p)
		}
	}
}

func TestSpawnFallsBackToInterior(t *testing.T) {
	// Opposite edge fully occupied, interior empty: cascade tier 3.
	b, err := Fixture("ring")
	if err != nil {
		t.Fatalf("Fixture: %v", err)
	}

	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		p, ok := SelectSpawn(b, dir, []int{0, 1, 2, 3}, NewRNG(7), true)
		if !ok {
			t.Fatalf("dir %v: spawn should fall back to the interior", dir)
		}
		if b.At(p) != Empty {
			t.Fatalf("dir %v: spawn on occupied cell %v", dir, p)
		}
		if p.Row == 0 || p.Row == 3 || p.Col == 0 || p.Col == 3 {
			t.Fatalf("dir %v: spawn at %v, want an interior cell", dir, p)
		}
	}
}

func TestSpawnNoneOnFullBoard(t *testing.T) {
	b, err := Fixture("gridlock")
	if err != nil {
		t.Fatalf("Fixture: %v", err)
	}
	if _, ok := SelectSpawn(b, DirLeft, []int{0}, NewRNG(1), true); ok {
		t.Error("full board should yield no spawn position")
	}
}

func TestSpawnOppositeEdges(t *testing.T) {
	b := NewBoard(4)
	tests := []struct {
		dir  Direction
		want func(Pos) bool
	}{
		{DirLeft, func(p Pos) bool { return p.Col == 3 }},
		{DirRight, func(p Pos) bool { return p.Col == 0 }},
		{DirUp, func(p Pos) bool { return p.Row == 3 }},
		{DirDown, func(p Pos) bool { return p.Row == 0 }},
	}
	for _, tt := range tests {
		p, ok := SelectSpawn(b, tt.dir, nil, NewRNG(3), true)
		if !ok {
			t.Fatalf("dir %v: no spawn", tt.dir)
		}
		if !tt.want(p) {
			t.Errorf("dir %v: spawn at %v, not on the opposite edge", tt.dir, p)
		}
	}
}

func TestSpawnConsumesOneDraw(t *testing.T) {
	b := NewBoard(4)
	rng := NewRNG(11)
	ref := NewRNG(11)
	SelectSpawn(b, DirLeft, nil, rng, true)
	ref.Intn(4) // the single tie-break draw
	if rng.Intn(1000) != ref.Intn(1000) {
		t.Error("SelectSpawn consumed more than one draw")
	}
}

func TestSpawnSkipsChangedLineTierWhenDisabled(t *testing.T) {
	// With the changed-line policy off, tier 1 is skipped and all empty
	// opposite-edge cells compete.
	b := NewBoard(4)
	seen := make(map[int]bool)
	for seed := int64(1); seed <= 64; seed++ {
		p, ok := SelectSpawn(b, DirLeft, []int{2}, NewRNG(seed), false)
		if !ok {
			t.Fatal("spawn position should exist")
		}
		if p.Col != 3 {
			t.Fatalf("seed %d: spawn at %v, want rightmost column", seed, p)
		}
		seen[p.Row] = true
	}
	if len(seen) < 2 {
		t.Error("disabled changed-line policy should not pin the spawn row")
	}
}
