package threes

// Snapshot is a plain serializable record of the game state, safe to
// JSON-round-trip for tests and persistence. Every field is a copy;
// mutating a snapshot never touches the live game.
type Snapshot struct {
	Variant     string  `json:"variant"`
	Seed        int64   `json:"seed"`
	Grid        [][]int `json:"grid"`
	Multipliers [][]int `json:"multipliers,omitempty"`
	Queue       []int   `json:"queue"`
	Status      Status  `json:"status"`
	Score       int     `json:"score"`
	MoveCount   int     `json:"moveCount"`
	LastEvents  []Event `json:"lastEvents,omitempty"`
}

// State captures the current game snapshot.
func (g *Game) State() Snapshot {
	queue := make([]int, len(g.queue))
	for i, t := range g.queue {
		queue[i] = int(t)
	}
	snap := Snapshot{
		Variant:    g.cfg.Variant,
		Seed:       g.seed,
		Grid:       g.board.Rows(),
		Queue:      queue,
		Status:     g.status,
		Score:      g.score,
		MoveCount:  g.moveCount,
		LastEvents: g.LastEvents(),
	}
	if g.cfg.Multiplier {
		snap.Multipliers = g.mult.Rows()
	}
	return snap
}

// Replay reconstructs a finished game from its configuration and a
// recorded move sequence. Moves that were invalid when recorded stay
// invalid on replay and are skipped without effect, so the result is
// byte-for-byte the state the original game reached. The configured
// seed must be nonzero.
func Replay(cfg Config, moves []Direction) (*Game, error) {
	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	for _, d := range moves {
		g.Move(d)
	}
	return g, nil
}
