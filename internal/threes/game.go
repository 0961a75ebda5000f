package threes

import (
	"fmt"
	"time"
)

// Status is the orchestrator's lifecycle state.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusEnded   Status = "ended"
)

// Variant identifiers for the shipped rule sets.
const (
	VariantClassic = "classic"
	VariantMix     = "mix"
	VariantSplit   = "split"
)

// Strategy identifiers for the next-tile generators.
const (
	StrategyFixed       = "fixed"
	StrategyBag         = "bag"
	StrategyRandom      = "random"
	StrategyProgressive = "progressive"
)

// Config holds the immutable settings of a game. Zero values resolve to
// the documented defaults; see DefaultConfig.
type Config struct {
	// Size is the board dimension. Default 4.
	Size int `json:"size"`
	// StartTiles is the number of starting tiles. 0 draws a randomized
	// count in [3, 5] from the RNG.
	StartTiles int `json:"startTiles"`
	// SpawnChangedLine restricts the first spawn-cascade tier to lines
	// that changed this move.
	SpawnChangedLine bool `json:"spawnChangedLine"`
	// Strategy selects the next-tile generator.
	Strategy string `json:"strategy"`
	// EdgeBias enables the progressive generator's edge preference.
	EdgeBias bool `json:"edgeBias"`
	// Scoring enables score tracking.
	Scoring bool `json:"scoring"`
	// Multiplier enables the per-cell multiplier grid; score becomes a
	// running maximum.
	Multiplier bool `json:"multiplier"`
	// PopOnTierUp enables the secondary pop phase on tier-crossing merges.
	PopOnTierUp bool `json:"popOnTierUp"`
	// Catalyst enables the out-of-band Catalyst action.
	Catalyst bool `json:"catalyst"`
	// Seed seeds the RNG. 0 picks a time-based seed; a nonzero seed is
	// reused verbatim on Restart for strict replays.
	Seed int64 `json:"seed"`
	// Fixture names a fixed starting board instead of randomized setup.
	Fixture string `json:"fixture,omitempty"`
	// QueueSpawn is how many pending next tiles the game keeps (and
	// spawns per move). Default 1.
	QueueSpawn int `json:"queueSpawn"`
	// Variant selects the merge rule set.
	Variant string `json:"variant"`
	// FixedValue is the tile the fixed strategy returns. Default is the
	// base tile of family 0.
	FixedValue Tile `json:"fixedValue,omitempty"`
}

// DefaultConfig returns the documented default configuration.
// User overrides are merged onto this record.
func DefaultConfig() Config {
	return Config{
		Size:             4,
		StartTiles:       0,
		SpawnChangedLine: true,
		Strategy:         StrategyBag,
		Scoring:          true,
		QueueSpawn:       1,
		Variant:          VariantClassic,
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c Config) withDefaults() Config {
	if c.Size == 0 {
		c.Size = 4
	}
	if c.Strategy == "" {
		c.Strategy = StrategyBag
	}
	if c.Variant == "" {
		c.Variant = VariantClassic
	}
	if c.QueueSpawn == 0 {
		c.QueueSpawn = 1
	}
	if c.FixedValue == Empty {
		c.FixedValue = BaseTile(0)
	}
	return c
}

// Validate rejects malformed configuration. Construction is the only
// fatal path in the engine; everything after it is a return value.
func (c Config) Validate() error {
	if c.Size < 2 {
		return fmt.Errorf("threes: board size must be at least 2, got %d", c.Size)
	}
	if c.StartTiles < 0 || c.StartTiles > c.Size*c.Size {
		return fmt.Errorf("threes: start tiles %d out of range for a %dx%d board", c.StartTiles, c.Size, c.Size)
	}
	if c.QueueSpawn < 1 {
		return fmt.Errorf("threes: queue spawn count must be positive, got %d", c.QueueSpawn)
	}
	switch c.Strategy {
	case StrategyFixed, StrategyBag, StrategyRandom, StrategyProgressive:
	default:
		return fmt.Errorf("threes: unknown strategy %q", c.Strategy)
	}
	switch c.Variant {
	case VariantClassic, VariantMix, VariantSplit:
	default:
		return fmt.Errorf("threes: unknown variant %q", c.Variant)
	}
	if c.Fixture != "" {
		if _, ok := fixtures[c.Fixture]; !ok {
			return fmt.Errorf("threes: unknown fixture %q", c.Fixture)
		}
	}
	return nil
}

// newRules maps a variant ID to its rule set. Variant is validated.
func newRules(variant string) RuleSet {
	switch variant {
	case VariantMix:
		return MixRules{}
	case VariantSplit:
		return SplitRules{}
	default:
		return ClassicRules{}
	}
}

// Game is the orchestrator: it owns the board, the RNG stream, the
// pending tile queue and the score, and sequences
// move -> spawn -> draw-next -> score -> game-over-check per swipe.
// It is not safe for concurrent mutation; embedders serialize access
// per instance.
type Game struct {
	cfg   Config
	seed  int64
	rng   *RNG
	rules RuleSet
	gen   Generator

	board      *Board
	mult       *Board
	queue      []Tile
	status     Status
	score      int
	moveCount  int
	lastEvents []Event
}

// New constructs a game from the given configuration, merging it onto
// the defaults. Fails fast on malformed configuration.
func New(cfg Config) (*Game, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{cfg: cfg}
	g.init()
	return g, nil
}

// init runs the construction sequence: seed the RNG, set up the board
// (fixture or randomized start), fill the next-tile queue, compute the
// initial score and run the first game-over check.
func (g *Game) init() {
	seed := g.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.seed = seed
	g.rng = NewRNG(seed)
	g.rules = newRules(g.cfg.Variant)
	g.gen = g.newGenerator()

	if g.cfg.Fixture != "" {
		b, err := Fixture(g.cfg.Fixture)
		if err != nil {
			// Validate checked the name; reaching here is a programming error.
			panic(err)
		}
		g.board = b
	} else {
		g.board = NewBoard(g.cfg.Size)
		n := g.cfg.StartTiles
		if n == 0 {
			n = 3 + g.rng.Intn(3)
		}
		for i := 0; i < n; i++ {
			empties := g.board.EmptyCells()
			if len(empties) == 0 {
				break
			}
			v := g.gen.Next(g.board)
			g.board.Set(empties[g.rng.Intn(len(empties))], v)
		}
	}

	g.mult = NewBoard(g.board.Size())
	g.queue = g.queue[:0]
	g.refillQueue()

	g.status = StatusPlaying
	g.score = 0
	g.moveCount = 0
	g.lastEvents = nil
	g.updateScore()
	g.checkGameOver()
}

// newGenerator builds the configured next-tile generator.
func (g *Game) newGenerator() Generator {
	switch g.cfg.Strategy {
	case StrategyFixed:
		return FixedGenerator{Value: g.cfg.FixedValue}
	case StrategyRandom:
		return NewUniformGenerator(g.rng)
	case StrategyProgressive:
		return NewProgressiveGenerator(g.rng, newRules(g.cfg.Variant), g.cfg.EdgeBias)
	default:
		return NewBagGenerator(g.rng)
	}
}

// refillQueue tops the pending tile queue up to the configured length.
func (g *Game) refillQueue() {
	for len(g.queue) < g.cfg.QueueSpawn {
		g.queue = append(g.queue, g.gen.Next(g.board))
	}
}

// Move applies one swipe. Returns false, with no observable state
// change, when the swipe would not move or merge anything or when the
// game has ended. Invalid moves are a routine outcome, not an error.
func (g *Game) Move(dir Direction) bool {
	if g.status != StatusPlaying {
		return false
	}

	res := ApplyMove(g.board, dir, g.rules, g.rng, g.cfg.PopOnTierUp)
	if !res.Valid {
		return false
	}

	g.board = res.Board
	g.moveCount++
	events := res.Events

	// Spawn the pending tile(s) on the edge opposite the swipe. A full
	// board skips the spawn silently; the game-over check below decides
	// what that means.
	spawned := 0
	for _, v := range g.queue {
		p, ok := SelectSpawn(g.board, dir, res.ChangedLines, g.rng, g.cfg.SpawnChangedLine)
		if !ok {
			break
		}
		g.board.Set(p, v)
		events = append(events, Event{Kind: EventSpawn, From: p, To: p, Value: v})
		spawned++
	}
	g.queue = g.queue[spawned:]
	g.queue = append(g.queue, res.Pending...)
	g.refillQueue()

	if g.cfg.Multiplier {
		applyEventsToMult(g.mult, events)
	}
	g.lastEvents = events
	g.updateScore()
	g.checkGameOver()
	return true
}

// Catalyst consumes two mergeable tiles anywhere on the board, outside
// the swipe mechanic: the merge result replaces the tile at b, the tile
// at a is removed. It does not increment the move counter or draw a new
// next tile, but it updates the score and may end the game. Returns
// false when disabled, not playing, or the pair cannot merge.
func (g *Game) Catalyst(a, b Pos) bool {
	if !g.cfg.Catalyst || g.status != StatusPlaying {
		return false
	}
	if a == b || !g.board.InBounds(a) || !g.board.InBounds(b) {
		return false
	}
	va, vb := g.board.At(a), g.board.At(b)
	if va == Empty || vb == Empty || !g.rules.CanMerge(va, vb) {
		return false
	}

	outs := g.rules.Merge(va, vb, g.rng)
	g.board.Set(a, Empty)
	g.board.Set(b, outs[0])
	g.queue = append(g.queue, outs[1:]...)
	events := []Event{{Kind: EventMerge, From: a, To: b, Value: outs[0], MergedFrom: []Tile{va, vb}}}

	if g.cfg.Multiplier {
		applyEventsToMult(g.mult, events)
	}
	g.lastEvents = events
	g.updateScore()
	g.checkGameOver()
	return true
}

// Restart discards all state and reruns the construction sequence. A
// nonzero configured seed is reused verbatim (strict replay); a zero
// seed draws a fresh time-based one.
func (g *Game) Restart() {
	g.init()
}

// updateScore recomputes the score. In multiplier mode the score is a
// running maximum and never decreases.
func (g *Game) updateScore() {
	if !g.cfg.Scoring {
		return
	}
	if g.cfg.Multiplier {
		if s := ScoreBoardMult(g.board, g.mult); s > g.score {
			g.score = s
		}
		return
	}
	g.score = ScoreBoard(g.board)
}

// checkGameOver transitions to StatusEnded when no direction yields a
// valid move and, in catalyst games, no catalyst pair remains. The
// probes consume no RNG.
func (g *Game) checkGameOver() {
	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if HasMove(g.board, dir, g.rules) {
			return
		}
	}
	if g.cfg.Catalyst && g.catalystAvailable() {
		return
	}
	g.status = StatusEnded
	g.updateScore()
}

// catalystAvailable reports whether any two tiles on the board could
// merge through the Catalyst action.
func (g *Game) catalystAvailable() bool {
	size := g.board.Size()
	var tiles []Tile
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if t := g.board.At(Pos{r, c}); t != Empty {
				tiles = append(tiles, t)
			}
		}
	}
	for i := 0; i < len(tiles); i++ {
		for j := 0; j < len(tiles); j++ {
			if i != j && g.rules.CanMerge(tiles[i], tiles[j]) {
				return true
			}
		}
	}
	return false
}

// CanMoveAny reports whether any of the four directions would change
// the board.
func (g *Game) CanMoveAny() bool {
	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if HasMove(g.board, dir, g.rules) {
			return true
		}
	}
	return false
}

// Grid returns a deep copy of the board contents.
func (g *Game) Grid() [][]int {
	return g.board.Rows()
}

// Multipliers returns a deep copy of the multiplier grid.
func (g *Game) Multipliers() [][]int {
	return g.mult.Rows()
}

// Queue returns a copy of the pending next-tile queue.
func (g *Game) Queue() []Tile {
	q := make([]Tile, len(g.queue))
	copy(q, g.queue)
	return q
}

// NextTile returns the tile that will spawn after the next valid move.
func (g *Game) NextTile() Tile {
	if len(g.queue) == 0 {
		return Empty
	}
	return g.queue[0]
}

// Status returns the lifecycle state.
func (g *Game) Status() Status {
	return g.status
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// MoveCount returns the number of committed moves.
func (g *Game) MoveCount() int {
	return g.moveCount
}

// LastEvents returns a copy of the most recent move's event log.
func (g *Game) LastEvents() []Event {
	evs := make([]Event, len(g.lastEvents))
	copy(evs, g.lastEvents)
	return evs
}

// Seed returns the seed the current game was constructed with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Config returns the resolved configuration.
func (g *Game) Config() Config {
	return g.cfg
}

// MaxTile returns the highest tile currently on the board.
func (g *Game) MaxTile() Tile {
	return g.board.MaxTile()
}
