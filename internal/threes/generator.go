package threes

// Generator produces the next tile value to spawn. Stateful strategies
// (the bag) keep their buffer behind this interface; strategies that
// inspect the board receive it read-only.
type Generator interface {
	Next(b *Board) Tile
}

// FixedGenerator always returns one constant value. Used by the
// minimal variants and by tests that want spawn noise out of the way.
type FixedGenerator struct {
	Value Tile
}

func (g FixedGenerator) Next(b *Board) Tile {
	return g.Value
}

// bagCopies is how many copies of each base tile a fresh bag holds.
const bagCopies = 4

// BagGenerator pops tiles from a shuffled multiset of base tiles and
// reshuffles a fresh copy via Fisher-Yates whenever it runs empty, so
// it can never run out silently.
type BagGenerator struct {
	rng *RNG
	bag []Tile
}

// NewBagGenerator creates a bag generator drawing shuffles from rng.
func NewBagGenerator(rng *RNG) *BagGenerator {
	return &BagGenerator{rng: rng}
}

func (g *BagGenerator) refill() {
	g.bag = make([]Tile, 0, NumFamilies*bagCopies)
	for f := 0; f < NumFamilies; f++ {
		for i := 0; i < bagCopies; i++ {
			g.bag = append(g.bag, BaseTile(f))
		}
	}
	for i := len(g.bag) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		g.bag[i], g.bag[j] = g.bag[j], g.bag[i]
	}
}

func (g *BagGenerator) Next(b *Board) Tile {
	if len(g.bag) == 0 {
		g.refill()
	}
	t := g.bag[len(g.bag)-1]
	g.bag = g.bag[:len(g.bag)-1]
	return t
}

// UniformGenerator samples independently and uniformly from the base
// tile set on every call. One RNG draw per call.
type UniformGenerator struct {
	rng *RNG
}

// NewUniformGenerator creates a uniform base-tile generator.
func NewUniformGenerator(rng *RNG) *UniformGenerator {
	return &UniformGenerator{rng: rng}
}

func (g *UniformGenerator) Next(b *Board) Tile {
	return BaseTile(g.rng.Intn(NumFamilies))
}

// edgeBiasChance is the probability the progressive generator prefers a
// candidate mergeable with a tile currently on a board edge.
const edgeBiasChance = 0.5

// baseTierWeight is the pool weight of tier 0 in the progressive
// generator. Discovered higher tiers get baseTierWeight >> tier,
// floored at 1.
const baseTierWeight = 16

// ProgressiveGenerator weighs its output by the tiers already present
// on the board: the base tier dominates, discovered higher tiers enter
// the pool with decreasing weight. An optional edge-bias sub-roll
// prefers a candidate that could merge with something on a board edge.
//
// Every call consumes exactly three RNG draws regardless of branch
// taken (tier pick, bias roll, candidate pick), so replay determinism
// is independent of board contents. Candidate selection is
// filter-then-pick: the edge-mergeable filter is applied first and the
// uniform pick runs over whichever candidate set survives.
type ProgressiveGenerator struct {
	rng   *RNG
	rules RuleSet
	bias  bool
}

// NewProgressiveGenerator creates a progressive generator. The rule set
// drives the edge-bias mergeability check; bias=false disables the
// preference while still consuming the same number of draws.
func NewProgressiveGenerator(rng *RNG, rules RuleSet, bias bool) *ProgressiveGenerator {
	return &ProgressiveGenerator{rng: rng, rules: rules, bias: bias}
}

func (g *ProgressiveGenerator) Next(b *Board) Tile {
	// Weighted tier pool over tiers discovered on the board.
	seen := make(map[int]bool)
	maxTier := 0
	for r := 0; r < b.Size(); r++ {
		for c := 0; c < b.Size(); c++ {
			if t := b.At(Pos{r, c}); t != Empty {
				seen[t.Tier()] = true
				if t.Tier() > maxTier {
					maxTier = t.Tier()
				}
			}
		}
	}

	type entry struct {
		tier   int
		weight int
	}
	pool := []entry{{tier: 0, weight: baseTierWeight}}
	total := baseTierWeight
	for tier := 1; tier <= maxTier; tier++ {
		if !seen[tier] {
			continue
		}
		w := baseTierWeight >> uint(tier)
		if w < 1 {
			w = 1
		}
		pool = append(pool, entry{tier: tier, weight: w})
		total += w
	}

	// Draw 1: weighted tier pick.
	pick := g.rng.Intn(total)
	tier := 0
	cum := 0
	for _, e := range pool {
		cum += e.weight
		if pick < cum {
			tier = e.tier
			break
		}
	}

	candidates := tierTiles(tier)

	// Draw 2: edge-bias roll. Taken even when bias is disabled or the
	// filter comes up empty, to keep the draw count fixed.
	roll := g.rng.Float()
	if g.bias && roll < edgeBiasChance {
		if filtered := g.filterEdgeMergeable(b, candidates); len(filtered) > 0 {
			candidates = filtered
		}
	}

	// Draw 3: uniform pick within the surviving candidates.
	return candidates[g.rng.Intn(len(candidates))]
}

// tierTiles enumerates every tile value in a tier, family-major.
func tierTiles(tier int) []Tile {
	tiles := make([]Tile, 0, NumFamilies*tierSpan)
	for level := tier * tierSpan; level < (tier+1)*tierSpan; level++ {
		for f := 0; f < NumFamilies; f++ {
			tiles = append(tiles, Encode(f, level))
		}
	}
	return tiles
}

// filterEdgeMergeable keeps candidates that the rule set could merge
// with at least one tile sitting on a board edge.
func (g *ProgressiveGenerator) filterEdgeMergeable(b *Board, candidates []Tile) []Tile {
	size := b.Size()
	var edgeTiles []Tile
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if r != 0 && r != size-1 && c != 0 && c != size-1 {
				continue
			}
			if t := b.At(Pos{r, c}); t != Empty {
				edgeTiles = append(edgeTiles, t)
			}
		}
	}

	var kept []Tile
	for _, cand := range candidates {
		for _, et := range edgeTiles {
			if g.rules.CanMerge(cand, et) {
				kept = append(kept, cand)
				break
			}
		}
	}
	return kept
}
