package threes

// RNG is a deterministic pseudo-random number generator (xorshift64).
// Every component that needs randomness takes an *RNG explicitly, so a
// seed plus a move sequence fully determines a game history.
type RNG struct {
	state uint64
}

// defaultSeed replaces a zero seed, which would lock xorshift at zero.
const defaultSeed = 88172645463325252

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = defaultSeed
	}
	return &RNG{state: uint64(seed)}
}

// next returns the next raw uint64 of the stream.
func (r *RNG) next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Float returns a random float64 in [0, 1).
func (r *RNG) Float() float64 {
	return float64(r.next()&0x7FFFFFFFFFFFFFFF) / float64(0x8000000000000000)
}

// Intn returns a random int in [0, n). Returns 0 for n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() % uint64(n))
}
