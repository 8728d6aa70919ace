// Package rng provides the deterministic pseudo-random source threaded
// explicitly through level generation and entity AI. Nothing in the game core
// seeds its own randomness; callers own the *Rand and therefore the sequence.
package rng

// defaultSeed replaces a zero seed, which would lock xorshift at zero forever.
const defaultSeed = 88172645463325252

// Rand is a deterministic pseudo-random number generator (xorshift64).
// It is not safe for concurrent use; each simulation owns its own instance.
type Rand struct {
	state uint64
}

// New creates a new generator with the given seed.
func New(seed uint64) *Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return &Rand{state: seed}
}

// FromInt64 seeds a generator from a signed seed such as a CLI flag.
func FromInt64(seed int64) *Rand {
	return New(uint64(seed))
}

// Next returns the next random uint64.
func (r *Rand) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Float returns a random float64 in [0, 1).
func (r *Rand) Float() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Intn returns a random int in [0, n). Returns 0 for n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Range returns a random int in [lo, hi] inclusive.
func (r *Rand) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// FloatRange returns a random float64 in [lo, hi).
func (r *Rand) FloatRange(lo, hi float64) float64 {
	return lo + r.Float()*(hi-lo)
}

// Chance returns true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.Float() < p
}

// Split derives an independent generator from this one, advancing it once.
// Use it to give a subsystem its own stream without disturbing call order elsewhere.
func (r *Rand) Split() *Rand {
	return New(r.Next() ^ 0x9E3779B97F4A7C15)
}
