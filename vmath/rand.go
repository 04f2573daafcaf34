package vmath

// Rand is the random source consumed by spawners and particle bursts
// Float64 returns a value in [0, 1)
type Rand interface {
	Float64() float64
}

// FastRand is a xorshift64 generator, deterministic for a given seed
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator; zero seed is remapped since xorshift sticks at zero
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 uses the top 53 bits for a uniform mantissa
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Range returns a uniform value in [lo, hi) drawn from rng
func Range(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
