package generator

import (
	"math/rand/v2"
	"sync"
)

// Rand is the randomness source the generator draws from. IntN returns a
// value in [0, n).
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

// NewRand returns a source backed by the runtime's shared generator. It is
// safe for concurrent use and is reseeded on every process start.
func NewRand() Rand {
	return globalRand{}
}

func (globalRand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.IntN(n)
}

// SeededRand produces a repeatable sequence for a given seed.
type SeededRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSeededRand(seed uint64) *SeededRand {
	return &SeededRand{
		rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *SeededRand) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}

// between draws uniformly from [lo, hi] inclusive.
func between(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}
