// Package randsrc provides a seedable random source that is safe for
// concurrent use.
package randsrc

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source draws uniform integers in [0, n).
type Source interface {
	IntN(n int) int
}

// Locked serializes access to a PCG generator.
type Locked struct {
	mu sync.Mutex
	r  *rand.Rand
}

var _ Source = (*Locked)(nil)

// New returns a source seeded with seed. A zero seed picks a time-based one.
func New(seed uint64) *Locked {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Locked{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN panics if n <= 0, like rand.IntN.
func (s *Locked) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}
