package world

import (
	"math/rand"
	"time"
)

// Source supplies uniformly distributed integers in [0, n).
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSource returns a seeded source. A seed of 0 picks a time-based seed.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// shuffle permutes s in place with Fisher-Yates, drawing j from [0, i].
func shuffle[T any](rng Source, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
