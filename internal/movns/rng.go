package movns

import "math/rand"

const defaultSeed int64 = 1

// rngFromSeed mirrors nsga2's seed==0 policy so both engines are
// reproducible the same way from the same configuration (spec.md §8 S6).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}
