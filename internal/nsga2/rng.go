package nsga2

import "math/rand"

// defaultSeed is the fixed "zero" seed used when a caller passes seed==0,
// the same seed==0 policy as the pack's lvlath TSP heuristics.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand: seed==0 maps to
// defaultSeed, any other value is used verbatim, so a run is fully
// reproducible from its seed alone (spec.md §8 S6).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}
