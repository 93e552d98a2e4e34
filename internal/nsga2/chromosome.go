package nsga2

import (
	"math/rand"

	"tourplanner/internal/domain"
	"tourplanner/internal/oracle"
)

// chromosome is a candidate itinerary before evaluation: a permutation-
// prefix of attraction indices plus a transport mode per consecutive pair
// (spec.md §4.5's representation).
type chromosome struct {
	indices []int
	modes   []domain.TransportMode
}

func (c chromosome) clone() chromosome {
	out := chromosome{
		indices: make([]int, len(c.indices)),
		modes:   make([]domain.TransportMode, len(c.modes)),
	}
	copy(out.indices, c.indices)
	copy(out.modes, c.modes)
	return out
}

// randomChromosome draws a random permutation-prefix of length in
// [2, numAttractions] (length 1 for a one-attraction catalog) and defaults every transport mode to
// the oracle's preference between the chosen consecutive pair (spec.md
// §4.5).
func randomChromosome(rng *rand.Rand, numAttractions int, orc oracle.Oracle) (chromosome, error) {
	if numAttractions == 0 {
		return chromosome{}, nil
	}

	perm := rng.Perm(numAttractions)

	length := 2
	if numAttractions > 2 {
		length = 2 + rng.Intn(numAttractions-1)
	}
	if length > numAttractions {
		length = numAttractions
	}

	indices := append([]int(nil), perm[:length]...)
	modes := make([]domain.TransportMode, 0, length-1)
	for i := 0; i+1 < len(indices); i++ {
		mode, err := orc.PreferredMode(indices[i], indices[i+1])
		if err != nil {
			return chromosome{}, err
		}
		modes = append(modes, mode)
	}

	return chromosome{indices: indices, modes: modes}, nil
}

// repair deduplicates a chromosome produced by crossover/mutation,
// keeping the first occurrence of each attraction index, and regrows it
// with a random chromosome when fewer than two attractions survive
// (spec.md §4.5's repair step).
func repair(c chromosome, rng *rand.Rand, numAttractions int, orc oracle.Oracle) (chromosome, error) {
	seen := make(map[int]bool, len(c.indices))
	indices := make([]int, 0, len(c.indices))
	for _, idx := range c.indices {
		if seen[idx] {
			continue
		}
		seen[idx] = true
		indices = append(indices, idx)
	}

	if len(indices) < 2 {
		return randomChromosome(rng, numAttractions, orc)
	}

	modes := make([]domain.TransportMode, len(indices)-1)
	for i := range modes {
		if i < len(c.modes) {
			modes[i] = c.modes[i]
			continue
		}
		mode, err := orc.PreferredMode(indices[i], indices[i+1])
		if err != nil {
			return chromosome{}, err
		}
		modes[i] = mode
	}

	return chromosome{indices: indices, modes: modes}, nil
}
