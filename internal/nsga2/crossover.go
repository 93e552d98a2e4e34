package nsga2

import (
	"math/rand"

	"tourplanner/internal/domain"
	"tourplanner/internal/oracle"
)

// orderedCrossover implements OX (spec.md §4.5): a contiguous segment of
// parent a's sequence is copied into the child verbatim, then the
// remaining slots are filled by walking parent b's sequence in order and
// skipping any index already placed. The child's target length is parent
// a's length, clamped to the attraction universe. Transport-mode genes
// are not recombined here; they are re-derived from the oracle's
// preference rule, since mutation's transport-mode-change operator is
// the sole source of non-preferred mode exploration.
func orderedCrossover(a, b chromosome, rng *rand.Rand, numAttractions int, orc oracle.Oracle) (chromosome, error) {
	if len(a.indices) == 0 {
		return chromosome{}, nil
	}

	targetLen := len(a.indices)
	if targetLen < 2 {
		targetLen = 2
	}
	if targetLen > numAttractions {
		targetLen = numAttractions
	}

	segStart := rng.Intn(len(a.indices))
	segLen := 1
	if len(a.indices) > 1 {
		segLen = 1 + rng.Intn(len(a.indices))
	}
	segEnd := segStart + segLen
	if segEnd > len(a.indices) {
		segEnd = len(a.indices)
	}

	child := make([]int, 0, targetLen)
	inChild := make(map[int]bool, targetLen)
	for i := segStart; i < segEnd && len(child) < targetLen; i++ {
		idx := a.indices[i]
		if !inChild[idx] {
			child = append(child, idx)
			inChild[idx] = true
		}
	}

	for _, idx := range b.indices {
		if len(child) >= targetLen {
			break
		}
		if inChild[idx] {
			continue
		}
		child = append(child, idx)
		inChild[idx] = true
	}

	// b ran out before the child reached parent a's length: top up with
	// a's own remaining genes so the child length matches a whenever the
	// attraction universe allows it.
	for _, idx := range a.indices {
		if len(child) >= targetLen {
			break
		}
		if inChild[idx] {
			continue
		}
		child = append(child, idx)
		inChild[idx] = true
	}

	if len(child) < 2 {
		return randomChromosome(rng, numAttractions, orc)
	}

	modes := make([]domain.TransportMode, len(child)-1)
	for i := range modes {
		mode, err := orc.PreferredMode(child[i], child[i+1])
		if err != nil {
			return chromosome{}, err
		}
		modes[i] = mode
	}

	return chromosome{indices: child, modes: modes}, nil
}
