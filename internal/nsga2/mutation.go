package nsga2

import (
	"math/rand"

	"tourplanner/internal/domain"
	"tourplanner/internal/oracle"
)

// mutate applies exactly one of the four gene-level mutation operators
// (spec.md §4.5) to c, chosen uniformly at random, with mutationRate as
// the per-gene application probability within that operator.
func mutate(c chromosome, rng *rand.Rand, mutationRate float64, numAttractions int, orc oracle.Oracle) (chromosome, error) {
	switch rng.Intn(4) {
	case 0:
		return swapMutation(c, rng, mutationRate), nil
	case 1:
		return insertMutation(c, rng, mutationRate, numAttractions), nil
	case 2:
		return removeMutation(c, rng, mutationRate), nil
	default:
		return transportFlipMutation(c, rng, mutationRate), nil
	}
}

// swapMutation exchanges each gene's position with a random other
// position with probability mutationRate. Transport-mode genes are left
// as they are, position by position; they are not rebuilt for the
// swapped pairs.
func swapMutation(c chromosome, rng *rand.Rand, mutationRate float64) chromosome {
	out := c.clone()
	n := len(out.indices)
	if n < 2 {
		return out
	}
	for i := 0; i < n; i++ {
		if rng.Float64() >= mutationRate {
			continue
		}
		j := rng.Intn(n)
		out.indices[i], out.indices[j] = out.indices[j], out.indices[i]
	}
	return out
}

// insertMutation inserts a previously unused attraction at a random
// position with probability mutationRate, growing the chromosome by one
// gene per accepted insertion, bounded by numAttractions.
func insertMutation(c chromosome, rng *rand.Rand, mutationRate float64, numAttractions int) chromosome {
	out := c.clone()
	if rng.Float64() >= mutationRate || len(out.indices) >= numAttractions {
		return out
	}

	present := make(map[int]bool, len(out.indices))
	for _, idx := range out.indices {
		present[idx] = true
	}
	var candidate = -1
	for _, idx := range rng.Perm(numAttractions) {
		if !present[idx] {
			candidate = idx
			break
		}
	}
	if candidate < 0 {
		return out
	}

	pos := rng.Intn(len(out.indices) + 1)
	indices := make([]int, 0, len(out.indices)+1)
	indices = append(indices, out.indices[:pos]...)
	indices = append(indices, candidate)
	indices = append(indices, out.indices[pos:]...)

	// The two edges touching the new gene default to WALK; repair leaves
	// existing mode genes untouched since indices keep the same relative
	// order around the insertion point.
	modes := make([]domain.TransportMode, len(indices)-1)
	for i := range modes {
		switch {
		case i < pos-1:
			modes[i] = out.modes[i]
		case i == pos-1 || i == pos:
			modes[i] = domain.Walk
		default:
			modes[i] = out.modes[i-1]
		}
	}

	out.indices = indices
	out.modes = modes
	return out
}

// removeMutation drops each gene with probability mutationRate, never
// shrinking the chromosome below two attractions.
func removeMutation(c chromosome, rng *rand.Rand, mutationRate float64) chromosome {
	out := c.clone()
	if len(out.indices) <= 2 {
		return out
	}

	keep := make([]bool, len(out.indices))
	for i := range keep {
		keep[i] = true
	}
	remaining := len(out.indices)
	for i := range out.indices {
		if remaining <= 2 {
			break
		}
		if rng.Float64() < mutationRate {
			keep[i] = false
			remaining--
		}
	}

	indices := make([]int, 0, remaining)
	for i, k := range keep {
		if k {
			indices = append(indices, out.indices[i])
		}
	}

	modes := make([]domain.TransportMode, 0, len(indices)-1)
	for i := 0; i+1 < len(indices); i++ {
		modes = append(modes, domain.Walk)
	}

	out.indices = indices
	out.modes = modes
	return out
}

// transportFlipMutation flips each transport-mode gene (WALK<->CAR) with
// probability mutationRate. This is the only operator that explores
// non-preferred mode choices.
func transportFlipMutation(c chromosome, rng *rand.Rand, mutationRate float64) chromosome {
	out := c.clone()
	for i := range out.modes {
		if rng.Float64() >= mutationRate {
			continue
		}
		if out.modes[i] == domain.Walk {
			out.modes[i] = domain.Car
		} else {
			out.modes[i] = domain.Walk
		}
	}
	return out
}
