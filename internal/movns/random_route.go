package movns

import (
	"math/rand"

	"tourplanner/internal/domain"
	"tourplanner/internal/oracle"
)

// randomRoute draws a random permutation-prefix route of length in
// [2, numAttractions], with every transport leg defaulted to the
// oracle's preferred mode (spec.md §4.6's initial-archive construction).
func randomRoute(rng *rand.Rand, numAttractions int, orc oracle.Oracle) (domain.Route, error) {
	if numAttractions == 0 {
		return domain.Route{}, nil
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
	modes := make([]domain.TransportMode, len(indices)-1)
	for i := range modes {
		mode, err := orc.PreferredMode(indices[i], indices[i+1])
		if err != nil {
			return domain.Route{}, err
		}
		modes[i] = mode
	}

	return domain.Route{Attractions: indices, Modes: modes}, nil
}
