package nsga2

import (
	"math/rand"

	"tourplanner/internal/dominance"
	"tourplanner/internal/domain"
)

// tournamentSelect runs binary tournament selection (spec.md §4.5): two
// individuals are drawn uniformly at random and the crowded-comparison
// winner is returned.
func tournamentSelect(rng *rand.Rand, population []domain.Individual) domain.Individual {
	i := rng.Intn(len(population))
	j := rng.Intn(len(population))
	a, b := population[i], population[j]
	if dominance.CrowdedLess(a, b) {
		return a
	}
	return b
}
