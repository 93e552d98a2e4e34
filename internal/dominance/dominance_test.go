package dominance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"tourplanner/internal/domain"
)

func individual(cost, elapsed float64, attractions, neighborhoods int) domain.Individual {
	return domain.Individual{
		Obj: domain.ObjectiveVector{
			Cost: cost, Time: elapsed,
			NumAttractions: attractions, NumNeighborhoods: neighborhoods,
			Feasible: true,
		},
	}
}

func TestFastNonDominatedSort_Basic(t *testing.T) {
	population := []domain.Individual{
		individual(10, 100, 3, 2), // front 0
		individual(20, 200, 3, 2), // dominated by 0
		individual(5, 300, 2, 1),  // front 0 (different tradeoff)
		individual(25, 250, 1, 1), // dominated by both 0 and 1
	}

	fronts := FastNonDominatedSort(population)
	require := assert.New(t)
	require.NotEmpty(fronts)
	require.ElementsMatch([]int{0, 2}, fronts[0])

	for _, idx := range fronts[0] {
		require.Equal(0, population[idx].Rank)
	}
	for _, idx := range fronts[len(fronts)-1] {
		require.Equal(len(fronts)-1, population[idx].Rank)
	}
}

func TestFastNonDominatedSort_Empty(t *testing.T) {
	assert.Nil(t, FastNonDominatedSort(nil))
}

func TestAssignCrowdingDistance_SmallFrontIsAllInf(t *testing.T) {
	population := []domain.Individual{
		individual(10, 100, 3, 2),
		individual(20, 200, 2, 1),
	}
	AssignCrowdingDistance(population, []int{0, 1})
	for _, ind := range population {
		assert.True(t, math.IsInf(ind.Crowding, 1))
	}
}

func TestAssignCrowdingDistance_EndpointsAreInf(t *testing.T) {
	population := []domain.Individual{
		individual(10, 100, 5, 3),
		individual(15, 150, 4, 2),
		individual(20, 200, 3, 1),
	}
	front := []int{0, 1, 2}
	AssignCrowdingDistance(population, front)

	assert.True(t, math.IsInf(population[0].Crowding, 1))
	assert.True(t, math.IsInf(population[2].Crowding, 1))
	assert.False(t, math.IsInf(population[1].Crowding, 1))
}

func TestCrowdedLess_LowerRankWins(t *testing.T) {
	a := domain.Individual{Rank: 0, Crowding: 0}
	b := domain.Individual{Rank: 1, Crowding: math.Inf(1)}
	assert.True(t, CrowdedLess(a, b))
	assert.False(t, CrowdedLess(b, a))
}

func TestCrowdedLess_TiebreakByCrowding(t *testing.T) {
	a := domain.Individual{Rank: 0, Crowding: 5}
	b := domain.Individual{Rank: 0, Crowding: 1}
	assert.True(t, CrowdedLess(a, b))
}
