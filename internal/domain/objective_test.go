package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectiveVector_Minimize(t *testing.T) {
	o := ObjectiveVector{Cost: 19, Time: 110, NumAttractions: 3, NumNeighborhoods: 2}
	assert.Equal(t, [4]float64{19, 110, -3, -2}, o.Minimize())
}

func TestObjectiveVector_Dominates(t *testing.T) {
	cheaper := ObjectiveVector{Cost: 10, Time: 100, NumAttractions: 3, NumNeighborhoods: 2}
	costlier := ObjectiveVector{Cost: 20, Time: 100, NumAttractions: 3, NumNeighborhoods: 2}
	assert.True(t, cheaper.Dominates(costlier))
	assert.False(t, costlier.Dominates(cheaper))

	tied := ObjectiveVector{Cost: 10, Time: 100, NumAttractions: 3, NumNeighborhoods: 2}
	assert.False(t, cheaper.Dominates(tied))
	assert.False(t, tied.Dominates(cheaper))
}

func TestObjectiveVector_Penalized(t *testing.T) {
	o := ObjectiveVector{Cost: 10, Time: 100, NumAttractions: 3, NumNeighborhoods: 2, Feasible: true}
	p := o.Penalized()
	assert.Equal(t, PenaltyCost, p.Cost)
	assert.Equal(t, PenaltyTime, p.Time)
	assert.False(t, p.Feasible)
	assert.Equal(t, o.NumAttractions, p.NumAttractions)
}

func TestWeaklyDominates(t *testing.T) {
	assert.True(t, WeaklyDominates([4]float64{1, 1, 1, 1}, [4]float64{1, 1, 1, 1}))
	assert.True(t, WeaklyDominates([4]float64{1, 1, 1, 1}, [4]float64{2, 2, 2, 2}))
	assert.False(t, WeaklyDominates([4]float64{2, 1, 1, 1}, [4]float64{1, 1, 1, 1}))
}
