package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourplanner/internal/domain"
)

// fakeOracle is a hand-wired transport oracle for evaluator scenarios,
// grounded the same way the teacher's tests stub collaborators with small
// literal fixtures rather than a mocking framework.
type fakeOracle struct {
	time mat
	cost mat
}

type mat map[[2]int]float64

func (o fakeOracle) Distance(a, b int, mode domain.TransportMode) (float64, error) {
	return o.cost[[2]int{a, b}], nil
}

func (o fakeOracle) TravelTime(a, b int, mode domain.TransportMode) (float64, error) {
	return o.time[[2]int{a, b}], nil
}

func (o fakeOracle) TravelCost(a, b int, mode domain.TransportMode) (float64, error) {
	return o.cost[[2]int{a, b}], nil
}

func (o fakeOracle) PreferredMode(a, b int) (domain.TransportMode, error) {
	return domain.Walk, nil
}

func TestEvaluate_Scenario1(t *testing.T) {
	attractions := []domain.Attraction{
		{Name: "A", Neighborhood: "Downtown", VisitMinutes: 30, Cost: 10, OpenMinute: 540, CloseMinute: 1200},
		{Name: "B", Neighborhood: "Downtown", VisitMinutes: 20, Cost: 9, OpenMinute: 540, CloseMinute: 1200},
	}
	orc := fakeOracle{
		time: mat{{0, 1}: 20},
		cost: mat{{0, 1}: 0},
	}
	eval := New(domain.DefaultDailyTimeLimitMinutes)

	route, obj, err := eval.Evaluate(attractions, []int{0, 1}, []domain.TransportMode{domain.Walk}, orc)
	require.NoError(t, err)

	assert.Equal(t, 19.0, obj.Cost)
	assert.Equal(t, 70.0, obj.Time) // departure(B)=610 - arrival(A)=540
	assert.True(t, obj.Feasible)
	assert.Equal(t, 1, obj.NumNeighborhoods)
	assert.Len(t, route.Schedule, 2)
}

func TestEvaluate_Scenario2_Waiting(t *testing.T) {
	attractions := []domain.Attraction{
		{Name: "A", Neighborhood: "Downtown", VisitMinutes: 30, Cost: 0, OpenMinute: 540, CloseMinute: 1200},
		{Name: "B", Neighborhood: "Uptown", VisitMinutes: 40, Cost: 0, OpenMinute: 700, CloseMinute: 1200},
	}
	orc := fakeOracle{
		time: mat{{0, 1}: 10},
		cost: mat{{0, 1}: 0},
	}
	eval := New(domain.DefaultDailyTimeLimitMinutes)

	route, obj, err := eval.Evaluate(attractions, []int{0, 1}, []domain.TransportMode{domain.Walk}, orc)
	require.NoError(t, err)

	// arrival at B = departure(A)=570 + travel 10 = 580; opening(B)=700 => wait=120
	assert.Equal(t, 120, route.Schedule[1].Wait)
	assert.Equal(t, 2, obj.NumNeighborhoods)
}

func TestEvaluate_Scenario3_InfeasibleOverDailyLimit(t *testing.T) {
	attractions := []domain.Attraction{
		{Name: "A", Neighborhood: "Downtown", VisitMinutes: 30, Cost: 5, OpenMinute: 0, CloseMinute: 1439},
		{Name: "B", Neighborhood: "Downtown", VisitMinutes: 30, Cost: 5, OpenMinute: 0, CloseMinute: 1439},
	}
	orc := fakeOracle{
		time: mat{{0, 1}: 1000},
		cost: mat{{0, 1}: 0},
	}
	eval := New(domain.DefaultDailyTimeLimitMinutes)

	_, obj, err := eval.Evaluate(attractions, []int{0, 1}, []domain.TransportMode{domain.Car}, orc)
	require.NoError(t, err)

	assert.False(t, obj.Feasible)
	assert.Equal(t, domain.PenaltyCost, obj.Cost)
	assert.Equal(t, domain.PenaltyTime, obj.Time)
}

func TestEvaluate_EmptyIndices(t *testing.T) {
	eval := New(domain.DefaultDailyTimeLimitMinutes)
	_, obj, err := eval.Evaluate(nil, nil, nil, fakeOracle{})
	require.NoError(t, err)
	assert.True(t, obj.Feasible)
	assert.Equal(t, 0.0, obj.Cost)
}

func TestEvaluate_DefaultsModesFromOraclePreference(t *testing.T) {
	attractions := []domain.Attraction{
		{Name: "A", Neighborhood: "Downtown", VisitMinutes: 10, Cost: 0, OpenMinute: 0, CloseMinute: 1439},
		{Name: "B", Neighborhood: "Downtown", VisitMinutes: 10, Cost: 0, OpenMinute: 0, CloseMinute: 1439},
	}
	orc := fakeOracle{
		time: mat{{0, 1}: 5},
		cost: mat{{0, 1}: 0},
	}
	eval := New(domain.DefaultDailyTimeLimitMinutes)

	route, _, err := eval.Evaluate(attractions, []int{0, 1}, nil, orc)
	require.NoError(t, err)
	assert.Equal(t, []domain.TransportMode{domain.Walk}, route.Modes)
}
