// Package evaluator implements the itinerary evaluator (spec.md §4.2): it
// turns an ordered attraction sequence and transport-mode choices into a
// temporal schedule, checks feasibility against opening hours and the
// daily time limit, and returns the 4-objective vector. Its method shape
// (interface, Default* struct, constructor, a handful of small private
// helpers) mirrors the teacher's DefaultPricingService, and the
// per-stop wait-until-open computation generalizes
// PricingService.getNextTimeBoundary's "find where the rate/window
// changes" idea from a fixed weekday/hour table to arbitrary per-
// attraction opening windows.
package evaluator

import (
	"tourplanner/internal/domain"
	"tourplanner/internal/oracle"
)

// Evaluator maps a candidate itinerary to its objective vector.
type Evaluator interface {
	Evaluate(attractions []domain.Attraction, indices []int, modes []domain.TransportMode, orc oracle.Oracle) (domain.Route, domain.ObjectiveVector, error)
}

// DefaultEvaluator is the only Evaluator implementation; it is stateless
// apart from the daily time limit, which is configurable per spec.md §9.
type DefaultEvaluator struct {
	DailyTimeLimitMinutes int
}

// New returns an evaluator with the given daily time limit (spec.md's
// canonical default is domain.DefaultDailyTimeLimitMinutes = 840).
func New(dailyTimeLimitMinutes int) *DefaultEvaluator {
	return &DefaultEvaluator{DailyTimeLimitMinutes: dailyTimeLimitMinutes}
}

// Evaluate computes the schedule and objective vector for the given
// attraction sequence. When modes is nil, each consecutive pair defaults
// to the oracle's preferred mode (spec.md §4.2). An empty indices slice
// yields a zero-cost, zero-time, feasible vector with zero attractions.
func (e *DefaultEvaluator) Evaluate(attractions []domain.Attraction, indices []int, modes []domain.TransportMode, orc oracle.Oracle) (domain.Route, domain.ObjectiveVector, error) {
	if len(indices) == 0 {
		return domain.Route{}, domain.ObjectiveVector{Feasible: true}, nil
	}

	if modes == nil {
		var err error
		modes, err = defaultModes(indices, orc)
		if err != nil {
			return domain.Route{}, domain.ObjectiveVector{}, err
		}
	}

	schedule := make([]domain.StopVisit, len(indices))
	feasible := true

	first := attractions[indices[0]]
	schedule[0] = domain.StopVisit{
		AttractionIndex: indices[0],
		Arrival:         first.OpenMinute,
		Wait:            0,
		Departure:       first.OpenMinute + first.VisitMinutes,
	}
	if !withinClosing(first, schedule[0].Arrival, schedule[0].Wait) {
		feasible = false
	}

	totalCost := first.Cost
	for i := 1; i < len(indices); i++ {
		curAttraction := attractions[indices[i]]
		mode := modes[i-1]

		travelTime, err := orc.TravelTime(indices[i-1], indices[i], mode)
		if err != nil {
			return domain.Route{}, domain.ObjectiveVector{}, err
		}
		travelCost, err := orc.TravelCost(indices[i-1], indices[i], mode)
		if err != nil {
			return domain.Route{}, domain.ObjectiveVector{}, err
		}

		arrival := schedule[i-1].Departure + int(travelTime)
		wait := 0
		if curAttraction.OpenMinute > arrival {
			wait = curAttraction.OpenMinute - arrival
		}
		departure := arrival + wait + curAttraction.VisitMinutes

		schedule[i] = domain.StopVisit{
			AttractionIndex: indices[i],
			Arrival:         arrival,
			Wait:            wait,
			Departure:       departure,
		}

		if !withinClosing(curAttraction, arrival, wait) {
			feasible = false
		}

		totalCost += curAttraction.Cost + travelCost
	}

	last := schedule[len(schedule)-1]
	totalTime := last.Departure - schedule[0].Arrival
	if totalTime > e.DailyTimeLimitMinutes {
		feasible = false
	}

	route := domain.Route{
		Attractions: append([]int(nil), indices...),
		Modes:       append([]domain.TransportMode(nil), modes...),
		Schedule:    schedule,
	}

	obj := domain.ObjectiveVector{
		Cost:             totalCost,
		Time:             float64(totalTime),
		NumAttractions:   len(indices),
		NumNeighborhoods: countNeighborhoods(attractions, indices),
		Feasible:         feasible,
	}
	if !feasible {
		obj = obj.Penalized()
	}

	return route, obj, nil
}

// withinClosing checks arrival(i)+wait(i) <= closing(i)-visit_duration(i),
// the per-stop feasibility condition from spec.md §4.2.2. A 24h attraction
// (open=0, close=1439) is always within its window.
func withinClosing(a domain.Attraction, arrival, wait int) bool {
	if a.Is24Hour() {
		return true
	}
	return arrival+wait <= a.CloseMinute-a.VisitMinutes
}

func countNeighborhoods(attractions []domain.Attraction, indices []int) int {
	seen := make(map[string]bool, len(indices))
	for _, idx := range indices {
		seen[attractions[idx].Neighborhood] = true
	}
	return len(seen)
}

func defaultModes(indices []int, orc oracle.Oracle) ([]domain.TransportMode, error) {
	if len(indices) < 2 {
		return nil, nil
	}
	modes := make([]domain.TransportMode, len(indices)-1)
	for i := 0; i < len(indices)-1; i++ {
		mode, err := orc.PreferredMode(indices[i], indices[i+1])
		if err != nil {
			return nil, err
		}
		modes[i] = mode
	}
	return modes, nil
}
