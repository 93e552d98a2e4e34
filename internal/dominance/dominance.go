// Package dominance implements fast non-dominated sorting, crowding
// distance, and the crowded-comparison operator (spec.md §4.3). Both
// algorithms are generalized, four-objective versions of the
// fastNonDominatedSort/calculateCrowdingDistance pair from the pack's
// Mayfly multiobjective.go, which works in raw []float64 objective space;
// here the four-objective domain.ObjectiveVector.Minimize() form plays
// that role so the algorithms stay objective-count-agnostic internally
// while the rest of the core only ever sees four dimensions.
package dominance

import (
	"math"
	"sort"

	"tourplanner/internal/domain"
)

// FastNonDominatedSort partitions individuals into fronts: fronts[0] is
// the set with no dominators, fronts[1] dominated only by members of
// fronts[0], and so on. It is stable with respect to input order for tie
// reproducibility (spec.md §4.3) and also writes each individual's Rank.
func FastNonDominatedSort(individuals []domain.Individual) [][]int {
	n := len(individuals)
	if n == 0 {
		return nil
	}

	dominationCount := make([]int, n)
	dominatedBy := make([][]int, n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if individuals[i].Obj.Dominates(individuals[j].Obj) {
				dominatedBy[i] = append(dominatedBy[i], j)
			} else if individuals[j].Obj.Dominates(individuals[i].Obj) {
				dominationCount[i]++
			}
		}
	}

	var fronts [][]int
	current := make([]int, 0)
	for i := 0; i < n; i++ {
		if dominationCount[i] == 0 {
			individuals[i].Rank = 0
			current = append(current, i)
		}
	}

	rank := 0
	for len(current) > 0 {
		fronts = append(fronts, current)
		var next []int
		for _, i := range current {
			for _, j := range dominatedBy[i] {
				dominationCount[j]--
				if dominationCount[j] == 0 {
					individuals[j].Rank = rank + 1
					next = append(next, j)
				}
			}
		}
		rank++
		current = next
	}

	return fronts
}

// AssignCrowdingDistance computes the crowding distance for every
// individual in a single front (a slice of indices into individuals) and
// writes it back onto each one. Endpoints (per objective, after sorting
// by that objective) get +Inf; interior points accumulate the normalized
// gap to their neighbors, with the denominator clamped to avoid division
// by zero on a degenerate (single-valued) objective.
func AssignCrowdingDistance(individuals []domain.Individual, front []int) {
	size := len(front)
	if size == 0 {
		return
	}
	for _, idx := range front {
		individuals[idx].Crowding = 0
	}
	if size <= 2 {
		for _, idx := range front {
			individuals[idx].Crowding = math.Inf(1)
		}
		return
	}

	const numObjectives = 4
	ordered := make([]int, size)
	copy(ordered, front)

	for m := 0; m < numObjectives; m++ {
		sort.Slice(ordered, func(a, b int) bool {
			return individuals[ordered[a]].Obj.Minimize()[m] < individuals[ordered[b]].Obj.Minimize()[m]
		})

		individuals[ordered[0]].Crowding = math.Inf(1)
		individuals[ordered[size-1]].Crowding = math.Inf(1)

		lo := individuals[ordered[0]].Obj.Minimize()[m]
		hi := individuals[ordered[size-1]].Obj.Minimize()[m]
		objRange := hi - lo
		if objRange < 1e-10 {
			objRange = 1e-10
		}

		for i := 1; i < size-1; i++ {
			if math.IsInf(individuals[ordered[i]].Crowding, 1) {
				continue
			}
			next := individuals[ordered[i+1]].Obj.Minimize()[m]
			prev := individuals[ordered[i-1]].Obj.Minimize()[m]
			individuals[ordered[i]].Crowding += (next - prev) / objRange
		}
	}
}

// CrowdedLess implements the crowded-comparison operator: a before b iff
// a has lower rank, or equal rank and strictly higher crowding distance.
func CrowdedLess(a, b domain.Individual) bool {
	return a.Less(b)
}
