package domain

// PenaltyCost and PenaltyTime stamp an infeasible candidate's objective
// vector with a value strictly worse than any feasible solution can
// produce, so the candidate stays comparable (and dominated) without being
// discarded mid-search. See spec.md §4.2.
const (
	PenaltyCost = 1e9
	PenaltyTime = 1e9
)

// ObjectiveVector is the 4-objective evaluation of a route: total cost,
// total elapsed time, number of attractions visited, and number of
// distinct neighborhoods covered. NumAttractions and NumNeighborhoods are
// stored as natural (positive) counts; Minimize negates them so every
// dimension of the vector returned by Minimize is to be minimized
// uniformly, per spec.md §3.
type ObjectiveVector struct {
	Cost             float64
	Time             float64
	NumAttractions   int
	NumNeighborhoods int
	Feasible         bool
}

// Minimize returns the four-dimensional vector in minimize-all form:
// (cost, time, -attractions, -neighborhoods).
func (o ObjectiveVector) Minimize() [4]float64 {
	return [4]float64{
		o.Cost,
		o.Time,
		-float64(o.NumAttractions),
		-float64(o.NumNeighborhoods),
	}
}

// Penalized returns a copy of o with cost and time stamped to the penalty
// values, marking it infeasible. Attraction and neighborhood counts are
// preserved so partial-information candidates remain comparable.
func (o ObjectiveVector) Penalized() ObjectiveVector {
	o.Cost = PenaltyCost
	o.Time = PenaltyTime
	o.Feasible = false
	return o
}

// Dominates reports whether o dominates other: componentwise no worse on
// every (minimized) objective and strictly better on at least one.
func (o ObjectiveVector) Dominates(other ObjectiveVector) bool {
	return Dominates(o.Minimize(), other.Minimize())
}

// Dominates is the raw vector form of Pareto dominance over minimize-all
// vectors; ObjectiveVector.Dominates delegates to it.
func Dominates(a, b [4]float64) bool {
	strictlyBetter := false
	for i := range a {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			strictlyBetter = true
		}
	}
	return strictlyBetter
}

// WeaklyDominates reports a <= b componentwise, without requiring strict
// improvement on any dimension. Used by binary coverage (spec.md §4.7).
func WeaklyDominates(a, b [4]float64) bool {
	for i := range a {
		if a[i] > b[i] {
			return false
		}
	}
	return true
}

// Equal reports whether two objective vectors are identical, used for
// exact-duplicate filtering in archive maintenance.
func (o ObjectiveVector) Equal(other ObjectiveVector) bool {
	return o.Minimize() == other.Minimize()
}
