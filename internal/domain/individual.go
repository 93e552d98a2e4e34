package domain

// Individual owns one route plus its cached objective vector. Rank and
// Crowding are only meaningful for NSGA-II; MOVNS stores solutions without
// a rank (see Archive).
type Individual struct {
	Route    Route
	Obj      ObjectiveVector
	Rank     int
	Crowding float64
}

// Less implements the NSGA-II crowded-comparison operator (spec.md §4.3):
// lower rank wins; equal rank prefers higher crowding distance.
func (a Individual) Less(b Individual) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	return a.Crowding > b.Crowding
}
