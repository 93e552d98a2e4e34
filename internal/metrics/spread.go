package metrics

import (
	"math"
	"sort"

	"tourplanner/internal/coreerrors"
	"tourplanner/internal/domain"
)

// Spread computes the diversity metric of spec.md §4.7: solutions are
// ordered by their first objective, consecutive Euclidean distances are
// computed in objective space, and the result is the sum of deviations
// from the mean distance, normalized by (|S|-1)*mean. A front of fewer
// than two solutions has no consecutive pairs to measure and returns 0
// with ErrEmptyArchive as a diagnostic.
func Spread(front []domain.Individual) (float64, error) {
	if len(front) < 2 {
		return 0, coreerrors.ErrEmptyArchive
	}

	ordered := make([]domain.Individual, len(front))
	copy(ordered, front)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Obj.Minimize()[0] < ordered[j].Obj.Minimize()[0]
	})

	distances := make([]float64, len(ordered)-1)
	mean := 0.0
	for i := 0; i < len(ordered)-1; i++ {
		distances[i] = euclidean(ordered[i].Obj.Minimize(), ordered[i+1].Obj.Minimize())
		mean += distances[i]
	}
	mean /= float64(len(distances))
	if mean == 0 {
		return 0, nil
	}

	sum := 0.0
	for _, d := range distances {
		sum += math.Abs(d - mean)
	}

	return sum / (float64(len(ordered)-1) * mean), nil
}

func euclidean(a, b [4]float64) float64 {
	sum := 0.0
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}
