// Package metrics computes the archive-level indicators of spec.md §4.7:
// binary coverage C(A,B), spread, and ε-dominance filtering, plus the
// EmptyArchive diagnostic behavior of spec.md §7.
package metrics

import (
	"tourplanner/internal/coreerrors"
	"tourplanner/internal/domain"
)

// Coverage computes C(A,B): the fraction of B that is weakly dominated by
// at least one member of A. An empty B returns 0 with ErrEmptyArchive as a
// diagnostic, not a fatal error (spec.md §7).
func Coverage(a, b []domain.Individual) (float64, error) {
	if len(b) == 0 {
		return 0, coreerrors.ErrEmptyArchive
	}
	if len(a) == 0 {
		return 0, nil
	}

	covered := 0
	for _, bi := range b {
		for _, ai := range a {
			if domain.WeaklyDominates(ai.Obj.Minimize(), bi.Obj.Minimize()) {
				covered++
				break
			}
		}
	}
	return float64(covered) / float64(len(b)), nil
}
