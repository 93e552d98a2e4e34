// Package oracle provides the transport oracle (spec.md §4.1): O(1)
// distance/time/cost lookups between attractions for a chosen transport
// mode, and the WALK/CAR preference rule. Two interchangeable backends
// implement the Oracle interface: a static one backed by the four CSV
// matrices (§6), and a live one backed by the Google Maps Distance Matrix
// API, mirroring the teacher's own MapsService split between a static
// fixture and GoogleMapsService.
package oracle

import (
	"fmt"

	"tourplanner/internal/coreerrors"
	"tourplanner/internal/domain"
)

// Oracle answers transport questions between two attraction indices in a
// shared catalog.
type Oracle interface {
	Distance(a, b int, mode domain.TransportMode) (float64, error)
	TravelTime(a, b int, mode domain.TransportMode) (float64, error)
	TravelCost(a, b int, mode domain.TransportMode) (float64, error)
	PreferredMode(a, b int) (domain.TransportMode, error)
}

// indexError wraps coreerrors.ErrUnknownAttraction with the offending
// index, so callers can log which lookup failed.
func indexError(idx int) error {
	return fmt.Errorf("%w: index %d", coreerrors.ErrUnknownAttraction, idx)
}

func checkIndex(idx, n int) error {
	if idx < 0 || idx >= n {
		return indexError(idx)
	}
	return nil
}
