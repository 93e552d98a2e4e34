package domain

// StopVisit is the derived temporal schedule for one attraction in a
// route: arrival minute, minutes spent waiting for opening, and departure
// minute, all measured from the start of the tour day.
type StopVisit struct {
	AttractionIndex int
	Arrival         int
	Wait            int
	Departure       int
}

// Route is an ordered itinerary: a permutation-prefix of attraction
// indices, a parallel transport-mode choice for each consecutive pair (so
// len(Modes) == max(0, len(Attractions)-1)), and a schedule derived by the
// evaluator. Routes are value-typed; nothing outside the owning
// individual/solution holds a long-lived reference to the backing slices.
type Route struct {
	Attractions []int
	Modes       []TransportMode
	Schedule    []StopVisit
}

// Len returns the number of attractions in the route.
func (r Route) Len() int {
	return len(r.Attractions)
}

// Clone returns a deep copy so operators can mutate the result without
// aliasing the original route's slices.
func (r Route) Clone() Route {
	out := Route{
		Attractions: make([]int, len(r.Attractions)),
		Modes:       make([]TransportMode, len(r.Modes)),
	}
	copy(out.Attractions, r.Attractions)
	copy(out.Modes, r.Modes)
	// Schedule is derived data; callers re-evaluate rather than clone it.
	return out
}

// HasDuplicates reports whether any attraction index appears more than
// once in the route.
func (r Route) HasDuplicates() bool {
	seen := make(map[int]bool, len(r.Attractions))
	for _, idx := range r.Attractions {
		if seen[idx] {
			return true
		}
		seen[idx] = true
	}
	return false
}

// Contains reports whether the route already visits the given attraction
// index.
func (r Route) Contains(idx int) bool {
	for _, a := range r.Attractions {
		if a == idx {
			return true
		}
	}
	return false
}
