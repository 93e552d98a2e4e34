package movns

// explorationState tracks, per archive solution, which of the six
// neighborhoods have been fully explored without producing an
// archive-worthy neighbor (spec.md §4.6). A solution is dropped from
// consideration once every neighborhood is marked explored; it is
// re-admitted (all flags reset) whenever a strictly new solution enters
// the archive, since the search landscape around surviving solutions has
// effectively changed.
type explorationState struct {
	explored [numNeighborhoods]bool
}

func newExplorationState() *explorationState {
	return &explorationState{}
}

func (s *explorationState) allExplored() bool {
	for _, e := range s.explored {
		if !e {
			return false
		}
	}
	return true
}

// nextUnexplored returns the lowest-numbered unexplored neighborhood and
// true, or false when every neighborhood has been explored.
func (s *explorationState) nextUnexplored() (Neighborhood, bool) {
	for i, e := range s.explored {
		if !e {
			return Neighborhood(i), true
		}
	}
	return 0, false
}

func (s *explorationState) markExplored(n Neighborhood) {
	s.explored[n] = true
}

func (s *explorationState) reset() {
	for i := range s.explored {
		s.explored[i] = false
	}
}
