package domain

// Archive is a set of individuals that are pairwise non-dominated.
// Insertion order does not affect membership, but iteration is stable
// (insertion order of surviving members) so reports are reproducible
// across runs with the same seed.
type Archive struct {
	items []Individual
}

// NewArchive returns an empty archive.
func NewArchive() *Archive {
	return &Archive{}
}

// Len returns the number of members.
func (a *Archive) Len() int {
	return len(a.items)
}

// Items returns a stable-order copy of the archive's members.
func (a *Archive) Items() []Individual {
	out := make([]Individual, len(a.items))
	copy(out, a.items)
	return out
}

// TryAdd inserts candidate if no current member dominates it, discarding
// any member the candidate dominates. It returns true when the candidate
// was added. Exact-duplicate objective vectors are rejected without being
// considered a dominance relation, so Add(x); Add(x) only keeps one copy.
func (a *Archive) TryAdd(candidate Individual) bool {
	for _, existing := range a.items {
		if existing.Obj.Equal(candidate.Obj) {
			return false
		}
		if existing.Obj.Dominates(candidate.Obj) {
			return false
		}
	}

	survivors := a.items[:0:0]
	for _, existing := range a.items {
		if !candidate.Obj.Dominates(existing.Obj) {
			survivors = append(survivors, existing)
		}
	}
	survivors = append(survivors, candidate)
	a.items = survivors
	return true
}

// Clear empties the archive in place.
func (a *Archive) Clear() {
	a.items = nil
}
