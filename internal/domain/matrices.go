package domain

// Matrices holds the four square transport matrices indexed by attraction
// index. They are loaded once and shared immutably for the lifetime of an
// engine; engines hold a non-owning view, never a copy.
type Matrices struct {
	CarDistance  [][]float64 // meters
	WalkDistance [][]float64 // meters
	CarTime      [][]float64 // minutes
	WalkTime     [][]float64 // minutes
}

// N returns the matrix dimension (number of attractions).
func (m Matrices) N() int {
	return len(m.CarTime)
}

// Validate checks that all four matrices are square, share the same
// dimension, have zero self-entries, and contain no negative values. It
// does not require symmetry, per spec.md §3.
func (m Matrices) Validate() bool {
	n := m.N()
	mats := [][][]float64{m.CarDistance, m.WalkDistance, m.CarTime, m.WalkTime}
	for _, mat := range mats {
		if len(mat) != n {
			return false
		}
		for i, row := range mat {
			if len(row) != n {
				return false
			}
			if row[i] != 0 {
				return false
			}
			for _, v := range row {
				if v < 0 {
					return false
				}
			}
		}
	}
	return true
}
