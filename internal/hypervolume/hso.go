// Package hypervolume computes the exact hypervolume of a minimizing point
// set against a reference point using Hypervolume-by-Slicing-Objectives
// (HSO): recursive slicing down to a specialized 2-D sweep, the same
// stair-step-rectangle scan as the pack's Mayfly calculateHypervolume
// (df530cd4_CWBudde-Mayfly__multiobjective.go), generalized here from a
// fixed 2-objective case to spec.md §4.4's recursive k-dimensional form.
package hypervolume

import "sort"

// Compute returns the exact hypervolume of points (each a k-dimensional
// minimization vector) bounded by ref. Points are first reduced to their
// mutually non-dominated subset; points that are not strictly better than
// ref in every dimension contribute nothing. Compute is deterministic up
// to input ordering (spec.md §4.4).
func Compute(points [][]float64, ref []float64) float64 {
	if len(points) == 0 {
		return 0
	}
	return hso(nonDominated(points), ref)
}

// Normalized divides the raw hypervolume by the volume of the bounding
// box spanned by ideal and nadir, per spec.md §4.4's normalized-
// hypervolume note.
func Normalized(points [][]float64, ref, ideal, nadir []float64) float64 {
	raw := Compute(points, ref)
	box := 1.0
	for i := range ideal {
		box *= nadir[i] - ideal[i]
	}
	if box <= 0 {
		return 0
	}
	return raw / box
}

func hso(points [][]float64, ref []float64) float64 {
	points = nonDominated(points)
	if len(points) == 0 {
		return 0
	}

	k := len(ref)
	sorted := make([][]float64, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i][0] < sorted[j][0]
	})

	switch {
	case k == 1:
		best := sorted[0][0]
		for _, p := range sorted {
			if p[0] < best {
				best = p[0]
			}
		}
		if ref[0] <= best {
			return 0
		}
		return ref[0] - best

	case k == 2:
		vol := 0.0
		prevY := ref[1]
		for _, p := range sorted {
			width := ref[0] - p[0]
			height := prevY - p[1]
			if width > 0 && height > 0 {
				vol += width * height
			}
			if p[1] < prevY {
				prevY = p[1]
			}
		}
		return vol

	default:
		vol := 0.0
		for i, p := range sorted {
			// The slab [p[0], next) is dominated by every point whose first
			// coordinate is <= p[0], i.e. sorted[0..i].
			sub := dropFirstDim(sorted[:i+1])
			subVol := hso(sub, ref[1:])

			next := ref[0]
			if i+1 < len(sorted) && sorted[i+1][0] < ref[0] {
				next = sorted[i+1][0]
			}
			width := next - p[0]
			if width > 0 {
				vol += width * subVol
			}
		}
		return vol
	}
}

func dropFirstDim(points [][]float64) [][]float64 {
	out := make([][]float64, len(points))
	for i, p := range points {
		out[i] = p[1:]
	}
	return out
}

func dominatesSlice(a, b []float64) bool {
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

// nonDominated filters points to their mutually non-dominated subset
// (spec.md §4.4 step 1).
func nonDominated(points [][]float64) [][]float64 {
	out := make([][]float64, 0, len(points))
	for i, p := range points {
		dominated := false
		for j, q := range points {
			if i == j {
				continue
			}
			if dominatesSlice(q, p) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, p)
		}
	}
	return out
}
