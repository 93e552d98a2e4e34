// Command compare reports binary coverage, hypervolume (raw and
// normalized against the ideal/nadir bounding box), and spread for two
// result sets produced by run-nsga2 or run-movns (spec.md §4.4, §4.7, §6).
package main

import (
	"flag"
	"log"
	"math"

	"tourplanner/internal/csvio"
	"tourplanner/internal/domain"
	"tourplanner/internal/hypervolume"
	"tourplanner/internal/metrics"
)

func main() {
	aPath := flag.String("a", "", "path to result set A (required)")
	bPath := flag.String("b", "", "path to result set B (required)")
	attractionsPath := flag.String("attractions", "", "optional path to the attractions CSV, to resolve sequence names back to indices")
	out := flag.String("out", "", "optional path to write a text coverage report")
	hvOut := flag.String("hv-out", "", "optional path prefix to write hypervolume reports (writes <prefix>-a.txt and <prefix>-b.txt)")
	refCost := flag.Float64("ref-cost", 0, "hypervolume reference point: cost upper bound")
	refTime := flag.Float64("ref-time", 0, "hypervolume reference point: time upper bound")
	flag.Parse()

	if *aPath == "" || *bPath == "" {
		log.Fatal("--a and --b are required")
	}

	var attractions []domain.Attraction
	if *attractionsPath != "" {
		var err error
		attractions, err = csvio.LoadAttractions(*attractionsPath)
		if err != nil {
			log.Fatalf("failed to load attractions: %v", err)
		}
	}

	a, err := csvio.ReadResults(*aPath, attractions)
	if err != nil {
		log.Fatalf("failed to read %s: %v", *aPath, err)
	}
	b, err := csvio.ReadResults(*bPath, attractions)
	if err != nil {
		log.Fatalf("failed to read %s: %v", *bPath, err)
	}

	cAB, err := metrics.Coverage(a, b)
	if err != nil {
		log.Printf("C(A,B): %v", err)
	}
	cBA, err := metrics.Coverage(b, a)
	if err != nil {
		log.Printf("C(B,A): %v", err)
	}
	log.Printf("C(A,B) = %f, C(B,A) = %f", cAB, cBA)

	spreadA, spreadErrA := metrics.Spread(a)
	if spreadErrA == nil {
		log.Printf("spread(A) = %f", spreadA)
	}
	spreadB, spreadErrB := metrics.Spread(b)
	if spreadErrB == nil {
		log.Printf("spread(B) = %f", spreadB)
	}

	if *refCost > 0 && *refTime > 0 {
		pointsA, pointsB := minimizeAll(a), minimizeAll(b)
		ref := []float64{*refCost, *refTime, 0, 0}
		ideal, nadir := boundingBox(append(append([][]float64{}, pointsA...), pointsB...))

		hvA := hypervolume.Compute(pointsA, ref)
		hvB := hypervolume.Compute(pointsB, ref)
		normA := hypervolume.Normalized(pointsA, ref, ideal, nadir)
		normB := hypervolume.Normalized(pointsB, ref, ideal, nadir)
		log.Printf("hypervolume(A) = %f (normalized %f)", hvA, normA)
		log.Printf("hypervolume(B) = %f (normalized %f)", hvB, normB)

		if *hvOut != "" {
			if err := csvio.WriteHypervolumeReport(*hvOut+"-a.txt", "A", hvA, normA, spreadA, len(a)); err != nil {
				log.Fatalf("failed to write hypervolume report for A: %v", err)
			}
			if err := csvio.WriteHypervolumeReport(*hvOut+"-b.txt", "B", hvB, normB, spreadB, len(b)); err != nil {
				log.Fatalf("failed to write hypervolume report for B: %v", err)
			}
		}
	}

	if *out != "" {
		if err := csvio.WriteCoverageReport(*out, "A", "B", cAB, cBA); err != nil {
			log.Fatalf("failed to write coverage report: %v", err)
		}
	}
}

func minimizeAll(individuals []domain.Individual) [][]float64 {
	out := make([][]float64, len(individuals))
	for i, ind := range individuals {
		vec := ind.Obj.Minimize()
		out[i] = []float64{vec[0], vec[1], vec[2], vec[3]}
	}
	return out
}

// boundingBox returns the component-wise minimum (ideal) and maximum
// (nadir) of points, the reference frame Normalized divides by (spec.md
// §4.4).
func boundingBox(points [][]float64) (ideal, nadir []float64) {
	if len(points) == 0 {
		return nil, nil
	}
	k := len(points[0])
	ideal = make([]float64, k)
	nadir = make([]float64, k)
	for i := range ideal {
		ideal[i] = math.Inf(1)
		nadir[i] = math.Inf(-1)
	}
	for _, p := range points {
		for i, v := range p {
			ideal[i] = math.Min(ideal[i], v)
			nadir[i] = math.Max(nadir[i], v)
		}
	}
	return ideal, nadir
}
