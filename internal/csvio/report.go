package csvio

import (
	"fmt"
	"os"
)

// WriteHypervolumeReport writes a plain-text summary of a single front's
// raw and normalized hypervolume (normalized against the ideal/nadir
// bounding box, spec.md §4.4, §6) and spread indicator.
func WriteHypervolumeReport(path, label string, rawHV, normalizedHV, spread float64, frontSize int) error {
	content := fmt.Sprintf(
		"front: %s\nsize: %d\nhypervolume: %f\nhypervolume_normalized: %f\nspread: %f\n",
		label, frontSize, rawHV, normalizedHV, spread,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("csvio: write hypervolume report: %w", err)
	}
	return nil
}

// WriteCoverageReport writes a plain-text binary-coverage comparison
// between two named fronts (spec.md §4.7, §6).
func WriteCoverageReport(path, labelA, labelB string, coverageAB, coverageBA float64) error {
	content := fmt.Sprintf(
		"C(%s,%s): %f\nC(%s,%s): %f\n",
		labelA, labelB, coverageAB,
		labelB, labelA, coverageBA,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("csvio: write coverage report: %w", err)
	}
	return nil
}
