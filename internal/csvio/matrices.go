package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"tourplanner/internal/coreerrors"
	"tourplanner/internal/domain"
)

// MatrixPaths names the four transport-matrix files of spec.md §6, each
// an (N+1)x(N+1) grid whose first row and first column list attraction
// names and whose cell (i,j) is the numeric distance (meters) or time
// (minutes) between attraction i and attraction j.
type MatrixPaths struct {
	CarDistance  string
	WalkDistance string
	CarTime      string
	WalkTime     string
}

// DefaultMatrixPaths resolves the four canonical filenames under dir.
func DefaultMatrixPaths(dir string) MatrixPaths {
	return MatrixPaths{
		CarDistance:  filepath.Join(dir, "car_distance.csv"),
		WalkDistance: filepath.Join(dir, "walk_distance.csv"),
		CarTime:      filepath.Join(dir, "car_time.csv"),
		WalkTime:     filepath.Join(dir, "walk_time.csv"),
	}
}

// LoadMatrices reads all four transport matrices, aligning each one's
// name header/row labels against attractions's catalog order (spec.md
// §6), and assembles domain.Matrices, validating shape and value
// invariants before returning.
func LoadMatrices(paths MatrixPaths, attractions []domain.Attraction) (domain.Matrices, error) {
	nameIndex := make(map[string]int, len(attractions))
	for i, a := range attractions {
		nameIndex[a.Name] = i
	}

	carDistance, err := loadMatrix(paths.CarDistance, nameIndex)
	if err != nil {
		return domain.Matrices{}, err
	}
	walkDistance, err := loadMatrix(paths.WalkDistance, nameIndex)
	if err != nil {
		return domain.Matrices{}, err
	}
	carTime, err := loadMatrix(paths.CarTime, nameIndex)
	if err != nil {
		return domain.Matrices{}, err
	}
	walkTime, err := loadMatrix(paths.WalkTime, nameIndex)
	if err != nil {
		return domain.Matrices{}, err
	}

	m := domain.Matrices{
		CarDistance:  carDistance,
		WalkDistance: walkDistance,
		CarTime:      carTime,
		WalkTime:     walkTime,
	}
	if !m.Validate() {
		return domain.Matrices{}, fmt.Errorf("%w: transport matrices failed shape/value validation", coreerrors.ErrInputParse)
	}
	return m, nil
}

// loadMatrix reads one (N+1)x(N+1) named matrix (first row and first
// column list attraction names, spec.md §6) and reindexes it into the
// attraction catalog's canonical order given by nameIndex, so the four
// matrices share the catalog's row/column ordering regardless of the
// order names appear in the file.
func loadMatrix(path string, nameIndex map[string]int) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvio: open matrix %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("csvio: read matrix header in %s: %w", path, err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: matrix %s has no named columns", coreerrors.ErrInputParse, path)
	}

	n := len(nameIndex)
	colIndex := make([]int, len(header)-1) // file column -> catalog index
	for col, name := range header[1:] {
		idx, ok := nameIndex[name]
		if !ok {
			return nil, fmt.Errorf("%w: matrix %s references unknown attraction %q", coreerrors.ErrUnknownAttraction, path, name)
		}
		colIndex[col] = idx
	}

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	seenRows := 0

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvio: read matrix row in %s: %w", path, err)
		}
		if len(record) != len(header) {
			return nil, fmt.Errorf("%w: matrix %s row has %d cells, want %d", coreerrors.ErrInputParse, path, len(record), len(header))
		}

		rowName := record[0]
		rowIdx, ok := nameIndex[rowName]
		if !ok {
			return nil, fmt.Errorf("%w: matrix %s references unknown attraction %q", coreerrors.ErrUnknownAttraction, path, rowName)
		}

		for col, cell := range record[1:] {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: matrix cell %q in %s: %v", coreerrors.ErrInputParse, cell, path, err)
			}
			rows[rowIdx][colIndex[col]] = v
		}
		seenRows++
	}

	if seenRows != n {
		return nil, fmt.Errorf("%w: matrix %s has %d rows, want %d attractions", coreerrors.ErrInputParse, path, seenRows, n)
	}

	return rows, nil
}
