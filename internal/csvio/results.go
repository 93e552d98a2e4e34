package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"tourplanner/internal/coreerrors"
	"tourplanner/internal/domain"
)

var resultHeader = []string{
	"solution_id", "cost", "time", "num_attractions", "num_neighborhoods", "sequence", "transport_modes",
}

// WriteResults writes the final front/archive as a result set CSV
// (spec.md §6): one row per individual, with the attraction sequence
// `|`-joined by attraction name and transport modes `|`-joined WALK/CAR.
func WriteResults(path string, individuals []domain.Individual, attractions []domain.Attraction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csvio: create results file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'
	defer w.Flush()

	if err := w.Write(resultHeader); err != nil {
		return fmt.Errorf("csvio: write results header: %w", err)
	}

	for i, ind := range individuals {
		sequence := make([]string, len(ind.Route.Attractions))
		for j, idx := range ind.Route.Attractions {
			sequence[j] = attractions[idx].Name
		}
		modes := make([]string, len(ind.Route.Modes))
		for j, m := range ind.Route.Modes {
			modes[j] = m.String()
		}

		record := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(ind.Obj.Cost, 'f', -1, 64),
			strconv.FormatFloat(ind.Obj.Time, 'f', -1, 64),
			strconv.Itoa(ind.Obj.NumAttractions),
			strconv.Itoa(ind.Obj.NumNeighborhoods),
			strings.Join(sequence, "|"),
			strings.Join(modes, "|"),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("csvio: write result row: %w", err)
		}
	}

	return w.Error()
}

// ReadResults parses a result set CSV back into individuals for
// comparison tooling (spec.md §8's CSV round-trip property: reparsing a
// written result set yields an identical objective vector). attractions
// resolves the `|`-joined sequence names back to catalog indices; pass
// nil when only the objective vectors are needed (as cmd/compare does),
// in which case Route.Attractions is left unset. Feasible is set true
// because a penalized vector is already self-identifying via the 1e9
// sentinel values.
func ReadResults(path string, attractions []domain.Attraction) ([]domain.Individual, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvio: open results file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.TrimLeadingSpace = true

	if _, err := r.Read(); err != nil {
		return nil, fmt.Errorf("csvio: read results header: %w", err)
	}

	var nameIndex map[string]int
	if attractions != nil {
		nameIndex = make(map[string]int, len(attractions))
		for i, a := range attractions {
			nameIndex[a.Name] = i
		}
	}

	var individuals []domain.Individual
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvio: read result row: %w", err)
		}
		if len(record) != 7 {
			return nil, fmt.Errorf("%w: expected 7 result columns, got %d", coreerrors.ErrInputParse, len(record))
		}

		cost, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: cost %q: %v", coreerrors.ErrInputParse, record[1], err)
		}
		elapsed, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: time %q: %v", coreerrors.ErrInputParse, record[2], err)
		}
		numAttractions, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, fmt.Errorf("%w: num_attractions %q: %v", coreerrors.ErrInputParse, record[3], err)
		}
		numNeighborhoods, err := strconv.Atoi(record[4])
		if err != nil {
			return nil, fmt.Errorf("%w: num_neighborhoods %q: %v", coreerrors.ErrInputParse, record[4], err)
		}

		var sequence []int
		if record[5] != "" && nameIndex != nil {
			for _, name := range strings.Split(record[5], "|") {
				idx, ok := nameIndex[name]
				if !ok {
					return nil, fmt.Errorf("%w: sequence references unknown attraction %q", coreerrors.ErrUnknownAttraction, name)
				}
				sequence = append(sequence, idx)
			}
		}

		var modes []domain.TransportMode
		if record[6] != "" {
			for _, tok := range strings.Split(record[6], "|") {
				modes = append(modes, domain.ParseTransportMode(tok))
			}
		}

		individuals = append(individuals, domain.Individual{
			Route: domain.Route{Attractions: sequence, Modes: modes},
			Obj: domain.ObjectiveVector{
				Cost:             cost,
				Time:             elapsed,
				NumAttractions:   numAttractions,
				NumNeighborhoods: numNeighborhoods,
				Feasible:         true,
			},
		})
	}

	return individuals, nil
}

var historyHeader = []string{
	"generation", "front_size", "hypervolume", "spread", "attractions_in_best", "neighborhoods_in_best",
}

// HistoryRow is one generation/iteration's progress snapshot.
type HistoryRow struct {
	Generation          int
	FrontSize           int
	Hypervolume         float64
	Spread              float64
	AttractionsInBest   int
	NeighborhoodsInBest int
}

// WriteHistory writes the per-generation/per-iteration progress CSV
// (spec.md §6).
func WriteHistory(path string, rows []HistoryRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csvio: create history file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'
	defer w.Flush()

	if err := w.Write(historyHeader); err != nil {
		return fmt.Errorf("csvio: write history header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Generation),
			strconv.Itoa(row.FrontSize),
			strconv.FormatFloat(row.Hypervolume, 'f', -1, 64),
			strconv.FormatFloat(row.Spread, 'f', -1, 64),
			strconv.Itoa(row.AttractionsInBest),
			strconv.Itoa(row.NeighborhoodsInBest),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("csvio: write history row: %w", err)
		}
	}

	return w.Error()
}
