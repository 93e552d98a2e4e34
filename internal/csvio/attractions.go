// Package csvio is the external-interface layer of spec.md §6: it loads
// the attraction catalog and the four transport matrices from CSV, and
// writes result sets, generation/iteration history, and plain-text
// reports back out. Its load/convert split (a row struct decoded from
// the raw format, then a conversion function into the domain model)
// mirrors VancouverParkingRepository's API-response-struct-then-
// convertToDomainModel shape, generalized from JSON decoding over HTTP to
// CSV decoding over a local file.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"tourplanner/internal/coreerrors"
	"tourplanner/internal/domain"
)

// attractionRow is the raw decoded CSV row before domain conversion.
type attractionRow struct {
	Name         string
	Neighborhood string
	Lat          string
	Lon          string
	VisitMinutes string
	Cost         string
	OpeningHHMM  string
	ClosingHHMM  string
}

// LoadAttractions reads the attraction catalog CSV (spec.md §6): header
// "name;neighborhood;lat;lon;visit_minutes;cost;opening_hhmm;closing_hhmm".
func LoadAttractions(path string) ([]domain.Attraction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvio: open attractions: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("csvio: read attractions header: %w", err)
	}
	if len(header) != 8 {
		return nil, fmt.Errorf("%w: expected 8 attraction columns, got %d", coreerrors.ErrInputParse, len(header))
	}

	var attractions []domain.Attraction
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvio: read attraction row: %w", err)
		}

		row := attractionRow{
			Name:         record[0],
			Neighborhood: record[1],
			Lat:          record[2],
			Lon:          record[3],
			VisitMinutes: record[4],
			Cost:         record[5],
			OpeningHHMM:  record[6],
			ClosingHHMM:  record[7],
		}
		attraction, err := convertAttraction(row)
		if err != nil {
			return nil, err
		}
		attractions = append(attractions, attraction)
	}

	return attractions, nil
}

func convertAttraction(row attractionRow) (domain.Attraction, error) {
	lat, err := strconv.ParseFloat(row.Lat, 64)
	if err != nil {
		return domain.Attraction{}, fmt.Errorf("%w: lat %q: %v", coreerrors.ErrInputParse, row.Lat, err)
	}
	lon, err := strconv.ParseFloat(row.Lon, 64)
	if err != nil {
		return domain.Attraction{}, fmt.Errorf("%w: lon %q: %v", coreerrors.ErrInputParse, row.Lon, err)
	}
	visitMinutes, err := strconv.Atoi(row.VisitMinutes)
	if err != nil {
		return domain.Attraction{}, fmt.Errorf("%w: visit_minutes %q: %v", coreerrors.ErrInputParse, row.VisitMinutes, err)
	}
	cost, err := strconv.ParseFloat(row.Cost, 64)
	if err != nil {
		return domain.Attraction{}, fmt.Errorf("%w: cost %q: %v", coreerrors.ErrInputParse, row.Cost, err)
	}

	return domain.Attraction{
		Name:         row.Name,
		Neighborhood: row.Neighborhood,
		Lat:          lat,
		Lon:          lon,
		VisitMinutes: visitMinutes,
		Cost:         cost,
		OpenMinute:   domain.ParseClock(row.OpeningHHMM),
		CloseMinute:  domain.ParseClock(row.ClosingHHMM),
	}, nil
}
