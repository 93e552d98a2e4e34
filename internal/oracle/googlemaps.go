package oracle

import (
	"context"
	"fmt"

	gmaps "googlemaps.github.io/maps"

	"tourplanner/internal/domain"
)

// GoogleMapsOracle answers CAR travel time via the Google Maps Distance
// Matrix API, the same call shape as the teacher's
// GoogleMapsService.GetTravelTime, generalized from a single origin/
// destination pair to an arbitrary attraction index. Distance (and so CAR
// cost) is the haversine estimate for both modes, not an API value. WALK
// travel time uses the haversine estimate (as the teacher's CalculateWalkingTime free
// function does) since the Distance Matrix API's walking mode is a
// premium feature the teacher's own code avoided ("Remove traffic
// parameters that require premium APIs").
type GoogleMapsOracle struct {
	client      *gmaps.Client
	attractions []domain.Attraction

	walkingPreferenceMinutes int
	carCostPerKm             float64
}

// NewGoogleMaps builds a live oracle over the given catalog. apiKey
// follows the same GOOGLE_MAPS_API_KEY convention as the teacher's
// cmd/main.go.
func NewGoogleMaps(apiKey string, attractions []domain.Attraction, walkingPreferenceMinutes int, carCostPerKm float64) (*GoogleMapsOracle, error) {
	client, err := gmaps.NewClient(gmaps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("oracle: failed to create google maps client: %w", err)
	}
	return &GoogleMapsOracle{
		client:                   client,
		attractions:              attractions,
		walkingPreferenceMinutes: walkingPreferenceMinutes,
		carCostPerKm:             carCostPerKm,
	}, nil
}

func (o *GoogleMapsOracle) attraction(idx int) (domain.Attraction, error) {
	if err := checkIndex(idx, len(o.attractions)); err != nil {
		return domain.Attraction{}, err
	}
	return o.attractions[idx], nil
}

func (o *GoogleMapsOracle) Distance(a, b int, mode domain.TransportMode) (float64, error) {
	from, err := o.attraction(a)
	if err != nil {
		return 0, err
	}
	to, err := o.attraction(b)
	if err != nil {
		return 0, err
	}
	if a == b {
		return 0, nil
	}
	return haversineMeters(from.Lat, from.Lon, to.Lat, to.Lon), nil
}

func (o *GoogleMapsOracle) TravelTime(a, b int, mode domain.TransportMode) (float64, error) {
	from, err := o.attraction(a)
	if err != nil {
		return 0, err
	}
	to, err := o.attraction(b)
	if err != nil {
		return 0, err
	}
	if a == b {
		return 0, nil
	}

	if mode == domain.Walk {
		meters := haversineMeters(from.Lat, from.Lon, to.Lat, to.Lon)
		return walkingMinutes(meters), nil
	}

	ctx := context.Background()
	req := &gmaps.DistanceMatrixRequest{
		Origins:      []string{fmt.Sprintf("%f,%f", from.Lat, from.Lon)},
		Destinations: []string{fmt.Sprintf("%f,%f", to.Lat, to.Lon)},
		Mode:         gmaps.TravelModeDriving,
		Units:        gmaps.UnitsMetric,
	}

	resp, err := o.client.DistanceMatrix(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("oracle: distance matrix request failed: %w", err)
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return 0, fmt.Errorf("oracle: no route found between %s and %s", from.Name, to.Name)
	}
	element := resp.Rows[0].Elements[0]
	if element.Status != "OK" {
		return 0, fmt.Errorf("oracle: route calculation failed: %s", element.Status)
	}
	return element.Duration.Minutes(), nil
}

func (o *GoogleMapsOracle) TravelCost(a, b int, mode domain.TransportMode) (float64, error) {
	if mode == domain.Walk {
		return 0, nil
	}
	dist, err := o.Distance(a, b, domain.Car)
	if err != nil {
		return 0, err
	}
	return (dist / 1000.0) * o.carCostPerKm, nil
}

func (o *GoogleMapsOracle) PreferredMode(a, b int) (domain.TransportMode, error) {
	walkMinutes, err := o.TravelTime(a, b, domain.Walk)
	if err != nil {
		return domain.Car, err
	}
	if walkMinutes <= float64(o.walkingPreferenceMinutes) {
		return domain.Walk, nil
	}
	return domain.Car, nil
}
