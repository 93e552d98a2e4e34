package oracle

import "math"

// haversineMeters computes the great-circle distance between two
// lat/lon points in meters, adapted from the teacher's
// pkg/maps.haversineDistance (which returned kilometers using hand-rolled
// trig wrappers); this version uses math.* directly and returns meters,
// since the oracle's distance matrices are in meters (spec.md §6).
func haversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusMeters = 6371000.0

	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusMeters * c
}

// walkingMinutes estimates walking time in minutes from a distance in
// meters, assuming a 5 km/h walking speed (the teacher's
// CalculateWalkingTime constant).
func walkingMinutes(meters float64) float64 {
	const walkingSpeedKmH = 5.0
	km := meters / 1000.0
	return (km / walkingSpeedKmH) * 60.0
}
