// Package geo holds great-circle helpers used by the comparison view.
package geo

import "math"

const (
	EarthRadiusKm = 6371.0
	// CruiseSpeedKmH is an assumed commercial jet cruise speed.
	CruiseSpeedKmH = 900.0
)

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// HaversineKm returns the great-circle distance between two points in kilometres.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Pow(math.Sin(dLon/2), 2)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// EstimateFlightHours is a straight-line estimate, not a routed flight time.
func EstimateFlightHours(distanceKm float64) float64 {
	return distanceKm / CruiseSpeedKmH
}
