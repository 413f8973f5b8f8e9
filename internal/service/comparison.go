package service

import (
	"time"

	"ulascansenturk/city-weather-service/internal/geo"
	"ulascansenturk/city-weather-service/internal/models"
)

// CompareCities derives the time difference, great-circle distance, flight
// estimate and weather deltas of two records. It performs no I/O.
func CompareCities(a, b models.CityWeather) models.ComparisonResult {
	delta := localOffsetMs(a) - localOffsetMs(b)
	if delta < 0 {
		delta = -delta
	}

	distance := geo.HaversineKm(a.Lat, a.Lon, b.Lat, b.Lon)

	return models.ComparisonResult{
		CityA:            a,
		CityB:            b,
		TimeDeltaMs:      delta,
		DistanceKm:       distance,
		FlightHours:      geo.EstimateFlightHours(distance),
		TemperatureDelta: difference(a.Temperature, b.Temperature),
		HumidityDelta:    difference(a.Humidity, b.Humidity),
		WindDelta:        difference(a.Wind, b.Wind),
	}
}

// localOffsetMs is the distance between the city's wall clock, read as if it
// were UTC, and the record's capture instant. Records captured at different
// instants still compare by zone alone.
func localOffsetMs(c models.CityWeather) int64 {
	if c.LocalTime != "" {
		if local, err := time.Parse(time.RFC3339, c.LocalTime); err == nil {
			wall := time.Date(local.Year(), local.Month(), local.Day(),
				local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), time.UTC)
			return wall.UnixMilli() - c.UTCEpochMs
		}
	}
	return int64(c.UTCOffsetSec) * 1000
}

func difference(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	d := *a - *b
	return &d
}
