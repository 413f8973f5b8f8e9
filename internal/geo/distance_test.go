package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"ulascansenturk/city-weather-service/internal/geo"
)

func TestHaversineLondonTokyo(t *testing.T) {
	d := geo.HaversineKm(51.5074, -0.1278, 35.6895, 139.6917)

	assert.InDelta(t, 9560, d, 50)
	assert.InDelta(t, 10.6, geo.EstimateFlightHours(d), 0.1)
}

func TestHaversineProperties(t *testing.T) {
	points := [][2]float64{
		{51.5074, -0.1278},
		{35.6895, 139.6917},
		{-33.8688, 151.2093},
		{40.7128, -74.0060},
		{0, 0},
		{-8.5569, 125.5603},
		{89.9, 179.9},
	}

	for _, p := range points {
		assert.Equal(t, 0.0, geo.HaversineKm(p[0], p[1], p[0], p[1]))
		for _, q := range points {
			ab := geo.HaversineKm(p[0], p[1], q[0], q[1])
			ba := geo.HaversineKm(q[0], q[1], p[0], p[1])
			assert.InDelta(t, ab, ba, 1e-9)
			assert.GreaterOrEqual(t, ab, 0.0)
		}
	}
}

func TestFlightHoursIsDistanceOverCruiseSpeed(t *testing.T) {
	for _, d := range []float64{0, 1, 343.5, 9560.1234} {
		assert.Equal(t, d/900, geo.EstimateFlightHours(d))
	}
}
