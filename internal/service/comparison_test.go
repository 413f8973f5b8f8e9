package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"ulascansenturk/city-weather-service/internal/models"
	"ulascansenturk/city-weather-service/internal/service"
)

func TestCompareCitiesLondonTokyo(t *testing.T) {
	london := models.CityWeather{
		City: "London", Lat: 51.5074, Lon: -0.1278,
		UTCEpochMs: 1705320000000, LocalTime: "2024-01-15T12:00:00Z",
		Temperature: ptr(7.0), Humidity: ptr(80.0), Wind: ptr(5.1),
	}
	tokyo := models.CityWeather{
		City: "Tokyo", Lat: 35.6895, Lon: 139.6917,
		UTCEpochMs: 1705320000000, LocalTime: "2024-01-15T21:00:00+09:00", UTCOffsetSec: 32400,
		Temperature: ptr(8.5), Humidity: ptr(61.0), Wind: ptr(3.6),
	}

	result := service.CompareCities(london, tokyo)

	assert.Equal(t, "London", result.CityA.City)
	assert.Equal(t, "Tokyo", result.CityB.City)
	assert.Equal(t, int64(9*3600*1000), result.TimeDeltaMs)
	assert.InDelta(t, 9560, result.DistanceKm, 50)
	assert.InDelta(t, 10.6, result.FlightHours, 0.1)
	assert.Equal(t, result.DistanceKm/900, result.FlightHours)
	assert.InDelta(t, -1.5, *result.TemperatureDelta, 1e-9)
	assert.InDelta(t, 19.0, *result.HumidityDelta, 1e-9)
	assert.InDelta(t, 1.5, *result.WindDelta, 1e-9)
}

func TestCompareCitiesIsSymmetricInMagnitude(t *testing.T) {
	a := models.CityWeather{Lat: 40.7128, Lon: -74.0060, LocalTime: "2024-01-15T07:00:00-05:00"}
	b := models.CityWeather{Lat: 27.7172, Lon: 85.3240, LocalTime: "2024-01-15T17:45:00+05:45"}

	ab := service.CompareCities(a, b)
	ba := service.CompareCities(b, a)

	assert.Equal(t, ab.TimeDeltaMs, ba.TimeDeltaMs)
	assert.Equal(t, int64((10*3600+45*60)*1000), ab.TimeDeltaMs)
	assert.InDelta(t, ab.DistanceKm, ba.DistanceKm, 1e-9)
	assert.GreaterOrEqual(t, ab.DistanceKm, 0.0)
}

func TestCompareCitiesFallsBackToOffsetArithmetic(t *testing.T) {
	a := models.CityWeather{UTCEpochMs: 1705320000000, UTCOffsetSec: 19800}
	b := models.CityWeather{UTCEpochMs: 1705320000000, UTCOffsetSec: -12600}

	result := service.CompareCities(a, b)

	assert.Equal(t, int64((19800+12600)*1000), result.TimeDeltaMs)
}

func TestCompareCitiesNullDeltas(t *testing.T) {
	a := models.CityWeather{Temperature: ptr(20.0)}
	b := models.CityWeather{Humidity: ptr(50.0)}

	result := service.CompareCities(a, b)

	assert.Nil(t, result.TemperatureDelta)
	assert.Nil(t, result.HumidityDelta)
	assert.Nil(t, result.WindDelta)
	assert.Zero(t, result.DistanceKm)
	assert.Zero(t, result.FlightHours)
}

func TestCompareCitiesIgnoresCaptureSkew(t *testing.T) {
	london := models.CityWeather{UTCEpochMs: 1705320000000, LocalTime: "2024-01-15T12:00:00.000Z"}
	tokyo := models.CityWeather{UTCEpochMs: 1705320001500, LocalTime: "2024-01-15T21:00:01.500+09:00"}

	result := service.CompareCities(london, tokyo)

	assert.Equal(t, int64(9*3600*1000), result.TimeDeltaMs)
}
