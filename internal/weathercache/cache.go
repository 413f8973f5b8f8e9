// Package weathercache defines the contract shared by the weather observation caches.
package weathercache

import (
	"context"
	"strconv"
	"time"

	"ulascansenturk/city-weather-service/internal/models"
)

// Cache maps a coordinate key to the last weather observation for it.
// A miss is (nil, false, nil); an error means the backend itself failed.
type Cache interface {
	Get(ctx context.Context, key string) (*models.WeatherObservation, bool, error)
	Set(ctx context.Context, key string, data *models.WeatherObservation, ttl time.Duration) error
}

// Key formats a coordinate as "lat,lon".
func Key(lat, lon float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64)
}
