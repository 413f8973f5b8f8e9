package metrics

import (
	"context"
	"time"

	"ulascansenturk/city-weather-service/internal/models"
	"ulascansenturk/city-weather-service/internal/weathercache"
)

// InstrumentedCache counts hits and misses of the wrapped cache.
type InstrumentedCache struct {
	next      weathercache.Cache
	cacheType string
	collector *Collector
}

func NewInstrumentedCache(next weathercache.Cache, cacheType string, collector *Collector) *InstrumentedCache {
	return &InstrumentedCache{next: next, cacheType: cacheType, collector: collector}
}

func (c *InstrumentedCache) Get(ctx context.Context, key string) (*models.WeatherObservation, bool, error) {
	start := time.Now()
	data, ok, err := c.next.Get(ctx, key)
	c.collector.CacheLatency.WithLabelValues(c.cacheType, "get").Observe(time.Since(start).Seconds())

	result := "miss"
	switch {
	case err != nil:
		result = "error"
	case ok:
		result = "hit"
	}
	c.collector.CacheRequests.WithLabelValues(c.cacheType, result).Inc()

	return data, ok, err
}

func (c *InstrumentedCache) Set(ctx context.Context, key string, data *models.WeatherObservation, ttl time.Duration) error {
	start := time.Now()
	err := c.next.Set(ctx, key, data, ttl)
	c.collector.CacheLatency.WithLabelValues(c.cacheType, "set").Observe(time.Since(start).Seconds())
	return err
}
