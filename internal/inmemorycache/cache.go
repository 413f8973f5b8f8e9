// Package inmemorycache is the process-local weathercache.Cache.
package inmemorycache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"ulascansenturk/city-weather-service/internal/clock"
	"ulascansenturk/city-weather-service/internal/models"
)

// Entries are stored encoded so callers never share memory with the cache.
type cacheEntry struct {
	data       []byte
	expiration time.Time
}

// InMemoryCache expires entries lazily: a stale entry is dropped by the Get
// that finds it. There is no sweeper goroutine.
type InMemoryCache struct {
	cache map[string]cacheEntry
	mutex sync.Mutex
	clock clock.Clock
}

func NewInMemoryCache(clk clock.Clock) *InMemoryCache {
	if clk == nil {
		clk = clock.Real{}
	}

	return &InMemoryCache{
		cache: make(map[string]cacheEntry),
		clock: clk,
	}
}

func (m *InMemoryCache) Get(_ context.Context, key string) (*models.WeatherObservation, bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	entry, exists := m.cache[key]
	if !exists {
		return nil, false, nil
	}

	if !m.clock.Now().Before(entry.expiration) {
		delete(m.cache, key)
		return nil, false, nil
	}

	var data models.WeatherObservation
	if err := json.Unmarshal(entry.data, &data); err != nil {
		return nil, false, err
	}

	return &data, true, nil
}

func (m *InMemoryCache) Set(_ context.Context, key string, data *models.WeatherObservation, ttl time.Duration) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.cache[key] = cacheEntry{
		data:       jsonData,
		expiration: m.clock.Now().Add(ttl),
	}

	return nil
}

// Len counts stored entries, expired ones included.
func (m *InMemoryCache) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return len(m.cache)
}
