package metrics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"ulascansenturk/city-weather-service/internal/metrics"
	"ulascansenturk/city-weather-service/internal/mocks"
	"ulascansenturk/city-weather-service/internal/models"
	"ulascansenturk/city-weather-service/internal/providers"
	"ulascansenturk/city-weather-service/internal/weathercache"
)

var (
	_ providers.CallObserver = (*metrics.ProviderMetrics)(nil)
	_ weathercache.Cache     = (*metrics.InstrumentedCache)(nil)
)

func TestProviderMetrics(t *testing.T) {
	collector := metrics.NewCollector(prometheus.NewRegistry())
	observer := metrics.NewProviderMetrics(collector)

	observer.ObserveCall("openweather", "success", 120*time.Millisecond)
	observer.ObserveCall("openweather", "success", 80*time.Millisecond)
	observer.ObserveCall("openweather", "failure", 8*time.Second)
	observer.ObserveCall("wikipedia", "rejected", 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.ProviderCalls.WithLabelValues("openweather", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.ProviderCalls.WithLabelValues("openweather", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.ProviderCalls.WithLabelValues("wikipedia", "rejected")))
	assert.Equal(t, 2, testutil.CollectAndCount(collector.ProviderTime))
}

func TestInstrumentedCache(t *testing.T) {
	collector := metrics.NewCollector(prometheus.NewRegistry())
	inner := mocks.NewMockCache(t)
	cache := metrics.NewInstrumentedCache(inner, "memory", collector)
	ctx := context.Background()

	temp := 12.0
	cached := &models.WeatherObservation{Temperature: &temp}
	inner.On("Get", mock.Anything, "1,1").Return(cached, true, nil)
	inner.On("Get", mock.Anything, "2,2").Return(nil, false, nil)
	inner.On("Get", mock.Anything, "3,3").Return(nil, false, errors.New("backend down"))
	inner.On("Set", mock.Anything, "2,2", cached, time.Minute).Return(nil)

	data, ok, err := cache.Get(ctx, "1,1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, cached, data)

	_, ok, err = cache.Get(ctx, "2,2")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = cache.Get(ctx, "3,3")
	assert.Error(t, err)

	require.NoError(t, cache.Set(ctx, "2,2", cached, time.Minute))

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.CacheRequests.WithLabelValues("memory", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.CacheRequests.WithLabelValues("memory", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.CacheRequests.WithLabelValues("memory", "error")))
	assert.Equal(t, 2, testutil.CollectAndCount(collector.CacheLatency))
}

func TestNewCollectorRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewCollector(reg)

	assert.Panics(t, func() { metrics.NewCollector(reg) })
}
