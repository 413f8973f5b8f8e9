package service

import (
	"context"
	"strings"

	"golang.org/x/sync/singleflight"
	"ulascansenturk/city-weather-service/internal/apperrors"
	"ulascansenturk/city-weather-service/internal/models"
	"ulascansenturk/city-weather-service/internal/resolvers"
)

type coalescingAggregator struct {
	next  CityWeatherAggregator
	group singleflight.Group
}

// NewCoalescingAggregator merges identical in-flight lookups into one upstream
// chain. Every caller receives its own copy of the shared record.
func NewCoalescingAggregator(next CityWeatherAggregator) CityWeatherAggregator {
	return &coalescingAggregator{next: next}
}

func (c *coalescingAggregator) GetCityWeather(ctx context.Context, query string) (*models.CityWeather, error) {
	key := coalesceKey(query)

	// The shared call must outlive a single caller giving up.
	shared := context.WithoutCancel(ctx)
	resultChan := c.group.DoChan(key, func() (interface{}, error) {
		return c.next.GetCityWeather(shared, query)
	})

	select {
	case res := <-resultChan:
		if res.Err != nil {
			return nil, res.Err
		}
		record := *res.Val.(*models.CityWeather)
		return &record, nil
	case <-ctx.Done():
		return nil, apperrors.NewUpstreamError("request timed out", ctx.Err())
	}
}

func coalesceKey(query string) string {
	return strings.ToLower(strings.TrimSpace(resolvers.NormalizeQuery(query)))
}
