package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"ulascansenturk/city-weather-service/internal/models"
)

// MockCache is a mock type for the weathercache.Cache type
type MockCache struct {
	mock.Mock
}

func NewMockCache(t testingT) *MockCache {
	m := &MockCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockCache) Get(ctx context.Context, key string) (*models.WeatherObservation, bool, error) {
	ret := _m.Called(ctx, key)

	var r0 *models.WeatherObservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.WeatherObservation)
	}
	return r0, ret.Bool(1), ret.Error(2)
}

func (_m *MockCache) Set(ctx context.Context, key string, data *models.WeatherObservation, ttl time.Duration) error {
	ret := _m.Called(ctx, key, data, ttl)
	return ret.Error(0)
}
