package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"ulascansenturk/city-weather-service/internal/models"
)

// MockGeoResolver is a mock type for the resolvers.GeoResolver type
type MockGeoResolver struct {
	mock.Mock
}

func NewMockGeoResolver(t testingT) *MockGeoResolver {
	m := &MockGeoResolver{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockGeoResolver) Resolve(ctx context.Context, query string) (models.Location, error) {
	ret := _m.Called(ctx, query)

	var r0 models.Location
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(models.Location)
	}
	return r0, ret.Error(1)
}

func (_m *MockGeoResolver) Search(ctx context.Context, query string) ([]models.Location, error) {
	ret := _m.Called(ctx, query)

	var r0 []models.Location
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Location)
	}
	return r0, ret.Error(1)
}

// MockTimeZoneResolver is a mock type for the resolvers.TimeZoneResolver type
type MockTimeZoneResolver struct {
	mock.Mock
}

func NewMockTimeZoneResolver(t testingT) *MockTimeZoneResolver {
	m := &MockTimeZoneResolver{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockTimeZoneResolver) Resolve(ctx context.Context, lat, lon float64, atEpochSec int64) string {
	ret := _m.Called(ctx, lat, lon, atEpochSec)
	return ret.String(0)
}

// MockImageResolver is a mock type for the resolvers.ImageResolver type
type MockImageResolver struct {
	mock.Mock
}

func NewMockImageResolver(t testingT) *MockImageResolver {
	m := &MockImageResolver{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockImageResolver) Resolve(ctx context.Context, cityName string) string {
	ret := _m.Called(ctx, cityName)
	return ret.String(0)
}
