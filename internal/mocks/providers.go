package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"ulascansenturk/city-weather-service/internal/models"
	"ulascansenturk/city-weather-service/internal/providers"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockWeatherAPIService is a mock type for the providers.WeatherAPIService type
type MockWeatherAPIService struct {
	mock.Mock
}

func NewMockWeatherAPIService(t testingT) *MockWeatherAPIService {
	m := &MockWeatherAPIService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockWeatherAPIService) Geocode(ctx context.Context, query string, limit int) ([]models.Location, error) {
	ret := _m.Called(ctx, query, limit)

	var r0 []models.Location
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Location)
	}
	return r0, ret.Error(1)
}

func (_m *MockWeatherAPIService) CurrentWeather(ctx context.Context, lat, lon float64) (*providers.CurrentWeather, error) {
	ret := _m.Called(ctx, lat, lon)

	var r0 *providers.CurrentWeather
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*providers.CurrentWeather)
	}
	return r0, ret.Error(1)
}

func (_m *MockWeatherAPIService) CurrentWeatherByQuery(ctx context.Context, query string) (*providers.CurrentWeather, error) {
	ret := _m.Called(ctx, query)

	var r0 *providers.CurrentWeather
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*providers.CurrentWeather)
	}
	return r0, ret.Error(1)
}

func (_m *MockWeatherAPIService) Forecast(ctx context.Context, lat, lon float64) ([]models.ForecastSample, error) {
	ret := _m.Called(ctx, lat, lon)

	var r0 []models.ForecastSample
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.ForecastSample)
	}
	return r0, ret.Error(1)
}

func (_m *MockWeatherAPIService) AirPollution(ctx context.Context, lat, lon float64) (*providers.AirPollution, error) {
	ret := _m.Called(ctx, lat, lon)

	var r0 *providers.AirPollution
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*providers.AirPollution)
	}
	return r0, ret.Error(1)
}

// MockTimeZoneAPIService is a mock type for the providers.TimeZoneAPIService type
type MockTimeZoneAPIService struct {
	mock.Mock
}

func NewMockTimeZoneAPIService(t testingT) *MockTimeZoneAPIService {
	m := &MockTimeZoneAPIService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockTimeZoneAPIService) TimeZone(ctx context.Context, lat, lon float64, atEpochSec int64) (string, error) {
	ret := _m.Called(ctx, lat, lon, atEpochSec)
	return ret.String(0), ret.Error(1)
}

// MockEncyclopediaService is a mock type for the providers.EncyclopediaService type
type MockEncyclopediaService struct {
	mock.Mock
}

func NewMockEncyclopediaService(t testingT) *MockEncyclopediaService {
	m := &MockEncyclopediaService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockEncyclopediaService) SearchTitle(ctx context.Context, query string) (string, error) {
	ret := _m.Called(ctx, query)
	return ret.String(0), ret.Error(1)
}

func (_m *MockEncyclopediaService) SummaryImage(ctx context.Context, title string) (string, error) {
	ret := _m.Called(ctx, title)
	return ret.String(0), ret.Error(1)
}
