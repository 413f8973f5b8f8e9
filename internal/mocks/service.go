package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"ulascansenturk/city-weather-service/internal/models"
)

// MockCityWeatherAggregator is a mock type for the service.CityWeatherAggregator type
type MockCityWeatherAggregator struct {
	mock.Mock
}

func NewMockCityWeatherAggregator(t testingT) *MockCityWeatherAggregator {
	m := &MockCityWeatherAggregator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockCityWeatherAggregator) GetCityWeather(ctx context.Context, query string) (*models.CityWeather, error) {
	ret := _m.Called(ctx, query)

	var r0 *models.CityWeather
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.CityWeather)
	}
	return r0, ret.Error(1)
}

// MockWeatherService is a mock type for the service.WeatherService type
type MockWeatherService struct {
	mock.Mock
}

func NewMockWeatherService(t testingT) *MockWeatherService {
	m := &MockWeatherService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MockWeatherService) GetCityWeather(ctx context.Context, city string) (*models.CityWeather, error) {
	ret := _m.Called(ctx, city)

	var r0 *models.CityWeather
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.CityWeather)
	}
	return r0, ret.Error(1)
}

func (_m *MockWeatherService) CompareCities(ctx context.Context, city1, city2 string) (*models.ComparisonResult, error) {
	ret := _m.Called(ctx, city1, city2)

	var r0 *models.ComparisonResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.ComparisonResult)
	}
	return r0, ret.Error(1)
}

func (_m *MockWeatherService) SearchCities(ctx context.Context, query string) ([]models.Location, error) {
	ret := _m.Called(ctx, query)

	var r0 []models.Location
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Location)
	}
	return r0, ret.Error(1)
}

func (_m *MockWeatherService) GetForecast(ctx context.Context, city string) (*models.CityForecast, error) {
	ret := _m.Called(ctx, city)

	var r0 *models.CityForecast
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.CityForecast)
	}
	return r0, ret.Error(1)
}

func (_m *MockWeatherService) GetAirQuality(ctx context.Context, city string) (*models.AirQuality, error) {
	ret := _m.Called(ctx, city)

	var r0 *models.AirQuality
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.AirQuality)
	}
	return r0, ret.Error(1)
}
