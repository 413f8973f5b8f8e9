package service

import (
	"context"

	"golang.org/x/sync/errgroup"
	"ulascansenturk/city-weather-service/internal/models"
	"ulascansenturk/city-weather-service/internal/providers"
	"ulascansenturk/city-weather-service/internal/resolvers"
)

// WeatherService is the use-case layer behind the HTTP handlers.
type WeatherService interface {
	GetCityWeather(ctx context.Context, city string) (*models.CityWeather, error)
	CompareCities(ctx context.Context, city1, city2 string) (*models.ComparisonResult, error)
	SearchCities(ctx context.Context, query string) ([]models.Location, error)
	GetForecast(ctx context.Context, city string) (*models.CityForecast, error)
	GetAirQuality(ctx context.Context, city string) (*models.AirQuality, error)
}

type weatherService struct {
	aggregator CityWeatherAggregator
	geo        resolvers.GeoResolver
	weatherAPI providers.WeatherAPIService
}

func NewWeatherService(
	aggregator CityWeatherAggregator,
	geo resolvers.GeoResolver,
	weatherAPI providers.WeatherAPIService,
) WeatherService {
	return &weatherService{
		aggregator: aggregator,
		geo:        geo,
		weatherAPI: weatherAPI,
	}
}

func (s *weatherService) GetCityWeather(ctx context.Context, city string) (*models.CityWeather, error) {
	return s.aggregator.GetCityWeather(ctx, city)
}

// CompareCities looks both cities up concurrently. Either failure fails the comparison.
func (s *weatherService) CompareCities(ctx context.Context, city1, city2 string) (*models.ComparisonResult, error) {
	var a, b *models.CityWeather

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		a, err = s.aggregator.GetCityWeather(gctx, city1)
		return err
	})
	g.Go(func() (err error) {
		b, err = s.aggregator.GetCityWeather(gctx, city2)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := CompareCities(*a, *b)
	return &result, nil
}

func (s *weatherService) SearchCities(ctx context.Context, query string) ([]models.Location, error) {
	locations, err := s.geo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if locations == nil {
		locations = []models.Location{}
	}
	return locations, nil
}

func (s *weatherService) GetForecast(ctx context.Context, city string) (*models.CityForecast, error) {
	location, err := s.geo.Resolve(ctx, city)
	if err != nil {
		return nil, err
	}

	samples, err := s.weatherAPI.Forecast(ctx, location.Lat, location.Lon)
	if err != nil {
		return nil, err
	}

	return &models.CityForecast{
		City:     location.Name,
		Country:  countryOrUnknown(location.Country),
		Forecast: BucketForecast(samples),
	}, nil
}

func (s *weatherService) GetAirQuality(ctx context.Context, city string) (*models.AirQuality, error) {
	location, err := s.geo.Resolve(ctx, city)
	if err != nil {
		return nil, err
	}

	pollution, err := s.weatherAPI.AirPollution(ctx, location.Lat, location.Lon)
	if err != nil {
		return nil, err
	}

	return &models.AirQuality{
		City:       location.Name,
		Country:    countryOrUnknown(location.Country),
		AQI:        pollution.AQI,
		Components: pollution.Components,
	}, nil
}
