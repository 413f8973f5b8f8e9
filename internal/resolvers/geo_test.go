package resolvers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"ulascansenturk/city-weather-service/internal/apperrors"
	"ulascansenturk/city-weather-service/internal/mocks"
	"ulascansenturk/city-weather-service/internal/models"
	"ulascansenturk/city-weather-service/internal/resolvers"
)

type GeoResolverTestSuite struct {
	suite.Suite
	weatherAPI *mocks.MockWeatherAPIService
	resolver   resolvers.GeoResolver
	ctx        context.Context
}

func (s *GeoResolverTestSuite) SetupTest() {
	s.weatherAPI = mocks.NewMockWeatherAPIService(s.T())
	s.resolver = resolvers.NewGeoResolver(s.weatherAPI)
	s.ctx = context.Background()
}

func (s *GeoResolverTestSuite) TestNormalizeQuery() {
	s.Equal("Washington, D.C.,US", resolvers.NormalizeQuery("Washington"))
	s.Equal("Washington, D.C.,US", resolvers.NormalizeQuery("  WASHINGTON "))
	s.Equal("Dili,TL", resolvers.NormalizeQuery("dili"))
	s.Equal("London", resolvers.NormalizeQuery("London"))
	s.Equal("Washington State", resolvers.NormalizeQuery("Washington State"))
}

func (s *GeoResolverTestSuite) TestResolveUsesAliasAndLimitOne() {
	washington := models.Location{Name: "Washington", Country: "US", Lat: 38.8951, Lon: -77.0364}
	s.weatherAPI.On("Geocode", mock.Anything, "Washington, D.C.,US", 1).Return([]models.Location{washington}, nil)

	loc, err := s.resolver.Resolve(s.ctx, "Washington")

	s.NoError(err)
	s.Equal(washington, loc)
}

func (s *GeoResolverTestSuite) TestResolveTakesFirstResult() {
	s.weatherAPI.On("Geocode", mock.Anything, "London", 1).Return([]models.Location{
		{Name: "London", Country: "GB", Lat: 51.5074, Lon: -0.1278},
		{Name: "London", Country: "CA", Lat: 42.98, Lon: -81.24},
	}, nil)

	loc, err := s.resolver.Resolve(s.ctx, "London")

	s.NoError(err)
	s.Equal("GB", loc.Country)
}

func (s *GeoResolverTestSuite) TestResolveNotFound() {
	s.weatherAPI.On("Geocode", mock.Anything, "Atlantis", 1).Return([]models.Location{}, nil)

	_, err := s.resolver.Resolve(s.ctx, "Atlantis")

	s.True(apperrors.IsNotFound(err))
}

func (s *GeoResolverTestSuite) TestResolvePropagatesUpstreamError() {
	upstream := apperrors.NewUpstreamStatusError("Geocoding failed", 401, "Unauthorized")
	s.weatherAPI.On("Geocode", mock.Anything, "Paris", 1).Return(nil, upstream)

	_, err := s.resolver.Resolve(s.ctx, "Paris")

	s.ErrorIs(err, upstream)
}

func (s *GeoResolverTestSuite) TestResolveEmptyQuery() {
	_, err := s.resolver.Resolve(s.ctx, "   ")

	s.True(apperrors.IsValidation(err))
	s.weatherAPI.AssertNotCalled(s.T(), "Geocode")
}

func (s *GeoResolverTestSuite) TestSearchUsesLimitFive() {
	results := []models.Location{{Name: "Springfield", Country: "US"}}
	s.weatherAPI.On("Geocode", mock.Anything, "Spring", 5).Return(results, nil)

	locations, err := s.resolver.Search(s.ctx, " Spring ")

	s.NoError(err)
	s.Equal(results, locations)
}

func (s *GeoResolverTestSuite) TestSearchEmptyQuery() {
	_, err := s.resolver.Search(s.ctx, "")

	s.True(apperrors.IsValidation(err))
}

func TestGeoResolverSuite(t *testing.T) {
	suite.Run(t, new(GeoResolverTestSuite))
}
