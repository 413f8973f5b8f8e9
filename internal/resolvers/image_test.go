package resolvers_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"ulascansenturk/city-weather-service/internal/mocks"
	"ulascansenturk/city-weather-service/internal/resolvers"
)

type ImageResolverTestSuite struct {
	suite.Suite
	encyclopedia *mocks.MockEncyclopediaService
	resolver     resolvers.ImageResolver
	ctx          context.Context
}

func (s *ImageResolverTestSuite) SetupTest() {
	s.encyclopedia = mocks.NewMockEncyclopediaService(s.T())
	s.resolver = resolvers.NewImageResolver(s.encyclopedia, "")
	s.ctx = context.Background()
}

func (s *ImageResolverTestSuite) TestSearchThenSummary() {
	s.encyclopedia.On("SearchTitle", mock.Anything, "Paris").Return("Paris", nil)
	s.encyclopedia.On("SummaryImage", mock.Anything, "Paris").Return("https://upload.example/paris.jpg", nil).Once()

	s.Equal("https://upload.example/paris.jpg", s.resolver.Resolve(s.ctx, " Paris "))
}

func (s *ImageResolverTestSuite) TestSearchFailsFallsBackToDirectSummary() {
	s.encyclopedia.On("SearchTitle", mock.Anything, "Tokyo").Return("", errors.New("connection reset"))
	s.encyclopedia.On("SummaryImage", mock.Anything, "Tokyo").Return("https://upload.example/tokyo.jpg", nil).Once()

	s.Equal("https://upload.example/tokyo.jpg", s.resolver.Resolve(s.ctx, "Tokyo"))
}

func (s *ImageResolverTestSuite) TestSummaryWithoutImageFallsBackToDirectSummary() {
	s.encyclopedia.On("SearchTitle", mock.Anything, "Lyon").Return("Lyon (disambiguation)", nil)
	s.encyclopedia.On("SummaryImage", mock.Anything, "Lyon (disambiguation)").Return("", nil)
	s.encyclopedia.On("SummaryImage", mock.Anything, "Lyon").Return("https://upload.example/lyon.jpg", nil)

	s.Equal("https://upload.example/lyon.jpg", s.resolver.Resolve(s.ctx, "Lyon"))
}

func (s *ImageResolverTestSuite) TestAllStagesFailUsesStockFallback() {
	s.encyclopedia.On("SearchTitle", mock.Anything, "London").Return("London", nil)
	s.encyclopedia.On("SummaryImage", mock.Anything, "London").Return("", errors.New("status code: 503"))

	image := s.resolver.Resolve(s.ctx, "London")

	s.True(strings.HasPrefix(image, "https://source.unsplash.com/600x400/?"))
	parsed, err := url.Parse(image)
	s.Require().NoError(err)
	query, err := url.QueryUnescape(parsed.RawQuery)
	s.Require().NoError(err)
	s.Equal("London,city,skyline", query)
}

func (s *ImageResolverTestSuite) TestFallbackEncodesSpaces() {
	s.encyclopedia.On("SearchTitle", mock.Anything, "New York").Return("", nil)
	s.encyclopedia.On("SummaryImage", mock.Anything, "New York").Return("", nil)

	s.Equal("https://source.unsplash.com/600x400/?New%20York%2Ccity%2Cskyline", s.resolver.Resolve(s.ctx, "New York"))
}

func (s *ImageResolverTestSuite) TestCustomFallbackURL() {
	s.encyclopedia.On("SearchTitle", mock.Anything, "Oslo").Return("", errors.New("timeout"))
	s.encyclopedia.On("SummaryImage", mock.Anything, "Oslo").Return("", errors.New("timeout"))

	resolver := resolvers.NewImageResolver(s.encyclopedia, "https://images.example/600x400")

	s.Equal("https://images.example/600x400/?Oslo%2Ccity%2Cskyline", resolver.Resolve(s.ctx, "Oslo"))
}

func TestImageResolverSuite(t *testing.T) {
	suite.Run(t, new(ImageResolverTestSuite))
}
