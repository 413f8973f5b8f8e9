package resolvers

import (
	"context"
	"strings"

	"ulascansenturk/city-weather-service/internal/apperrors"
	"ulascansenturk/city-weather-service/internal/models"
	"ulascansenturk/city-weather-service/internal/providers"
)

const (
	weatherLookupLimit = 1
	suggestionLimit    = 5
)

// cityAliases pins ambiguous bare names to the place users mean.
// Keys are trimmed and lower-cased.
var cityAliases = map[string]string{
	"washington": "Washington, D.C.,US",
	"dili":       "Dili,TL",
}

// NormalizeQuery applies the alias table. Non-aliased queries pass through unchanged.
func NormalizeQuery(query string) string {
	if alias, ok := cityAliases[strings.ToLower(strings.TrimSpace(query))]; ok {
		return alias
	}
	return query
}

type GeoResolver interface {
	Resolve(ctx context.Context, query string) (models.Location, error)
	Search(ctx context.Context, query string) ([]models.Location, error)
}

type geoResolver struct {
	weatherAPI providers.WeatherAPIService
}

func NewGeoResolver(weatherAPI providers.WeatherAPIService) GeoResolver {
	return &geoResolver{weatherAPI: weatherAPI}
}

func (g *geoResolver) Resolve(ctx context.Context, query string) (models.Location, error) {
	if strings.TrimSpace(query) == "" {
		return models.Location{}, apperrors.NewValidationError("city is required")
	}

	locations, err := g.weatherAPI.Geocode(ctx, NormalizeQuery(query), weatherLookupLimit)
	if err != nil {
		return models.Location{}, err
	}
	if len(locations) == 0 {
		return models.Location{}, apperrors.NewNotFoundError("City not found")
	}

	return locations[0], nil
}

func (g *geoResolver) Search(ctx context.Context, query string) ([]models.Location, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperrors.NewValidationError("query parameter 'q' is required")
	}

	return g.weatherAPI.Geocode(ctx, NormalizeQuery(strings.TrimSpace(query)), suggestionLimit)
}
