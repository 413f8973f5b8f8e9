package resolvers

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"ulascansenturk/city-weather-service/internal/providers"
)

const DefaultFallbackImageURL = "https://source.unsplash.com/600x400/"

// ImageResolver always returns a usable image URL.
type ImageResolver interface {
	Resolve(ctx context.Context, cityName string) string
}

// imageStage yields an image URL, "" when the stage found nothing.
type imageStage struct {
	name    string
	attempt func(ctx context.Context, cityName string) (string, error)
}

type imageResolver struct {
	stages      []imageStage
	fallbackURL string
}

func NewImageResolver(encyclopedia providers.EncyclopediaService, fallbackURL string) ImageResolver {
	if fallbackURL == "" {
		fallbackURL = DefaultFallbackImageURL
	}

	return &imageResolver{
		stages: []imageStage{
			{
				name: "search-summary",
				attempt: func(ctx context.Context, cityName string) (string, error) {
					title, err := encyclopedia.SearchTitle(ctx, cityName)
					if err != nil || title == "" {
						return "", err
					}
					return encyclopedia.SummaryImage(ctx, title)
				},
			},
			{
				name:    "direct-summary",
				attempt: encyclopedia.SummaryImage,
			},
		},
		fallbackURL: fallbackURL,
	}
}

// Resolve runs the stages in order and stops at the first image.
// Stage errors count as "no image" and are only logged.
func (r *imageResolver) Resolve(ctx context.Context, cityName string) string {
	normalized := strings.TrimSpace(cityName)

	for _, stage := range r.stages {
		image, err := stage.attempt(ctx, normalized)
		if err != nil {
			log.Debug().Err(err).Str("stage", stage.name).Str("city", normalized).Msg("image stage failed")
			continue
		}
		if image != "" {
			return image
		}
	}

	return r.fallback(normalized)
}

func (r *imageResolver) fallback(cityName string) string {
	base := strings.TrimSuffix(r.fallbackURL, "/")
	return fmt.Sprintf("%s/?%s", base, url.PathEscape(cityName+",city,skyline"))
}
