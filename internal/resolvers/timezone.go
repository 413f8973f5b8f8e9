package resolvers

import (
	"context"

	"github.com/rs/zerolog/log"
	"ulascansenturk/city-weather-service/internal/providers"
)

const DefaultTimeZone = "UTC"

// TimeZoneResolver never fails: any problem resolves to DefaultTimeZone.
type TimeZoneResolver interface {
	Resolve(ctx context.Context, lat, lon float64, atEpochSec int64) string
}

type timeZoneResolver struct {
	timeZoneAPI providers.TimeZoneAPIService
}

func NewTimeZoneResolver(timeZoneAPI providers.TimeZoneAPIService) TimeZoneResolver {
	return &timeZoneResolver{timeZoneAPI: timeZoneAPI}
}

func (t *timeZoneResolver) Resolve(ctx context.Context, lat, lon float64, atEpochSec int64) string {
	zone, err := t.timeZoneAPI.TimeZone(ctx, lat, lon, atEpochSec)
	if err != nil {
		log.Debug().Err(err).Float64("lat", lat).Float64("lon", lon).Msg("time zone lookup failed, using UTC")
		return DefaultTimeZone
	}
	if zone == "" {
		return DefaultTimeZone
	}
	return zone
}
