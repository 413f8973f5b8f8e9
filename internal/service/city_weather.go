package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/city-weather-service/internal/apperrors"
	"ulascansenturk/city-weather-service/internal/clock"
	"ulascansenturk/city-weather-service/internal/models"
	"ulascansenturk/city-weather-service/internal/providers"
	"ulascansenturk/city-weather-service/internal/resolvers"
	"ulascansenturk/city-weather-service/internal/weathercache"
)

// FailurePolicy decides what a failed weather call does to a city lookup.
type FailurePolicy string

const (
	FailurePolicyFail    FailurePolicy = "fail"
	FailurePolicyDegrade FailurePolicy = "degrade"
)

// LookupMode selects how the weather provider is addressed.
type LookupMode string

const (
	// LookupModeGeocode geocodes first and fetches weather by coordinates.
	LookupModeGeocode LookupMode = "geocode"
	// LookupModeQuery hands the raw city query to the weather provider.
	LookupModeQuery LookupMode = "query"
)

const (
	DefaultCacheTTL     = 10 * time.Minute
	unknownCountry      = "N/A"
	degradedDescription = "Unavailable"
)

// LocalTimeLayout is RFC 3339 with millisecond precision.
const LocalTimeLayout = "2006-01-02T15:04:05.000Z07:00"

type AggregatorOptions struct {
	FailurePolicy FailurePolicy
	LookupMode    LookupMode
	CacheTTL      time.Duration
}

type CityWeatherAggregator interface {
	GetCityWeather(ctx context.Context, query string) (*models.CityWeather, error)
}

type cityWeatherAggregator struct {
	weatherAPI providers.WeatherAPIService
	geo        resolvers.GeoResolver
	timeZone   resolvers.TimeZoneResolver
	image      resolvers.ImageResolver
	cache      weathercache.Cache
	clock      clock.Clock
	opts       AggregatorOptions
}

// NewCityWeatherAggregator builds the city lookup pipeline. cache may be nil.
func NewCityWeatherAggregator(
	weatherAPI providers.WeatherAPIService,
	geo resolvers.GeoResolver,
	timeZone resolvers.TimeZoneResolver,
	image resolvers.ImageResolver,
	cache weathercache.Cache,
	clk clock.Clock,
	opts AggregatorOptions,
) CityWeatherAggregator {
	if opts.FailurePolicy == "" {
		opts.FailurePolicy = FailurePolicyFail
	}
	if opts.LookupMode == "" {
		opts.LookupMode = LookupModeGeocode
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if clk == nil {
		clk = clock.Real{}
	}

	return &cityWeatherAggregator{
		weatherAPI: weatherAPI,
		geo:        geo,
		timeZone:   timeZone,
		image:      image,
		cache:      cache,
		clock:      clk,
		opts:       opts,
	}
}

func (a *cityWeatherAggregator) GetCityWeather(ctx context.Context, query string) (*models.CityWeather, error) {
	if a.opts.LookupMode == LookupModeQuery {
		return a.byQuery(ctx, query)
	}
	return a.byCoordinates(ctx, query)
}

func (a *cityWeatherAggregator) byCoordinates(ctx context.Context, query string) (*models.CityWeather, error) {
	location, err := a.geo.Resolve(ctx, query)
	if err != nil {
		return nil, err
	}

	now := a.clock.Now()

	// Time zone and image lookups use ctx directly: a failed weather call must not cancel them.
	var (
		wg    sync.WaitGroup
		zone  string
		image string
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		zone = a.timeZone.Resolve(ctx, location.Lat, location.Lon, now.Unix())
	}()
	go func() {
		defer wg.Done()
		image = a.image.Resolve(ctx, location.Name)
	}()

	observation, err := a.observe(ctx, location.Lat, location.Lon)
	wg.Wait()
	if err != nil {
		if !a.degrades(err) {
			return nil, err
		}
		log.Warn().Err(err).Str("city", location.Name).Msg("weather fetch failed, returning degraded record")
	}

	if observation == nil {
		return a.degraded(location.Name, location.Lat, location.Lon, now, zone, image), nil
	}

	record := &models.CityWeather{
		City:    location.Name,
		Country: countryOrUnknown(location.Country),
		Lat:     location.Lat,
		Lon:     location.Lon,
	}
	applyObservation(record, observation)
	stamp(record, now, zone, image)

	return record, nil
}

// byQuery bypasses the cache: coordinates are only known after the call.
func (a *cityWeatherAggregator) byQuery(ctx context.Context, query string) (*models.CityWeather, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, apperrors.NewValidationError("city is required")
	}

	now := a.clock.Now()

	current, err := a.weatherAPI.CurrentWeatherByQuery(ctx, resolvers.NormalizeQuery(trimmed))
	if err != nil {
		if !a.degrades(err) {
			return nil, err
		}
		log.Warn().Err(err).Str("city", trimmed).Msg("weather fetch failed, returning degraded record")
		image := a.image.Resolve(ctx, trimmed)
		return a.degraded(trimmed, 0, 0, now, resolvers.DefaultTimeZone, image), nil
	}

	var (
		wg    sync.WaitGroup
		zone  string
		image string
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		zone = a.timeZone.Resolve(ctx, current.Lat, current.Lon, now.Unix())
	}()
	go func() {
		defer wg.Done()
		image = a.image.Resolve(ctx, current.Name)
	}()
	wg.Wait()

	record := &models.CityWeather{
		City: current.Name,
		Lat:  current.Lat,
		Lon:  current.Lon,
	}
	if current.Country != nil {
		record.Country = countryOrUnknown(*current.Country)
	} else {
		record.Country = unknownCountry
	}
	applyObservation(record, &current.Observation)
	stamp(record, now, zone, image)

	return record, nil
}

// observe reads through the cache. Cache failures are logged and never fail the lookup.
func (a *cityWeatherAggregator) observe(ctx context.Context, lat, lon float64) (*models.WeatherObservation, error) {
	key := weathercache.Key(lat, lon)

	if a.cache != nil {
		cached, ok, err := a.cache.Get(ctx, key)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("weather cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	current, err := a.weatherAPI.CurrentWeather(ctx, lat, lon)
	if err != nil {
		return nil, err
	}
	observation := current.Observation

	if a.cache != nil {
		if err := a.cache.Set(ctx, key, &observation, a.opts.CacheTTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("weather cache write failed")
		}
	}

	return &observation, nil
}

// degrades reports whether err should produce a degraded record. A missing
// credential always fails.
func (a *cityWeatherAggregator) degrades(err error) bool {
	return a.opts.FailurePolicy == FailurePolicyDegrade && !apperrors.IsConfig(err)
}

func (a *cityWeatherAggregator) degraded(city string, lat, lon float64, now time.Time, zone, image string) *models.CityWeather {
	description := degradedDescription
	record := &models.CityWeather{
		City:        city,
		Country:     unknownCountry,
		Lat:         lat,
		Lon:         lon,
		Description: &description,
	}
	stamp(record, now, zone, image)
	return record
}

func applyObservation(record *models.CityWeather, obs *models.WeatherObservation) {
	record.Temperature = obs.Temperature
	record.Humidity = obs.Humidity
	record.Wind = obs.Wind
	record.Description = obs.Description
	record.Icon = obs.Icon
	record.Sunrise = obs.Sunrise
	record.Sunset = obs.Sunset
}

// stamp sets the capture time, zone and image fields.
func stamp(record *models.CityWeather, now time.Time, zone, image string) {
	zoneID, local, offset := localize(now, zone)

	record.UTCEpochMs = now.UnixMilli()
	record.TimeZoneID = zoneID
	record.LocalTime = local.Format(LocalTimeLayout)
	record.UTCOffsetSec = offset
	if image != "" {
		record.ImageURL = &image
	}
}

// localize falls back to UTC for zone ids the tz database does not know.
func localize(now time.Time, zone string) (string, time.Time, int) {
	if zone == "" {
		zone = resolvers.DefaultTimeZone
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		log.Debug().Err(err).Str("zone", zone).Msg("unknown time zone, using UTC")
		zone, loc = resolvers.DefaultTimeZone, time.UTC
	}

	local := now.In(loc)
	_, offset := local.Zone()
	return zone, local, offset
}

func countryOrUnknown(country string) string {
	if country == "" {
		return unknownCountry
	}
	return country
}
