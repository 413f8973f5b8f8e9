package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"ulascansenturk/city-weather-service/internal/apperrors"
	"ulascansenturk/city-weather-service/internal/models"
)

const (
	DefaultOpenWeatherBaseURL    = "https://api.openweathermap.org/data/2.5"
	DefaultOpenWeatherGeoBaseURL = "http://api.openweathermap.org/geo/1.0"
)

// WeatherAPIService is the OpenWeather client: geocoding, current weather,
// the 3-hourly forecast and air pollution.
type WeatherAPIService interface {
	Geocode(ctx context.Context, query string, limit int) ([]models.Location, error)
	CurrentWeather(ctx context.Context, lat, lon float64) (*CurrentWeather, error)
	CurrentWeatherByQuery(ctx context.Context, query string) (*CurrentWeather, error)
	Forecast(ctx context.Context, lat, lon float64) ([]models.ForecastSample, error)
	AirPollution(ctx context.Context, lat, lon float64) (*AirPollution, error)
}

type OpenWeatherConfig struct {
	APIKey     string
	BaseURL    string
	GeoBaseURL string
}

type weatherAPIService struct {
	apiKey     string
	baseURL    string
	geoBaseURL string
	requester  *Requester
}

func NewWeatherAPIService(cfg OpenWeatherConfig, requester *Requester) WeatherAPIService {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultOpenWeatherBaseURL
	}
	geoBaseURL := cfg.GeoBaseURL
	if geoBaseURL == "" {
		geoBaseURL = DefaultOpenWeatherGeoBaseURL
	}

	return &weatherAPIService{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		geoBaseURL: geoBaseURL,
		requester:  requester,
	}
}

// CurrentWeather is the normalized current-conditions response.
type CurrentWeather struct {
	Name        string
	Country     *string
	Lat         float64
	Lon         float64
	Observation models.WeatherObservation
}

type AirPollution struct {
	AQI        *int
	Components *models.AirQualityComponents
}

type geocodeResult struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	State   *string `json:"state"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type currentWeatherResponse struct {
	Name  string `json:"name"`
	Coord *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description *string `json:"description"`
		Icon        *string `json:"icon"`
	} `json:"weather"`
	Sys *struct {
		Country *string `json:"country"`
		Sunrise *int64  `json:"sunrise"`
		Sunset  *int64  `json:"sunset"`
	} `json:"sys"`
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main *struct {
			Temp *float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	} `json:"list"`
}

type airPollutionResponse struct {
	List []struct {
		Main *struct {
			AQI *int `json:"aqi"`
		} `json:"main"`
		Components *struct {
			PM25 *float64 `json:"pm2_5"`
			PM10 *float64 `json:"pm10"`
			O3   *float64 `json:"o3"`
			NO2  *float64 `json:"no2"`
		} `json:"components"`
	} `json:"list"`
}

func (s *weatherAPIService) checkKey() error {
	if s.apiKey == "" {
		return apperrors.NewConfigError("OPENWEATHER_API_KEY is not set")
	}
	return nil
}

func (s *weatherAPIService) Geocode(ctx context.Context, query string, limit int) ([]models.Location, error) {
	if err := s.checkKey(); err != nil {
		return nil, err
	}

	values := url.Values{}
	values.Set("q", query)
	values.Set("limit", strconv.Itoa(limit))
	values.Set("appid", s.apiKey)

	var results []geocodeResult
	if err := s.requester.GetJSON(ctx, s.geoBaseURL+"/direct?"+values.Encode(), &results); err != nil {
		return nil, upstreamError("Geocoding failed", err)
	}

	locations := make([]models.Location, 0, len(results))
	for _, r := range results {
		state := r.State
		if state != nil && *state == "" {
			state = nil
		}
		locations = append(locations, models.Location{
			Name:    r.Name,
			Country: r.Country,
			State:   state,
			Lat:     r.Lat,
			Lon:     r.Lon,
		})
	}

	return locations, nil
}

func (s *weatherAPIService) CurrentWeather(ctx context.Context, lat, lon float64) (*CurrentWeather, error) {
	if err := s.checkKey(); err != nil {
		return nil, err
	}

	values := s.coordinateValues(lat, lon)
	values.Set("units", "metric")

	var resp currentWeatherResponse
	if err := s.requester.GetJSON(ctx, s.baseURL+"/weather?"+values.Encode(), &resp); err != nil {
		return nil, upstreamError("Weather fetch failed", err)
	}

	current := resp.normalize()
	current.Lat, current.Lon = lat, lon
	return current, nil
}

func (s *weatherAPIService) CurrentWeatherByQuery(ctx context.Context, query string) (*CurrentWeather, error) {
	if err := s.checkKey(); err != nil {
		return nil, err
	}

	values := url.Values{}
	values.Set("q", query)
	values.Set("appid", s.apiKey)
	values.Set("units", "metric")

	var resp currentWeatherResponse
	if err := s.requester.GetJSON(ctx, s.baseURL+"/weather?"+values.Encode(), &resp); err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Could not fetch weather for %s", query))
		}
		return nil, upstreamError("Weather fetch failed", err)
	}

	current := resp.normalize()
	if current.Name == "" {
		current.Name = query
	}
	return current, nil
}

func (s *weatherAPIService) Forecast(ctx context.Context, lat, lon float64) ([]models.ForecastSample, error) {
	if err := s.checkKey(); err != nil {
		return nil, err
	}

	values := s.coordinateValues(lat, lon)
	values.Set("units", "metric")

	var resp forecastResponse
	if err := s.requester.GetJSON(ctx, s.baseURL+"/forecast?"+values.Encode(), &resp); err != nil {
		return nil, upstreamError("Forecast fetch failed", err)
	}

	samples := make([]models.ForecastSample, 0, len(resp.List))
	for _, entry := range resp.List {
		if entry.Main == nil || entry.Main.Temp == nil {
			continue
		}
		sample := models.ForecastSample{
			EpochSec: entry.Dt,
			Temp:     *entry.Main.Temp,
		}
		if len(entry.Weather) > 0 {
			sample.Icon = entry.Weather[0].Icon
			sample.Description = entry.Weather[0].Description
		}
		samples = append(samples, sample)
	}

	return samples, nil
}

func (s *weatherAPIService) AirPollution(ctx context.Context, lat, lon float64) (*AirPollution, error) {
	if err := s.checkKey(); err != nil {
		return nil, err
	}

	var resp airPollutionResponse
	if err := s.requester.GetJSON(ctx, s.baseURL+"/air_pollution?"+s.coordinateValues(lat, lon).Encode(), &resp); err != nil {
		return nil, upstreamError("AQI fetch failed", err)
	}

	result := &AirPollution{}
	if len(resp.List) == 0 {
		return result, nil
	}

	first := resp.List[0]
	if first.Main != nil {
		result.AQI = first.Main.AQI
	}
	if first.Components != nil {
		result.Components = &models.AirQualityComponents{
			PM25: first.Components.PM25,
			PM10: first.Components.PM10,
			O3:   first.Components.O3,
			NO2:  first.Components.NO2,
		}
	}

	return result, nil
}

func (s *weatherAPIService) coordinateValues(lat, lon float64) url.Values {
	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	values.Set("appid", s.apiKey)
	return values
}

// normalize never fails on missing nested fields; absent values stay nil.
func (r *currentWeatherResponse) normalize() *CurrentWeather {
	current := &CurrentWeather{Name: r.Name}

	if r.Coord != nil {
		current.Lat, current.Lon = r.Coord.Lat, r.Coord.Lon
	}
	if r.Main != nil {
		current.Observation.Temperature = r.Main.Temp
		current.Observation.Humidity = r.Main.Humidity
	}
	if r.Wind != nil {
		current.Observation.Wind = r.Wind.Speed
	}
	if len(r.Weather) > 0 {
		current.Observation.Description = r.Weather[0].Description
		current.Observation.Icon = r.Weather[0].Icon
	}
	if r.Sys != nil {
		current.Country = r.Sys.Country
		current.Observation.Sunrise = secondsToMillis(r.Sys.Sunrise)
		current.Observation.Sunset = secondsToMillis(r.Sys.Sunset)
	}

	return current
}

// secondsToMillis treats a zero timestamp as absent.
func secondsToMillis(sec *int64) *int64 {
	if sec == nil || *sec == 0 {
		return nil
	}
	ms := *sec * 1000
	return &ms
}
