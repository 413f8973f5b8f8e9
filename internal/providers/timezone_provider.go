package providers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"ulascansenturk/city-weather-service/internal/apperrors"
)

const DefaultGoogleTimeZoneURL = "https://maps.googleapis.com/maps/api/timezone/json"

type TimeZoneAPIService interface {
	// TimeZone returns the IANA zone id for a coordinate at the given instant.
	TimeZone(ctx context.Context, lat, lon float64, atEpochSec int64) (string, error)
}

type timeZoneAPIService struct {
	apiKey    string
	url       string
	requester *Requester
}

func NewTimeZoneAPIService(apiKey, baseURL string, requester *Requester) TimeZoneAPIService {
	if baseURL == "" {
		baseURL = DefaultGoogleTimeZoneURL
	}
	return &timeZoneAPIService{
		apiKey:    apiKey,
		url:       baseURL,
		requester: requester,
	}
}

type timeZoneResponse struct {
	Status     string `json:"status"`
	TimeZoneID string `json:"timeZoneId"`
}

func (s *timeZoneAPIService) TimeZone(ctx context.Context, lat, lon float64, atEpochSec int64) (string, error) {
	if s.apiKey == "" {
		return "", apperrors.NewConfigError("GOOGLE_API_KEY is not set")
	}

	values := url.Values{}
	values.Set("location", strconv.FormatFloat(lat, 'f', -1, 64)+","+strconv.FormatFloat(lon, 'f', -1, 64))
	values.Set("timestamp", strconv.FormatInt(atEpochSec, 10))
	values.Set("key", s.apiKey)

	var resp timeZoneResponse
	if err := s.requester.GetJSON(ctx, s.url+"?"+values.Encode(), &resp); err != nil {
		return "", upstreamError("Time zone lookup failed", err)
	}

	if resp.Status != "OK" {
		return "", fmt.Errorf("time zone lookup returned status %q", resp.Status)
	}

	return resp.TimeZoneID, nil
}
