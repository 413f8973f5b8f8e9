package models

// Location is a geocoding result.
type Location struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	State   *string `json:"state"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// WeatherObservation holds the weather attributes of one provider response.
// Any field is nil when the provider omitted it.
type WeatherObservation struct {
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	Wind        *float64 `json:"wind"`
	Description *string  `json:"description"`
	Icon        *string  `json:"icon"`
	Sunrise     *int64   `json:"sunrise"`
	Sunset      *int64   `json:"sunset"`
}

// CityWeather is the normalized record returned for a city lookup.
// UTCEpochMs is the capture time of the record, not the observation time.
type CityWeather struct {
	City         string   `json:"city"`
	Country      string   `json:"country"`
	Lat          float64  `json:"lat"`
	Lon          float64  `json:"lon"`
	UTCEpochMs   int64    `json:"utcEpochMs"`
	TimeZoneID   string   `json:"timeZoneId"`
	UTCOffsetSec int      `json:"utcOffsetSec"`
	LocalTime    string   `json:"localTime"`
	Temperature  *float64 `json:"temperature"`
	Humidity     *float64 `json:"humidity"`
	Wind         *float64 `json:"wind"`
	Description  *string  `json:"description"`
	Icon         *string  `json:"icon"`
	Sunrise      *int64   `json:"sunrise"`
	Sunset       *int64   `json:"sunset"`
	ImageURL     *string  `json:"imageUrl"`
}

// ComparisonResult is derived per request and never stored.
// FlightHours is distance over a fixed cruise speed, not a routed flight time.
type ComparisonResult struct {
	CityA            CityWeather `json:"city1"`
	CityB            CityWeather `json:"city2"`
	TimeDeltaMs      int64       `json:"timeDeltaMs"`
	DistanceKm       float64     `json:"distanceKm"`
	FlightHours      float64     `json:"flightHours"`
	TemperatureDelta *float64    `json:"temperatureDelta"`
	HumidityDelta    *float64    `json:"humidityDelta"`
	WindDelta        *float64    `json:"windDelta"`
}

// ForecastSample is one 3-hour interval entry of a forecast feed.
type ForecastSample struct {
	EpochSec    int64
	Temp        float64
	Icon        string
	Description string
}

type ForecastDay struct {
	Date        string  `json:"date"`
	AvgTemp     float64 `json:"avgTemp"`
	MinTemp     float64 `json:"minTemp"`
	MaxTemp     float64 `json:"maxTemp"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
}

type CityForecast struct {
	City     string        `json:"city"`
	Country  string        `json:"country"`
	Forecast []ForecastDay `json:"forecast"`
}

type AirQualityComponents struct {
	PM25 *float64 `json:"pm2_5"`
	PM10 *float64 `json:"pm10"`
	O3   *float64 `json:"o3"`
	NO2  *float64 `json:"no2"`
}

type AirQuality struct {
	City       string                `json:"city"`
	Country    string                `json:"country"`
	AQI        *int                  `json:"aqi"`
	Components *AirQualityComponents `json:"components"`
}
