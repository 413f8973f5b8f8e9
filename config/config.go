package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
	CacheBackendNone   = "none"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	ProviderTimeout      time.Duration
	ProviderMaxRetries   int
	ProviderRetryBackoff time.Duration

	// Missing keys are reported per request, never at startup.
	OpenWeatherAPIKey string
	GoogleAPIKey      string

	OpenWeatherBaseURL    string
	OpenWeatherGeoBaseURL string
	GoogleTimeZoneURL     string
	WikipediaAPIURL       string
	WikipediaRESTURL      string
	FallbackImageURL      string

	WeatherFailurePolicy string
	WeatherLookupMode    string

	CacheBackend  string
	CacheTTL      time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CORSAllowedOrigins []string
	StaticDir          string
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "city-weather-service")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:5000")
	v.SetDefault("HTTP_TIMEOUT", 40)
	v.SetDefault("PROVIDER_TIMEOUT", 8*time.Second)
	v.SetDefault("PROVIDER_MAX_RETRIES", 0)
	v.SetDefault("PROVIDER_RETRY_BACKOFF", time.Second)
	v.SetDefault("WEATHER_FAILURE_POLICY", "fail")
	v.SetDefault("WEATHER_LOOKUP_MODE", "geocode")
	v.SetDefault("CACHE_BACKEND", CacheBackendMemory)
	v.SetDefault("CACHE_TTL", 10*time.Minute)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:           v.GetString("SERVICE_NAME"),
		ServerAddress:         v.GetString("SERVER_ADDRESS"),
		Env:                   v.GetString("ENV"),
		LogLevel:              v.GetString("LOG_LEVEL"),
		HTTPTimeout:           v.GetInt32("HTTP_TIMEOUT"),
		ProviderTimeout:       v.GetDuration("PROVIDER_TIMEOUT"),
		ProviderMaxRetries:    v.GetInt("PROVIDER_MAX_RETRIES"),
		ProviderRetryBackoff:  v.GetDuration("PROVIDER_RETRY_BACKOFF"),
		OpenWeatherAPIKey:     v.GetString("OPENWEATHER_API_KEY"),
		GoogleAPIKey:          v.GetString("GOOGLE_API_KEY"),
		OpenWeatherBaseURL:    v.GetString("OPENWEATHER_BASE_URL"),
		OpenWeatherGeoBaseURL: v.GetString("OPENWEATHER_GEO_BASE_URL"),
		GoogleTimeZoneURL:     v.GetString("GOOGLE_TIMEZONE_URL"),
		WikipediaAPIURL:       v.GetString("WIKIPEDIA_API_URL"),
		WikipediaRESTURL:      v.GetString("WIKIPEDIA_REST_URL"),
		FallbackImageURL:      v.GetString("FALLBACK_IMAGE_URL"),
		WeatherFailurePolicy:  strings.ToLower(v.GetString("WEATHER_FAILURE_POLICY")),
		WeatherLookupMode:     strings.ToLower(v.GetString("WEATHER_LOOKUP_MODE")),
		CacheBackend:          strings.ToLower(v.GetString("CACHE_BACKEND")),
		CacheTTL:              v.GetDuration("CACHE_TTL"),
		RedisAddr:             v.GetString("REDIS_ADDR"),
		RedisPassword:         v.GetString("REDIS_PASSWORD"),
		RedisDB:               v.GetInt("REDIS_DB"),
		CORSAllowedOrigins:    splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		StaticDir:             v.GetString("STATIC_DIR"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	if config.OpenWeatherAPIKey == "" {
		log.Warn().Msg("OPENWEATHER_API_KEY is not set, weather requests will fail")
	}
	if config.GoogleAPIKey == "" {
		log.Warn().Msg("GOOGLE_API_KEY is not set, time zones will default to UTC")
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.WeatherFailurePolicy {
	case "fail", "degrade":
	default:
		return fmt.Errorf("invalid WEATHER_FAILURE_POLICY %q: want fail or degrade", c.WeatherFailurePolicy)
	}

	switch c.WeatherLookupMode {
	case "geocode", "query":
	default:
		return fmt.Errorf("invalid WEATHER_LOOKUP_MODE %q: want geocode or query", c.WeatherLookupMode)
	}

	switch c.CacheBackend {
	case CacheBackendMemory, CacheBackendRedis, CacheBackendNone:
	default:
		return fmt.Errorf("invalid CACHE_BACKEND %q: want memory, redis or none", c.CacheBackend)
	}

	if c.ProviderMaxRetries < 0 {
		return fmt.Errorf("PROVIDER_MAX_RETRIES must not be negative")
	}

	return nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
