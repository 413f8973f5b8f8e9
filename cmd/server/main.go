package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"ulascansenturk/city-weather-service/config"
	"ulascansenturk/city-weather-service/internal/api/v1/handlers"
	"ulascansenturk/city-weather-service/internal/clock"
	"ulascansenturk/city-weather-service/internal/inmemorycache"
	"ulascansenturk/city-weather-service/internal/metrics"
	"ulascansenturk/city-weather-service/internal/providers"
	"ulascansenturk/city-weather-service/internal/rediscache"
	"ulascansenturk/city-weather-service/internal/resolvers"
	"ulascansenturk/city-weather-service/internal/service"
	"ulascansenturk/city-weather-service/internal/weathercache"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil || conf.LogLevel == "" {
		logLevel = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Str("env", conf.Env).
		Timestamp().
		Logger()

	ctx, mainCtxStop := context.WithCancel(context.Background())

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)
	observer := metrics.NewProviderMetrics(collector)

	resilience := providers.DefaultResilienceConfig()
	resilience.Timeout = conf.ProviderTimeout
	resilience.MaxRetries = conf.ProviderMaxRetries
	resilience.InitialBackoff = conf.ProviderRetryBackoff
	httpClient := &http.Client{}

	weatherAPIService := providers.NewWeatherAPIService(providers.OpenWeatherConfig{
		APIKey:     conf.OpenWeatherAPIKey,
		BaseURL:    conf.OpenWeatherBaseURL,
		GeoBaseURL: conf.OpenWeatherGeoBaseURL,
	}, providers.NewRequester("openweather", httpClient, resilience, observer))

	timeZoneAPIService := providers.NewTimeZoneAPIService(conf.GoogleAPIKey, conf.GoogleTimeZoneURL,
		providers.NewRequester("google-timezone", httpClient, resilience, observer))

	encyclopediaService := providers.NewWikipediaService(conf.WikipediaAPIURL, conf.WikipediaRESTURL,
		providers.NewRequester("wikipedia", httpClient, resilience, observer))

	cacheProvider, closeCache := initializeCache(ctx, conf, collector)
	defer closeCache()

	geoResolver := resolvers.NewGeoResolver(weatherAPIService)

	aggregator := service.NewCoalescingAggregator(service.NewCityWeatherAggregator(
		weatherAPIService,
		geoResolver,
		resolvers.NewTimeZoneResolver(timeZoneAPIService),
		resolvers.NewImageResolver(encyclopediaService, conf.FallbackImageURL),
		cacheProvider,
		clock.Real{},
		service.AggregatorOptions{
			FailurePolicy: service.FailurePolicy(conf.WeatherFailurePolicy),
			LookupMode:    service.LookupMode(conf.WeatherLookupMode),
			CacheTTL:      conf.CacheTTL,
		},
	))
	weatherService := service.NewWeatherService(aggregator, geoResolver, weatherAPIService)

	handler := handlers.NewWeatherHandler(weatherService, conf.HTTPTimeoutDuration())
	router := handlers.NewRouter(handler, handlers.RouterConfig{
		AllowedOrigins: conf.CORSAllowedOrigins,
		StaticDir:      conf.StaticDir,
		Metrics:        promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	log.Info().
		Str("lookup_mode", conf.WeatherLookupMode).
		Str("failure_policy", conf.WeatherFailurePolicy).
		Str("cache_backend", conf.CacheBackend).
		Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && serverErr != http.ErrServerClosed {
		log.Err(serverErr).Msg("server stopped")
		mainCtxStop()
	}
	<-ctx.Done()
}

// initializeCache returns nil when caching is disabled.
func initializeCache(ctx context.Context, conf *config.Config, collector *metrics.Collector) (weathercache.Cache, func()) {
	switch conf.CacheBackend {
	case config.CacheBackendNone:
		return nil, func() {}
	case config.CacheBackendRedis:
		client, err := rediscache.Connect(ctx, rediscache.Config{
			Addr:     conf.RedisAddr,
			Password: conf.RedisPassword,
			DB:       conf.RedisDB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize redis cache")
		}
		closeClient := func() {
			if err := client.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close redis client")
			}
		}
		return metrics.NewInstrumentedCache(rediscache.NewRedisCache(client), config.CacheBackendRedis, collector), closeClient
	default:
		cache := inmemorycache.NewInMemoryCache(clock.Real{})
		return metrics.NewInstrumentedCache(cache, config.CacheBackendMemory, collector), func() {}
	}
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
