package handlers

import (
	"context"
	"net/http"
	"time"

	"ulascansenturk/city-weather-service/internal/service"
)

type WeatherHandler struct {
	weatherService service.WeatherService
	timeout        time.Duration
	now            func() time.Time
}

func NewWeatherHandler(weatherService service.WeatherService, timeout time.Duration) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
		timeout:        timeout,
		now:            time.Now,
	}
}

func (h *WeatherHandler) context(r *http.Request) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), h.timeout)
}

func (h *WeatherHandler) Health(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   h.now().UTC().Format(time.RFC3339),
	})
}

func (h *WeatherHandler) GetCityWeather(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	record, err := h.weatherService.GetCityWeather(ctx, pathParam(r, "city"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, record)
}

func (h *WeatherHandler) CompareCities(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	result, err := h.weatherService.CompareCities(ctx, pathParam(r, "city1"), pathParam(r, "city2"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

func (h *WeatherHandler) SearchCities(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	locations, err := h.weatherService.SearchCities(ctx, r.URL.Query().Get("q"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, locations)
}

func (h *WeatherHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	forecast, err := h.weatherService.GetForecast(ctx, pathParam(r, "city"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, forecast)
}

func (h *WeatherHandler) GetAirQuality(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	aqi, err := h.weatherService.GetAirQuality(ctx, pathParam(r, "city"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, aqi)
}
