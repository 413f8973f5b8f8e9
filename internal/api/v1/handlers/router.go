package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
)

type RouterConfig struct {
	AllowedOrigins []string
	// StaticDir serves a single page app for non-API paths when set.
	StaticDir string
	// Metrics is mounted on /metrics when set.
	Metrics http.Handler
}

func NewRouter(handler *WeatherHandler, cfg RouterConfig) http.Handler {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(hlog.NewHandler(log.Logger))
	r.Use(requestID)
	r.Use(accessLog())
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handler.Health)
		r.Get("/city/{city}", handler.GetCityWeather)
		r.Get("/compare/{city1}/{city2}", handler.CompareCities)
		r.Get("/search", handler.SearchCities)
		r.Get("/forecast/{city}", handler.GetForecast)
		r.Get("/aqi/{city}", handler.GetAirQuality)

		r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
			respondWithError(w, http.StatusNotFound, "Not found")
		})
		r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
			respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		})
	})

	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	if cfg.StaticDir != "" {
		r.Get("/*", spaHandler(cfg.StaticDir))
	}
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondWithError(w, http.StatusNotFound, "Not found")
	})

	return r
}

// spaHandler serves files under dir and falls back to dir/index.html for
// paths that are not files, so client-side routes load the app.
func spaHandler(dir string) http.HandlerFunc {
	files := http.FileServer(http.Dir(dir))

	return func(w http.ResponseWriter, r *http.Request) {
		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			files.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	}
}
