package providers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"ulascansenturk/city-weather-service/internal/providers"
)

type WikipediaServiceTestSuite struct {
	suite.Suite
	server  *httptest.Server
	service providers.EncyclopediaService
}

func (s *WikipediaServiceTestSuite) SetupTest() {
	mux := http.NewServeMux()
	mux.HandleFunc("/w/api.php", func(w http.ResponseWriter, r *http.Request) {
		s.Equal("search", r.URL.Query().Get("list"))
		s.Equal("*", r.URL.Query().Get("origin"))

		switch r.URL.Query().Get("srsearch") {
		case "Paris":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"query": map[string]interface{}{
					"search": []interface{}{
						map[string]interface{}{"title": "Paris"},
						map[string]interface{}{"title": "Paris Hilton"},
					},
				},
			})
		case "Error":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			json.NewEncoder(w).Encode(map[string]interface{}{"query": map[string]interface{}{"search": []interface{}{}}})
		}
	})
	mux.HandleFunc("/summary/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/summary/Paris":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"originalimage": map[string]string{"source": "https://upload.example/paris.jpg"},
				"thumbnail":     map[string]string{"source": "https://upload.example/paris-thumb.jpg"},
			})
		case "/summary/New York":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"thumbnail": map[string]string{"source": "https://upload.example/nyc-thumb.jpg"},
			})
		case "/summary/Nowhere":
			json.NewEncoder(w).Encode(map[string]interface{}{"title": "Nowhere"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	s.server = httptest.NewServer(mux)

	requester := providers.NewRequester("wikipedia", &http.Client{}, providers.DefaultResilienceConfig(), nil)
	s.service = providers.NewWikipediaService(s.server.URL+"/w/api.php", s.server.URL+"/summary", requester)
}

func (s *WikipediaServiceTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *WikipediaServiceTestSuite) TestSearchTitle() {
	title, err := s.service.SearchTitle(context.Background(), "Paris")
	s.NoError(err)
	s.Equal("Paris", title)
}

func (s *WikipediaServiceTestSuite) TestSearchTitle_NoHits() {
	title, err := s.service.SearchTitle(context.Background(), "qwertyuiop")
	s.NoError(err)
	s.Empty(title)
}

func (s *WikipediaServiceTestSuite) TestSearchTitle_ServerError() {
	_, err := s.service.SearchTitle(context.Background(), "Error")
	s.Error(err)
}

func (s *WikipediaServiceTestSuite) TestSummaryImage_PrefersOriginal() {
	image, err := s.service.SummaryImage(context.Background(), "Paris")
	s.NoError(err)
	s.Equal("https://upload.example/paris.jpg", image)
}

func (s *WikipediaServiceTestSuite) TestSummaryImage_FallsBackToThumbnail() {
	image, err := s.service.SummaryImage(context.Background(), "New York")
	s.NoError(err)
	s.Equal("https://upload.example/nyc-thumb.jpg", image)
}

func (s *WikipediaServiceTestSuite) TestSummaryImage_NoImage() {
	image, err := s.service.SummaryImage(context.Background(), "Nowhere")
	s.NoError(err)
	s.Empty(image)
}

func (s *WikipediaServiceTestSuite) TestSummaryImage_MissingPage() {
	_, err := s.service.SummaryImage(context.Background(), "Atlantis")
	s.Error(err)
}

func TestWikipediaServiceSuite(t *testing.T) {
	suite.Run(t, new(WikipediaServiceTestSuite))
}
