package providers

import (
	"context"
	"net/url"
)

const (
	DefaultWikipediaAPIURL     = "https://en.wikipedia.org/w/api.php"
	DefaultWikipediaSummaryURL = "https://en.wikipedia.org/api/rest_v1/page/summary"
)

// EncyclopediaService looks up article titles and their lead images.
type EncyclopediaService interface {
	// SearchTitle returns the title of the first full-text hit, or "".
	SearchTitle(ctx context.Context, query string) (string, error)
	// SummaryImage returns the original image of a page, else its thumbnail, or "".
	SummaryImage(ctx context.Context, title string) (string, error)
}

type wikipediaService struct {
	apiURL     string
	summaryURL string
	requester  *Requester
}

func NewWikipediaService(apiURL, summaryURL string, requester *Requester) EncyclopediaService {
	if apiURL == "" {
		apiURL = DefaultWikipediaAPIURL
	}
	if summaryURL == "" {
		summaryURL = DefaultWikipediaSummaryURL
	}
	return &wikipediaService{
		apiURL:     apiURL,
		summaryURL: summaryURL,
		requester:  requester,
	}
}

type searchResponse struct {
	Query *struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type summaryResponse struct {
	OriginalImage *struct {
		Source string `json:"source"`
	} `json:"originalimage"`
	Thumbnail *struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
}

func (s *wikipediaService) SearchTitle(ctx context.Context, query string) (string, error) {
	values := url.Values{}
	values.Set("action", "query")
	values.Set("format", "json")
	values.Set("origin", "*")
	values.Set("list", "search")
	values.Set("srsearch", query)

	var resp searchResponse
	if err := s.requester.GetJSON(ctx, s.apiURL+"?"+values.Encode(), &resp); err != nil {
		return "", upstreamError("Wikipedia search failed", err)
	}

	if resp.Query == nil || len(resp.Query.Search) == 0 {
		return "", nil
	}
	return resp.Query.Search[0].Title, nil
}

func (s *wikipediaService) SummaryImage(ctx context.Context, title string) (string, error) {
	var resp summaryResponse
	if err := s.requester.GetJSON(ctx, s.summaryURL+"/"+url.PathEscape(title), &resp); err != nil {
		return "", upstreamError("Wikipedia summary failed", err)
	}

	if resp.OriginalImage != nil && resp.OriginalImage.Source != "" {
		return resp.OriginalImage.Source, nil
	}
	if resp.Thumbnail != nil && resp.Thumbnail.Source != "" {
		return resp.Thumbnail.Source, nil
	}
	return "", nil
}
