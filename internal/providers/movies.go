package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/minseokoh/localscope/internal/models"
)

const (
	defaultMoviesURL = "https://api.themoviedb.org/3/search/movie"
	moviePosterBase  = "https://image.tmdb.org/t/p/w500"
)

// MoviesClient searches TMDb for movies tied to a location's locality.
type MoviesClient struct {
	BaseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewMoviesClient(apiKey string, httpClient *http.Client) *MoviesClient {
	return &MoviesClient{
		BaseURL:    defaultMoviesURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type moviesResponse struct {
	Results []struct {
		Title       string  `json:"title"`
		ReleaseDate string  `json:"release_date"`
		VoteCount   int     `json:"vote_count"`
		VoteAverage float64 `json:"vote_average"`
		Popularity  float64 `json:"popularity"`
		Overview    string  `json:"overview"`
		PosterPath  string  `json:"poster_path"`
	} `json:"results"`
}

// Fetch returns movies matching the location's locality name, the first
// comma-separated segment of the formatted address.
func (m *MoviesClient) Fetch(ctx context.Context, loc models.Location) ([]models.Movie, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Add("query", locality(loc))
	q.Add("api_key", m.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("movies request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("movies request failed: status=%d", resp.StatusCode)
	}

	var payload moviesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode movies response: %w", err)
	}

	movies := make([]models.Movie, 0, len(payload.Results))
	for _, entry := range payload.Results {
		imageURL := ""
		if entry.PosterPath != "" {
			imageURL = moviePosterBase + entry.PosterPath
		}
		movies = append(movies, models.Movie{
			Title:       entry.Title,
			ReleaseDate: entry.ReleaseDate,
			VoteCount:   entry.VoteCount,
			VoteAverage: entry.VoteAverage,
			Popularity:  entry.Popularity,
			Overview:    entry.Overview,
			ImageURL:    imageURL,
		})
	}
	return movies, nil
}

// locality extracts the city segment from a formatted address,
// e.g. "Seattle, WA, USA" -> "Seattle".
func locality(loc models.Location) string {
	if i := strings.Index(loc.FormattedAddress, ","); i > 0 {
		return strings.TrimSpace(loc.FormattedAddress[:i])
	}
	if loc.FormattedAddress != "" {
		return loc.FormattedAddress
	}
	return loc.SearchText
}
