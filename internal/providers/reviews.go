package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/minseokoh/localscope/internal/models"
)

const defaultReviewsURL = "https://api.yelp.com/v3/businesses/search"

// ReviewsClient fetches local-business listings from the Yelp Fusion API.
type ReviewsClient struct {
	BaseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewReviewsClient(apiKey string, httpClient *http.Client) *ReviewsClient {
	return &ReviewsClient{
		BaseURL:    defaultReviewsURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type reviewsResponse struct {
	Businesses []struct {
		Name     string  `json:"name"`
		Rating   float64 `json:"rating"`
		Price    string  `json:"price"`
		URL      string  `json:"url"`
		ImageURL string  `json:"image_url"`
	} `json:"businesses"`
}

// Fetch returns restaurant listings around the location's coordinates.
func (r *ReviewsClient) Fetch(ctx context.Context, loc models.Location) ([]models.Review, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Add("latitude", fmt.Sprintf("%f", loc.Lat))
	q.Add("longitude", fmt.Sprintf("%f", loc.Lng))
	q.Add("term", "restaurants")
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reviews request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reviews request failed: status=%d", resp.StatusCode)
	}

	var payload reviewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode reviews response: %w", err)
	}

	reviews := make([]models.Review, 0, len(payload.Businesses))
	for _, entry := range payload.Businesses {
		reviews = append(reviews, models.Review{
			Name:     entry.Name,
			Rating:   entry.Rating,
			Price:    entry.Price,
			URL:      entry.URL,
			ImageURL: entry.ImageURL,
		})
	}
	return reviews, nil
}
