package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/minseokoh/localscope/internal/logger"
	"github.com/minseokoh/localscope/internal/models"
)

const defaultGeocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"

// Geocoder resolves free-text queries against the Google Geocoding API.
type Geocoder struct {
	BaseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewGeocoder(apiKey string, httpClient *http.Client) *Geocoder {
	return &Geocoder{
		BaseURL:    defaultGeocodeURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode returns the candidate locations for a search text, best match
// first. An empty slice with a nil error means the provider knows no such
// place.
func (g *Geocoder) Geocode(ctx context.Context, searchText string) ([]models.Location, error) {
	log := logger.GetLogger("providers.geocode")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Add("address", searchText)
	q.Add("key", g.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode request failed: status=%d", resp.StatusCode)
	}

	var payload geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	// Error statuses (REQUEST_DENIED, OVER_QUERY_LIMIT, ...) also carry an
	// empty results array; only ZERO_RESULTS means the place is unknown.
	if payload.Status == "ZERO_RESULTS" {
		log.Infow("no geocode results", "query", searchText)
		return nil, nil
	}
	if payload.Status != "OK" {
		return nil, fmt.Errorf("geocode provider returned status %q", payload.Status)
	}
	if len(payload.Results) == 0 {
		log.Infow("no geocode results", "query", searchText)
		return nil, nil
	}

	locations := make([]models.Location, 0, len(payload.Results))
	for _, r := range payload.Results {
		locations = append(locations, models.Location{
			SearchText:       searchText,
			FormattedAddress: r.FormattedAddress,
			Lat:              r.Geometry.Location.Lat,
			Lng:              r.Geometry.Location.Lng,
		})
	}
	return locations, nil
}
