package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/minseokoh/localscope/internal/models"
)

const defaultWeatherURL = "https://api.openweathermap.org/data/2.5/forecast"

// WeatherClient fetches forecasts from the OpenWeatherMap forecast API.
type WeatherClient struct {
	BaseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewWeatherClient(apiKey string, httpClient *http.Client) *WeatherClient {
	return &WeatherClient{
		BaseURL:    defaultWeatherURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type weatherResponse struct {
	List []struct {
		DtTxt   string `json:"dt_txt"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

// Fetch returns one forecast entry per provider time slot for the
// location's coordinates.
func (w *WeatherClient) Fetch(ctx context.Context, loc models.Location) ([]models.Weather, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Add("lat", fmt.Sprintf("%f", loc.Lat))
	q.Add("lon", fmt.Sprintf("%f", loc.Lng))
	q.Add("units", "metric")
	q.Add("appid", w.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather request failed: status=%d", resp.StatusCode)
	}

	var payload weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	forecasts := make([]models.Weather, 0, len(payload.List))
	for _, entry := range payload.List {
		summary := ""
		if len(entry.Weather) > 0 {
			summary = entry.Weather[0].Description
		}
		forecasts = append(forecasts, models.Weather{
			Summary:      summary,
			ForecastDate: entry.DtTxt,
		})
	}
	return forecasts, nil
}
