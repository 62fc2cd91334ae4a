package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/minseokoh/localscope/internal/models"
)

const defaultEventsURL = "https://app.ticketmaster.com/discovery/v2/events.json"

// EventsClient fetches nearby events from the Ticketmaster Discovery API.
type EventsClient struct {
	BaseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewEventsClient(apiKey string, httpClient *http.Client) *EventsClient {
	return &EventsClient{
		BaseURL:    defaultEventsURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type eventsResponse struct {
	Embedded struct {
		Events []struct {
			Name  string `json:"name"`
			URL   string `json:"url"`
			Info  string `json:"info"`
			Dates struct {
				Start struct {
					LocalDate string `json:"localDate"`
				} `json:"start"`
			} `json:"dates"`
		} `json:"events"`
	} `json:"_embedded"`
}

// Fetch returns the events scheduled around the location's coordinates.
// A payload without an _embedded block means nothing is on.
func (e *EventsClient) Fetch(ctx context.Context, loc models.Location) ([]models.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Add("latlong", fmt.Sprintf("%f,%f", loc.Lat, loc.Lng))
	q.Add("apikey", e.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("events request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("events request failed: status=%d", resp.StatusCode)
	}

	var payload eventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode events response: %w", err)
	}

	events := make([]models.Event, 0, len(payload.Embedded.Events))
	for _, entry := range payload.Embedded.Events {
		events = append(events, models.Event{
			Name:      entry.Name,
			Link:      entry.URL,
			EventDate: entry.Dates.Start.LocalDate,
			Summary:   entry.Info,
		})
	}
	return events, nil
}
