// Package providers holds the external gateways, one per resource kind
// plus geocoding. Every gateway is pure with respect to the store: it
// translates a resolved location into the provider-specific query, parses
// the response into canonical records, and returns them. Zero results come
// back as a nil error with an empty slice; transport, status, and decode
// failures come back as errors.
package providers

import (
	"net/http"
	"time"

	"github.com/minseokoh/localscope/internal/config"
)

// Clients bundles one gateway per resource kind plus location resolution.
type Clients struct {
	Geocoder *Geocoder
	Weather  *WeatherClient
	Events   *EventsClient
	Movies   *MoviesClient
	Reviews  *ReviewsClient
}

// New builds all gateways over a shared HTTP client.
func New(cfg *config.Config) *Clients {
	httpClient := &http.Client{
		Timeout: time.Duration(cfg.ProviderTimeoutMS) * time.Millisecond,
	}

	return &Clients{
		Geocoder: NewGeocoder(cfg.GeocodeAPIKey, httpClient),
		Weather:  NewWeatherClient(cfg.WeatherAPIKey, httpClient),
		Events:   NewEventsClient(cfg.EventsAPIKey, httpClient),
		Movies:   NewMoviesClient(cfg.MoviesAPIKey, httpClient),
		Reviews:  NewReviewsClient(cfg.ReviewsAPIKey, httpClient),
	}
}
