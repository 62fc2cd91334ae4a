package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/minseokoh/localscope/internal/models"
)

var testLoc = models.Location{
	SearchText:       "seattle",
	FormattedAddress: "Seattle, WA, USA",
	Lat:              47.6062,
	Lng:              -122.3321,
}

func jsonServer(t *testing.T, body string) (*httptest.Server, func()) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	return server, server.Close
}

func errorServer(t *testing.T, status int) (*httptest.Server, func()) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	return server, server.Close
}

func testHTTPClient() *http.Client {
	return &http.Client{Timeout: 5 * time.Second}
}

func TestGeocodeParsesResults(t *testing.T) {
	server, cleanup := jsonServer(t, `{
		"status": "OK",
		"results": [
			{"formatted_address": "Seattle, WA, USA", "geometry": {"location": {"lat": 47.6062, "lng": -122.3321}}},
			{"formatted_address": "Seattle, Dodge County, USA", "geometry": {"location": {"lat": 1, "lng": 2}}}
		]
	}`)
	defer cleanup()

	g := NewGeocoder("test-key", testHTTPClient())
	g.BaseURL = server.URL

	got, err := g.Geocode(context.Background(), "seattle")
	if err != nil {
		t.Fatalf("Geocode failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	if got[0].FormattedAddress != "Seattle, WA, USA" {
		t.Errorf("unexpected address %q", got[0].FormattedAddress)
	}
	if got[0].Lat != 47.6062 || got[0].Lng != -122.3321 {
		t.Errorf("unexpected coordinates %f,%f", got[0].Lat, got[0].Lng)
	}
	if got[0].SearchText != "seattle" {
		t.Errorf("candidate must carry the search text, got %q", got[0].SearchText)
	}
}

func TestGeocodeZeroResults(t *testing.T) {
	server, cleanup := jsonServer(t, `{"status": "ZERO_RESULTS", "results": []}`)
	defer cleanup()

	g := NewGeocoder("test-key", testHTTPClient())
	g.BaseURL = server.URL

	got, err := g.Geocode(context.Background(), "@@invalid@@")
	if err != nil {
		t.Fatalf("zero results must not be an error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no candidates, got %d", len(got))
	}
}

func TestGeocodeProviderErrorStatus(t *testing.T) {
	// These statuses ship an empty results array just like ZERO_RESULTS;
	// they must still surface as errors, not as "no such place".
	for _, status := range []string{"REQUEST_DENIED", "OVER_QUERY_LIMIT", "INVALID_REQUEST"} {
		t.Run(status, func(t *testing.T) {
			server, cleanup := jsonServer(t, `{"status": "`+status+`", "results": []}`)
			defer cleanup()

			g := NewGeocoder("bad-key", testHTTPClient())
			g.BaseURL = server.URL

			if _, err := g.Geocode(context.Background(), "seattle"); err == nil {
				t.Errorf("expected an error for status %s", status)
			}
		})
	}
}

func TestWeatherParsesForecast(t *testing.T) {
	server, cleanup := jsonServer(t, `{
		"list": [
			{"dt_txt": "2024-01-01 12:00:00", "weather": [{"description": "clear sky"}]},
			{"dt_txt": "2024-01-01 15:00:00", "weather": [{"description": "light rain"}]}
		]
	}`)
	defer cleanup()

	w := NewWeatherClient("test-key", testHTTPClient())
	w.BaseURL = server.URL

	got, err := w.Fetch(context.Background(), testLoc)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 forecasts, got %d", len(got))
	}
	if got[0].Summary != "clear sky" || got[0].ForecastDate != "2024-01-01 12:00:00" {
		t.Errorf("unexpected forecast %+v", got[0])
	}
}

func TestWeatherHTTPError(t *testing.T) {
	server, cleanup := errorServer(t, http.StatusUnauthorized)
	defer cleanup()

	w := NewWeatherClient("bad-key", testHTTPClient())
	w.BaseURL = server.URL

	if _, err := w.Fetch(context.Background(), testLoc); err == nil {
		t.Error("expected an error for status 401")
	}
}

func TestEventsParsesEmbedded(t *testing.T) {
	server, cleanup := jsonServer(t, `{
		"_embedded": {
			"events": [
				{"name": "Big Concert", "url": "https://tix.example.com/1", "info": "Doors at 7",
				 "dates": {"start": {"localDate": "2024-02-01"}}}
			]
		}
	}`)
	defer cleanup()

	e := NewEventsClient("test-key", testHTTPClient())
	e.BaseURL = server.URL

	got, err := e.Fetch(context.Background(), testLoc)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if got[0].Name != "Big Concert" || got[0].EventDate != "2024-02-01" || got[0].Link != "https://tix.example.com/1" {
		t.Errorf("unexpected event %+v", got[0])
	}
}

func TestEventsNoEmbeddedBlock(t *testing.T) {
	// Ticketmaster omits _embedded entirely when nothing is on
	server, cleanup := jsonServer(t, `{"page": {"totalElements": 0}}`)
	defer cleanup()

	e := NewEventsClient("test-key", testHTTPClient())
	e.BaseURL = server.URL

	got, err := e.Fetch(context.Background(), testLoc)
	if err != nil {
		t.Fatalf("empty schedule must not be an error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no events, got %d", len(got))
	}
}

func TestMoviesParsesResults(t *testing.T) {
	server, cleanup := jsonServer(t, `{
		"results": [
			{"title": "Seattle Story", "release_date": "1993-06-25", "vote_count": 1200,
			 "vote_average": 6.8, "popularity": 23.4, "overview": "A movie.",
			 "poster_path": "/abc123.jpg"}
		]
	}`)
	defer cleanup()

	m := NewMoviesClient("test-key", testHTTPClient())
	m.BaseURL = server.URL

	got, err := m.Fetch(context.Background(), testLoc)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 movie, got %d", len(got))
	}
	movie := got[0]
	if movie.Title != "Seattle Story" || movie.VoteCount != 1200 || movie.VoteAverage != 6.8 {
		t.Errorf("unexpected movie %+v", movie)
	}
	if movie.ImageURL != "https://image.tmdb.org/t/p/w500/abc123.jpg" {
		t.Errorf("unexpected image URL %q", movie.ImageURL)
	}
}

func TestMoviesLocalityExtraction(t *testing.T) {
	cases := []struct {
		loc  models.Location
		want string
	}{
		{models.Location{FormattedAddress: "Seattle, WA, USA"}, "Seattle"},
		{models.Location{FormattedAddress: "Reykjavik"}, "Reykjavik"},
		{models.Location{SearchText: "fallback"}, "fallback"},
	}
	for _, tc := range cases {
		if got := locality(tc.loc); got != tc.want {
			t.Errorf("locality(%q) = %q, want %q", tc.loc.FormattedAddress, got, tc.want)
		}
	}
}

func TestReviewsParsesBusinesses(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"businesses": [
				{"name": "Pike Place Chowder", "rating": 4.5, "price": "$$",
				 "url": "https://yelp.example.com/biz/1", "image_url": "https://img.example.com/1.jpg"}
			]
		}`))
	}))
	defer server.Close()

	r := NewReviewsClient("test-key", testHTTPClient())
	r.BaseURL = server.URL

	got, err := r.Fetch(context.Background(), testLoc)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 review, got %d", len(got))
	}
	if got[0].Name != "Pike Place Chowder" || got[0].Rating != 4.5 || got[0].Price != "$$" {
		t.Errorf("unexpected review %+v", got[0])
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("expected bearer auth header, got %q", gotAuth)
	}
}

func TestReviewsMalformedPayload(t *testing.T) {
	server, cleanup := jsonServer(t, `{"businesses": "not-a-list"`)
	defer cleanup()

	r := NewReviewsClient("test-key", testHTTPClient())
	r.BaseURL = server.URL

	if _, err := r.Fetch(context.Background(), testLoc); err == nil {
		t.Error("expected a decode error for a malformed payload")
	}
}
