package services

import (
	"context"

	"github.com/minseokoh/localscope/internal/cache"
	"github.com/minseokoh/localscope/internal/config"
	"github.com/minseokoh/localscope/internal/database"
	"github.com/minseokoh/localscope/internal/models"
	"github.com/minseokoh/localscope/internal/providers"
)

// Resource kind labels, also used as metric/log labels and by the
// cachepurge job.
const (
	KindWeather = "weather"
	KindEvents  = "events"
	KindMovies  = "movies"
	KindReviews = "reviews"
)

// NearbyService serves the four resource kinds for a resolved location
// through the shared cache-aside engine. Each kind contributes only its
// freshness window and gateway call; the protocol is the engine's.
type NearbyService struct {
	engine *cache.Engine

	weather cache.Source[models.Weather, *models.Weather]
	events  cache.Source[models.Event, *models.Event]
	movies  cache.Source[models.Movie, *models.Movie]
	reviews cache.Source[models.Review, *models.Review]
}

func NewNearbyService(db *database.DB, cfg *config.Config, p *providers.Clients) *NearbyService {
	return &NearbyService{
		engine:  cache.NewEngine(db),
		weather: cache.NewSource[models.Weather](KindWeather, cfg.WeatherTTL, p.Weather.Fetch),
		events:  cache.NewSource[models.Event](KindEvents, cfg.EventsTTL, p.Events.Fetch),
		movies:  cache.NewSource[models.Movie](KindMovies, cfg.MoviesTTL, p.Movies.Fetch),
		reviews: cache.NewSource[models.Review](KindReviews, cfg.ReviewsTTL, p.Reviews.Fetch),
	}
}

// Engine exposes the underlying cache engine, e.g. to swap its clock in
// tests.
func (s *NearbyService) Engine() *cache.Engine {
	return s.engine
}

func (s *NearbyService) Weather(ctx context.Context, loc models.Location) ([]models.Weather, error) {
	return cache.FetchCached(ctx, s.engine, s.weather, loc)
}

func (s *NearbyService) Events(ctx context.Context, loc models.Location) ([]models.Event, error) {
	return cache.FetchCached(ctx, s.engine, s.events, loc)
}

func (s *NearbyService) Movies(ctx context.Context, loc models.Location) ([]models.Movie, error) {
	return cache.FetchCached(ctx, s.engine, s.movies, loc)
}

func (s *NearbyService) Reviews(ctx context.Context, loc models.Location) ([]models.Review, error) {
	return cache.FetchCached(ctx, s.engine, s.reviews, loc)
}
