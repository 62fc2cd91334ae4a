package services

import (
	"context"
	"fmt"

	"github.com/minseokoh/localscope/internal/cache"
	"github.com/minseokoh/localscope/internal/database"
	"github.com/minseokoh/localscope/internal/logger"
	"github.com/minseokoh/localscope/internal/models"
)

// NotFoundError means location resolution found nothing for a query.
// It is propagated to the caller, never retried.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no location for query %q", e.Query)
}

// Geocoder is the external resolution gateway the service consumes.
type Geocoder interface {
	Geocode(ctx context.Context, searchText string) ([]models.Location, error)
}

// LocationService resolves free-text queries to canonical locations.
// Resolved locations are cached by exact search text with no freshness
// window: geocoding results are treated as permanently valid.
type LocationService struct {
	db       *database.DB
	geocoder Geocoder
}

func NewLocationService(db *database.DB, geocoder Geocoder) *LocationService {
	return &LocationService{db: db, geocoder: geocoder}
}

// Resolve returns the persisted Location for a search text, geocoding and
// persisting it on first sight. A miss inserts exactly one row; a hit
// inserts nothing. search_text has no uniqueness constraint, so two
// concurrent first resolutions of the same text may both insert.
func (s *LocationService) Resolve(ctx context.Context, searchText string) (*models.Location, error) {
	log := logger.GetLogger("services.location")

	var rows []models.Location
	if err := s.db.WithContext(ctx).Where("search_text = ?", searchText).Order("id").Limit(1).Find(&rows).Error; err != nil {
		return nil, &cache.StoreError{Op: "find location", Err: err}
	}
	if len(rows) > 0 {
		return &rows[0], nil
	}

	candidates, err := s.geocoder.Geocode(ctx, searchText)
	if err != nil {
		return nil, &cache.GatewayError{Kind: "geocode", Err: err}
	}
	if len(candidates) == 0 {
		return nil, &NotFoundError{Query: searchText}
	}

	loc := candidates[0]
	if err := s.db.WithContext(ctx).Create(&loc).Error; err != nil {
		return nil, &cache.StoreError{Op: "insert location", Err: err}
	}

	log.Infow("resolved new location", "query", searchText, "address", loc.FormattedAddress, "id", loc.ID)
	return &loc, nil
}
