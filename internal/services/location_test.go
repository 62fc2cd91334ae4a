package services

import (
	"context"
	"errors"
	"testing"

	"github.com/minseokoh/localscope/internal/cache"
	"github.com/minseokoh/localscope/internal/database"
	"github.com/minseokoh/localscope/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := gdb.AutoMigrate(&models.Location{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return &database.DB{DB: gdb}
}

// fakeGeocoder is a resolution gateway stub counting its invocations.
type fakeGeocoder struct {
	calls   int
	results []models.Location
	err     error
}

func (g *fakeGeocoder) Geocode(ctx context.Context, searchText string) ([]models.Location, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	out := make([]models.Location, len(g.results))
	copy(out, g.results)
	for i := range out {
		out[i].SearchText = searchText
	}
	return out, nil
}

func TestResolveMissGeocodesAndPersists(t *testing.T) {
	db := newTestDB(t)
	geocoder := &fakeGeocoder{results: []models.Location{
		{FormattedAddress: "Seattle, WA, USA", Lat: 47.6062, Lng: -122.3321},
		{FormattedAddress: "Seattle, Other, USA", Lat: 1, Lng: 2},
	}}
	svc := NewLocationService(db, geocoder)

	loc, err := svc.Resolve(context.Background(), "seattle")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if loc.ID == 0 {
		t.Error("persisted location has no assigned id")
	}
	if loc.FormattedAddress != "Seattle, WA, USA" {
		t.Errorf("expected the first geocode candidate, got %q", loc.FormattedAddress)
	}
	if loc.SearchText != "seattle" {
		t.Errorf("unexpected search text %q", loc.SearchText)
	}

	var count int64
	if err := db.Model(&models.Location{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("a miss persists exactly one row, found %d", count)
	}
}

func TestResolveHitSkipsGateway(t *testing.T) {
	db := newTestDB(t)
	geocoder := &fakeGeocoder{results: []models.Location{
		{FormattedAddress: "Seattle, WA, USA", Lat: 47.6062, Lng: -122.3321},
	}}
	svc := NewLocationService(db, geocoder)

	first, err := svc.Resolve(context.Background(), "seattle")
	if err != nil {
		t.Fatalf("first resolve failed: %v", err)
	}

	second, err := svc.Resolve(context.Background(), "seattle")
	if err != nil {
		t.Fatalf("second resolve failed: %v", err)
	}

	if geocoder.calls != 1 {
		t.Errorf("a hit must not call the gateway, got %d calls", geocoder.calls)
	}
	if second.ID != first.ID {
		t.Errorf("resolving the same text twice created distinct rows: %d vs %d", first.ID, second.ID)
	}

	var count int64
	if err := db.Model(&models.Location{}).Where("search_text = ?", "seattle").Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected a single row per search text, found %d", count)
	}
}

func TestResolveNotFound(t *testing.T) {
	db := newTestDB(t)
	geocoder := &fakeGeocoder{} // zero results
	svc := NewLocationService(db, geocoder)

	_, err := svc.Resolve(context.Background(), "@@invalid@@")
	if err == nil {
		t.Fatal("expected an error for an unresolvable query")
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *NotFoundError, got %T: %v", err, err)
	}
	if notFound.Query != "@@invalid@@" {
		t.Errorf("unexpected query in error: %q", notFound.Query)
	}

	var count int64
	if err := db.Model(&models.Location{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("an unresolved query must not persist rows, found %d", count)
	}
}

func TestResolveGatewayFailure(t *testing.T) {
	db := newTestDB(t)
	geocoder := &fakeGeocoder{err: errors.New("quota exceeded")}
	svc := NewLocationService(db, geocoder)

	_, err := svc.Resolve(context.Background(), "seattle")
	var gatewayErr *cache.GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Fatalf("expected *GatewayError, got %T: %v", err, err)
	}
	if gatewayErr.Kind != "geocode" {
		t.Errorf("unexpected kind %q", gatewayErr.Kind)
	}
}

func TestResolveDistinctQueries(t *testing.T) {
	db := newTestDB(t)
	geocoder := &fakeGeocoder{results: []models.Location{
		{FormattedAddress: "Somewhere", Lat: 1, Lng: 2},
	}}
	svc := NewLocationService(db, geocoder)

	a, err := svc.Resolve(context.Background(), "seattle")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	b, err := svc.Resolve(context.Background(), "portland")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if a.ID == b.ID {
		t.Error("distinct queries must not share a location row")
	}
	if geocoder.calls != 2 {
		t.Errorf("expected one gateway call per distinct query, got %d", geocoder.calls)
	}
}
