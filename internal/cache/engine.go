// Package cache implements the persistent cache-aside-with-TTL engine
// shared by every resource kind: look up prior results by location, judge
// the batch's freshness against the kind's window, evict a stale batch,
// fall through to a live provider fetch, persist what came back, and
// return the same shape regardless of the path taken.
package cache

import (
	"context"
	"time"

	"github.com/minseokoh/localscope/internal/database"
	"github.com/minseokoh/localscope/internal/logger"
	"github.com/minseokoh/localscope/internal/models"
)

// Record constrains a resource-kind pointer to the two capabilities the
// engine needs: stamping ownership/creation on insert and reporting the
// creation time on the freshness check.
type Record[T any] interface {
	*T
	Stamp(locationID uint, now time.Time)
	CreatedTime() time.Time
}

// FetchFunc performs the live external fetch for a resolved location.
// It must not persist anything; persistence belongs to the engine.
// A nil error with an empty slice means the provider found nothing,
// which is a valid outcome distinct from a failed fetch.
type FetchFunc[T any] func(ctx context.Context, loc models.Location) ([]T, error)

// Source is the per-kind value set the engine is parameterized by:
// table identity (via T), a log/metric label, the freshness window,
// and the provider gateway call.
type Source[T any, PT Record[T]] struct {
	Kind  string
	TTL   time.Duration
	Fetch FetchFunc[T]
}

// NewSource builds a Source for a resource kind.
func NewSource[T any, PT Record[T]](kind string, ttl time.Duration, fetch FetchFunc[T]) Source[T, PT] {
	return Source[T, PT]{Kind: kind, TTL: ttl, Fetch: fetch}
}

// Engine holds the store handle shared by all kinds. It keeps no state
// between requests; concurrent lookups for the same (kind, location) that
// both observe a miss will both fetch and both insert. That duplicate-row
// window lasts until the next eviction and is accepted behavior (no
// single-flight).
type Engine struct {
	db  *database.DB
	now func() time.Time
}

func NewEngine(db *database.DB) *Engine {
	return &Engine{db: db, now: time.Now}
}

// WithClock replaces the engine's time source. Tests use this to age a
// persisted batch without sleeping.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// FetchCached runs the cache-aside protocol for one kind and location:
//
//  1. load the persisted batch for location_id (ordered by id)
//  2. fresh batch (age <= TTL) -> return it verbatim, no side effects
//  3. stale batch -> delete every row of the kind for this location
//  4. empty or just-evicted -> call the gateway, stamp and persist the
//     results as one batch, return them
//
// Age is the oldest created_at in the batch; eviction is all-or-nothing
// per (kind, location). A gateway failure surfaces as *GatewayError and
// persists nothing beyond an eviction already committed in step 3.
func FetchCached[T any, PT Record[T]](ctx context.Context, e *Engine, src Source[T, PT], loc models.Location) ([]T, error) {
	log := logger.GetLogger("cache." + src.Kind)

	var rows []T
	if err := e.db.WithContext(ctx).Where("location_id = ?", loc.ID).Order("id").Find(&rows).Error; err != nil {
		return nil, &StoreError{Op: "find " + src.Kind, Err: err}
	}

	if len(rows) > 0 {
		age := e.now().Sub(oldestCreated[T, PT](rows))
		if age <= src.TTL {
			cacheHitsTotal.WithLabelValues(src.Kind).Inc()
			return rows, nil
		}

		// Stale: the whole batch goes before any re-fetch.
		if err := e.db.WithContext(ctx).Where("location_id = ?", loc.ID).Delete(PT(new(T))).Error; err != nil {
			return nil, &StoreError{Op: "delete stale " + src.Kind, Err: err}
		}
		cacheEvictionsTotal.WithLabelValues(src.Kind).Inc()
		log.Infow("evicted stale batch", "location_id", loc.ID, "rows", len(rows), "age", age.String())
	}

	cacheMissesTotal.WithLabelValues(src.Kind).Inc()

	fetched, err := src.Fetch(ctx, loc)
	if err != nil {
		return nil, &GatewayError{Kind: src.Kind, Err: err}
	}

	// Zero provider results persist nothing, so the next lookup sees an
	// empty cache and re-attempts a live fetch: no negative caching.
	if len(fetched) == 0 {
		return []T{}, nil
	}

	now := e.now()
	for i := range fetched {
		PT(&fetched[i]).Stamp(loc.ID, now)
	}
	if err := e.db.WithContext(ctx).Create(&fetched).Error; err != nil {
		return nil, &StoreError{Op: "insert " + src.Kind, Err: err}
	}

	log.Infow("persisted fresh batch", "location_id", loc.ID, "rows", len(fetched))
	return fetched, nil
}

// oldestCreated returns the earliest created_at in a batch. Rows created
// by a single fetch share a timestamp, but a partially written batch is
// still judged by its oldest member.
func oldestCreated[T any, PT Record[T]](rows []T) time.Time {
	oldest := PT(&rows[0]).CreatedTime()
	for i := 1; i < len(rows); i++ {
		if t := PT(&rows[i]).CreatedTime(); t.Before(oldest) {
			oldest = t
		}
	}
	return oldest
}
