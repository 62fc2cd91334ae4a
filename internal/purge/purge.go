// Package purge implements the maintenance job that deletes resource rows
// already past their kind's freshness window. The API evicts lazily on
// lookup, so rows for locations nobody asks about again would otherwise
// sit in the tables forever.
package purge

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minseokoh/localscope/internal/config"
	"github.com/minseokoh/localscope/internal/logger"
	"github.com/minseokoh/localscope/internal/models"
)

// Purger deletes expired cache rows directly over pgx, bypassing the ORM.
type Purger struct {
	pool *pgxpool.Pool
	cfg  *config.Config
}

// New creates a Purger with its own connection pool.
func New(ctx context.Context, cfg *config.Config) (*Purger, error) {
	log := logger.GetLogger("purge")

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = 4
	poolConfig.MaxConnLifetime = time.Hour

	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connCtx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(connCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("Database connection established")

	return &Purger{pool: pool, cfg: cfg}, nil
}

// Close releases the connection pool.
func (p *Purger) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

type target struct {
	table string
	ttl   time.Duration
}

func (p *Purger) targets() []target {
	return []target{
		{table: models.Weather{}.TableName(), ttl: p.cfg.WeatherTTL},
		{table: models.Event{}.TableName(), ttl: p.cfg.EventsTTL},
		{table: models.Movie{}.TableName(), ttl: p.cfg.MoviesTTL},
		{table: models.Review{}.TableName(), ttl: p.cfg.ReviewsTTL},
	}
}

// Run deletes every resource row whose created_at lies beyond its kind's
// freshness window. Locations are never purged.
func (p *Purger) Run(ctx context.Context) error {
	log := logger.GetLogger("purge")
	started := time.Now()

	var total int64
	for _, t := range p.targets() {
		cutoff := started.Add(-t.ttl)

		tag, err := p.pool.Exec(ctx,
			fmt.Sprintf("DELETE FROM %s WHERE created_at < $1", t.table), cutoff)
		if err != nil {
			return fmt.Errorf("failed to purge %s: %w", t.table, err)
		}

		deleted := tag.RowsAffected()
		total += deleted
		if deleted > 0 {
			log.Infof("Purged %d expired rows from %s (cutoff %s)",
				deleted, t.table, cutoff.Format(time.RFC3339))
		}
	}

	log.Infof("Purge finished: %d rows in %s", total, time.Since(started).Round(time.Millisecond))
	return nil
}
