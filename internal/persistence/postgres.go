package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/spec-kit/restaurant-service/internal/config"
)

// Postgres wraps access to a pgx connection pool and stores each collection
// as a JSONB table.
type Postgres struct {
	Pool *pgxpool.Pool
}

// NewPostgres establishes a connection pool.
func NewPostgres(ctx context.Context, cfg config.PostgresConfig, logger *zap.Logger) (*Postgres, error) {
	if cfg.DSN == "" {
		return nil, errors.New("POSTGRES_DSN is required for the postgres store")
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.ConnMaxIdleSec > 0 {
		poolCfg.MaxConnIdleTime = time.Duration(cfg.ConnMaxIdleSec) * time.Second
	}
	if cfg.ConnMaxLifeSec > 0 {
		poolCfg.MaxConnLifetime = time.Duration(cfg.ConnMaxLifeSec) * time.Second
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("connected to postgres")
	return &Postgres{Pool: pool}, nil
}

// EnsureCollections creates the backing table of each collection if missing.
func (p *Postgres) EnsureCollections(ctx context.Context, logger *zap.Logger, names ...string) error {
	for _, name := range names {
		table := pgx.Identifier{name}.Sanitize()
		ddl := fmt.Sprintf(`
        CREATE TABLE IF NOT EXISTS %s (
            id         TEXT PRIMARY KEY,
            doc        JSONB NOT NULL DEFAULT '{}'::jsonb,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`, table)
		if _, err := p.Pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("create collection %s: %w", name, err)
		}
		logger.Info("collection ready", zap.String("collection", name))
	}
	return nil
}

// Collection returns the named collection.
func (p *Postgres) Collection(name string) Collection {
	return &PostgresCollection{pool: p.Pool, name: name, table: pgx.Identifier{name}.Sanitize()}
}

// Ping verifies connectivity.
func (p *Postgres) Ping(ctx context.Context) error {
	if p == nil || p.Pool == nil {
		return errors.New("postgres pool not configured")
	}
	return p.Pool.Ping(ctx)
}

// Close releases pool resources.
func (p *Postgres) Close(context.Context) error {
	if p != nil && p.Pool != nil {
		p.Pool.Close()
	}
	return nil
}
