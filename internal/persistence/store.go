package persistence

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/restaurant-service/internal/config"
)

// Open connects the backend selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StoreConfig, logger *zap.Logger) (Store, error) {
	switch cfg.Driver {
	case config.StoreDriverMongo:
		m, err := NewMongo(ctx, cfg.Mongo.ConnectionURI(), cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		return m, nil
	case config.StoreDriverPostgres:
		pg, err := NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, err
		}
		if err := pg.EnsureCollections(ctx, logger, cfg.Collections.All()...); err != nil {
			pg.Close(ctx) //nolint:errcheck
			return nil, err
		}
		return pg, nil
	case config.StoreDriverMemory:
		logger.Warn("using in-memory store; data is lost on restart")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
