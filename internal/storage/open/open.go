// Package open constructs the storage backend selected in config.
package open

import (
	"context"
	"fmt"

	"github.com/aanand-mishra/names-api/internal/config"
	"github.com/aanand-mishra/names-api/internal/storage"
	"github.com/aanand-mishra/names-api/internal/storage/memory"
	"github.com/aanand-mishra/names-api/internal/storage/postgres"
	"github.com/aanand-mishra/names-api/internal/storage/sqlite"
)

// Storage returns the backend named by cfg.Driver.
func Storage(ctx context.Context, cfg config.Storage) (storage.Storage, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		s, err := sqlite.New(cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverPostgres:
		p, err := postgres.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return p, nil
	case config.DriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
