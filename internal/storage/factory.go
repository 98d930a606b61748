// Package storage selects backend store implementations by configured driver.
package storage

import (
	"context"
	"fmt"

	"github.com/adjutant-mcp/adjutant/internal/common"
	"github.com/adjutant-mcp/adjutant/internal/config"
	"github.com/adjutant-mcp/adjutant/internal/interfaces"
	"github.com/adjutant-mcp/adjutant/internal/storage/bolt"
	"github.com/adjutant-mcp/adjutant/internal/storage/postgres"
	"github.com/adjutant-mcp/adjutant/internal/storage/redis"
	"github.com/adjutant-mcp/adjutant/internal/storage/sqlite"
)

// NewSQLStore creates the relational store selected by config.
// Connectivity is verified before the store is returned.
func NewSQLStore(ctx context.Context, cfg config.DatabaseConfig, logger *common.Logger) (interfaces.SQLStore, error) {
	switch cfg.Driver {
	case "", "postgres":
		return postgres.New(ctx, cfg.Postgres, logger)
	case "sqlite":
		return sqlite.New(ctx, cfg.SQLite, logger)
	default:
		return nil, fmt.Errorf("unknown database driver %q (expected postgres or sqlite)", cfg.Driver)
	}
}

// NewKeyValueStore creates the key-value store selected by config.
// Connectivity is verified before the store is returned.
func NewKeyValueStore(ctx context.Context, cfg config.KVConfig, logger *common.Logger) (interfaces.KeyValueStore, error) {
	switch cfg.Driver {
	case "", "redis":
		return redis.New(ctx, cfg.Redis, logger)
	case "bolt":
		return bolt.New(cfg.Bolt, logger)
	default:
		return nil, fmt.Errorf("unknown kv driver %q (expected redis or bolt)", cfg.Driver)
	}
}
