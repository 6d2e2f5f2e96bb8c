package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/StormSheet_Go/internal/character"
	"github.com/osse101/StormSheet_Go/internal/config"
	"github.com/osse101/StormSheet_Go/internal/database"
	"github.com/osse101/StormSheet_Go/internal/database/postgres"
	"github.com/osse101/StormSheet_Go/internal/grant"
	"github.com/osse101/StormSheet_Go/internal/repository"
)

// Repositories holds the storage implementations selected by configuration.
type Repositories struct {
	Characters repository.Character
	Confirmed  repository.ConfirmedGrant
}

// OpenDatabase connects and migrates when the postgres backend is configured.
// It returns a nil pool for in-memory storage.
func OpenDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	if !cfg.UsesPostgres() {
		return nil, nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDB, err)
	}
	return pool, nil
}

// InitializeRepositories picks postgres repositories when dbPool is set and
// in-memory ones otherwise. Character reads go through the LRU cache unless
// CHARACTER_CACHE_SIZE is 0.
func InitializeRepositories(cfg *config.Config, dbPool *pgxpool.Pool) *Repositories {
	var repos Repositories
	if dbPool != nil {
		repos.Characters = postgres.NewCharacterRepository(dbPool)
		repos.Confirmed = postgres.NewConfirmedGrantRepository(dbPool)
		slog.Info(LogMsgStorageSelected, "backend", config.StoragePostgres)
	} else {
		repos.Characters = character.NewMemoryRepository()
		repos.Confirmed = grant.NewMemoryConfirmedRepository()
		slog.Info(LogMsgStorageSelected, "backend", config.StorageMemory)
	}

	if cfg.CharacterCacheSize > 0 {
		repos.Characters = character.NewCachedRepository(repos.Characters, character.CacheConfig{
			Size: cfg.CharacterCacheSize,
			TTL:  cfg.CharacterCacheTTL,
		})
		slog.Info(LogMsgCharacterCacheOn, "size", cfg.CharacterCacheSize, "ttl", cfg.CharacterCacheTTL)
	} else {
		slog.Info(LogMsgCharacterCacheOff)
	}

	return &repos
}
