package character

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/StormSheet_Go/internal/domain"
	"github.com/osse101/StormSheet_Go/internal/logger"
	"github.com/osse101/StormSheet_Go/internal/repository"
)

// CacheConfig sizes the character cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// cachedCharacterEntry wraps a sheet with version metadata for cache invalidation
type cachedCharacterEntry struct {
	Version   string
	Character domain.CharacterStats
	CachedAt  time.Time
}

// characterCache is an expiring LRU keyed by character id
type characterCache struct {
	lru    *expirable.LRU[string, *cachedCharacterEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

func newCharacterCache(cfg CacheConfig) *characterCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheTTL
	}
	return &characterCache{
		lru: expirable.NewLRU[string, *cachedCharacterEntry](cfg.Size, nil, cfg.TTL),
	}
}

// Get returns a copy of the cached sheet. Entries from an older schema version are dropped.
func (c *characterCache) Get(characterID string) (*domain.CharacterStats, bool) {
	entry, found := c.lru.Get(characterID)
	if !found || entry.Version != CacheSchemaVersion {
		if found {
			c.lru.Remove(characterID)
		}
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	out := clone(entry.Character)
	return &out, true
}

func (c *characterCache) Set(character *domain.CharacterStats) {
	c.lru.Add(character.ID, &cachedCharacterEntry{
		Version:   CacheSchemaVersion,
		Character: clone(*character),
		CachedAt:  time.Now(),
	})
}

func (c *characterCache) Invalidate(characterID string) {
	c.lru.Remove(characterID)
}

func (c *characterCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}

// CachedRepository is a read-through cache in front of another character repository.
// Writes go to the underlying repository and invalidate the cached entry.
type CachedRepository struct {
	inner repository.Character
	cache *characterCache
}

// NewCachedRepository wraps inner with an expiring LRU cache
func NewCachedRepository(inner repository.Character, cfg CacheConfig) *CachedRepository {
	return &CachedRepository{inner: inner, cache: newCharacterCache(cfg)}
}

func (r *CachedRepository) GetCharacter(ctx context.Context, characterID string) (*domain.CharacterStats, error) {
	if c, ok := r.cache.Get(characterID); ok {
		return c, nil
	}
	c, err := r.inner.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}
	r.cache.Set(c)
	return c, nil
}

func (r *CachedRepository) UpsertCharacter(ctx context.Context, character *domain.CharacterStats) error {
	if err := r.inner.UpsertCharacter(ctx, character); err != nil {
		return err
	}
	r.cache.Invalidate(character.ID)
	logger.FromContext(ctx).Debug(LogMsgCacheInvalidated, "character_id", character.ID)
	return nil
}

// Stats returns cache hit/miss counters
func (r *CachedRepository) Stats() CacheStats {
	return r.cache.GetStats()
}
