package grant

import (
	"context"
	"sync"

	"github.com/osse101/StormSheet_Go/internal/domain"
)

// MemoryConfirmedRepository keeps confirmed grants in process memory
type MemoryConfirmedRepository struct {
	mu     sync.RWMutex
	grants map[string][]domain.ConfirmedGrant
}

// NewMemoryConfirmedRepository creates an empty repository
func NewMemoryConfirmedRepository() *MemoryConfirmedRepository {
	return &MemoryConfirmedRepository{grants: make(map[string][]domain.ConfirmedGrant)}
}

func (r *MemoryConfirmedRepository) SaveConfirmedGrant(_ context.Context, g domain.ConfirmedGrant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.grants[g.CharacterID] {
		if existing.GrantID == g.GrantID {
			return nil
		}
	}
	r.grants[g.CharacterID] = append(r.grants[g.CharacterID], g)
	return nil
}

func (r *MemoryConfirmedRepository) ListConfirmedGrants(_ context.Context, characterID string, kind domain.GrantKind) ([]domain.ConfirmedGrant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.ConfirmedGrant, 0, len(r.grants[characterID]))
	for _, g := range r.grants[characterID] {
		if kind == "" || g.Kind == kind {
			out = append(out, g)
		}
	}
	return out, nil
}
