package character

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/osse101/StormSheet_Go/internal/domain"
)

// MemoryRepository keeps character sheets in process memory
type MemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]domain.CharacterStats
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{characters: make(map[string]domain.CharacterStats)}
}

// GetCharacter returns a copy of the stored sheet
func (r *MemoryRepository) GetCharacter(_ context.Context, characterID string) (*domain.CharacterStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.characters[characterID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, characterID)
	}
	out := clone(c)
	return &out, nil
}

// UpsertCharacter stores a copy of the sheet
func (r *MemoryRepository) UpsertCharacter(_ context.Context, character *domain.CharacterStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.characters[character.ID] = clone(*character)
	return nil
}

func clone(c domain.CharacterStats) domain.CharacterStats {
	c.Attributes = maps.Clone(c.Attributes)
	c.Skills = maps.Clone(c.Skills)
	return c
}
