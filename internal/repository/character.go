package repository

import (
	"context"

	"github.com/osse101/StormSheet_Go/internal/domain"
)

// Character defines the interface for character sheet persistence.
// GetCharacter returns domain.ErrCharacterNotFound for unknown ids.
type Character interface {
	GetCharacter(ctx context.Context, characterID string) (*domain.CharacterStats, error)
	UpsertCharacter(ctx context.Context, character *domain.CharacterStats) error
}
