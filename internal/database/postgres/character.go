package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/StormSheet_Go/internal/domain"
)

// CharacterRepository implements repository.Character
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a new character repository
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// GetCharacter loads a character sheet by id
func (r *CharacterRepository) GetCharacter(ctx context.Context, characterID string) (*domain.CharacterStats, error) {
	query := `
		SELECT id, name, level, attributes, skills
		FROM characters
		WHERE id = $1
	`
	var c domain.CharacterStats
	err := r.db.QueryRow(ctx, query, characterID).Scan(
		&c.ID,
		&c.Name,
		&c.Level,
		&c.Attributes,
		&c.Skills,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, characterID)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", ErrMsgGetCharacterFailed, domain.ErrDatabaseError, err)
	}
	return &c, nil
}

// UpsertCharacter inserts or replaces a character sheet
func (r *CharacterRepository) UpsertCharacter(ctx context.Context, character *domain.CharacterStats) error {
	attributes, err := jsonObject(character.Attributes)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgEncodeCharacterFailed, err)
	}
	skills, err := jsonObject(character.Skills)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgEncodeCharacterFailed, err)
	}

	query := `
		INSERT INTO characters (id, name, level, attributes, skills)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    level = EXCLUDED.level,
		    attributes = EXCLUDED.attributes,
		    skills = EXCLUDED.skills,
		    updated_at = NOW()
	`
	_, err = r.db.Exec(ctx, query,
		character.ID,
		character.Name,
		character.Level,
		attributes,
		skills,
	)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", ErrMsgUpsertCharacterFailed, domain.ErrDatabaseError, err)
	}
	return nil
}

// jsonObject encodes m so that a nil map is stored as {} rather than null
func jsonObject(m map[string]int) ([]byte, error) {
	if m == nil {
		m = map[string]int{}
	}
	return json.Marshal(m)
}
