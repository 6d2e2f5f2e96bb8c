package character

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/StormSheet_Go/internal/domain"
	"github.com/osse101/StormSheet_Go/internal/logger"
	"github.com/osse101/StormSheet_Go/internal/repository"
)

// Service exposes read access to character sheets for the attack engine,
// plus the upsert used to load sheets into this service.
type Service interface {
	GetCharacter(ctx context.Context, characterID string) (*domain.CharacterStats, error)
	UpsertCharacter(ctx context.Context, character *domain.CharacterStats) error
	SkillTotal(ctx context.Context, characterID, skill string) (int, error)
	Exists(ctx context.Context, characterID string) (bool, error)
}

type service struct {
	repo repository.Character
}

// NewService creates a character service
func NewService(repo repository.Character) Service {
	return &service{repo: repo}
}

func (s *service) GetCharacter(ctx context.Context, characterID string) (*domain.CharacterStats, error) {
	return s.repo.GetCharacter(ctx, characterID)
}

// UpsertCharacter stores a sheet. Skill and attribute names are stored lower-case.
func (s *service) UpsertCharacter(ctx context.Context, character *domain.CharacterStats) error {
	if strings.TrimSpace(character.ID) == "" {
		return fmt.Errorf("%w: id", domain.ErrMissingField)
	}
	normalized := *character
	normalized.Skills = normalizeKeys(character.Skills)
	normalized.Attributes = normalizeKeys(character.Attributes)

	if err := s.repo.UpsertCharacter(ctx, &normalized); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgCharacterUpserted, "character_id", character.ID)
	return nil
}

// SkillTotal returns the named skill's total. Lookup is case-insensitive.
func (s *service) SkillTotal(ctx context.Context, characterID, skill string) (int, error) {
	c, err := s.repo.GetCharacter(ctx, characterID)
	if err != nil {
		return 0, err
	}
	total, ok := c.SkillTotal(normalizeKey(skill))
	if !ok {
		return 0, fmt.Errorf("%w: %s has no skill %q", domain.ErrSkillNotFound, characterID, skill)
	}
	return total, nil
}

func (s *service) Exists(ctx context.Context, characterID string) (bool, error) {
	_, err := s.repo.GetCharacter(ctx, characterID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domain.ErrCharacterNotFound) {
		return false, nil
	}
	return false, err
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func normalizeKeys(in map[string]int) map[string]int {
	if in == nil {
		return nil
	}
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[normalizeKey(k)] = v
	}
	return out
}
