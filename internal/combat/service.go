package combat

import (
	"context"

	"github.com/osse101/StormSheet_Go/internal/dice"
	"github.com/osse101/StormSheet_Go/internal/domain"
	"github.com/osse101/StormSheet_Go/internal/event"
	"github.com/osse101/StormSheet_Go/internal/logger"
)

// Service defines the attack resolution interface
type Service interface {
	Execute(ctx context.Context, req domain.AttackRequest) (*domain.AttackResult, error)
	Combination(ctx context.Context, req domain.AttackRequest, attackCount int) (*domain.CombinationSummary, error)
	Validate(ctx context.Context, req domain.AttackRequest) domain.ValidationResult
	ExecuteForCharacter(ctx context.Context, characterID, skill string, req domain.AttackRequest) (*domain.AttackResult, error)
}

// SkillSource resolves a character's skill total
type SkillSource interface {
	SkillTotal(ctx context.Context, characterID, skill string) (int, error)
}

type service struct {
	engine         *Engine
	skills         SkillSource
	publisher      *event.ResilientPublisher
	maxAttackCount int
}

// NewService creates a new combat service. skills and publisher may be nil.
func NewService(roller dice.Roller, skills SkillSource, publisher *event.ResilientPublisher, maxAttackCount int) Service {
	if maxAttackCount <= 0 {
		maxAttackCount = DefaultMaxAttackCount
	}
	return &service{
		engine:         NewEngine(roller),
		skills:         skills,
		publisher:      publisher,
		maxAttackCount: maxAttackCount,
	}
}

func (s *service) Execute(ctx context.Context, req domain.AttackRequest) (*domain.AttackResult, error) {
	return s.execute(ctx, "", req)
}

func (s *service) execute(ctx context.Context, characterID string, req domain.AttackRequest) (*domain.AttackResult, error) {
	log := logger.FromContext(ctx)

	result, err := s.engine.Resolve(req)
	if err != nil {
		log.Info(LogMsgAttackRejected, "character_id", characterID, "error", err)
		return nil, err
	}

	log.Debug(LogMsgAttackResolved,
		"character_id", characterID,
		"mode", req.AdvantageMode.OrDefault(),
		"final_roll", result.AttackRoll.FinalRoll,
		"total", result.AttackRoll.Total,
		"hit", result.Combat.IsHit,
		"damage", result.Combat.DamageDealt)

	s.publish(ctx, event.NewAttackResolvedEvent(characterID, req.AdvantageMode.OrDefault(), result))
	return &result, nil
}

func (s *service) Combination(ctx context.Context, req domain.AttackRequest, attackCount int) (*domain.CombinationSummary, error) {
	log := logger.FromContext(ctx)

	if err := Validate(req); err != nil {
		log.Info(LogMsgCombinationRejected, "error", err)
		return nil, err
	}
	if err := ValidateAttackCount(attackCount, s.maxAttackCount); err != nil {
		log.Info(LogMsgCombinationRejected, "error", err)
		return nil, err
	}

	summary, err := s.engine.RunCombination(req, attackCount)
	if err != nil {
		return nil, err
	}

	log.Debug(LogMsgCombinationCompleted,
		"attack_count", summary.AttackCount,
		"hits", summary.Summary.HitCount,
		"total_damage", summary.Summary.TotalDamage)

	mode := req.AdvantageMode.OrDefault()
	for _, a := range summary.Attacks {
		s.publish(ctx, event.NewAttackResolvedEvent("", mode, a))
	}
	s.publish(ctx, event.NewCombinationCompletedEvent(mode, summary))
	return &summary, nil
}

func (s *service) Validate(_ context.Context, req domain.AttackRequest) domain.ValidationResult {
	return ValidateRequest(req)
}

// ExecuteForCharacter looks up skillTotal from the character sheet, overriding the request's value
func (s *service) ExecuteForCharacter(ctx context.Context, characterID, skill string, req domain.AttackRequest) (*domain.AttackResult, error) {
	if s.skills == nil {
		return nil, domain.ErrCharacterNotFound
	}
	total, err := s.skills.SkillTotal(ctx, characterID, skill)
	if err != nil {
		logger.FromContext(ctx).Info(LogMsgSkillLookupFailed, "character_id", characterID, "skill", skill, "error", err)
		return nil, err
	}
	req.SkillTotal = total
	return s.execute(ctx, characterID, req)
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishWithRetry(ctx, evt)
}
