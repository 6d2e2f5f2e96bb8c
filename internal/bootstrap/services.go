package bootstrap

import (
	"log/slog"

	"github.com/osse101/StormSheet_Go/internal/character"
	"github.com/osse101/StormSheet_Go/internal/combat"
	"github.com/osse101/StormSheet_Go/internal/config"
	"github.com/osse101/StormSheet_Go/internal/dice"
	"github.com/osse101/StormSheet_Go/internal/event"
	"github.com/osse101/StormSheet_Go/internal/grant"
)

// Services holds the domain services shared by every transport.
type Services struct {
	Characters character.Service
	Combat     combat.Service
	Grants     grant.Service
}

// NewRoller returns a seeded roller when DICE_SEED is set and a crypto-backed one otherwise.
func NewRoller(cfg *config.Config) dice.Roller {
	if cfg.DiceSeed != nil {
		slog.Warn(LogMsgDiceSeeded, "seed", *cfg.DiceSeed)
		return dice.NewSeededRoller(*cfg.DiceSeed)
	}
	slog.Info(LogMsgDiceSecure)
	return dice.NewSecureRoller()
}

// InitializeServices wires the domain services to storage and the publisher.
func InitializeServices(cfg *config.Config, repos *Repositories, publisher *event.ResilientPublisher) *Services {
	characters := character.NewService(repos.Characters)

	registry := grant.NewRegistry(grant.WithDeliveryObserver(grant.DeliveryPublisher(publisher)))

	return &Services{
		Characters: characters,
		Combat:     combat.NewService(NewRoller(cfg), characters, publisher, cfg.MaxAttackCount),
		Grants:     grant.NewService(registry, repos.Confirmed, characters, publisher, cfg.RedeliveryAfter),
	}
}
