package repository

import (
	"context"

	"github.com/osse101/StormSheet_Go/internal/domain"
)

// ConfirmedGrant stores acknowledged level-up and spren grants
type ConfirmedGrant interface {
	SaveConfirmedGrant(ctx context.Context, grant domain.ConfirmedGrant) error
	// ListConfirmedGrants returns grants oldest first. An empty kind lists every kind.
	ListConfirmedGrants(ctx context.Context, characterID string, kind domain.GrantKind) ([]domain.ConfirmedGrant, error)
}
