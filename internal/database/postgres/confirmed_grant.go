package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/StormSheet_Go/internal/domain"
)

// ConfirmedGrantRepository implements repository.ConfirmedGrant
type ConfirmedGrantRepository struct {
	db *pgxpool.Pool
}

// NewConfirmedGrantRepository creates a new confirmed grant repository
func NewConfirmedGrantRepository(db *pgxpool.Pool) *ConfirmedGrantRepository {
	return &ConfirmedGrantRepository{db: db}
}

// SaveConfirmedGrant stores an acknowledged grant. Saving the same grant id
// twice keeps the first record.
func (r *ConfirmedGrantRepository) SaveConfirmedGrant(ctx context.Context, g domain.ConfirmedGrant) error {
	query := `
		INSERT INTO confirmed_grants (grant_id, character_id, kind, payload, issued_at, confirmed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (grant_id) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query,
		g.GrantID,
		g.CharacterID,
		string(g.Kind),
		[]byte(g.Payload),
		g.IssuedAt,
		g.ConfirmedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", ErrMsgSaveConfirmedFailed, domain.ErrDatabaseError, err)
	}
	return nil
}

// ListConfirmedGrants returns grants oldest first. An empty kind lists every kind.
func (r *ConfirmedGrantRepository) ListConfirmedGrants(ctx context.Context, characterID string, kind domain.GrantKind) ([]domain.ConfirmedGrant, error) {
	query := `
		SELECT grant_id::text, character_id, kind, payload, issued_at, confirmed_at
		FROM confirmed_grants
		WHERE character_id = $1 AND ($2::text = '' OR kind = $2::text)
		ORDER BY confirmed_at, grant_id
	`
	rows, err := r.db.Query(ctx, query, characterID, string(kind))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", ErrMsgListConfirmedFailed, domain.ErrDatabaseError, err)
	}

	grants, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ConfirmedGrant, error) {
		var g domain.ConfirmedGrant
		var payload []byte
		if err := row.Scan(&g.GrantID, &g.CharacterID, &g.Kind, &payload, &g.IssuedAt, &g.ConfirmedAt); err != nil {
			return g, fmt.Errorf("%s: %w", ErrMsgScanConfirmedGrantFailed, err)
		}
		g.Payload = payload
		return g, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", ErrMsgListConfirmedFailed, domain.ErrDatabaseError, err)
	}
	return grants, nil
}
