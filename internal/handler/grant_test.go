package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/StormSheet_Go/internal/character"
	"github.com/osse101/StormSheet_Go/internal/domain"
	"github.com/osse101/StormSheet_Go/internal/grant"
)

func newGrantService(t *testing.T) grant.Service {
	t.Helper()
	chars := character.NewService(character.NewMemoryRepository())
	require.NoError(t, chars.UpsertCharacter(t.Context(), &domain.CharacterStats{ID: "kaladin"}))
	return grant.NewService(grant.NewRegistry(), grant.NewMemoryConfirmedRepository(), chars, nil, time.Minute)
}

const (
	grantKindPattern = "/characters/{id}/grants/{kind}"
	grantAckPattern  = "/characters/{id}/grants/{kind}/ack"
)

func TestHandleIssueGrant(t *testing.T) {
	svc := newGrantService(t)
	h := HandleIssueGrant(svc)

	t.Run("Success", func(t *testing.T) {
		w := serve(t, http.MethodPost, grantKindPattern, "/characters/kaladin/grants/level-up", h,
			map[string]int{"new_level": 2})

		require.Equal(t, http.StatusCreated, w.Code)
		resp := decodeBody[GrantResponse](t, w)
		assert.Equal(t, MsgGrantIssued, resp.Message)
		assert.Equal(t, "Level Up", resp.DisplayName)
		assert.NotEmpty(t, resp.Grant.ID)
		assert.Equal(t, domain.LevelUpGrant{NewLevel: 2}, resp.Grant.Payload)
	})

	t.Run("Unknown kind", func(t *testing.T) {
		w := serve(t, http.MethodPost, grantKindPattern, "/characters/kaladin/grants/oathgate", h, map[string]int{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, ErrMsgUnknownGrantKind, decodeBody[ErrorResponse](t, w).Error)
	})

	t.Run("Payload fails validation", func(t *testing.T) {
		w := serve(t, http.MethodPost, grantKindPattern, "/characters/kaladin/grants/item", h,
			map[string]interface{}{"item_id": "broam", "quantity": 0})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeBody[ValidationErrorResponse](t, w)
		assert.Contains(t, resp.Fields, "quantity")
	})

	t.Run("Malformed payload", func(t *testing.T) {
		w := serve(t, http.MethodPost, grantKindPattern, "/characters/kaladin/grants/spren", h, "[1,2")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown character", func(t *testing.T) {
		w := serve(t, http.MethodPost, grantKindPattern, "/characters/shallan/grants/spren", h,
			map[string]string{"spren_type": "cryptic"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGrantLifecycle(t *testing.T) {
	svc := newGrantService(t)
	ctx := t.Context()

	first, err := svc.Issue(ctx, "kaladin", domain.SprenGrant{SprenType: "honorspren", Name: "Syl"})
	require.NoError(t, err)
	second, err := svc.Issue(ctx, "kaladin", domain.SprenGrant{SprenType: "honorspren", Name: "Stormfather"})
	require.NoError(t, err)

	// Pending is FIFO
	w := serve(t, http.MethodGet, grantKindPattern, "/characters/kaladin/grants/spren", HandleListPendingGrants(svc), nil)
	require.Equal(t, http.StatusOK, w.Code)
	pending := decodeBody[PendingGrantsResponse](t, w)
	require.Len(t, pending.Pending, 2)
	assert.Equal(t, first.ID, pending.Pending[0].ID)
	assert.Equal(t, second.ID, pending.Pending[1].ID)

	ack := HandleAcknowledgeGrant(svc)

	// Acknowledging anything but the head is rejected
	w = serve(t, http.MethodPost, grantAckPattern, "/characters/kaladin/grants/spren/ack", ack,
		AcknowledgeGrantRequest{GrantID: second.ID})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = serve(t, http.MethodPost, grantAckPattern, "/characters/kaladin/grants/spren/ack", ack,
		AcknowledgeGrantRequest{GrantID: first.ID})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, first.ID, decodeBody[GrantResponse](t, w).Grant.ID)

	// Empty body acknowledges the head
	w = serve(t, http.MethodPost, grantAckPattern, "/characters/kaladin/grants/spren/ack", ack, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, second.ID, decodeBody[GrantResponse](t, w).Grant.ID)

	w = serve(t, http.MethodPost, grantAckPattern, "/characters/kaladin/grants/spren/ack", ack, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(t, http.MethodGet, grantKindPattern, "/characters/kaladin/grants/spren", HandleListPendingGrants(svc), nil)
	assert.Empty(t, decodeBody[PendingGrantsResponse](t, w).Pending)

	// Spren acknowledgements are retained
	confirmed := HandleListConfirmedGrants(svc)
	w = serve(t, http.MethodGet, "/characters/{id}/grants/confirmed", "/characters/kaladin/grants/confirmed?kind=spren", confirmed, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeBody[ConfirmedGrantsResponse](t, w)
	require.Len(t, list.Confirmed, 2)
	assert.Equal(t, first.ID, list.Confirmed[0].GrantID)

	w = serve(t, http.MethodGet, "/characters/{id}/grants/confirmed", "/characters/kaladin/grants/confirmed?kind=bogus", confirmed, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, domain.ErrMsgUnknownGrantKind, decodeBody[ValidationErrorResponse](t, w).Fields["kind"])

	w = serve(t, http.MethodGet, "/characters/{id}/grants/confirmed", "/characters/kaladin/grants/confirmed?kind=Level-Up", confirmed, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody[ConfirmedGrantsResponse](t, w).Confirmed, "kind filter is case insensitive")

	w = serve(t, http.MethodGet, "/characters/{id}/grants/confirmed", "/characters/kaladin/grants/confirmed", confirmed, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody[ConfirmedGrantsResponse](t, w).Confirmed, 2)
}
