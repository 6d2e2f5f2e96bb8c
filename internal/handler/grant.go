package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/osse101/StormSheet_Go/internal/domain"
	"github.com/osse101/StormSheet_Go/internal/grant"
	"github.com/osse101/StormSheet_Go/internal/logger"
)

// GrantResponse wraps a single grant
type GrantResponse struct {
	Message     string       `json:"message,omitempty"`
	DisplayName string       `json:"display_name"`
	Grant       domain.Grant `json:"grant"`
}

// PendingGrantsResponse lists a character's pending grants of one kind, oldest first
type PendingGrantsResponse struct {
	CharacterID string           `json:"character_id"`
	Kind        domain.GrantKind `json:"kind"`
	DisplayName string           `json:"display_name"`
	Pending     []domain.Grant   `json:"pending"`
}

// ConfirmedGrantsResponse lists retained confirmations
type ConfirmedGrantsResponse struct {
	CharacterID string                  `json:"character_id"`
	Confirmed   []domain.ConfirmedGrant `json:"confirmed"`
}

// AcknowledgeGrantRequest optionally names the grant being acknowledged
type AcknowledgeGrantRequest struct {
	GrantID string `json:"grant_id" validate:"omitempty,max=64"`
}

// ConfirmedGrantsQuery holds the optional filters of the confirmed grants listing
type ConfirmedGrantsQuery struct {
	Kind string `json:"kind" validate:"omitempty,grantkind"`
}

func grantKindParam(w http.ResponseWriter, r *http.Request) (domain.GrantKind, bool) {
	raw, ok := GetPathParam(r, w, "kind")
	if !ok {
		return "", false
	}
	kind, err := domain.ParseGrantKind(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgUnknownGrantKind)
		return "", false
	}
	return kind, true
}

// HandleIssueGrant enqueues a grant for a character. The body is the kind's payload.
// @Summary Issue grant
// @Description Game-master action: queue a level-up, spren, expertise or item grant for delivery
// @Tags grants
// @Accept json
// @Produce json
// @Param id path string true "Character ID"
// @Param kind path string true "Grant kind (level-up, spren, expertise, item)"
// @Success 201 {object} GrantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /characters/{id}/grants/{kind} [post]
func HandleIssueGrant(svc grant.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		characterID, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}
		kind, ok := grantKindParam(w, r)
		if !ok {
			return
		}

		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBody))
		if err != nil {
			log.Warn("Failed to read issue grant request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		payload, err := domain.DecodeGrantPayload(kind, raw)
		if err != nil {
			log.Warn("Failed to decode grant payload", "kind", kind, "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := GetValidator().ValidateStruct(payload); err != nil {
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  ErrMsgInvalidRequestSummary,
				Fields: FormatValidationError(err),
			})
			return
		}

		g, err := svc.Issue(r.Context(), characterID, payload)
		if err != nil {
			respondServiceError(w, r, ErrMsgIssueGrantFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, GrantResponse{
			Message:     MsgGrantIssued,
			DisplayName: g.Kind.DisplayName(),
			Grant:       *g,
		})
	}
}

// HandleListPendingGrants returns the pending queue for one kind
// @Summary Pending grants
// @Description Grants of one kind awaiting acknowledgement, oldest first
// @Tags grants
// @Produce json
// @Param id path string true "Character ID"
// @Param kind path string true "Grant kind"
// @Success 200 {object} PendingGrantsResponse
// @Failure 400 {object} ErrorResponse
// @Router /characters/{id}/grants/{kind} [get]
func HandleListPendingGrants(svc grant.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characterID, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}
		kind, ok := grantKindParam(w, r)
		if !ok {
			return
		}

		pending, err := svc.Pending(r.Context(), characterID, kind)
		if err != nil {
			respondServiceError(w, r, ErrMsgListPendingFailed, err)
			return
		}
		if pending == nil {
			pending = []domain.Grant{}
		}

		respondJSON(w, http.StatusOK, PendingGrantsResponse{
			CharacterID: characterID,
			Kind:        kind,
			DisplayName: kind.DisplayName(),
			Pending:     pending,
		})
	}
}

// HandleAcknowledgeGrant removes the oldest pending grant of a kind and pushes the next
// @Summary Acknowledge grant
// @Description Client confirmation that the oldest pending grant was applied. An empty body acknowledges the head.
// @Tags grants
// @Accept json
// @Produce json
// @Param id path string true "Character ID"
// @Param kind path string true "Grant kind"
// @Param request body AcknowledgeGrantRequest false "Grant being acknowledged"
// @Success 200 {object} GrantResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /characters/{id}/grants/{kind}/ack [post]
func HandleAcknowledgeGrant(svc grant.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characterID, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}
		kind, ok := grantKindParam(w, r)
		if !ok {
			return
		}

		var req AcknowledgeGrantRequest
		if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
			logger.FromContext(r.Context()).Warn("Failed to decode acknowledge request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  ErrMsgInvalidRequestSummary,
				Fields: FormatValidationError(err),
			})
			return
		}

		g, err := svc.Acknowledge(r.Context(), characterID, kind, req.GrantID)
		if err != nil {
			respondServiceError(w, r, ErrMsgAcknowledgeGrantFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, GrantResponse{
			Message:     MsgGrantAcknowledged,
			DisplayName: g.Kind.DisplayName(),
			Grant:       *g,
		})
	}
}

// HandleListConfirmedGrants returns retained level-up and spren confirmations
// @Summary Confirmed grants
// @Description Acknowledged level-up and spren grants. Filter with ?kind=
// @Tags grants
// @Produce json
// @Param id path string true "Character ID"
// @Param kind query string false "Grant kind"
// @Success 200 {object} ConfirmedGrantsResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /characters/{id}/grants/confirmed [get]
func HandleListConfirmedGrants(svc grant.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characterID, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}

		query := ConfirmedGrantsQuery{Kind: GetOptionalQueryParam(r, "kind", "")}
		if err := GetValidator().ValidateStruct(query); err != nil {
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  ErrMsgInvalidRequestSummary,
				Fields: FormatValidationError(err),
			})
			return
		}

		var kind domain.GrantKind
		if query.Kind != "" {
			// already checked by the grantkind tag
			kind, _ = domain.ParseGrantKind(query.Kind)
		}

		confirmed, err := svc.Confirmed(r.Context(), characterID, kind)
		if err != nil {
			respondServiceError(w, r, ErrMsgListConfirmedFailed, err)
			return
		}
		if confirmed == nil {
			confirmed = []domain.ConfirmedGrant{}
		}

		respondJSON(w, http.StatusOK, ConfirmedGrantsResponse{CharacterID: characterID, Confirmed: confirmed})
	}
}
