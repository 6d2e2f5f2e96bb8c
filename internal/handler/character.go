package handler

import (
	"net/http"

	"github.com/osse101/StormSheet_Go/internal/character"
	"github.com/osse101/StormSheet_Go/internal/domain"
)

// UpsertCharacterRequest is a character sheet as loaded from the sheet store
type UpsertCharacterRequest struct {
	Name       string         `json:"name" validate:"max=100"`
	Level      int            `json:"level" validate:"min=0,max=30"`
	Attributes map[string]int `json:"attributes"`
	Skills     map[string]int `json:"skills" validate:"dive,keys,required,max=64,endkeys,min=0"`
}

// HandleGetCharacter returns the stats view of a character sheet
// @Summary Get character
// @Tags characters
// @Produce json
// @Param id path string true "Character ID"
// @Success 200 {object} domain.CharacterStats
// @Failure 404 {object} ErrorResponse
// @Router /characters/{id} [get]
func HandleGetCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characterID, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}

		c, err := svc.GetCharacter(r.Context(), characterID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetCharacterFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, c)
	}
}

// HandleUpsertCharacter stores the stats view of a character sheet
// @Summary Save character
// @Description Load or replace the attributes and skill totals the attack engine reads
// @Tags characters
// @Accept json
// @Produce json
// @Param id path string true "Character ID"
// @Param request body UpsertCharacterRequest true "Character stats"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /characters/{id} [put]
func HandleUpsertCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characterID, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}

		var req UpsertCharacterRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Upsert character"); err != nil {
			return
		}

		stats := &domain.CharacterStats{
			ID:         characterID,
			Name:       req.Name,
			Level:      req.Level,
			Attributes: req.Attributes,
			Skills:     req.Skills,
		}
		if err := svc.UpsertCharacter(r.Context(), stats); err != nil {
			respondServiceError(w, r, ErrMsgUpdateCharacterFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Message: MsgCharacterSaved, Data: stats})
	}
}
