package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/StormSheet_Go/internal/combat"
	"github.com/osse101/StormSheet_Go/internal/domain"
	"github.com/osse101/StormSheet_Go/internal/logger"
)

// AttackRequestBody is the JSON body shared by the attack endpoints.
// SkillTotal and TargetDefense are pointers so an absent field is not read as zero.
type AttackRequestBody struct {
	SkillTotal     *int   `json:"skillTotal"`
	BonusModifiers int    `json:"bonusModifiers"`
	DamageNotation string `json:"damageNotation" validate:"required,max=32"`
	DamageBonus    int    `json:"damageBonus"`
	TargetDefense  *int   `json:"targetDefense"`
	AdvantageMode  string `json:"advantageMode" validate:"advantage"`
}

func (b AttackRequestBody) missingField() error {
	switch {
	case b.SkillTotal == nil:
		return fmt.Errorf("%w: skillTotal", domain.ErrMissingField)
	case b.TargetDefense == nil:
		return fmt.Errorf("%w: targetDefense", domain.ErrMissingField)
	}
	return nil
}

// toDomain assumes missingField returned nil
func (b AttackRequestBody) toDomain() domain.AttackRequest {
	return domain.AttackRequest{
		SkillTotal:     *b.SkillTotal,
		BonusModifiers: b.BonusModifiers,
		DamageNotation: b.DamageNotation,
		DamageBonus:    b.DamageBonus,
		TargetDefense:  *b.TargetDefense,
		AdvantageMode:  domain.AdvantageMode(b.AdvantageMode),
	}
}

// CombinationRequestBody adds the number of attacks to roll
type CombinationRequestBody struct {
	AttackRequestBody
	AttackCount *int `json:"attackCount" validate:"omitempty,min=1"`
}

func (b CombinationRequestBody) missingField() error {
	if err := b.AttackRequestBody.missingField(); err != nil {
		return err
	}
	if b.AttackCount == nil {
		return fmt.Errorf("%w: attackCount", domain.ErrMissingField)
	}
	return nil
}

// CharacterAttackRequestBody rolls with the skill total from a stored character sheet
type CharacterAttackRequestBody struct {
	Skill          string `json:"skill" validate:"required,max=64"`
	BonusModifiers int    `json:"bonusModifiers"`
	DamageNotation string `json:"damageNotation" validate:"required,max=32"`
	DamageBonus    int    `json:"damageBonus"`
	TargetDefense  *int   `json:"targetDefense"`
	AdvantageMode  string `json:"advantageMode" validate:"advantage"`
}

func (b CharacterAttackRequestBody) missingField() error {
	if b.TargetDefense == nil {
		return fmt.Errorf("%w: targetDefense", domain.ErrMissingField)
	}
	return nil
}

// attackPayload is implemented by every attack request DTO
type attackPayload interface {
	missingField() error
}

// AttackResponse is the envelope returned by the attack endpoints.
// Exactly one of Attack, Combination, Validation or Error is set.
type AttackResponse struct {
	Success     bool                       `json:"success"`
	Attack      *domain.AttackResult       `json:"attack,omitempty"`
	Combination *domain.CombinationSummary `json:"combination,omitempty"`
	Validation  *domain.ValidationResult   `json:"validation,omitempty"`
	Error       string                     `json:"error,omitempty"`
}

// decodeAttackBody decodes an attack body, rejects absent required fields and
// tag-validates the rest, answering with the attack envelope on failure
func decodeAttackBody(w http.ResponseWriter, r *http.Request, dst attackPayload, opName string) bool {
	log := logger.FromContext(r.Context())
	if err := decodeJSON(w, r, dst); err != nil {
		log.Warn(opName+": decode failed", "error", err)
		respondAttackError(w, http.StatusBadRequest, domain.ErrMsgMalformedRequest)
		return false
	}
	if err := dst.missingField(); err != nil {
		log.Info(opName+": missing field", "error", err)
		respondAttackError(w, http.StatusBadRequest, err.Error())
		return false
	}
	if err := GetValidator().ValidateStruct(dst); err != nil {
		log.Info(opName+": validation failed", "error", err)
		respondAttackError(w, http.StatusBadRequest, SummarizeValidationError(err))
		return false
	}
	return true
}

func respondAttackError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, AttackResponse{Success: false, Error: msg})
}

func respondAttackServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error(opName, "error", err)
	}
	respondAttackError(w, status, msg)
}

// HandleExecuteAttack resolves a single attack
// @Summary Execute attack
// @Description Roll one attack with damage against a target defense
// @Tags attack
// @Accept json
// @Produce json
// @Param request body AttackRequestBody true "Attack parameters"
// @Success 200 {object} AttackResponse
// @Failure 400 {object} AttackResponse
// @Router /attack/execute [post]
func HandleExecuteAttack(svc combat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body AttackRequestBody
		if !decodeAttackBody(w, r, &body, "Execute attack") {
			return
		}

		result, err := svc.Execute(r.Context(), body.toDomain())
		if err != nil {
			respondAttackServiceError(w, r, ErrMsgExecuteAttackFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, AttackResponse{Success: true, Attack: result})
	}
}

// HandleAttackCombination runs several independent attacks and summarizes them
// @Summary Attack combination
// @Description Roll attackCount independent attacks and aggregate hits and damage
// @Tags attack
// @Accept json
// @Produce json
// @Param request body CombinationRequestBody true "Attack parameters and count"
// @Success 200 {object} AttackResponse
// @Failure 400 {object} AttackResponse
// @Router /attack/combination [post]
func HandleAttackCombination(svc combat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body CombinationRequestBody
		if !decodeAttackBody(w, r, &body, "Attack combination") {
			return
		}

		summary, err := svc.Combination(r.Context(), body.toDomain(), *body.AttackCount)
		if err != nil {
			respondAttackServiceError(w, r, ErrMsgRunCombinationFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, AttackResponse{Success: true, Combination: summary})
	}
}

// HandleValidateAttack checks attack parameters without rolling
// @Summary Validate attack
// @Description Dry-run validation of attack parameters
// @Tags attack
// @Accept json
// @Produce json
// @Param request body AttackRequestBody true "Attack parameters"
// @Success 200 {object} AttackResponse
// @Failure 400 {object} AttackResponse
// @Router /attack/validate [post]
func HandleValidateAttack(svc combat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body AttackRequestBody
		if !decodeAttackBody(w, r, &body, "Validate attack") {
			return
		}

		result := svc.Validate(r.Context(), body.toDomain())
		if !result.IsValid {
			respondAttackError(w, http.StatusBadRequest, result.Error)
			return
		}

		respondJSON(w, http.StatusOK, AttackResponse{Success: true, Validation: &result})
	}
}

// HandleCharacterAttack resolves an attack using a skill from the character sheet
// @Summary Character attack
// @Description Roll an attack with skillTotal taken from the named skill of a stored character
// @Tags attack
// @Accept json
// @Produce json
// @Param id path string true "Character ID"
// @Param request body CharacterAttackRequestBody true "Skill and attack parameters"
// @Success 200 {object} AttackResponse
// @Failure 400 {object} AttackResponse
// @Failure 404 {object} AttackResponse
// @Router /characters/{id}/attack [post]
func HandleCharacterAttack(svc combat.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characterID, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}

		var body CharacterAttackRequestBody
		if !decodeAttackBody(w, r, &body, "Character attack") {
			return
		}

		req := domain.AttackRequest{
			BonusModifiers: body.BonusModifiers,
			DamageNotation: body.DamageNotation,
			DamageBonus:    body.DamageBonus,
			TargetDefense:  *body.TargetDefense,
			AdvantageMode:  domain.AdvantageMode(body.AdvantageMode),
		}
		result, err := svc.ExecuteForCharacter(r.Context(), characterID, body.Skill, req)
		if err != nil {
			respondAttackServiceError(w, r, ErrMsgCharacterAttackFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, AttackResponse{Success: true, Attack: result})
	}
}
