package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/osse101/StormSheet_Go/internal/domain"
	"github.com/osse101/StormSheet_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// encodeBuffers pools response buffers so large combination payloads don't allocate per request
var encodeBuffers = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := encodeBuffers.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		encodeBuffers.Put(buf)
	}()

	// Encode first so an encoding failure can still produce a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		logger.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the mapped status and user message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err)
	} else {
		log.Info(opName, "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgCharacterNotFound  = "Character not found"
	ErrMsgSkillNotFound      = "Character does not have that skill"
	ErrMsgUnknownGrantKind   = "Unknown grant kind. Valid kinds: level-up, spren, expertise, item"
	ErrMsgNoPendingGrant     = "No pending grant of that kind"
	ErrMsgGrantMismatch      = "Grant is not the oldest pending grant. It may already have been acknowledged."
	ErrMsgUnavailableError   = "Server is temporarily unavailable. Please try again later."
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and user messages.
// Validation failures carry their own detail, which is safe to echo.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidNotation),
		errors.Is(err, domain.ErrNegativeSkillTotal),
		errors.Is(err, domain.ErrNonPositiveDefense),
		errors.Is(err, domain.ErrInvalidAttackCount),
		errors.Is(err, domain.ErrInvalidAdvantageMode),
		errors.Is(err, domain.ErrMissingField),
		errors.Is(err, domain.ErrMalformedRequest),
		errors.Is(err, domain.ErrInvalidGrant):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUnknownGrantKind):
		return http.StatusBadRequest, ErrMsgUnknownGrantKind
	case errors.Is(err, domain.ErrCharacterNotFound):
		return http.StatusNotFound, ErrMsgCharacterNotFound
	case errors.Is(err, domain.ErrSkillNotFound):
		return http.StatusBadRequest, ErrMsgSkillNotFound
	case errors.Is(err, domain.ErrNoPendingGrant):
		return http.StatusNotFound, ErrMsgNoPendingGrant
	case errors.Is(err, domain.ErrGrantMismatch):
		return http.StatusConflict, ErrMsgGrantMismatch
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
