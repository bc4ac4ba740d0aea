package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	// Rejected is true when the action was refused and may be resubmitted
	Rejected bool `json:"rejected,omitempty"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// headers are already sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())

	status, msg := mapServiceErrorToUserMessage(err)
	rejected := domain.IsRejection(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Info(opName+" rejected", "error", err, "status", status)
	}
	respondJSON(w, status, ErrorResponse{Error: msg, Rejected: rejected})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgUnknownError         = "Unknown error"
	ErrMsgInvalidRequestError  = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError      = "Authentication failed. Please check your API key."
	ErrMsgResourceNotFoundErr  = "Resource not found."
	ErrMsgTooManyRequestsError = "Too many requests. Please try again later."
	ErrMsgUnavailableError     = "Server is temporarily unavailable. Please try again later."

	ErrMsgAccountNotFoundError  = "Account has not opted in"
	ErrMsgNotDeployedError      = "Application has not been deployed"
	ErrMsgAlreadyDeployedError  = "Application is already deployed"
	ErrMsgAlreadyOptedInError   = "Account has already opted in"
	ErrMsgConflictError         = "State changed concurrently. Please retry."
	ErrMsgNotOwnerError         = "Only the application owner may do that"
	ErrMsgOnCooldownError       = "Action is on cooldown. Try again later"
	ErrMsgInvariantFailureError = "Internal consistency check failed"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Rejections carry their own message since it names the failed precondition.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvariantViolation):
		return http.StatusInternalServerError, ErrMsgInvariantFailureError
	case errors.Is(err, domain.ErrNotInitialized):
		return http.StatusNotFound, ErrMsgAccountNotFoundError
	case errors.Is(err, domain.ErrGlobalConfigNotFound):
		return http.StatusNotFound, ErrMsgNotDeployedError
	case errors.Is(err, domain.ErrGlobalConfigExists):
		return http.StatusConflict, ErrMsgAlreadyDeployedError
	case errors.Is(err, domain.ErrAlreadyInitialized):
		return http.StatusConflict, ErrMsgAlreadyOptedInError
	case errors.Is(err, domain.ErrVersionConflict):
		return http.StatusConflict, ErrMsgConflictError
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden, ErrMsgNotOwnerError
	case errors.Is(err, domain.ErrCooldownActive):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	case errors.Is(err, domain.ErrAlreadyBootstrapped):
		return http.StatusConflict, err.Error()
	case domain.IsRejection(err):
		return http.StatusUnprocessableEntity, err.Error()
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
