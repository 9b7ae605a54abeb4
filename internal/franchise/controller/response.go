package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"franchises/internal/dto"
	apperrors "franchises/internal/errors"
)

// responder holds the JSON and error writing shared by every controller.
type responder struct {
	logger *zap.Logger
}

func (r responder) trace() (string, *zap.Logger) {
	traceID := uuid.New().String()
	return traceID, r.logger.With(zap.String("traceId", traceID))
}

func (r responder) decode(w http.ResponseWriter, req *http.Request, traceID string, dst interface{}, logger *zap.Logger) bool {
	if err := json.NewDecoder(req.Body).Decode(dst); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		r.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return false
	}
	return true
}

func (r responder) handleUseCaseError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		r.writeValidationError(w, traceID, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		r.writeError(w, traceID, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
		return
	}

	if _, ok := apperrors.IsDuplicateError(err); ok {
		r.writeError(w, traceID, http.StatusConflict, "DUPLICATE", err.Error(), nil)
		return
	}

	if _, ok := apperrors.IsConflictError(err); ok {
		r.writeError(w, traceID, http.StatusConflict, "CONFLICT", err.Error(), nil)
		return
	}

	if ie, ok := apperrors.IsInternalError(err); ok {
		logger.Error("infrastructure failure", zap.String("operation", ie.Message), zap.Error(ie.Cause))
	} else {
		logger.Error("unexpected error", zap.Error(err))
	}
	r.writeError(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred", nil)
}

func (r responder) writeValidationError(w http.ResponseWriter, traceID, message string, details ...apperrors.ValidationDetail) {
	out := make([]dto.ErrorDetail, len(details))
	for i, d := range details {
		out[i] = dto.ErrorDetail{Field: d.Field, Message: d.Message}
	}
	r.writeError(w, traceID, http.StatusBadRequest, "VALIDATION_ERROR", message, out)
}

func (r responder) writeError(w http.ResponseWriter, traceID string, status int, code, message string, details []dto.ErrorDetail) {
	r.writeJSON(w, status, dto.ErrorResponse{
		TraceID:   traceID,
		Status:    status,
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	})
}

func (r responder) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		r.logger.Error("failed to encode response", zap.Error(err))
	}
}
