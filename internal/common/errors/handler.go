// internal/common/errors/handler.go
package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorHandler translates errors into sanitized HTTP responses. Unexpected
// errors never leak internals to the caller; details go to the log only.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// errorResponse is the wire shape for every error the service emits.
type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// WriteError normalizes err to a StandardError, logs it with full detail and
// writes the sanitized payload.
func (h *ErrorHandler) WriteError(w http.ResponseWriter, err error) {
	stdErr := h.normalizeError(err)

	h.logger.Error("request failed", map[string]interface{}{
		"code":      string(stdErr.Code),
		"message":   stdErr.Message,
		"details":   stdErr.Details,
		"retryable": stdErr.Retryable,
	})

	status := httpStatus(stdErr.Code)

	var resp errorResponse
	resp.Error.Code = string(stdErr.Code)
	resp.Error.Message = stdErr.Message

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// normalizeError ensures we always have a StandardError.
func (h *ErrorHandler) normalizeError(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return NewInternalError(err)
}

func httpStatus(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidInput:
		return http.StatusBadRequest
	case ErrCodeConversationMissing:
		return http.StatusNotFound
	case ErrCodeDatabaseConnectionFailed, ErrCodeQueryExecutionFailed,
		ErrCodeModelLoadFailed, ErrCodeModelSaveFailed,
		ErrCodeCacheCheckpointFailed, ErrCodeIndexingFailed:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
