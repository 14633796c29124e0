// Package errors provides standardized error handling for the analysis pipeline.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidInput        ErrorCode = "ANALYSIS_INPUT_INVALID"
	ErrCodeConversationMissing ErrorCode = "CONVERSATION_NOT_FOUND"

	ErrCodeModelLoadFailed ErrorCode = "MODEL_LOAD_FAILED"
	ErrCodeModelSaveFailed ErrorCode = "MODEL_SAVE_FAILED"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeQueryExecutionFailed     ErrorCode = "QUERY_EXECUTION_FAILED"
	ErrCodeCacheCheckpointFailed    ErrorCode = "CACHE_CHECKPOINT_FAILED"
	ErrCodeIndexingFailed           ErrorCode = "INDEXING_FAILED"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewInvalidInputError marks a malformed request body or argument. Not retryable.
func NewInvalidInputError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidInput,
		Message:   "Invalid analysis input",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewModelLoadError marks a failed intent-model load. Retryable; scoring falls
// back to the in-memory model so this never fails an analysis by itself.
func NewModelLoadError(industry string, cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeModelLoadFailed,
		Message:   "Failed to load intent model",
		Details:   cause.Error(),
		Retryable: true,
		Metadata:  map[string]interface{}{"industry": industry},
		Timestamp: time.Now().UTC(),
	}
}

// NewModelSaveError marks a failed intent-model persist. Retryable.
func NewModelSaveError(industry string, cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeModelSaveFailed,
		Message:   "Failed to save intent model",
		Details:   cause.Error(),
		Retryable: true,
		Metadata:  map[string]interface{}{"industry": industry},
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryError wraps a failed relational query. Retryable.
func NewQueryError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryExecutionFailed,
		Message:   "Query execution failed",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewIndexingError wraps a failed insights index write. Retryable.
func NewIndexingError(index string, cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeIndexingFailed,
		Message:   "Failed to index conversation insights",
		Details:   cause.Error(),
		Retryable: true,
		Metadata:  map[string]interface{}{"index": index},
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected error. The details are kept for logs
// and never serialized to a caller.
func NewInternalError(cause error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   cause.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
