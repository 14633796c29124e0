// internal/common/validation/schema.go
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationResult reports schema validation of a request body.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateJSON validates raw JSON bytes against a schema document.
func ValidateJSON(document []byte, schema string) (*ValidationResult, error) {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, resErr := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   resErr.Field(),
			Message: resErr.Description(),
		})
	}
	return out, nil
}

// ErrorSummary flattens validation errors into one message.
func (r *ValidationResult) ErrorSummary() string {
	if r.Valid || len(r.Errors) == 0 {
		return ""
	}
	parts := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return strings.Join(parts, "; ")
}

// AnalyzeConversationSchema validates the analyze-conversation request body.
const AnalyzeConversationSchema = `{
	"type": "object",
	"required": ["messages"],
	"properties": {
		"conversationId": {"type": "string"},
		"industry": {"type": "string"},
		"messages": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["role", "content"],
				"properties": {
					"role": {"type": "string", "enum": ["user", "assistant"]},
					"content": {"type": "string"},
					"timestamp": {"type": "string"}
				}
			}
		}
	}
}`

// AnalyzeMessageSchema validates the analyze-message request body.
const AnalyzeMessageSchema = `{
	"type": "object",
	"required": ["text"],
	"properties": {
		"text": {"type": "string", "minLength": 1},
		"conversationId": {"type": "string"}
	}
}`

// ObjectionSchema validates the objection-handling request body.
const ObjectionSchema = `{
	"type": "object",
	"required": ["text"],
	"properties": {
		"text": {"type": "string", "minLength": 1},
		"currentTier": {"type": "string"}
	}
}`

// OutcomeSchema validates the conversation-outcome request body.
const OutcomeSchema = `{
	"type": "object",
	"required": ["converted"],
	"properties": {
		"converted": {"type": "boolean"},
		"messages": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["role", "content"],
				"properties": {
					"role": {"type": "string", "enum": ["user", "assistant"]},
					"content": {"type": "string"},
					"timestamp": {"type": "string"}
				}
			}
		}
	}
}`
