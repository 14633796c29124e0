// internal/engines/question/engine_test.go
package question

import (
	"testing"

	"conversation-intelligence/internal/cache"
	"conversation-intelligence/internal/common/logger"
	"conversation-intelligence/internal/models"

	"github.com/stretchr/testify/assert"
)

func newTestEngine(t *testing.T) *Engine {
	return NewEngine(cache.New[ConversationAnalysis](0, 0), logger.NewTestLogger(t))
}

func TestIsQuestion(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		text     string
		expected bool
	}{
		{"¿Cuál es el precio del producto?", true},
		{"El precio del producto es 100 pesos.", false},
		{"Tienen envío gratis?", true},
		{"cuánto cuesta el plan", true},
		{"Gracias por la información.", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.expected, engine.IsQuestion(tt.text))
		})
	}
}

func TestExtractQuestions(t *testing.T) {
	engine := newTestEngine(t)

	questions := engine.ExtractQuestions(
		"Hola. ¿Cuál es el precio del producto? ¿Tienen envío gratis? Gracias.")

	assert.Len(t, questions, 2)
	assert.Equal(t, "¿Cuál es el precio del producto?", questions[0])
	assert.Equal(t, "¿Tienen envío gratis?", questions[1])
}

func TestExtractQuestions_MarkerWithoutPunctuation(t *testing.T) {
	engine := newTestEngine(t)

	questions := engine.ExtractQuestions("Buenos días, cuánto cuesta el plan pro. Saludos.")

	assert.Len(t, questions, 1)
	assert.Equal(t, "cuánto cuesta el plan pro", questions[0])
}

func TestExtractQuestions_None(t *testing.T) {
	engine := newTestEngine(t)

	assert.Empty(t, engine.ExtractQuestions("El envío llega mañana. Gracias."))
}

func TestClassifyQuestionType(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name         string
		question     string
		expectedType string
	}{
		{"factual", "¿Cuál es el precio del plan?", "factual"},
		{"procedural", "¿Cómo puedo configurar mi cuenta?", "procedimental"},
		{"comparative", "¿Qué diferencia hay entre el plan pro y el básico?", "comparativa"},
		{"causal", "¿Por qué subió el precio este mes?", "causal"},
		{"hypothetical", "¿Qué pasa si cancelo a mitad de año?", "hipotetica"},
		{"opinion", "¿Qué me recomiendan para una empresa pequeña?", "opinion"},
		{"clarification", "¿A qué te refieres con licencia flotante?", "aclaracion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := engine.ClassifyQuestionType(tt.question)

			score, ok := scores[tt.expectedType]
			assert.True(t, ok, "expected type %s scored", tt.expectedType)
			assert.Greater(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		})
	}
}

func TestClassifyQuestionType_NonExclusive(t *testing.T) {
	engine := newTestEngine(t)

	scores := engine.ClassifyQuestionType("¿Por qué es mejor que la competencia, cuál es la razón?")
	assert.GreaterOrEqual(t, len(scores), 2, "several types may score at once")
}

func TestDetermineComplexity(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name          string
		question      string
		expectedClass string
	}{
		{
			name:          "short question is baja",
			question:      "¿Cuál es el precio?",
			expectedClass: ComplexityLow,
		},
		{
			name:          "medium length is media",
			question:      "¿Cuál es el precio del plan pro con soporte?",
			expectedClass: ComplexityMedium,
		},
		{
			name:          "long question is alta",
			question:      "¿Me pueden explicar cuál es el precio final del plan pro si lo contrato en diciembre con el descuento anual y soporte dedicado?",
			expectedClass: ComplexityHigh,
		},
		{
			name:          "technical phrase upgrades the class",
			question:      "¿Cómo funciona la integración?",
			expectedClass: ComplexityMedium,
		},
		{
			name:          "indicator inside a longer word does not upgrade",
			question:      "¿Responden rapido?",
			expectedClass: ComplexityLow,
		},
		{
			name:          "indicator as a standalone word upgrades",
			question:      "¿Tienen api?",
			expectedClass: ComplexityMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.DetermineComplexity(tt.question)
			assert.Equal(t, tt.expectedClass, result.Class)
			if tt.expectedClass == ComplexityLow {
				assert.Less(t, result.WordCount, 5)
			}
		})
	}
}

func TestDetermineIntent(t *testing.T) {
	engine := newTestEngine(t)

	intent := engine.DetermineIntent(TypeScores{"factual": 1.0, "comparativa": 0.5})
	assert.Equal(t, "informacion", intent.Label)
	assert.Greater(t, intent.Confidence, 0.5)

	fallback := engine.DetermineIntent(TypeScores{})
	assert.Equal(t, "informacion", fallback.Label)
	assert.LessOrEqual(t, fallback.Confidence, 0.3)
}

func TestAnalyzeQuestion_NotAQuestion(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.AnalyzeQuestion("El envío llega mañana.")
	assert.False(t, result.IsQuestion)
	assert.NotEmpty(t, result.Message)
}

func TestAnalyzeQuestion(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.AnalyzeQuestion("¿Cuál es el precio?")
	assert.True(t, result.IsQuestion)
	assert.Equal(t, "factual", result.PredominantType)
	assert.Equal(t, ComplexityLow, result.Complexity.Class)
	assert.Less(t, result.Complexity.WordCount, 5)
	assert.Equal(t, "informacion", result.Intent.Label)
}

func TestAnalyzeConversation(t *testing.T) {
	engine := newTestEngine(t)

	msgs := []models.Message{
		{Role: models.RoleUser, Content: "¿Cuál es el precio del plan?"},
		{Role: models.RoleAssistant, Content: "¿Le parece si agendamos una demo?"},
		{Role: models.RoleUser, Content: "¿Cuánto cuesta el soporte? ¿Cómo puedo contratarlo?"},
	}

	result := engine.AnalyzeConversation(msgs, "conv-1")

	assert.True(t, result.HasQuestions)
	assert.Equal(t, 3, result.QuestionCount, "assistant questions must not count")
	assert.NotEmpty(t, result.TypeDistribution)
	assert.NotEmpty(t, result.PredominantIntent)
	assert.NotEmpty(t, result.PredominantComplexity)
}

func TestAnalyzeConversation_NoQuestions(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.AnalyzeConversation([]models.Message{
		{Role: models.RoleUser, Content: "Gracias por la información."},
	}, "conv-1")

	assert.False(t, result.HasQuestions)
	assert.NotEmpty(t, result.Message)
	assert.Equal(t, 0, result.QuestionCount)
}

func TestGetQuestionSummary(t *testing.T) {
	engine := newTestEngine(t)

	empty := engine.GetQuestionSummary("conv-1")
	assert.False(t, empty.HasQuestions)

	engine.AnalyzeConversation([]models.Message{
		{Role: models.RoleUser, Content: "¿Cuál es el precio?"},
	}, "conv-1")

	summary := engine.GetQuestionSummary("conv-1")
	assert.True(t, summary.HasQuestions)
	assert.Contains(t, summary.Summary, "1 pregunta")
}
