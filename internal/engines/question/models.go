// internal/engines/question/models.go
package question

// Complexity classes.
const (
	ComplexityHigh   = "alta"
	ComplexityMedium = "media"
	ComplexityLow    = "baja"
)

// TypeScores maps question type to a score in [0,1]. Types are non-exclusive;
// several can score at once.
type TypeScores map[string]float64

// Complexity reports the complexity class and the driving word count.
type Complexity struct {
	Class     string `json:"class"`
	WordCount int    `json:"wordCount"`
}

// Intent is the coarse intent derived from the winning question type.
type Intent struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Analysis is the record for one question.
type Analysis struct {
	Text            string     `json:"text"`
	IsQuestion      bool       `json:"isQuestion"`
	Types           TypeScores `json:"types,omitempty"`
	PredominantType string     `json:"predominantType,omitempty"`
	Complexity      Complexity `json:"complexity"`
	Intent          Intent     `json:"intent"`
	Message         string     `json:"message,omitempty"`
}

// TextAnalysis is the per-text question record.
type TextAnalysis struct {
	Questions    []Analysis `json:"questions"`
	HasQuestions bool       `json:"hasQuestions"`
	Message      string     `json:"message,omitempty"`
}

// ConversationAnalysis aggregates question statistics over user messages.
type ConversationAnalysis struct {
	QuestionCount         int            `json:"questionCount"`
	TypeDistribution      map[string]int `json:"typeDistribution"`
	PredominantIntent     string         `json:"predominantIntent"`
	PredominantComplexity string         `json:"predominantComplexity"`
	HasQuestions          bool           `json:"hasQuestions"`
	Message               string         `json:"message,omitempty"`
}

// Summary is the human-readable question summary.
type Summary struct {
	Summary      string `json:"summary"`
	HasQuestions bool   `json:"hasQuestions"`
}
