// internal/engines/sentiment/models.go
package sentiment

// Sentiment classes.
const (
	SentimentPositive = "positivo"
	SentimentNegative = "negativo"
	SentimentNeutral  = "neutral"
)

// Trend classes.
const (
	TrendImproving = "mejorando"
	TrendWorsening = "empeorando"
	TrendStable    = "estable"
)

// Signal level classes shared by urgency and indecision detection.
const (
	LevelHigh   = "alta"
	LevelMedium = "media"
	LevelLow    = "baja"
)

// Result is the polarity analysis of one text.
type Result struct {
	Sentiment     string  `json:"sentiment"`
	Score         float64 `json:"score"`
	PositiveCount int     `json:"positiveCount"`
	NegativeCount int     `json:"negativeCount"`
	Intensity     float64 `json:"intensity"`
}

// EmotionScores maps emotion name to intensity in [0,1]. Only emotions above
// the support threshold are present.
type EmotionScores map[string]float64

// DominantEmotion names the max-scoring reported emotion.
type DominantEmotion struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// TrendResult captures sentiment movement across a conversation.
type TrendResult struct {
	Trend            string  `json:"trend"`
	Delta            float64 `json:"delta"`
	InitialSentiment string  `json:"initialSentiment"`
	FinalSentiment   string  `json:"finalSentiment"`
}

// SignalResult reports urgency or indecision detection.
type SignalResult struct {
	Class   string   `json:"class"`
	Level   float64  `json:"level"`
	Signals []string `json:"signals"`
}

// Comprehensive merges all per-text analyses into one record.
type Comprehensive struct {
	Sentiment       Result           `json:"sentiment"`
	Emotions        EmotionScores    `json:"emotions"`
	DominantEmotion *DominantEmotion `json:"dominantEmotion,omitempty"`
	Urgency         SignalResult     `json:"urgency"`
	Indecision      SignalResult     `json:"indecision"`
}

// ConversationResult is the conversation-level sentiment record.
type ConversationResult struct {
	Overall      Result      `json:"overall"`
	Trend        TrendResult `json:"trend"`
	MessageCount int         `json:"messageCount"`
}
