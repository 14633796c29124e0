// internal/engines/intent/models.go
package intent

import (
	"time"

	"github.com/google/uuid"

	"conversation-intelligence/internal/lexicon"
)

// Default keyword weight and its reinforcement bounds.
const (
	defaultKeywordWeight = 1.0
	maxKeywordWeight     = 2.0
	minKeywordWeight     = 0.1
)

// SentimentWeights are the model's combination weights for the sentiment and
// engagement sub-scores.
type SentimentWeights struct {
	Positive   float64 `json:"positive"`
	Negative   float64 `json:"negative"`
	Engagement float64 `json:"engagement"`
}

// Model is the per-industry purchase-intent weighting configuration. It is the
// only persisted, cross-conversation state in the pipeline.
type Model struct {
	ID                string             `json:"id"`
	Industry          string             `json:"industry"`
	IntentKeywords    []string           `json:"intent_keywords"`
	RejectionKeywords []string           `json:"rejection_keywords"`
	KeywordWeights    map[string]float64 `json:"keyword_weights"`
	SentimentWeights  SentimentWeights   `json:"sentiment_weights"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// NewModel bootstraps a model from the base keyword sets plus the industry
// additions. Unknown industries fall back to the base sets alone, never to an
// empty model.
func NewModel(industry string) *Model {
	intentKws := append([]string(nil), lexicon.BaseIntentKeywords...)
	intentKws = append(intentKws, lexicon.IndustryIntentKeywords[industry]...)

	rejectionKws := append([]string(nil), lexicon.BaseRejectionKeywords...)
	rejectionKws = append(rejectionKws, lexicon.IndustryRejectionKeywords[industry]...)

	weights := make(map[string]float64, len(intentKws)+len(rejectionKws))
	for _, kw := range intentKws {
		weights[kw] = defaultKeywordWeight
	}
	for _, kw := range rejectionKws {
		weights[kw] = defaultKeywordWeight
	}

	now := time.Now().UTC()
	return &Model{
		ID:                uuid.New().String(),
		Industry:          industry,
		IntentKeywords:    intentKws,
		RejectionKeywords: rejectionKws,
		KeywordWeights:    weights,
		SentimentWeights:  SentimentWeights{Positive: 0.2, Negative: 0.2, Engagement: 0.2},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// clone copies the model so a persist can proceed on a stable snapshot while
// reinforcement keeps mutating the live weights.
func (m *Model) clone() *Model {
	out := *m
	out.KeywordWeights = make(map[string]float64, len(m.KeywordWeights))
	for kw, w := range m.KeywordWeights {
		out.KeywordWeights[kw] = w
	}
	return &out
}

// weightOf returns the keyword's learned weight, defaulting for keywords the
// model has not seen reinforced yet.
func (m *Model) weightOf(keyword string) float64 {
	if w, ok := m.KeywordWeights[keyword]; ok {
		return w
	}
	return defaultKeywordWeight
}

// Analysis is the purchase-intent record for a message window.
type Analysis struct {
	HasPurchaseIntent         bool     `json:"hasPurchaseIntent"`
	PurchaseIntentProbability float64  `json:"purchaseIntentProbability"`
	IntentIndicators          []string `json:"intentIndicators"`
	RejectionIndicators       []string `json:"rejectionIndicators"`
	HasRejection              bool     `json:"hasRejection"`
	SentimentScore            float64  `json:"sentimentScore"`
	EngagementScore           float64  `json:"engagementScore"`
}
