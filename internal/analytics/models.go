// internal/analytics/models.go
package analytics

import (
	"time"

	"conversation-intelligence/internal/models"
)

// SessionInsights is the intent and sentiment metadata stored alongside a
// conversation row, in the session_insights JSON column.
type SessionInsights struct {
	HasPurchaseIntent         bool    `json:"has_purchase_intent"`
	PurchaseIntentProbability float64 `json:"purchase_intent_probability"`
	HasRejection              bool    `json:"has_rejection"`
	Sentiment                 string  `json:"sentiment"`
	SentimentScore            float64 `json:"sentiment_score"`
	Urgency                   string  `json:"urgency"`
	QuestionCount             int     `json:"question_count"`
}

// ConversationRecord is one analytics row. Messages and SessionInsights are
// JSON-encoded columns.
type ConversationRecord struct {
	ID              string           `json:"id"`
	ConversationID  string           `json:"conversation_id"`
	Industry        string           `json:"industry"`
	Messages        []models.Message `json:"messages"`
	SessionInsights SessionInsights  `json:"session_insights"`
	Outcome         string           `json:"outcome"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// Conversation outcomes.
const (
	OutcomeOpen      = "open"
	OutcomeConverted = "converted"
	OutcomeLost      = "lost"
)
