// internal/nlp/models.go
package nlp

import (
	"time"

	"conversation-intelligence/internal/engines/entity"
	"conversation-intelligence/internal/engines/intent"
	"conversation-intelligence/internal/engines/keywords"
	"conversation-intelligence/internal/engines/question"
	"conversation-intelligence/internal/engines/sentiment"
)

// MessageAnalysis is the unified per-message record across all engines.
type MessageAnalysis struct {
	Text      string                  `json:"text"`
	Sentiment sentiment.Comprehensive `json:"sentiment"`
	Entities  entity.Bag              `json:"entities"`
	Questions question.TextAnalysis   `json:"questions"`
	Keywords  keywords.TextAnalysis   `json:"keywords"`
	Intent    intent.Analysis         `json:"intent"`
}

// ConversationAnalysis merges every engine's conversation-level aggregate.
// Once computed for an id it stays retrievable until cleared or evicted;
// recomputation overwrites deterministically.
type ConversationAnalysis struct {
	ConversationID string                        `json:"conversationId"`
	Sentiment      sentiment.ConversationResult  `json:"sentiment"`
	Urgency        sentiment.SignalResult        `json:"urgency"`
	Entities       entity.Bag                    `json:"entities"`
	Questions      question.ConversationAnalysis `json:"questions"`
	Keywords       keywords.ConversationAnalysis `json:"keywords"`
	Intent         intent.Analysis               `json:"intent"`
	MessageCount   int                           `json:"messageCount"`
	AnalyzedAt     time.Time                     `json:"analyzedAt"`
	HasAnalysis    bool                          `json:"hasAnalysis"`
}

// UserProfile merges entity-derived personal info with keyword-derived
// interests and inferred style.
type UserProfile struct {
	Name               string   `json:"name,omitempty"`
	Email              string   `json:"email,omitempty"`
	Phone              string   `json:"phone,omitempty"`
	Interests          []string `json:"interests,omitempty"`
	CommunicationStyle string   `json:"communicationStyle"`
	TechnicalLevel     string   `json:"technicalLevel"`
}

// ConversationStatus summarizes where the dialog stands.
type ConversationStatus struct {
	Satisfaction string `json:"satisfaction"`
	Urgency      string `json:"urgency"`
	Phase        string `json:"phase"`
	Engagement   string `json:"engagement"`
}

// Insights is the derived view consumed by the recommendation services.
type Insights struct {
	ConversationID     string             `json:"conversationId"`
	UserProfile        UserProfile        `json:"userProfile"`
	ConversationStatus ConversationStatus `json:"conversationStatus"`
	RecommendedActions []string           `json:"recommendedActions"`
	KeyTopics          []string           `json:"keyTopics"`
	HasInsights        bool               `json:"hasInsights"`
	Message            string             `json:"message,omitempty"`
}
