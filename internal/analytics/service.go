// internal/analytics/service.go

// Package analytics records concluded conversation data: durable rows in
// Postgres and searchable insight documents in Elasticsearch. It is the only
// place in the pipeline that retries; engines stay non-blocking.
package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"

	"conversation-intelligence/internal/common/logger"
	"conversation-intelligence/internal/models"
	"conversation-intelligence/internal/nlp"
)

const (
	defaultRetryAttempts = 3
	defaultRetryDelay    = 200 * time.Millisecond
)

// Service is the persistence boundary for conversation analytics. The
// indexer is optional; without one insight publishing is a no-op.
type Service struct {
	store      *PostgresStore
	indexer    *InsightsIndexer
	logger     logger.Logger
	attempts   int
	retryDelay time.Duration
	now        func() time.Time
}

func NewService(store *PostgresStore, indexer *InsightsIndexer, log logger.Logger) *Service {
	return &Service{
		store:      store,
		indexer:    indexer,
		logger:     log.WithFields(map[string]interface{}{"service": "analytics"}),
		attempts:   defaultRetryAttempts,
		retryDelay: defaultRetryDelay,
		now:        time.Now,
	}
}

// RecordConversation upserts the conversation row with the latest analysis
// snapshot.
func (s *Service) RecordConversation(ctx context.Context, conversationID, industry string,
	msgs []models.Message, analysis nlp.ConversationAnalysis) error {

	now := s.now().UTC()
	record := ConversationRecord{
		ID:              uuid.New().String(),
		ConversationID:  conversationID,
		Industry:        industry,
		Messages:        msgs,
		SessionInsights: sessionInsightsFrom(analysis),
		Outcome:         OutcomeOpen,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err := retryWithBackoff(ctx, s.attempts, s.retryDelay, func() error {
		return s.store.SaveConversation(ctx, record)
	})
	if err != nil {
		s.logger.Error("conversation record persist failed", map[string]interface{}{
			"conversationId": conversationID,
			"error":          err.Error(),
		})
	}
	return err
}

// RecordOutcome marks the conversation converted or lost.
func (s *Service) RecordOutcome(ctx context.Context, conversationID string, converted bool) error {
	outcome := OutcomeLost
	if converted {
		outcome = OutcomeConverted
	}
	record := ConversationRecord{
		ConversationID: conversationID,
		Outcome:        outcome,
		UpdatedAt:      s.now().UTC(),
	}

	return retryWithBackoff(ctx, s.attempts, s.retryDelay, func() error {
		return s.store.RecordOutcome(ctx, record)
	})
}

// GetConversation loads one analytics row.
func (s *Service) GetConversation(ctx context.Context, conversationID string) (ConversationRecord, error) {
	return s.store.GetConversation(ctx, conversationID)
}

// PublishInsights indexes the derived insights for search. A service without
// an indexer skips publishing silently.
func (s *Service) PublishInsights(ctx context.Context, insights nlp.Insights) error {
	if s.indexer == nil {
		return nil
	}
	return retryWithBackoff(ctx, s.attempts, s.retryDelay, func() error {
		return s.indexer.IndexInsights(ctx, insights)
	})
}

func sessionInsightsFrom(analysis nlp.ConversationAnalysis) SessionInsights {
	return SessionInsights{
		HasPurchaseIntent:         analysis.Intent.HasPurchaseIntent,
		PurchaseIntentProbability: analysis.Intent.PurchaseIntentProbability,
		HasRejection:              analysis.Intent.HasRejection,
		Sentiment:                 analysis.Sentiment.Overall.Sentiment,
		SentimentScore:            analysis.Sentiment.Overall.Score,
		Urgency:                   analysis.Urgency.Class,
		QuestionCount:             analysis.Questions.QuestionCount,
	}
}
