// internal/analytics/store.go
package analytics

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"conversation-intelligence/internal/common/errors"
	"conversation-intelligence/internal/common/logger"
	"conversation-intelligence/internal/models"
)

const (
	upsertConversationQuery = `INSERT INTO conversations (id, conversation_id, industry, messages, session_insights, outcome, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) ON CONFLICT (conversation_id) DO UPDATE SET messages = EXCLUDED.messages, session_insights = EXCLUDED.session_insights, updated_at = EXCLUDED.updated_at`
	updateOutcomeQuery      = `UPDATE conversations SET outcome = $2, updated_at = $3 WHERE conversation_id = $1`
	selectConversationQuery = `SELECT id, conversation_id, industry, messages, session_insights, outcome, created_at, updated_at FROM conversations WHERE conversation_id = $1`
)

// PostgresStore persists conversation analytics rows. The messages and
// session_insights columns hold JSON.
type PostgresStore struct {
	db     *sql.DB
	logger logger.Logger
}

func NewPostgresStore(db *sql.DB, log logger.Logger) *PostgresStore {
	return &PostgresStore{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "analytics-store"}),
	}
}

// SaveConversation upserts the row keyed by conversation id; recomputed
// analyses overwrite the stored messages and insights.
func (s *PostgresStore) SaveConversation(ctx context.Context, record ConversationRecord) error {
	messagesJSON, err := json.Marshal(record.Messages)
	if err != nil {
		return errors.NewQueryError(fmt.Sprintf("encode messages: %v", err))
	}
	insightsJSON, err := json.Marshal(record.SessionInsights)
	if err != nil {
		return errors.NewQueryError(fmt.Sprintf("encode session_insights: %v", err))
	}

	_, err = s.db.ExecContext(ctx, upsertConversationQuery,
		record.ID, record.ConversationID, record.Industry,
		messagesJSON, insightsJSON, record.Outcome,
		record.CreatedAt, record.UpdatedAt)
	if err != nil {
		return errors.NewQueryError(err.Error())
	}
	return nil
}

// RecordOutcome marks a concluded conversation as converted or lost.
func (s *PostgresStore) RecordOutcome(ctx context.Context, record ConversationRecord) error {
	result, err := s.db.ExecContext(ctx, updateOutcomeQuery,
		record.ConversationID, record.Outcome, record.UpdatedAt)
	if err != nil {
		return errors.NewQueryError(err.Error())
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.NewQueryError(err.Error())
	}
	if affected == 0 {
		return errors.NewQueryError(fmt.Sprintf("conversation %s not found", record.ConversationID))
	}
	return nil
}

// GetConversation loads one row, decoding the JSON columns.
func (s *PostgresStore) GetConversation(ctx context.Context, conversationID string) (ConversationRecord, error) {
	var (
		record       ConversationRecord
		messagesJSON []byte
		insightsJSON []byte
	)

	err := s.db.QueryRowContext(ctx, selectConversationQuery, conversationID).Scan(
		&record.ID, &record.ConversationID, &record.Industry,
		&messagesJSON, &insightsJSON, &record.Outcome,
		&record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return ConversationRecord{}, errors.NewQueryError(err.Error())
	}

	record.Messages, err = models.DecodeMessages(messagesJSON)
	if err != nil {
		return ConversationRecord{}, errors.NewQueryError(fmt.Sprintf("decode messages: %v", err))
	}
	if err := json.Unmarshal(insightsJSON, &record.SessionInsights); err != nil {
		return ConversationRecord{}, errors.NewQueryError(fmt.Sprintf("decode session_insights: %v", err))
	}
	return record, nil
}
