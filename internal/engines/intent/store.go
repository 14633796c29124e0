// internal/engines/intent/store.go
package intent

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"conversation-intelligence/internal/common/errors"
	"conversation-intelligence/internal/common/logger"
)

const (
	selectModelQuery = `SELECT id, industry, intent_keywords, rejection_keywords, keyword_weights, sentiment_weights, created_at, updated_at FROM intent_models WHERE industry = $1`
	insertModelQuery = `INSERT INTO intent_models (id, industry, intent_keywords, rejection_keywords, keyword_weights, sentiment_weights, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	updateModelQuery = `UPDATE intent_models SET intent_keywords = $2, rejection_keywords = $3, keyword_weights = $4, sentiment_weights = $5, updated_at = $6 WHERE industry = $1`
)

// PostgresStore persists intent models keyed by industry name. Set columns are
// JSON arrays, weight columns JSON objects.
type PostgresStore struct {
	db     *sql.DB
	logger logger.Logger
}

func NewPostgresStore(db *sql.DB, log logger.Logger) *PostgresStore {
	return &PostgresStore{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "intent-model-store"}),
	}
}

// GetOrCreate loads the industry's model or inserts a freshly bootstrapped
// one. Racing creators are acceptable; the later writer wins.
func (s *PostgresStore) GetOrCreate(ctx context.Context, industry string) (*Model, error) {
	var (
		model         Model
		intentJSON    []byte
		rejectionJSON []byte
		weightsJSON   []byte
		sentimentJSON []byte
	)

	err := s.db.QueryRowContext(ctx, selectModelQuery, industry).Scan(
		&model.ID, &model.Industry, &intentJSON, &rejectionJSON,
		&weightsJSON, &sentimentJSON, &model.CreatedAt, &model.UpdatedAt)

	if err == sql.ErrNoRows {
		created := NewModel(industry)
		if err := s.insert(ctx, created); err != nil {
			return nil, err
		}
		s.logger.Info("bootstrapped intent model", map[string]interface{}{
			"industry": industry,
			"modelId":  created.ID,
		})
		return created, nil
	}
	if err != nil {
		return nil, errors.NewModelLoadError(industry, err)
	}

	if err := json.Unmarshal(intentJSON, &model.IntentKeywords); err != nil {
		return nil, errors.NewModelLoadError(industry, fmt.Errorf("decode intent_keywords: %w", err))
	}
	if err := json.Unmarshal(rejectionJSON, &model.RejectionKeywords); err != nil {
		return nil, errors.NewModelLoadError(industry, fmt.Errorf("decode rejection_keywords: %w", err))
	}
	if err := json.Unmarshal(weightsJSON, &model.KeywordWeights); err != nil {
		return nil, errors.NewModelLoadError(industry, fmt.Errorf("decode keyword_weights: %w", err))
	}
	if err := json.Unmarshal(sentimentJSON, &model.SentimentWeights); err != nil {
		return nil, errors.NewModelLoadError(industry, fmt.Errorf("decode sentiment_weights: %w", err))
	}

	return &model, nil
}

// Save updates the industry's row, inserting it when another process has not
// created it yet.
func (s *PostgresStore) Save(ctx context.Context, model *Model) error {
	intentJSON, rejectionJSON, weightsJSON, sentimentJSON, err := marshalModel(model)
	if err != nil {
		return errors.NewModelSaveError(model.Industry, err)
	}

	result, err := s.db.ExecContext(ctx, updateModelQuery, model.Industry,
		intentJSON, rejectionJSON, weightsJSON, sentimentJSON, model.UpdatedAt)
	if err != nil {
		return errors.NewModelSaveError(model.Industry, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.NewModelSaveError(model.Industry, err)
	}
	if affected == 0 {
		return s.insert(ctx, model)
	}
	return nil
}

func (s *PostgresStore) insert(ctx context.Context, model *Model) error {
	intentJSON, rejectionJSON, weightsJSON, sentimentJSON, err := marshalModel(model)
	if err != nil {
		return errors.NewModelSaveError(model.Industry, err)
	}

	_, err = s.db.ExecContext(ctx, insertModelQuery, model.ID, model.Industry,
		intentJSON, rejectionJSON, weightsJSON, sentimentJSON,
		model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return errors.NewModelSaveError(model.Industry, err)
	}
	return nil
}

func marshalModel(model *Model) (intentJSON, rejectionJSON, weightsJSON, sentimentJSON []byte, err error) {
	if intentJSON, err = json.Marshal(model.IntentKeywords); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("encode intent_keywords: %w", err)
	}
	if rejectionJSON, err = json.Marshal(model.RejectionKeywords); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("encode rejection_keywords: %w", err)
	}
	if weightsJSON, err = json.Marshal(model.KeywordWeights); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("encode keyword_weights: %w", err)
	}
	if sentimentJSON, err = json.Marshal(model.SentimentWeights); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("encode sentiment_weights: %w", err)
	}
	return intentJSON, rejectionJSON, weightsJSON, sentimentJSON, nil
}
