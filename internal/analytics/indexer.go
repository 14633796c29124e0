// internal/analytics/indexer.go
package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"

	"conversation-intelligence/internal/common/errors"
	"conversation-intelligence/internal/common/logger"
	"conversation-intelligence/internal/nlp"
)

// InsightsIndexer writes derived conversation insights into Elasticsearch so
// the sales team can search them.
type InsightsIndexer struct {
	client *elasticsearch.Client
	index  string
	logger logger.Logger
}

func NewInsightsIndexer(client *elasticsearch.Client, index string, log logger.Logger) *InsightsIndexer {
	return &InsightsIndexer{
		client: client,
		index:  index,
		logger: log.WithFields(map[string]interface{}{"component": "insights-indexer"}),
	}
}

// IndexInsights upserts one insights document keyed by conversation id.
func (ix *InsightsIndexer) IndexInsights(ctx context.Context, insights nlp.Insights) error {
	payload, err := json.Marshal(insights)
	if err != nil {
		return errors.NewIndexingError(ix.index, fmt.Errorf("encode insights: %w", err))
	}

	res, err := ix.client.Index(
		ix.index,
		bytes.NewReader(payload),
		ix.client.Index.WithDocumentID(insights.ConversationID),
		ix.client.Index.WithContext(ctx),
	)
	if err != nil {
		return errors.NewIndexingError(ix.index, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return errors.NewIndexingError(ix.index, fmt.Errorf("index response: %s", res.Status()))
	}

	ix.logger.Debug("insights indexed", map[string]interface{}{
		"conversationId": insights.ConversationID,
		"index":          ix.index,
	})
	return nil
}
