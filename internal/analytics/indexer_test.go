// internal/analytics/indexer_test.go
package analytics

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conversation-intelligence/internal/common/logger"
	"conversation-intelligence/internal/nlp"
)

func newFakeElasticsearch(t *testing.T, status int, capture *[]byte) *elasticsearch.Client {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			body, _ := io.ReadAll(r.Body)
			*capture = body
		}
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(`{"result":"created"}`))
	}))
	t.Cleanup(server.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{server.URL}})
	require.NoError(t, err)
	return client
}

func TestIndexInsights(t *testing.T) {
	var captured []byte
	client := newFakeElasticsearch(t, http.StatusCreated, &captured)
	indexer := NewInsightsIndexer(client, "conversation-insights", logger.NewTestLogger(t))

	insights := nlp.Insights{
		ConversationID: "conv-1",
		KeyTopics:      []string{"precio"},
		HasInsights:    true,
	}

	require.NoError(t, indexer.IndexInsights(context.Background(), insights))

	var doc nlp.Insights
	require.NoError(t, json.Unmarshal(captured, &doc))
	assert.Equal(t, "conv-1", doc.ConversationID)
	assert.Equal(t, []string{"precio"}, doc.KeyTopics)
}

func TestIndexInsights_ServerError(t *testing.T) {
	client := newFakeElasticsearch(t, http.StatusInternalServerError, nil)
	indexer := NewInsightsIndexer(client, "conversation-insights", logger.NewTestLogger(t))

	err := indexer.IndexInsights(context.Background(), nlp.Insights{ConversationID: "conv-1"})

	assert.Error(t, err)
}
