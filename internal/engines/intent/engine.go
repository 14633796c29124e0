// internal/engines/intent/engine.go
package intent

import (
	"context"
	"math"
	"strings"
	"sync"
	"time"

	"conversation-intelligence/internal/cache"
	"conversation-intelligence/internal/common/config"
	"conversation-intelligence/internal/common/logger"
	"conversation-intelligence/internal/common/metrics"
	"conversation-intelligence/internal/engines/sentiment"
	"conversation-intelligence/internal/lexicon"
	"conversation-intelligence/internal/models"
)

const engineName = "intent"

// StopReasonNoIntent is reported when the detection grace period runs out
// without any purchase signal.
const StopReasonNoIntent = "no_intent_detected"

// ModelStore abstracts intent-model persistence. A nil store keeps the model
// purely in memory.
type ModelStore interface {
	GetOrCreate(ctx context.Context, industry string) (*Model, error)
	Save(ctx context.Context, model *Model) error
}

// Engine scores message windows for purchase intent against one industry's
// model. Persistence failures never fail scoring; the engine keeps working on
// the in-memory model it already holds.
type Engine struct {
	industry string
	// mu guards model: the weights are shared across conversations and are
	// mutated by outcome updates while analyses read them.
	mu            sync.RWMutex
	model         *Model
	store         ModelStore
	sentiment     *sentiment.Engine
	conversations *cache.Store[Analysis]
	cfg           config.NLPConfig
	logger        logger.Logger
	now           func() time.Time
}

func NewEngine(ctx context.Context, industry string, store ModelStore,
	sentimentEngine *sentiment.Engine, conversations *cache.Store[Analysis],
	cfg config.NLPConfig, log logger.Logger) *Engine {

	e := &Engine{
		industry:      industry,
		store:         store,
		sentiment:     sentimentEngine,
		conversations: conversations,
		cfg:           cfg,
		logger: log.WithFields(map[string]interface{}{
			"engine":   engineName,
			"industry": industry,
		}),
		now: time.Now,
	}

	if store != nil {
		model, err := store.GetOrCreate(ctx, industry)
		if err == nil {
			e.model = model
			return e
		}
		e.logger.Warn("intent model load failed, using in-memory model", map[string]interface{}{
			"error": err.Error(),
		})
	}
	e.model = NewModel(industry)
	return e
}

// Industry names the model this engine scores against.
func (e *Engine) Industry() string {
	return e.industry
}

// AnalyzePurchaseIntent scores the user messages of a window. Rejection
// phrases are matched first and struck from the text so their substrings
// cannot double as intent signals.
func (e *Engine) AnalyzePurchaseIntent(msgs []models.Message) Analysis {
	metrics.AnalysesPerformed.WithLabelValues(engineName).Inc()

	userMsgs := models.UserMessages(msgs)
	if len(userMsgs) == 0 {
		return Analysis{}
	}

	var contents []string
	for _, msg := range userMsgs {
		contents = append(contents, msg.Content)
	}
	joined := strings.ToLower(strings.Join(contents, " . "))

	e.mu.RLock()
	var rejectionIndicators []string
	rejectionWeight := 0.0
	for _, kw := range e.model.RejectionKeywords {
		if strings.Contains(joined, kw) {
			rejectionIndicators = append(rejectionIndicators, kw)
			rejectionWeight += e.model.weightOf(kw)
			joined = strings.ReplaceAll(joined, kw, " ")
		}
	}

	var intentIndicators []string
	intentWeight := 0.0
	for _, kw := range e.model.IntentKeywords {
		if strings.Contains(joined, kw) {
			intentIndicators = append(intentIndicators, kw)
			intentWeight += e.model.weightOf(kw)
		}
	}

	w := e.model.SentimentWeights
	e.mu.RUnlock()

	keywordScore := math.Min(1.0, intentWeight/2.0)
	rejectionScore := math.Min(1.0, rejectionWeight)

	sentimentScore := e.sentiment.AnalyzeSentiment(strings.Join(contents, " . ")).Score
	engagement := e.engagementScore(userMsgs, joined)
	probability := 0.6*keywordScore +
		w.Positive*math.Max(0, sentimentScore) +
		w.Engagement*engagement -
		w.Negative*math.Max(0, -sentimentScore) -
		0.5*rejectionScore
	probability = clamp01(probability)

	return Analysis{
		HasPurchaseIntent:         probability > e.cfg.IntentThreshold,
		PurchaseIntentProbability: probability,
		IntentIndicators:          intentIndicators,
		RejectionIndicators:       rejectionIndicators,
		HasRejection:              len(rejectionIndicators) > 0,
		SentimentScore:            sentimentScore,
		EngagementScore:           engagement,
	}
}

// ShouldContinueConversation keeps the dialog alive while intent is present,
// and otherwise grants a grace period before giving up.
func (e *Engine) ShouldContinueConversation(msgs []models.Message, startTime time.Time, timeout time.Duration) (bool, string) {
	result := e.AnalyzePurchaseIntent(msgs)
	if result.HasPurchaseIntent {
		return true, ""
	}
	if e.now().Sub(startTime) > timeout {
		return false, StopReasonNoIntent
	}
	return true, ""
}

// AnalyzeConversation scores the window and caches the result under the
// conversation id. Re-analysis overwrites; last write wins.
func (e *Engine) AnalyzeConversation(msgs []models.Message, conversationID string) Analysis {
	result := e.AnalyzePurchaseIntent(msgs)
	e.conversations.Put(conversationID, result)
	return result
}

// GetConversationIntent returns the cached record; an untouched id yields the
// zero record.
func (e *Engine) GetConversationIntent(conversationID string) Analysis {
	result, ok := e.conversations.Get(conversationID)
	if !ok {
		metrics.CacheMisses.WithLabelValues(engineName).Inc()
		return Analysis{}
	}
	metrics.CacheHits.WithLabelValues(engineName).Inc()
	return result
}

// ClearConversationIntent resets the cached record.
func (e *Engine) ClearConversationIntent(conversationID string) {
	e.conversations.Delete(conversationID)
}

// UpdateModelFromConversation reinforces the model from a concluded
// conversation's outcome and persists it. Returns false when the persist
// fails; the in-memory model keeps the reinforcement either way.
func (e *Engine) UpdateModelFromConversation(ctx context.Context, conversationID string, msgs []models.Message, converted bool) bool {
	result := e.AnalyzePurchaseIntent(msgs)

	e.mu.Lock()
	if converted {
		for _, kw := range result.IntentIndicators {
			e.model.KeywordWeights[kw] = math.Min(maxKeywordWeight, e.model.weightOf(kw)+0.1)
		}
	} else {
		for _, kw := range result.RejectionIndicators {
			e.model.KeywordWeights[kw] = math.Min(maxKeywordWeight, e.model.weightOf(kw)+0.1)
		}
		for _, kw := range result.IntentIndicators {
			e.model.KeywordWeights[kw] = math.Max(minKeywordWeight, e.model.weightOf(kw)-0.05)
		}
	}
	e.model.UpdatedAt = e.now().UTC()
	snapshot := e.model.clone()
	e.mu.Unlock()

	outcome := "lost"
	if converted {
		outcome = "converted"
	}
	metrics.IntentModelUpdates.WithLabelValues(e.industry, outcome).Inc()

	e.logger.Info("intent model updated from conversation", map[string]interface{}{
		"conversationId": conversationID,
		"converted":      converted,
		"intentCount":    len(result.IntentIndicators),
		"rejectionCount": len(result.RejectionIndicators),
	})

	if e.store == nil {
		return true
	}
	if err := e.store.Save(ctx, snapshot); err != nil {
		e.logger.Warn("intent model persist failed, keeping in-memory model", map[string]interface{}{
			"error": err.Error(),
		})
		return false
	}
	return true
}

// engagementScore blends message length, question density, and specificity
// markers into [0,1].
func (e *Engine) engagementScore(userMsgs []models.Message, joined string) float64 {
	totalWords := 0
	questionMsgs := 0
	for _, msg := range userMsgs {
		totalWords += len(strings.Fields(msg.Content))
		if strings.ContainsAny(msg.Content, "?¿") {
			questionMsgs++
		}
	}

	lengthComponent := math.Min(1.0, float64(totalWords)/float64(len(userMsgs))/20.0)
	questionComponent := float64(questionMsgs) / float64(len(userMsgs))

	markerMatches := 0
	for _, marker := range lexicon.EngagementMarkers {
		if strings.Contains(joined, marker) {
			markerMatches++
		}
	}
	markerComponent := math.Min(1.0, 0.25*float64(markerMatches))

	return math.Min(1.0, 0.4*lengthComponent+0.3*questionComponent+0.3*markerComponent)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
