// internal/engines/intent/engine_test.go
package intent

import (
	"context"
	"sync"
	"testing"
	"time"

	"conversation-intelligence/internal/cache"
	"conversation-intelligence/internal/common/config"
	"conversation-intelligence/internal/common/logger"
	"conversation-intelligence/internal/engines/sentiment"
	"conversation-intelligence/internal/models"

	"github.com/stretchr/testify/assert"
)

type fakeStore struct {
	model   *Model
	getErr  error
	saveErr error
	saved   int
}

func (f *fakeStore) GetOrCreate(_ context.Context, industry string) (*Model, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.model == nil {
		f.model = NewModel(industry)
	}
	return f.model, nil
}

func (f *fakeStore) Save(_ context.Context, _ *Model) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved++
	return nil
}

func testNLPConfig() config.NLPConfig {
	return config.NLPConfig{
		SentimentThreshold:     0.1,
		EmotionMinSupport:      0.3,
		TrendThreshold:         0.1,
		IntentThreshold:        0.5,
		IntentDetectionTimeout: 300,
		DefaultIndustry:        "software",
	}
}

func newTestEngine(t *testing.T, store ModelStore) *Engine {
	cfg := testNLPConfig()
	log := logger.NewTestLogger(t)
	return NewEngine(context.Background(), "software", store,
		sentiment.NewEngine(cfg, log), cache.New[Analysis](0, 0), cfg, log)
}

func userMessages(contents ...string) []models.Message {
	msgs := make([]models.Message, 0, len(contents))
	for _, content := range contents {
		msgs = append(msgs, models.Message{Role: models.RoleUser, Content: content})
	}
	return msgs
}

func TestAnalyzePurchaseIntent_ExplicitRejection(t *testing.T) {
	engine := newTestEngine(t, nil)

	result := engine.AnalyzePurchaseIntent(userMessages("No me interesa, gracias."))

	assert.False(t, result.HasPurchaseIntent)
	assert.True(t, result.HasRejection)
	assert.NotEmpty(t, result.RejectionIndicators)
	assert.Contains(t, result.RejectionIndicators, "no me interesa")
}

func TestAnalyzePurchaseIntent_BuyingSignals(t *testing.T) {
	engine := newTestEngine(t, nil)

	result := engine.AnalyzePurchaseIntent(userMessages(
		"Me interesa el producto",
		"¿Cuál es el precio?",
		"Quiero comprar pronto",
	))

	assert.True(t, result.HasPurchaseIntent)
	assert.Greater(t, result.PurchaseIntentProbability, 0.5)
	assert.Contains(t, result.IntentIndicators, "precio")
	assert.Contains(t, result.IntentIndicators, "comprar")
	assert.False(t, result.HasRejection)
}

func TestAnalyzePurchaseIntent_RejectionSuppressesIntentSubstrings(t *testing.T) {
	engine := newTestEngine(t, nil)

	result := engine.AnalyzePurchaseIntent(userMessages("No me interesa"))

	assert.NotContains(t, result.IntentIndicators, "me interesa",
		"struck rejection text must not double as an intent signal")
	assert.NotContains(t, result.IntentIndicators, "interesa")
}

func TestAnalyzePurchaseIntent_NoUserMessages(t *testing.T) {
	engine := newTestEngine(t, nil)

	result := engine.AnalyzePurchaseIntent([]models.Message{
		{Role: models.RoleAssistant, Content: "¿Le interesa comprar? Tenemos buen precio."},
	})

	assert.False(t, result.HasPurchaseIntent)
	assert.Empty(t, result.IntentIndicators)
	assert.Zero(t, result.PurchaseIntentProbability)
}

func TestAnalyzePurchaseIntent_ProbabilityInUnitRange(t *testing.T) {
	engine := newTestEngine(t, nil)

	windows := [][]models.Message{
		userMessages("precio precio comprar contratar demo cotización me interesa"),
		userMessages("no me interesa, no gracias, muy caro"),
		userMessages("hola, buenos días"),
	}

	for _, msgs := range windows {
		result := engine.AnalyzePurchaseIntent(msgs)
		assert.GreaterOrEqual(t, result.PurchaseIntentProbability, 0.0)
		assert.LessOrEqual(t, result.PurchaseIntentProbability, 1.0)
	}
}

func TestShouldContinueConversation_IntentDetected(t *testing.T) {
	engine := newTestEngine(t, nil)

	start := time.Now().Add(-time.Hour)
	ok, reason := engine.ShouldContinueConversation(
		userMessages("Me interesa, quiero saber el precio para comprar"), start, 5*time.Minute)

	assert.True(t, ok, "detected intent keeps the dialog alive past any timeout")
	assert.Empty(t, reason)
}

func TestShouldContinueConversation_GracePeriod(t *testing.T) {
	engine := newTestEngine(t, nil)

	fixed := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	engine.now = func() time.Time { return fixed }

	ok, reason := engine.ShouldContinueConversation(
		userMessages("Hola, buenos días"), fixed.Add(-2*time.Minute), 5*time.Minute)

	assert.True(t, ok)
	assert.Empty(t, reason)
}

func TestShouldContinueConversation_TimeoutWithoutIntent(t *testing.T) {
	engine := newTestEngine(t, nil)

	fixed := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	engine.now = func() time.Time { return fixed }

	ok, reason := engine.ShouldContinueConversation(
		userMessages("Hola, buenos días"), fixed.Add(-10*time.Minute), 5*time.Minute)

	assert.False(t, ok)
	assert.Equal(t, StopReasonNoIntent, reason)
}

func TestAnalyzeConversation_CachesResult(t *testing.T) {
	engine := newTestEngine(t, nil)

	computed := engine.AnalyzeConversation(userMessages("Quiero comprar, cuál es el precio"), "conv-1")
	cached := engine.GetConversationIntent("conv-1")
	assert.Equal(t, computed, cached)

	engine.ClearConversationIntent("conv-1")
	assert.Zero(t, engine.GetConversationIntent("conv-1"))
}

func TestUpdateModelFromConversation_Converted(t *testing.T) {
	engine := newTestEngine(t, nil)
	before := engine.model.weightOf("precio")

	ok := engine.UpdateModelFromConversation(context.Background(), "conv-1",
		userMessages("Me interesa el precio"), true)

	assert.True(t, ok)
	assert.Greater(t, engine.model.weightOf("precio"), before)
}

func TestUpdateModelFromConversation_Lost(t *testing.T) {
	engine := newTestEngine(t, nil)
	rejectionBefore := engine.model.weightOf("no me interesa")
	intentBefore := engine.model.weightOf("precio")

	ok := engine.UpdateModelFromConversation(context.Background(), "conv-1",
		userMessages("Pregunté el precio pero no me interesa"), false)

	assert.True(t, ok)
	assert.Greater(t, engine.model.weightOf("no me interesa"), rejectionBefore)
	assert.Less(t, engine.model.weightOf("precio"), intentBefore)
}

func TestUpdateModelFromConversation_PersistFailureKeepsMemoryModel(t *testing.T) {
	store := &fakeStore{saveErr: assert.AnError}
	engine := newTestEngine(t, store)
	before := engine.model.weightOf("precio")

	ok := engine.UpdateModelFromConversation(context.Background(), "conv-1",
		userMessages("Me interesa el precio"), true)

	assert.False(t, ok, "persist failure reports as unsuccessful")
	assert.Greater(t, engine.model.weightOf("precio"), before,
		"reinforcement survives in memory")
}

func TestUpdateModelFromConversation_Persists(t *testing.T) {
	store := &fakeStore{}
	engine := newTestEngine(t, store)

	ok := engine.UpdateModelFromConversation(context.Background(), "conv-1",
		userMessages("Me interesa el precio"), true)

	assert.True(t, ok)
	assert.Equal(t, 1, store.saved)
}

func TestUpdateModelFromConversation_ConcurrentWithScoring(t *testing.T) {
	engine := newTestEngine(t, nil)
	msgs := userMessages("Me interesa el precio, quiero comprar")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		converted := i%2 == 0
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				engine.UpdateModelFromConversation(context.Background(), "conv-1", msgs, converted)
				engine.AnalyzePurchaseIntent(msgs)
			}
		}()
	}
	wg.Wait()

	weight := engine.model.weightOf("precio")
	assert.GreaterOrEqual(t, weight, minKeywordWeight)
	assert.LessOrEqual(t, weight, maxKeywordWeight)
}

func TestNewEngine_LoadFailureFallsBackToInMemoryModel(t *testing.T) {
	engine := newTestEngine(t, &fakeStore{getErr: assert.AnError})

	assert.NotNil(t, engine.model)
	result := engine.AnalyzePurchaseIntent(userMessages("Quiero comprar, me interesa el precio"))
	assert.True(t, result.HasPurchaseIntent)
}

func TestNewModel_UnknownIndustryFallsBackToBase(t *testing.T) {
	model := NewModel("circo")

	assert.NotEmpty(t, model.IntentKeywords)
	assert.NotEmpty(t, model.RejectionKeywords)
	assert.Contains(t, model.IntentKeywords, "precio")
	assert.NotContains(t, model.IntentKeywords, "licencias",
		"industry additions apply only to known industries")
}

func TestNewModel_IndustryAdditions(t *testing.T) {
	model := NewModel("software")

	assert.Contains(t, model.IntentKeywords, "licencias")
	assert.Contains(t, model.RejectionKeywords, "tenemos proveedor")
	for _, kw := range model.IntentKeywords {
		assert.Equal(t, 1.0, model.KeywordWeights[kw])
	}
}
