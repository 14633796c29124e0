// internal/nlp/service_test.go
package nlp

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"conversation-intelligence/internal/cache"
	"conversation-intelligence/internal/common/config"
	"conversation-intelligence/internal/common/database"
	"conversation-intelligence/internal/common/logger"
	"conversation-intelligence/internal/engines/entity"
	"conversation-intelligence/internal/engines/intent"
	"conversation-intelligence/internal/engines/keywords"
	"conversation-intelligence/internal/engines/question"
	"conversation-intelligence/internal/engines/sentiment"
	"conversation-intelligence/internal/models"
)

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

func newTestService(t *testing.T, redisClient *database.RedisClient) *Service {
	cfg := testNLPConfig()
	log := logger.NewTestLogger(t)

	sentimentEngine := sentiment.NewEngine(cfg, log)
	entityEngine := entity.NewEngine(cache.New[entity.Bag](0, 0), log)
	questionEngine := question.NewEngine(cache.New[question.ConversationAnalysis](0, 0), log)
	keywordEngine := keywords.NewEngine(keywords.NewStore(0), log)
	intentEngine := intent.NewEngine(context.Background(), cfg.DefaultIndustry, nil,
		sentimentEngine, cache.New[intent.Analysis](0, 0), cfg, log)

	return NewService(sentimentEngine, entityEngine, questionEngine, keywordEngine,
		intentEngine, cache.New[ConversationAnalysis](0, 0), redisClient, time.Hour, log)
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, &database.RedisClient{Client: client}
}

func salesConversation() []models.Message {
	return []models.Message{
		{Role: models.RoleUser, Content: "Hola, soy Ana García, mi correo es ana@empresa.com"},
		{Role: models.RoleAssistant, Content: "Mucho gusto, ¿en qué puedo ayudarle?"},
		{Role: models.RoleUser, Content: "Me interesa el precio del plan, ¿cuánto cuesta?"},
		{Role: models.RoleUser, Content: "Es urgente, lo necesito ahora mismo"},
	}
}

func TestAnalyzeMessage(t *testing.T) {
	svc := newTestService(t, nil)

	result := svc.AnalyzeMessage("Me interesa el producto, ¿cuál es el precio? Mi correo es ana@empresa.com", "")

	assert.NotEmpty(t, result.Text)
	assert.Contains(t, result.Entities[entity.TypeEmail], "ana@empresa.com")
	assert.True(t, result.Questions.HasQuestions)
	assert.True(t, result.Keywords.HasKeywords)
	assert.NotEmpty(t, result.Intent.IntentIndicators)
}

func TestAnalyzeMessage_WithConversationIDUpdatesEngines(t *testing.T) {
	svc := newTestService(t, nil)

	svc.AnalyzeMessage("Soy Pedro Ramírez y me interesa el precio", "conv-1")

	bag := svc.entities.GetConversationEntities("conv-1")
	assert.Contains(t, bag[entity.TypePersonName], "Pedro Ramírez")
	assert.Contains(t, svc.keywords.GetTopKeywords("conv-1", 10), "precio")
}

func TestConversationAnalysisCacheLifecycle(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	before := svc.GetConversationAnalysis(ctx, "conv-1")
	assert.False(t, before.HasAnalysis, "untouched id yields an empty record")

	computed := svc.AnalyzeConversation(ctx, salesConversation(), "conv-1")
	assert.True(t, computed.HasAnalysis)

	cached := svc.GetConversationAnalysis(ctx, "conv-1")
	assert.True(t, cached.HasAnalysis)
	assert.Equal(t, computed.ConversationID, cached.ConversationID)

	svc.ClearConversationAnalysis(ctx, "conv-1")
	after := svc.GetConversationAnalysis(ctx, "conv-1")
	assert.False(t, after.HasAnalysis, "cleared id yields an empty record again")
}

func TestAnalyzeConversation_RecomputationOverwrites(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	svc.AnalyzeConversation(ctx, salesConversation(), "conv-1")
	second := svc.AnalyzeConversation(ctx, []models.Message{
		{Role: models.RoleUser, Content: "Gracias, eso es todo"},
	}, "conv-1")

	cached := svc.GetConversationAnalysis(ctx, "conv-1")
	assert.Equal(t, second.MessageCount, cached.MessageCount)
	assert.Equal(t, 1, cached.MessageCount, "last write wins")
}

func TestAnalyzeConversation_CheckpointsToRedis(t *testing.T) {
	mr, redisClient := newTestRedis(t)
	svc := newTestService(t, redisClient)
	ctx := context.Background()

	svc.AnalyzeConversation(ctx, salesConversation(), "conv-1")

	assert.True(t, mr.Exists("conv:analysis:conv-1"))

	// A fresh service with an empty in-process cache recovers the record
	// from the checkpoint.
	restarted := newTestService(t, redisClient)
	recovered := restarted.GetConversationAnalysis(ctx, "conv-1")
	assert.True(t, recovered.HasAnalysis)
	assert.Equal(t, "conv-1", recovered.ConversationID)
}

func TestClearConversationAnalysis_RemovesCheckpoint(t *testing.T) {
	mr, redisClient := newTestRedis(t)
	svc := newTestService(t, redisClient)
	ctx := context.Background()

	svc.AnalyzeConversation(ctx, salesConversation(), "conv-1")
	svc.ClearConversationAnalysis(ctx, "conv-1")

	assert.False(t, mr.Exists("conv:analysis:conv-1"))
	assert.False(t, svc.GetConversationAnalysis(ctx, "conv-1").HasAnalysis)
}

func TestGetConversationInsights_NoAnalysis(t *testing.T) {
	svc := newTestService(t, nil)

	insights := svc.GetConversationInsights(context.Background(), "conv-1")

	assert.False(t, insights.HasInsights)
	assert.NotEmpty(t, insights.Message)
}

func TestGetConversationInsights(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	svc.AnalyzeConversation(ctx, salesConversation(), "conv-1")
	insights := svc.GetConversationInsights(ctx, "conv-1")

	assert.True(t, insights.HasInsights)
	assert.Equal(t, "Ana García", insights.UserProfile.Name)
	assert.Equal(t, "ana@empresa.com", insights.UserProfile.Email)
	assert.NotEmpty(t, insights.UserProfile.Interests)

	assert.Equal(t, "decision", insights.ConversationStatus.Phase)
	assert.Equal(t, sentiment.LevelHigh, insights.ConversationStatus.Urgency)

	assert.NotEmpty(t, insights.RecommendedActions)
	assert.Contains(t, insights.KeyTopics, "precio")
}

func TestGetConversationInsights_RejectionPhase(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	svc.AnalyzeConversation(ctx, []models.Message{
		{Role: models.RoleUser, Content: "No me interesa, no gracias"},
	}, "conv-1")
	insights := svc.GetConversationInsights(ctx, "conv-1")

	assert.True(t, insights.HasInsights)
	assert.Equal(t, "cierre_perdido", insights.ConversationStatus.Phase)
	assert.Contains(t, insights.RecommendedActions,
		"Pausar el seguimiento comercial y documentar la objeción")
}
