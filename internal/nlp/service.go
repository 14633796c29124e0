// internal/nlp/service.go

// Package nlp aggregates the per-engine analyses into one conversation-level
// record and derives sales insights from it. The service owns the merged
// cache; each engine keeps owning its own per-conversation state.
package nlp

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"conversation-intelligence/internal/cache"
	"conversation-intelligence/internal/common/database"
	"conversation-intelligence/internal/common/logger"
	"conversation-intelligence/internal/common/metrics"
	"conversation-intelligence/internal/engines/entity"
	"conversation-intelligence/internal/engines/intent"
	"conversation-intelligence/internal/engines/keywords"
	"conversation-intelligence/internal/engines/question"
	"conversation-intelligence/internal/engines/sentiment"
	"conversation-intelligence/internal/models"
)

const serviceName = "aggregation"

// checkpointKeyPrefix namespaces the Redis write-through checkpoint of the
// merged analysis cache.
const checkpointKeyPrefix = "conv:analysis:"

// Service runs the full analysis pipeline. The Redis client is optional; a
// nil client keeps the merged cache purely in process.
type Service struct {
	sentiment *sentiment.Engine
	entities  *entity.Engine
	questions *question.Engine
	keywords  *keywords.Engine
	intent    *intent.Engine
	analyses  *cache.Store[ConversationAnalysis]
	redis     *database.RedisClient
	cacheTTL  time.Duration
	logger    logger.Logger
}

func NewService(
	sentimentEngine *sentiment.Engine,
	entityEngine *entity.Engine,
	questionEngine *question.Engine,
	keywordEngine *keywords.Engine,
	intentEngine *intent.Engine,
	analyses *cache.Store[ConversationAnalysis],
	redisClient *database.RedisClient,
	cacheTTL time.Duration,
	log logger.Logger,
) *Service {
	return &Service{
		sentiment: sentimentEngine,
		entities:  entityEngine,
		questions: questionEngine,
		keywords:  keywordEngine,
		intent:    intentEngine,
		analyses:  analyses,
		redis:     redisClient,
		cacheTTL:  cacheTTL,
		logger:    log.WithFields(map[string]interface{}{"service": serviceName}),
	}
}

// AnalyzeMessage runs every engine over one text. When a conversation id is
// given the role-gated conversation-level updates fire too; this entry point
// always speaks for the user.
func (s *Service) AnalyzeMessage(text, conversationID string) MessageAnalysis {
	start := time.Now()
	defer func() {
		metrics.AnalysisDuration.WithLabelValues(serviceName).Observe(time.Since(start).Seconds())
	}()
	metrics.AnalysesPerformed.WithLabelValues(serviceName).Inc()

	window := []models.Message{{Role: models.RoleUser, Content: text}}

	result := MessageAnalysis{
		Text:      text,
		Sentiment: s.sentiment.ComprehensiveAnalysis(text),
		Entities:  s.entities.ExtractEntities(text),
		Questions: s.questions.AnalyzeText(text),
		Keywords:  s.keywords.AnalyzeText(text),
		Intent:    s.intent.AnalyzePurchaseIntent(window),
	}

	if conversationID != "" {
		s.entities.UpdateConversationEntities(conversationID, text, models.RoleUser)
		s.keywords.UpdateConversationKeywords(conversationID, text, models.RoleUser)
	}

	return result
}

// AnalyzeConversation runs the full per-engine aggregation, caches the merged
// record under the conversation id, and checkpoints it to Redis when a client
// is configured. Recomputation replaces the previous record.
func (s *Service) AnalyzeConversation(ctx context.Context, msgs []models.Message, conversationID string) ConversationAnalysis {
	start := time.Now()
	defer func() {
		metrics.AnalysisDuration.WithLabelValues(serviceName).Observe(time.Since(start).Seconds())
	}()
	metrics.AnalysesPerformed.WithLabelValues(serviceName).Inc()

	s.entities.ClearConversationEntities(conversationID)
	for _, msg := range msgs {
		s.entities.UpdateConversationEntities(conversationID, msg.Content, msg.Role)
	}

	userMsgs := models.UserMessages(msgs)
	var contents []string
	for _, msg := range userMsgs {
		contents = append(contents, msg.Content)
	}

	result := ConversationAnalysis{
		ConversationID: conversationID,
		Sentiment:      s.sentiment.AnalyzeConversation(msgs),
		Urgency:        s.sentiment.DetectUrgency(strings.Join(contents, " . ")),
		Entities:       s.entities.GetConversationEntities(conversationID),
		Questions:      s.questions.AnalyzeConversation(msgs, conversationID),
		Keywords:       s.keywords.AnalyzeConversation(msgs, conversationID),
		Intent:         s.intent.AnalyzeConversation(msgs, conversationID),
		MessageCount:   len(userMsgs),
		AnalyzedAt:     time.Now().UTC(),
		HasAnalysis:    true,
	}

	s.analyses.Put(conversationID, result)
	s.checkpoint(ctx, conversationID, result)
	return result
}

// GetConversationAnalysis returns the cached record, falling back to the
// Redis checkpoint after a restart. A missing id yields an empty record,
// never an error.
func (s *Service) GetConversationAnalysis(ctx context.Context, conversationID string) ConversationAnalysis {
	if result, ok := s.analyses.Get(conversationID); ok {
		metrics.CacheHits.WithLabelValues(serviceName).Inc()
		return result
	}
	metrics.CacheMisses.WithLabelValues(serviceName).Inc()

	if s.redis != nil {
		raw, err := s.redis.Get(ctx, checkpointKeyPrefix+conversationID)
		if err == nil {
			var result ConversationAnalysis
			if err := json.Unmarshal([]byte(raw), &result); err == nil {
				s.analyses.Put(conversationID, result)
				return result
			}
			s.logger.Warn("discarding corrupt analysis checkpoint", map[string]interface{}{
				"conversationId": conversationID,
			})
		}
	}

	return ConversationAnalysis{ConversationID: conversationID}
}

// ClearConversationAnalysis drops the merged record and its checkpoint.
func (s *Service) ClearConversationAnalysis(ctx context.Context, conversationID string) {
	s.analyses.Delete(conversationID)
	if s.redis != nil {
		if err := s.redis.Del(ctx, checkpointKeyPrefix+conversationID); err != nil {
			s.logger.Warn("analysis checkpoint delete failed", map[string]interface{}{
				"conversationId": conversationID,
				"error":          err.Error(),
			})
		}
	}
}

// GetConversationInsights derives the sales view from the merged analysis.
// Absent analysis yields HasInsights=false with a message, never an error.
func (s *Service) GetConversationInsights(ctx context.Context, conversationID string) Insights {
	analysis := s.GetConversationAnalysis(ctx, conversationID)
	if !analysis.HasAnalysis {
		return Insights{
			ConversationID: conversationID,
			HasInsights:    false,
			Message:        "No hay análisis disponible para esta conversación.",
		}
	}

	return Insights{
		ConversationID:     conversationID,
		UserProfile:        s.buildUserProfile(analysis),
		ConversationStatus: buildStatus(analysis),
		RecommendedActions: recommendActions(analysis),
		KeyTopics:          s.keyTopics(analysis),
		HasInsights:        true,
	}
}

func (s *Service) buildUserProfile(analysis ConversationAnalysis) UserProfile {
	profile := UserProfile{
		Interests:          s.keywords.GetTopKeywords(analysis.ConversationID, 5),
		CommunicationStyle: "directo",
		TechnicalLevel:     "básico",
	}

	if names := analysis.Entities[entity.TypePersonName]; len(names) > 0 {
		profile.Name = names[0]
	}
	if emails := analysis.Entities[entity.TypeEmail]; len(emails) > 0 {
		profile.Email = emails[0]
	}
	if phones := analysis.Entities[entity.TypePhone]; len(phones) > 0 {
		profile.Phone = phones[0]
	}

	if analysis.Questions.QuestionCount >= 3 {
		profile.CommunicationStyle = "inquisitivo"
	}
	switch analysis.Questions.PredominantComplexity {
	case question.ComplexityHigh:
		profile.TechnicalLevel = "alto"
	case question.ComplexityMedium:
		profile.TechnicalLevel = "medio"
	}

	return profile
}

func buildStatus(analysis ConversationAnalysis) ConversationStatus {
	satisfaction := "neutral"
	switch {
	case analysis.Sentiment.Trend.Trend == sentiment.TrendImproving:
		satisfaction = "satisfecho"
	case analysis.Sentiment.Trend.Trend == sentiment.TrendWorsening:
		satisfaction = "insatisfecho"
	case analysis.Sentiment.Overall.Sentiment == sentiment.SentimentPositive:
		satisfaction = "satisfecho"
	case analysis.Sentiment.Overall.Sentiment == sentiment.SentimentNegative:
		satisfaction = "insatisfecho"
	}

	phase := "contacto_inicial"
	switch {
	case analysis.Intent.HasRejection:
		phase = "cierre_perdido"
	case analysis.Intent.HasPurchaseIntent:
		phase = "decision"
	case analysis.Questions.QuestionCount > 0:
		phase = "exploracion"
	}

	engagement := "bajo"
	switch {
	case analysis.Intent.EngagementScore > 0.6:
		engagement = "alto"
	case analysis.Intent.EngagementScore > 0.3:
		engagement = "medio"
	}

	return ConversationStatus{
		Satisfaction: satisfaction,
		Urgency:      analysis.Urgency.Class,
		Phase:        phase,
		Engagement:   engagement,
	}
}

// recommendActions is the rule table keyed by sentiment, urgency, and intent.
func recommendActions(analysis ConversationAnalysis) []string {
	var actions []string

	if analysis.Sentiment.Overall.Sentiment == sentiment.SentimentNegative {
		actions = append(actions,
			"Escalar a un agente humano",
			"Reconocer la molestia y ofrecer una solución concreta")
	}
	if analysis.Urgency.Class == sentiment.LevelHigh {
		actions = append(actions, "Responder de inmediato y priorizar el seguimiento")
	}
	if analysis.Intent.HasRejection {
		actions = append(actions, "Pausar el seguimiento comercial y documentar la objeción")
	} else if analysis.Intent.HasPurchaseIntent {
		actions = append(actions,
			"Enviar propuesta o cotización",
			"Agendar una llamada de cierre")
	} else if analysis.Sentiment.Overall.Sentiment == sentiment.SentimentPositive {
		actions = append(actions, "Compartir casos de éxito relevantes")
	}

	if len(actions) == 0 {
		actions = append(actions, "Continuar la conversación para conocer las necesidades del cliente")
	}
	return actions
}

// keyTopics unions the top keywords with the dominant categories, first-seen
// order kept.
func (s *Service) keyTopics(analysis ConversationAnalysis) []string {
	var topics []string
	seen := make(map[string]bool)
	add := func(topic string) {
		if topic != "" && !seen[topic] {
			seen[topic] = true
			topics = append(topics, topic)
		}
	}

	for _, kw := range s.keywords.GetTopKeywords(analysis.ConversationID, 5) {
		add(kw)
	}
	for _, category := range s.keywords.GetDominantCategories(analysis.ConversationID) {
		add(category)
	}
	return topics
}

func (s *Service) checkpoint(ctx context.Context, conversationID string, result ConversationAnalysis) {
	if s.redis == nil {
		return
	}
	payload, err := json.Marshal(result)
	if err != nil {
		s.logger.Warn("analysis checkpoint encode failed", map[string]interface{}{
			"conversationId": conversationID,
			"error":          err.Error(),
		})
		return
	}
	if err := s.redis.Set(ctx, checkpointKeyPrefix+conversationID, payload, s.cacheTTL); err != nil {
		s.logger.Warn("analysis checkpoint write failed", map[string]interface{}{
			"conversationId": conversationID,
			"error":          err.Error(),
		})
	}
}
