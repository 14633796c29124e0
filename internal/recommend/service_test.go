// internal/recommend/service_test.go
package recommend

import (
	"testing"

	"conversation-intelligence/internal/common/logger"
	"conversation-intelligence/internal/nlp"

	"github.com/stretchr/testify/assert"
)

func newTestService(t *testing.T) *Service {
	return NewService(logger.NewTestLogger(t))
}

func decisionInsights() nlp.Insights {
	return nlp.Insights{
		ConversationID: "conv-1",
		UserProfile: nlp.UserProfile{
			Name:               "Ana García",
			Email:              "ana@empresa.com",
			Interests:          []string{"precio", "soporte"},
			CommunicationStyle: "inquisitivo",
			TechnicalLevel:     "medio",
		},
		ConversationStatus: nlp.ConversationStatus{
			Satisfaction: "satisfecho",
			Urgency:      "alta",
			Phase:        "decision",
			Engagement:   "alto",
		},
		RecommendedActions: []string{"Enviar propuesta o cotización"},
		KeyTopics:          []string{"precio", "soporte"},
		HasInsights:        true,
	}
}

func TestRecommend_NoInsights(t *testing.T) {
	svc := newTestService(t)

	result := svc.Recommend(nlp.Insights{HasInsights: false})

	assert.False(t, result.HasRecommendations)
	assert.Empty(t, result.Recommendations)
	assert.NotEmpty(t, result.Message)
}

func TestRecommend_DecisionPhaseSuggestsPro(t *testing.T) {
	svc := newTestService(t)

	result := svc.Recommend(decisionInsights())

	assert.True(t, result.HasRecommendations)
	assert.Len(t, result.Recommendations, 1)
	assert.Equal(t, "Pro", result.Recommendations[0].Tier)
	assert.Equal(t, 2999.0, result.Recommendations[0].Price)
	assert.NotEmpty(t, result.Recommendations[0].Reason)
}

func TestRecommend_TechnicalEngagedProfileSuggestsElite(t *testing.T) {
	svc := newTestService(t)

	insights := decisionInsights()
	insights.UserProfile.TechnicalLevel = "alto"
	insights.ConversationStatus.Engagement = "alto"

	result := svc.Recommend(insights)

	assert.Equal(t, "Elite", result.Recommendations[0].Tier)
	assert.Equal(t, 4999.0, result.Recommendations[0].Price)
}

func TestRecommend_LostCloseSuggestsEntryTier(t *testing.T) {
	svc := newTestService(t)

	insights := decisionInsights()
	insights.ConversationStatus.Phase = "cierre_perdido"

	result := svc.Recommend(insights)

	assert.Equal(t, "Básico", result.Recommendations[0].Tier)
}

func TestRecommend_NextActionsExtendInsightActions(t *testing.T) {
	svc := newTestService(t)

	result := svc.Recommend(decisionInsights())

	assert.Contains(t, result.NextActions, "Enviar propuesta o cotización")
	assert.Contains(t, result.NextActions, "Confirmar condiciones comerciales y siguiente paso")
}

func TestRecommend_PersonalizedMessage(t *testing.T) {
	svc := newTestService(t)

	result := svc.Recommend(decisionInsights())

	assert.Contains(t, result.PersonalizedMessage, "Hola Ana")
	assert.Contains(t, result.PersonalizedMessage, "precio")
	assert.Contains(t, result.PersonalizedMessage, "hoy mismo")
}

func TestRecommend_PersonalizedMessageWithoutName(t *testing.T) {
	svc := newTestService(t)

	insights := decisionInsights()
	insights.UserProfile.Name = ""
	insights.KeyTopics = nil
	insights.ConversationStatus.Urgency = "baja"

	result := svc.Recommend(insights)

	assert.Equal(t, "Hola, gracias por tu tiempo.", result.PersonalizedMessage)
}
