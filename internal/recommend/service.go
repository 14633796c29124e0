// internal/recommend/service.go

// Package recommend turns conversation insights into product suggestions,
// next actions, and personalized outreach copy.
package recommend

import (
	"fmt"
	"strings"

	"conversation-intelligence/internal/common/logger"
	"conversation-intelligence/internal/common/metrics"
	"conversation-intelligence/internal/lexicon"
	"conversation-intelligence/internal/nlp"
)

const serviceName = "recommend"

// Recommendation is one suggested tier with its rationale.
type Recommendation struct {
	Tier   string  `json:"tier"`
	Price  float64 `json:"price"`
	Reason string  `json:"reason"`
}

// Result is the full recommendation record for a conversation.
type Result struct {
	Recommendations     []Recommendation `json:"recommendations"`
	NextActions         []string         `json:"nextActions"`
	PersonalizedMessage string           `json:"personalizedMessage,omitempty"`
	HasRecommendations  bool             `json:"hasRecommendations"`
	Message             string           `json:"message,omitempty"`
}

type Service struct {
	logger logger.Logger
}

func NewService(log logger.Logger) *Service {
	return &Service{
		logger: log.WithFields(map[string]interface{}{"service": serviceName}),
	}
}

// Recommend builds the recommendation record from derived insights. Missing
// insights yield an empty record with a message, never an error.
func (s *Service) Recommend(insights nlp.Insights) Result {
	metrics.AnalysesPerformed.WithLabelValues(serviceName).Inc()

	if !insights.HasInsights {
		return Result{
			HasRecommendations: false,
			Message:            "No hay suficiente información de la conversación para recomendar.",
		}
	}

	return Result{
		Recommendations:     []Recommendation{pickTier(insights)},
		NextActions:         nextActions(insights),
		PersonalizedMessage: personalizedMessage(insights),
		HasRecommendations:  true,
	}
}

// pickTier maps profile and status onto the tier ladder: demanding profiles
// upward, hesitant ones downward.
func pickTier(insights nlp.Insights) Recommendation {
	profile := insights.UserProfile
	status := insights.ConversationStatus

	switch {
	case profile.TechnicalLevel == "alto" && status.Engagement == "alto":
		return tierRecommendation("Elite",
			"Perfil técnico exigente con alta participación; el plan completo evita migraciones futuras.")
	case status.Phase == "decision":
		return tierRecommendation("Pro",
			"Intención de compra clara; el plan intermedio equilibra alcance y precio para cerrar.")
	case status.Phase == "cierre_perdido":
		return tierRecommendation("Básico",
			"Tras una objeción conviene reabrir con la opción de menor compromiso.")
	default:
		return tierRecommendation("Básico",
			"Conversación en exploración; el plan de entrada reduce la fricción inicial.")
	}
}

func tierRecommendation(name, reason string) Recommendation {
	for _, tier := range lexicon.TierLadder {
		if tier.Name == name {
			return Recommendation{Tier: tier.Name, Price: tier.Price, Reason: reason}
		}
	}
	return Recommendation{Tier: name, Reason: reason}
}

// nextActions extends the insight rule table with phase-specific follow-ups.
func nextActions(insights nlp.Insights) []string {
	actions := append([]string(nil), insights.RecommendedActions...)

	switch insights.ConversationStatus.Phase {
	case "contacto_inicial":
		actions = append(actions, "Enviar material introductorio y presentarse")
	case "exploracion":
		actions = append(actions, "Responder las preguntas abiertas con ejemplos concretos")
	case "decision":
		actions = append(actions, "Confirmar condiciones comerciales y siguiente paso")
	case "cierre_perdido":
		actions = append(actions, "Registrar el motivo de la objeción para el seguimiento futuro")
	}
	return actions
}

// personalizedMessage drafts outreach copy from the profile: greeting by name
// when known, referencing the detected interests.
func personalizedMessage(insights nlp.Insights) string {
	var sb strings.Builder

	if insights.UserProfile.Name != "" {
		sb.WriteString(fmt.Sprintf("Hola %s, ", firstName(insights.UserProfile.Name)))
	} else {
		sb.WriteString("Hola, ")
	}
	sb.WriteString("gracias por tu tiempo.")

	if len(insights.KeyTopics) > 0 {
		topics := insights.KeyTopics
		if len(topics) > 3 {
			topics = topics[:3]
		}
		sb.WriteString(fmt.Sprintf(" Vi que te interesa %s;", strings.Join(topics, ", ")))
		sb.WriteString(" preparé información puntual sobre esos temas.")
	}

	if insights.ConversationStatus.Urgency == "alta" {
		sb.WriteString(" Entiendo que el tiempo apremia, te respondo hoy mismo.")
	}

	return sb.String()
}

func firstName(full string) string {
	if parts := strings.Fields(full); len(parts) > 0 {
		return parts[0]
	}
	return full
}
