// internal/objection/service.go

// Package objection classifies price and value objections and produces the
// paired response strategies and tier adjustments.
package objection

import (
	"fmt"
	"strings"

	"conversation-intelligence/internal/common/errors"
	"conversation-intelligence/internal/common/logger"
	"conversation-intelligence/internal/common/metrics"
	"conversation-intelligence/internal/lexicon"
)

const serviceName = "objection"

// Response pairs a detected objection with its handling strategy.
type Response struct {
	ObjectionType string `json:"objectionType,omitempty"`
	Response      string `json:"response,omitempty"`
	HasObjection  bool   `json:"hasObjection"`
	Message       string `json:"message,omitempty"`
}

// TierAdjustment is the pricing counter-offer for an objection.
type TierAdjustment struct {
	CurrentTier     string  `json:"currentTier"`
	SuggestedTier   string  `json:"suggestedTier"`
	CurrentPrice    float64 `json:"currentPrice"`
	AdjustedPrice   float64 `json:"adjustedPrice"`
	DiscountPercent float64 `json:"discountPercent"`
	EstimatedReturn float64 `json:"estimatedReturn"`
	Rationale       string  `json:"rationale"`
}

type Service struct {
	logger logger.Logger
}

func NewService(log logger.Logger) *Service {
	return &Service{
		logger: log.WithFields(map[string]interface{}{"service": serviceName}),
	}
}

// DetectObjectionType classifies a text into the objection taxonomy. When
// several types match, taxonomy order fixes precedence.
func (s *Service) DetectObjectionType(text string) (string, bool) {
	metrics.AnalysesPerformed.WithLabelValues(serviceName).Inc()

	normalized := strings.ToLower(text)
	for _, objectionType := range lexicon.ObjectionTypeOrder {
		for _, keyword := range lexicon.ObjectionKeywords[objectionType] {
			if strings.Contains(normalized, keyword) {
				return objectionType, true
			}
		}
	}
	return "", false
}

// Respond detects the objection and returns its response strategy. Texts
// without an objection report that instead of erroring.
func (s *Service) Respond(text string) Response {
	objectionType, found := s.DetectObjectionType(text)
	if !found {
		return Response{
			HasObjection: false,
			Message:      "No se detectó una objeción en el texto.",
		}
	}
	return Response{
		ObjectionType: objectionType,
		Response:      lexicon.ObjectionResponses[objectionType],
		HasObjection:  true,
	}
}

// SuggestTierAdjustment builds a counter-offer for the customer's current
// tier. Price objections step down the ladder; timing and comparison
// objections keep the tier and discount it instead.
func (s *Service) SuggestTierAdjustment(currentTier, objectionType string) (TierAdjustment, error) {
	idx := tierIndex(currentTier)
	if idx < 0 {
		return TierAdjustment{}, errors.NewInvalidInputError(
			fmt.Sprintf("unknown tier %q", currentTier))
	}
	current := lexicon.TierLadder[idx]

	adjustment := TierAdjustment{
		CurrentTier:   current.Name,
		SuggestedTier: current.Name,
		CurrentPrice:  current.Price,
		AdjustedPrice: current.Price,
	}

	switch objectionType {
	case lexicon.ObjectionPrecioAlto, lexicon.ObjectionFaltaPresupuesto, lexicon.ObjectionValorPercibido:
		if idx+1 < len(lexicon.TierLadder) {
			lower := lexicon.TierLadder[idx+1]
			adjustment.SuggestedTier = lower.Name
			adjustment.AdjustedPrice = lower.Price
			adjustment.Rationale = fmt.Sprintf(
				"El plan %s cubre lo esencial a un precio más accesible.", lower.Name)
		} else {
			// Already at the bottom of the ladder; discount instead.
			adjustment.AdjustedPrice = current.Price * 0.8
			adjustment.Rationale = "Descuento de retención sobre el plan más accesible."
		}
	case lexicon.ObjectionComparacion:
		adjustment.AdjustedPrice = current.Price * 0.85
		adjustment.Rationale = "Igualamos la oferta de la competencia manteniendo el mismo plan."
	case lexicon.ObjectionTiming:
		adjustment.AdjustedPrice = current.Price * 0.9
		adjustment.Rationale = "Precio congelado por 30 días con descuento por decisión anticipada."
	default:
		adjustment.Rationale = "Sin ajuste; la objeción no es de precio."
	}

	adjustment.DiscountPercent = (1 - adjustment.AdjustedPrice/current.Price) * 100
	adjustment.EstimatedReturn = adjustment.AdjustedPrice * lexicon.ROIMultiplier

	s.logger.Debug("tier adjustment suggested", map[string]interface{}{
		"currentTier":   adjustment.CurrentTier,
		"suggestedTier": adjustment.SuggestedTier,
		"objectionType": objectionType,
	})
	return adjustment, nil
}

func tierIndex(name string) int {
	for i, tier := range lexicon.TierLadder {
		if strings.EqualFold(tier.Name, name) {
			return i
		}
	}
	return -1
}
