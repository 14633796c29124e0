// internal/objection/service_test.go
package objection

import (
	"testing"

	"conversation-intelligence/internal/common/logger"
	"conversation-intelligence/internal/lexicon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	return NewService(logger.NewTestLogger(t))
}

func TestDetectObjectionType(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name         string
		text         string
		expectedType string
		expectFound  bool
	}{
		{
			name:         "high price",
			text:         "Este programa es muy caro",
			expectedType: lexicon.ObjectionPrecioAlto,
			expectFound:  true,
		},
		{
			name:         "no budget",
			text:         "Me gusta pero no tengo presupuesto este año",
			expectedType: lexicon.ObjectionFaltaPresupuesto,
			expectFound:  true,
		},
		{
			name:         "competitor comparison",
			text:         "Estoy cotizando con otro proveedor",
			expectedType: lexicon.ObjectionComparacion,
			expectFound:  true,
		},
		{
			name:         "perceived value",
			text:         "La verdad no le veo el valor",
			expectedType: lexicon.ObjectionValorPercibido,
			expectFound:  true,
		},
		{
			name:         "timing",
			text:         "Mejor lo vemos el próximo mes",
			expectedType: lexicon.ObjectionTiming,
			expectFound:  true,
		},
		{
			name:        "no objection",
			text:        "Me parece perfecto, ¿dónde firmo?",
			expectFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			objectionType, found := svc.DetectObjectionType(tt.text)
			assert.Equal(t, tt.expectFound, found)
			assert.Equal(t, tt.expectedType, objectionType)
		})
	}
}

func TestDetectObjectionType_PrecedenceOnMultipleMatches(t *testing.T) {
	svc := newTestService(t)

	objectionType, found := svc.DetectObjectionType(
		"Es muy caro y además no es el momento")

	assert.True(t, found)
	assert.Equal(t, lexicon.ObjectionPrecioAlto, objectionType,
		"taxonomy order fixes precedence")
}

func TestRespond(t *testing.T) {
	svc := newTestService(t)

	response := svc.Respond("Este programa es muy caro")

	assert.True(t, response.HasObjection)
	assert.Equal(t, lexicon.ObjectionPrecioAlto, response.ObjectionType)
	assert.Equal(t, lexicon.ObjectionResponses[lexicon.ObjectionPrecioAlto], response.Response)
}

func TestRespond_NoObjection(t *testing.T) {
	svc := newTestService(t)

	response := svc.Respond("Todo me parece bien")

	assert.False(t, response.HasObjection)
	assert.Empty(t, response.ObjectionType)
	assert.NotEmpty(t, response.Message)
}

func TestSuggestTierAdjustment_PriceObjectionStepsDown(t *testing.T) {
	svc := newTestService(t)

	adjustment, err := svc.SuggestTierAdjustment("Elite", lexicon.ObjectionPrecioAlto)

	require.NoError(t, err)
	assert.Equal(t, "Elite", adjustment.CurrentTier)
	assert.Equal(t, "Pro", adjustment.SuggestedTier)
	assert.Greater(t, adjustment.DiscountPercent, 0.0)
	assert.Less(t, adjustment.AdjustedPrice, 4999.0)
	assert.NotEmpty(t, adjustment.Rationale)
}

func TestSuggestTierAdjustment_BottomTierDiscountsInstead(t *testing.T) {
	svc := newTestService(t)

	adjustment, err := svc.SuggestTierAdjustment("Básico", lexicon.ObjectionPrecioAlto)

	require.NoError(t, err)
	assert.Equal(t, "Básico", adjustment.SuggestedTier, "nothing below the bottom tier")
	assert.Less(t, adjustment.AdjustedPrice, 1499.0)
	assert.Greater(t, adjustment.DiscountPercent, 0.0)
}

func TestSuggestTierAdjustment_TimingKeepsTier(t *testing.T) {
	svc := newTestService(t)

	adjustment, err := svc.SuggestTierAdjustment("Pro", lexicon.ObjectionTiming)

	require.NoError(t, err)
	assert.Equal(t, "Pro", adjustment.SuggestedTier)
	assert.InDelta(t, 2999*0.9, adjustment.AdjustedPrice, 0.001)
	assert.InDelta(t, 10.0, adjustment.DiscountPercent, 0.001)
}

func TestSuggestTierAdjustment_EstimatedReturn(t *testing.T) {
	svc := newTestService(t)

	adjustment, err := svc.SuggestTierAdjustment("Pro", lexicon.ObjectionComparacion)

	require.NoError(t, err)
	assert.InDelta(t, adjustment.AdjustedPrice*lexicon.ROIMultiplier,
		adjustment.EstimatedReturn, 0.001)
}

func TestSuggestTierAdjustment_UnknownTier(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SuggestTierAdjustment("Diamante", lexicon.ObjectionPrecioAlto)

	assert.Error(t, err)
}
