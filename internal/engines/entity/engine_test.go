// internal/engines/entity/engine_test.go
package entity

import (
	"testing"

	"conversation-intelligence/internal/cache"
	"conversation-intelligence/internal/common/logger"
	"conversation-intelligence/internal/models"

	"github.com/stretchr/testify/assert"
)

func newTestEngine(t *testing.T) *Engine {
	return NewEngine(cache.New[Bag](0, 0), logger.NewTestLogger(t))
}

func TestExtractEntities(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name         string
		text         string
		expectedType string
		expected     string
	}{
		{
			name:         "person name",
			text:         "Mi nombre es Juan Pérez y quiero información",
			expectedType: TypePersonName,
			expected:     "Juan Pérez",
		},
		{
			name:         "email",
			text:         "Me pueden escribir a juan.perez@empresa.com por favor",
			expectedType: TypeEmail,
			expected:     "juan.perez@empresa.com",
		},
		{
			name:         "phone",
			text:         "Mi teléfono es 555-123-4567",
			expectedType: TypePhone,
			expected:     "555-123-4567",
		},
		{
			name:         "numeric date",
			text:         "Quisiera agendar para el 12/05/2024 si hay espacio",
			expectedType: TypeDate,
			expected:     "12/05/2024",
		},
		{
			name:         "written date",
			text:         "Nos vemos el 12 de mayo de 2024 entonces",
			expectedType: TypeDate,
			expected:     "12 de mayo de 2024",
		},
		{
			name:         "organization",
			text:         "Trabajo en Microsoft desde hace tres años",
			expectedType: TypeOrganization,
			expected:     "microsoft",
		},
		{
			name:         "location",
			text:         "Estoy en Guadalajara y busco opciones locales",
			expectedType: TypeLocation,
			expected:     "guadalajara",
		},
		{
			name:         "generic product",
			text:         "Me interesa el plan pro que vi en su página",
			expectedType: TypeGenericProduct,
			expected:     "plan pro",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bag := engine.ExtractEntities(tt.text)
			assert.Contains(t, bag[tt.expectedType], tt.expected)
		})
	}
}

func TestExtractEntities_EmptyText(t *testing.T) {
	engine := newTestEngine(t)

	bag := engine.ExtractEntities("")
	assert.Equal(t, 0, bag.Count())
}

func TestExtractEntities_Idempotent(t *testing.T) {
	engine := newTestEngine(t)
	text := "Soy María López, mi correo es maria@test.com y vivo en Monterrey"

	first := engine.ExtractEntities(text)
	second := engine.ExtractEntities(text)

	assert.Equal(t, first, second)
}

func TestExtractEntities_Deduplicates(t *testing.T) {
	engine := newTestEngine(t)

	bag := engine.ExtractEntities("Escríbeme a ana@test.com o a ana@test.com cuando puedas")
	assert.Equal(t, []string{"ana@test.com"}, bag[TypeEmail])
}

func TestUpdateConversationEntities_RoleGating(t *testing.T) {
	engine := newTestEngine(t)

	engine.UpdateConversationEntities("conv-1", "Soy Pedro Ramírez, pedro@test.com", models.RoleAssistant)
	assert.Equal(t, 0, engine.GetConversationEntities("conv-1").Count(),
		"assistant text must never contribute entities")

	engine.UpdateConversationEntities("conv-1", "Soy Pedro Ramírez, pedro@test.com", models.RoleUser)
	bag := engine.GetConversationEntities("conv-1")
	assert.Contains(t, bag[TypePersonName], "Pedro Ramírez")
	assert.Contains(t, bag[TypeEmail], "pedro@test.com")
}

func TestUpdateConversationEntities_MergePreservesOrder(t *testing.T) {
	engine := newTestEngine(t)

	engine.UpdateConversationEntities("conv-1", "Mi correo es uno@test.com", models.RoleUser)
	engine.UpdateConversationEntities("conv-1", "También uso dos@test.com y uno@test.com", models.RoleUser)

	bag := engine.GetConversationEntities("conv-1")
	assert.Equal(t, []string{"uno@test.com", "dos@test.com"}, bag[TypeEmail])
}

func TestGetConversationEntities_UnknownID(t *testing.T) {
	engine := newTestEngine(t)

	bag := engine.GetConversationEntities("never-seen")
	assert.NotNil(t, bag)
	assert.Equal(t, 0, bag.Count())
}

func TestExportClearImport_RoundTrip(t *testing.T) {
	engine := newTestEngine(t)

	engine.UpdateConversationEntities("conv-1",
		"Soy Laura Díaz, laura@test.com, tel 555-987-6543, estoy en Querétaro", models.RoleUser)
	before := engine.GetConversationEntities("conv-1")
	assert.Greater(t, before.Count(), 0)

	exported, err := engine.ExportJSON("conv-1")
	assert.NoError(t, err)

	engine.ClearConversationEntities("conv-1")
	assert.Equal(t, 0, engine.GetConversationEntities("conv-1").Count())

	assert.NoError(t, engine.ImportJSON("conv-1", exported))
	after := engine.GetConversationEntities("conv-1")
	assert.Equal(t, before, after)
}

func TestEntityContext(t *testing.T) {
	engine := newTestEngine(t)

	nameCtx := engine.EntityContext("Juan Pérez García", TypePersonName)
	assert.Equal(t, "Juan", nameCtx["first_name"])
	assert.Equal(t, "Pérez García", nameCtx["last_name"])

	emailCtx := engine.EntityContext("juan@empresa.com", TypeEmail)
	assert.Equal(t, "juan", emailCtx["local_part"])
	assert.Equal(t, "empresa.com", emailCtx["domain"])
}

func TestGetEntitySummary(t *testing.T) {
	engine := newTestEngine(t)

	empty := engine.GetEntitySummary("conv-1")
	assert.False(t, empty.HasEntities)
	assert.Equal(t, "No se han identificado entidades en la conversación.", empty.Summary)

	engine.UpdateConversationEntities("conv-1", "Soy Carla Ruiz, carla@test.com", models.RoleUser)
	summary := engine.GetEntitySummary("conv-1")
	assert.True(t, summary.HasEntities)
	assert.Contains(t, summary.Summary, "Nombre: Carla Ruiz")
	assert.Contains(t, summary.Summary, "Correo electrónico: carla@test.com")
}
