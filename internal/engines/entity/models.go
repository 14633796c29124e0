// internal/engines/entity/models.go
package entity

// Entity types.
const (
	TypePersonName     = "person_name"
	TypeEmail          = "email"
	TypePhone          = "phone"
	TypeDate           = "date"
	TypeOrganization   = "organization"
	TypeLocation       = "location"
	TypeGenericProduct = "generic_product"
)

// TypeOrder fixes iteration order for summaries and exports.
var TypeOrder = []string{
	TypePersonName, TypeEmail, TypePhone, TypeDate,
	TypeOrganization, TypeLocation, TypeGenericProduct,
}

// typeLabels are the human-readable Spanish labels used in summaries.
var typeLabels = map[string]string{
	TypePersonName:     "Nombre",
	TypeEmail:          "Correo electrónico",
	TypePhone:          "Teléfono",
	TypeDate:           "Fecha",
	TypeOrganization:   "Organización",
	TypeLocation:       "Ubicación",
	TypeGenericProduct: "Producto",
}

// Bag maps entity type to its ordered-unique extracted values. One Bag per
// conversation; it only grows, except on explicit clear.
type Bag map[string][]string

// Add appends a value under a type unless already present, preserving
// first-seen order.
func (b Bag) Add(entityType, value string) {
	for _, existing := range b[entityType] {
		if existing == value {
			return
		}
	}
	b[entityType] = append(b[entityType], value)
}

// Merge folds another bag in, union by type, first-seen order kept.
func (b Bag) Merge(other Bag) {
	for _, entityType := range TypeOrder {
		for _, value := range other[entityType] {
			b.Add(entityType, value)
		}
	}
}

// Count returns the total number of values across all types.
func (b Bag) Count() int {
	n := 0
	for _, values := range b {
		n += len(values)
	}
	return n
}

// Copy returns a deep copy so cached bags are never aliased by callers.
func (b Bag) Copy() Bag {
	out := make(Bag, len(b))
	for entityType, values := range b {
		out[entityType] = append([]string(nil), values...)
	}
	return out
}

// Summary is the human-readable description of a conversation's entities.
type Summary struct {
	Summary     string `json:"summary"`
	HasEntities bool   `json:"hasEntities"`
}
