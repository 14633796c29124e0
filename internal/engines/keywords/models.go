// internal/engines/keywords/models.go
package keywords

// TextAnalysis is the per-text keyword record.
type TextAnalysis struct {
	Keywords    map[string]float64 `json:"keywords"`
	Ngrams      []string           `json:"ngrams"`
	Categories  map[string]int     `json:"categories"`
	HasKeywords bool               `json:"hasKeywords"`
	Message     string             `json:"message,omitempty"`
}

// ConversationAnalysis is the accumulated keyword profile of a conversation's
// user messages.
type ConversationAnalysis struct {
	Keywords           map[string]float64 `json:"keywords"`
	TopNgrams          []string           `json:"topNgrams"`
	DominantCategories []string           `json:"dominantCategories"`
	HasKeywords        bool               `json:"hasKeywords"`
	Message            string             `json:"message,omitempty"`
}

// Summary is the human-readable keyword summary.
type Summary struct {
	Summary     string `json:"summary"`
	HasKeywords bool   `json:"hasKeywords"`
}

// state is the engine's per-conversation accumulator. Keyword scores keep the
// running max across messages; ngram and category counts are additive.
type state struct {
	scores      map[string]float64
	scoreOrder  []string
	ngramCounts map[string]int
	ngramOrder  []string
	categories  map[string]int
}

func newState() *state {
	return &state{
		scores:      make(map[string]float64),
		ngramCounts: make(map[string]int),
		categories:  make(map[string]int),
	}
}
