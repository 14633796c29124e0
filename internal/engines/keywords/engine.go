// internal/engines/keywords/engine.go
package keywords

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"conversation-intelligence/internal/cache"
	"conversation-intelligence/internal/common/logger"
	"conversation-intelligence/internal/common/metrics"
	"conversation-intelligence/internal/lexicon"
	"conversation-intelligence/internal/models"
)

const engineName = "keywords"

// DefaultNgramSize and DefaultNgramMinFreq calibrate conversation-level
// n-gram accumulation.
const (
	DefaultNgramSize    = 2
	DefaultNgramMinFreq = 1
)

// Engine extracts salient keywords and n-grams and owns the per-conversation
// keyword profiles.
type Engine struct {
	conversations *cache.Store[*state]
	logger        logger.Logger
}

func NewEngine(conversations *cache.Store[*state], log logger.Logger) *Engine {
	return &Engine{
		conversations: conversations,
		logger:        log.WithFields(map[string]interface{}{"engine": engineName}),
	}
}

// NewStore builds the cache store the engine expects; the state type is
// package-private.
func NewStore(maxSize int) *cache.Store[*state] {
	return cache.New[*state](maxSize, 0)
}

// PreprocessText lowercases, strips punctuation and digit-only tokens, and
// collapses whitespace.
func (e *Engine) PreprocessText(text string) string {
	return strings.Join(normalizeTokens(text), " ")
}

// ExtractKeywords returns the stopword-filtered, deduplicated tokens in
// first-seen order.
func (e *Engine) ExtractKeywords(text string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, token := range contentTokens(text) {
		if !seen[token] {
			seen[token] = true
			out = append(out, token)
		}
	}
	return out
}

// ExtractNgrams builds n-grams over the stopword-filtered token stream and
// keeps those occurring at least minFreq times, ranked by frequency with ties
// broken by first occurrence.
func (e *Engine) ExtractNgrams(text string, n, minFreq int) []string {
	if n < 1 {
		return nil
	}
	tokens := contentTokens(text)

	counts := make(map[string]int)
	var order []string
	for i := 0; i+n <= len(tokens); i++ {
		gram := strings.Join(tokens[i:i+n], " ")
		if counts[gram] == 0 {
			order = append(order, gram)
		}
		counts[gram]++
	}

	var kept []string
	for _, gram := range order {
		if counts[gram] >= minFreq {
			kept = append(kept, gram)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return counts[kept[i]] > counts[kept[j]]
	})
	return kept
}

// ClassifyKeywords maps each keyword onto its first matching category.
// Keywords matching no category are omitted.
func (e *Engine) ClassifyKeywords(kws []string) map[string]string {
	out := make(map[string]string)
	for _, keyword := range kws {
		if category, ok := categoryOf(keyword); ok {
			out[keyword] = category
		}
	}
	return out
}

// KeywordScores assigns each keyword a term-frequency score normalized by the
// most frequent keyword, so every score is in (0,1].
func (e *Engine) KeywordScores(text string) map[string]float64 {
	metrics.AnalysesPerformed.WithLabelValues(engineName).Inc()

	counts := make(map[string]int)
	maxCount := 0
	for _, token := range contentTokens(text) {
		counts[token]++
		if counts[token] > maxCount {
			maxCount = counts[token]
		}
	}

	scores := make(map[string]float64, len(counts))
	for keyword, count := range counts {
		scores[keyword] = float64(count) / float64(maxCount)
	}
	return scores
}

// UpdateConversationKeywords folds a user message into the conversation's
// profile. Assistant text never contributes. Keyword scores keep the running
// max; n-gram and category counts accumulate.
func (e *Engine) UpdateConversationKeywords(conversationID, text, role string) {
	if role != models.RoleUser {
		return
	}

	scores := e.KeywordScores(text)
	if len(scores) == 0 {
		return
	}

	st, ok := e.conversations.Get(conversationID)
	if !ok {
		metrics.CacheMisses.WithLabelValues(engineName).Inc()
		st = newState()
	} else {
		metrics.CacheHits.WithLabelValues(engineName).Inc()
	}

	for _, keyword := range e.ExtractKeywords(text) {
		score := scores[keyword]
		if _, seen := st.scores[keyword]; !seen {
			st.scoreOrder = append(st.scoreOrder, keyword)
			st.scores[keyword] = score
		} else if score > st.scores[keyword] {
			st.scores[keyword] = score
		}
	}

	for _, gram := range e.ExtractNgrams(text, DefaultNgramSize, DefaultNgramMinFreq) {
		if st.ngramCounts[gram] == 0 {
			st.ngramOrder = append(st.ngramOrder, gram)
		}
		st.ngramCounts[gram]++
	}

	for keyword := range scores {
		if category, ok := categoryOf(keyword); ok {
			st.categories[category]++
		}
	}

	e.conversations.Put(conversationID, st)
}

// GetTopKeywords returns the n highest-scoring conversation keywords, ties
// broken by first-seen order.
func (e *Engine) GetTopKeywords(conversationID string, n int) []string {
	st, ok := e.conversations.Get(conversationID)
	if !ok {
		return nil
	}

	ranked := append([]string(nil), st.scoreOrder...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return st.scores[ranked[i]] > st.scores[ranked[j]]
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// GetTopNgrams returns the n most frequent conversation n-grams.
func (e *Engine) GetTopNgrams(conversationID string, n int) []string {
	st, ok := e.conversations.Get(conversationID)
	if !ok {
		return nil
	}

	ranked := append([]string(nil), st.ngramOrder...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return st.ngramCounts[ranked[i]] > st.ngramCounts[ranked[j]]
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// GetDominantCategories returns the conversation's categories ordered by
// count, ties broken by canonical category order.
func (e *Engine) GetDominantCategories(conversationID string) []string {
	st, ok := e.conversations.Get(conversationID)
	if !ok {
		return nil
	}

	var out []string
	for _, category := range lexicon.KeywordCategoryOrder {
		if st.categories[category] > 0 {
			out = append(out, category)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return st.categories[out[i]] > st.categories[out[j]]
	})
	return out
}

// ClearConversationKeywords resets the conversation's profile.
func (e *Engine) ClearConversationKeywords(conversationID string) {
	e.conversations.Delete(conversationID)
}

// AnalyzeText composes scores, bigrams and category counts for one text.
func (e *Engine) AnalyzeText(text string) TextAnalysis {
	scores := e.KeywordScores(text)
	if len(scores) == 0 {
		return TextAnalysis{
			Keywords:    map[string]float64{},
			Categories:  map[string]int{},
			HasKeywords: false,
			Message:     "No se encontraron palabras clave en el texto.",
		}
	}

	categories := make(map[string]int)
	for keyword := range scores {
		if category, ok := categoryOf(keyword); ok {
			categories[category]++
		}
	}

	return TextAnalysis{
		Keywords:    scores,
		Ngrams:      e.ExtractNgrams(text, DefaultNgramSize, DefaultNgramMinFreq),
		Categories:  categories,
		HasKeywords: true,
	}
}

// AnalyzeConversation accumulates all user messages under the conversation id
// and reports the aggregated profile.
func (e *Engine) AnalyzeConversation(msgs []models.Message, conversationID string) ConversationAnalysis {
	userMsgs := models.UserMessages(msgs)
	if len(userMsgs) == 0 {
		return ConversationAnalysis{
			Keywords:    map[string]float64{},
			HasKeywords: false,
			Message:     "La conversación no tiene mensajes del usuario.",
		}
	}

	// Re-analysis replaces the accumulated profile; last write wins.
	e.conversations.Delete(conversationID)
	for _, msg := range userMsgs {
		e.UpdateConversationKeywords(conversationID, msg.Content, models.RoleUser)
	}

	st, ok := e.conversations.Get(conversationID)
	if !ok || len(st.scores) == 0 {
		return ConversationAnalysis{
			Keywords:    map[string]float64{},
			HasKeywords: false,
			Message:     "No se encontraron palabras clave en la conversación.",
		}
	}

	scoresCopy := make(map[string]float64, len(st.scores))
	for keyword, score := range st.scores {
		scoresCopy[keyword] = score
	}

	return ConversationAnalysis{
		Keywords:           scoresCopy,
		TopNgrams:          e.GetTopNgrams(conversationID, 5),
		DominantCategories: e.GetDominantCategories(conversationID),
		HasKeywords:        true,
	}
}

// GetKeywordSummary builds the textual summary for a conversation.
func (e *Engine) GetKeywordSummary(conversationID string) Summary {
	top := e.GetTopKeywords(conversationID, 5)
	if len(top) == 0 {
		return Summary{
			Summary:     "No se han identificado palabras clave en la conversación.",
			HasKeywords: false,
		}
	}

	parts := []string{fmt.Sprintf("Temas principales: %s.", strings.Join(top, ", "))}
	if categories := e.GetDominantCategories(conversationID); len(categories) > 0 {
		parts = append(parts, fmt.Sprintf("Categorías dominantes: %s.", strings.Join(categories, ", ")))
	}
	return Summary{Summary: strings.Join(parts, " "), HasKeywords: true}
}

// categoryOf finds the first category whose table contains the keyword.
func categoryOf(keyword string) (string, bool) {
	for _, category := range lexicon.KeywordCategoryOrder {
		for _, entry := range lexicon.KeywordCategories[category] {
			if keyword == entry {
				return category, true
			}
		}
	}
	return "", false
}

// normalizeTokens lowercases and splits on anything that is not a letter,
// dropping digit-only tokens.
func normalizeTokens(text string) []string {
	raw := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var out []string
	for _, token := range raw {
		if !isDigits(token) {
			out = append(out, token)
		}
	}
	return out
}

// contentTokens filters normalized tokens through the stopword list.
func contentTokens(text string) []string {
	var out []string
	for _, token := range normalizeTokens(text) {
		if !lexicon.Stopwords[token] && len(token) > 2 {
			out = append(out, token)
		}
	}
	return out
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
