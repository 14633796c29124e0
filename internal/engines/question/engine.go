// internal/engines/question/engine.go
package question

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"

	"conversation-intelligence/internal/cache"
	"conversation-intelligence/internal/common/logger"
	"conversation-intelligence/internal/common/metrics"
	"conversation-intelligence/internal/lexicon"
	"conversation-intelligence/internal/models"
)

const engineName = "question"

// Word-count cutoffs for complexity classes.
const (
	lowWordCount  = 5
	highWordCount = 15
)

var (
	// markedQuestion captures "¿...?" spans and bare "...?" sentences.
	markedQuestion   = regexp.MustCompile(`(?:¿[^?]*\?)|(?:[^.!?¿\n]+\?)`)
	sentenceBoundary = regexp.MustCompile(`[.!?\n]+`)
)

// Engine detects and classifies questions and owns the per-conversation
// question statistics.
type Engine struct {
	conversations *cache.Store[ConversationAnalysis]
	logger        logger.Logger
}

func NewEngine(conversations *cache.Store[ConversationAnalysis], log logger.Logger) *Engine {
	return &Engine{
		conversations: conversations,
		logger:        log.WithFields(map[string]interface{}{"engine": engineName}),
	}
}

// IsQuestion reports whether text is question-marked or starts a clause with
// an interrogative marker.
func (e *Engine) IsQuestion(text string) bool {
	if strings.ContainsAny(text, "?¿") {
		return true
	}
	normalized := strings.ToLower(text)
	for _, marker := range lexicon.InterrogativeMarkers {
		if hasWordPrefixedPhrase(normalized, marker) {
			return true
		}
	}
	return false
}

// ExtractQuestions returns the question substrings of a text: exact spans for
// punctuation-marked questions, and for marker-based ones the clause from the
// marker to the next sentence boundary.
func (e *Engine) ExtractQuestions(text string) []string {
	var questions []string

	remainder := markedQuestion.ReplaceAllStringFunc(text, func(match string) string {
		questions = append(questions, strings.TrimSpace(match))
		return ""
	})

	for _, sentence := range sentenceBoundary.Split(remainder, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		normalized := strings.ToLower(sentence)
		if idx := firstMarkerIndex(normalized); idx >= 0 {
			questions = append(questions, strings.TrimSpace(sentence[idx:]))
		}
	}

	return questions
}

// ClassifyQuestionType scores each of the eight question types independently
// by marker matches. Scores are non-exclusive.
func (e *Engine) ClassifyQuestionType(q string) TypeScores {
	normalized := strings.ToLower(q)

	scores := make(TypeScores)
	for _, questionType := range lexicon.QuestionTypeOrder {
		matches := 0
		for _, marker := range lexicon.QuestionTypeMarkers[questionType] {
			if strings.Contains(normalized, marker) {
				matches++
			}
		}
		if matches > 0 {
			scores[questionType] = math.Min(1.0, 0.5*float64(matches))
		}
	}
	return scores
}

// DetermineComplexity classifies by word count, upgraded one level when
// complexity-indicating phrases are present.
func (e *Engine) DetermineComplexity(q string) Complexity {
	words := countWords(q)

	class := ComplexityMedium
	switch {
	case words < lowWordCount:
		class = ComplexityLow
	case words > highWordCount:
		class = ComplexityHigh
	}

	normalized := strings.ToLower(q)
	for _, indicator := range lexicon.ComplexityIndicators {
		// Boundary match, so "api" does not fire inside words like "rapido".
		if hasWordPrefixedPhrase(normalized, indicator) {
			class = upgrade(class)
			break
		}
	}

	return Complexity{Class: class, WordCount: words}
}

// DetermineIntent maps the winning type to its intent label. Confidence grows
// with the winning score and its margin over the runner-up.
func (e *Engine) DetermineIntent(scores TypeScores) Intent {
	winner, winnerScore, runnerUp := topTwo(scores)
	if winner == "" {
		return Intent{Label: "informacion", Confidence: 0.2}
	}

	margin := winnerScore - runnerUp
	confidence := math.Min(1.0, 0.4+0.4*winnerScore+0.2*margin)

	return Intent{Label: lexicon.QuestionTypeIntents[winner], Confidence: confidence}
}

// AnalyzeQuestion classifies one candidate question. Non-questions
// short-circuit with a message instead of an error.
func (e *Engine) AnalyzeQuestion(text string) Analysis {
	metrics.AnalysesPerformed.WithLabelValues(engineName).Inc()

	if !e.IsQuestion(text) {
		return Analysis{
			Text:       text,
			IsQuestion: false,
			Message:    "El texto no contiene una pregunta.",
		}
	}

	scores := e.ClassifyQuestionType(text)
	winner, _, _ := topTwo(scores)

	return Analysis{
		Text:            text,
		IsQuestion:      true,
		Types:           scores,
		PredominantType: winner,
		Complexity:      e.DetermineComplexity(text),
		Intent:          e.DetermineIntent(scores),
	}
}

// AnalyzeText extracts and analyzes every question in a text.
func (e *Engine) AnalyzeText(text string) TextAnalysis {
	extracted := e.ExtractQuestions(text)
	if len(extracted) == 0 {
		return TextAnalysis{
			HasQuestions: false,
			Message:      "No se encontraron preguntas en el texto.",
		}
	}

	analyses := make([]Analysis, 0, len(extracted))
	for _, q := range extracted {
		analyses = append(analyses, e.AnalyzeQuestion(q))
	}
	return TextAnalysis{Questions: analyses, HasQuestions: true}
}

// AnalyzeConversation aggregates question statistics over the conversation's
// user messages and caches the result under the conversation id.
func (e *Engine) AnalyzeConversation(msgs []models.Message, conversationID string) ConversationAnalysis {
	var analyses []Analysis
	for _, msg := range models.UserMessages(msgs) {
		for _, q := range e.ExtractQuestions(msg.Content) {
			analyses = append(analyses, e.AnalyzeQuestion(q))
		}
	}

	if len(analyses) == 0 {
		result := ConversationAnalysis{
			TypeDistribution: map[string]int{},
			HasQuestions:     false,
			Message:          "La conversación no contiene preguntas del usuario.",
		}
		e.conversations.Put(conversationID, result)
		return result
	}

	distribution := make(map[string]int)
	intentCounts := make(map[string]int)
	complexityCounts := make(map[string]int)
	for _, analysis := range analyses {
		if analysis.PredominantType != "" {
			distribution[analysis.PredominantType]++
		}
		intentCounts[analysis.Intent.Label]++
		complexityCounts[analysis.Complexity.Class]++
	}

	result := ConversationAnalysis{
		QuestionCount:         len(analyses),
		TypeDistribution:      distribution,
		PredominantIntent:     modeOf(intentCounts),
		PredominantComplexity: modeOf(complexityCounts),
		HasQuestions:          true,
	}
	e.conversations.Put(conversationID, result)
	return result
}

// GetConversationQuestions returns the cached aggregate for a conversation;
// an untouched id yields an empty record.
func (e *Engine) GetConversationQuestions(conversationID string) ConversationAnalysis {
	result, ok := e.conversations.Get(conversationID)
	if !ok {
		return ConversationAnalysis{TypeDistribution: map[string]int{}}
	}
	return result
}

// ClearConversationQuestions resets the cached aggregate.
func (e *Engine) ClearConversationQuestions(conversationID string) {
	e.conversations.Delete(conversationID)
}

// GetQuestionSummary builds the textual summary for a conversation.
func (e *Engine) GetQuestionSummary(conversationID string) Summary {
	result, ok := e.conversations.Get(conversationID)
	if !ok || !result.HasQuestions {
		return Summary{
			Summary:      "No se han identificado preguntas en la conversación.",
			HasQuestions: false,
		}
	}

	return Summary{
		Summary: fmt.Sprintf(
			"El usuario ha hecho %d pregunta(s), principalmente de intención %s y complejidad %s.",
			result.QuestionCount, result.PredominantIntent, result.PredominantComplexity),
		HasQuestions: true,
	}
}

// topTwo returns the best-scoring type and the runner-up score, ties broken
// by canonical type order.
func topTwo(scores TypeScores) (winner string, winnerScore, runnerUp float64) {
	for _, questionType := range lexicon.QuestionTypeOrder {
		score, ok := scores[questionType]
		if !ok {
			continue
		}
		if score > winnerScore {
			runnerUp = winnerScore
			winner, winnerScore = questionType, score
		} else if score > runnerUp {
			runnerUp = score
		}
	}
	return winner, winnerScore, runnerUp
}

func modeOf(counts map[string]int) string {
	best, bestCount := "", -1
	for value, count := range counts {
		if count > bestCount || (count == bestCount && value < best) {
			best, bestCount = value, count
		}
	}
	return best
}

func upgrade(class string) string {
	switch class {
	case ComplexityLow:
		return ComplexityMedium
	case ComplexityMedium:
		return ComplexityHigh
	default:
		return class
	}
}

// firstMarkerIndex finds the byte offset of the earliest interrogative marker
// occurring at a word boundary, or -1.
func firstMarkerIndex(normalized string) int {
	best := -1
	for _, marker := range lexicon.InterrogativeMarkers {
		idx := wordPhraseIndex(normalized, marker)
		if idx >= 0 && (best < 0 || idx < best) {
			best = idx
		}
	}
	return best
}

func hasWordPrefixedPhrase(normalized, phrase string) bool {
	return wordPhraseIndex(normalized, phrase) >= 0
}

// wordPhraseIndex finds phrase in normalized text on word boundaries.
func wordPhraseIndex(normalized, phrase string) int {
	offset := 0
	for {
		idx := strings.Index(normalized[offset:], phrase)
		if idx < 0 {
			return -1
		}
		abs := offset + idx
		beforeOK := abs == 0 || isBoundary(normalized[abs-1])
		end := abs + len(phrase)
		afterOK := end >= len(normalized) || isBoundary(normalized[end])
		if beforeOK && afterOK {
			return abs
		}
		offset = abs + 1
	}
}

func isBoundary(b byte) bool {
	switch b {
	case ' ', ',', ';', ':', '(', ')', '.', '?', '!', '"', '\'':
		return true
	}
	// Multi-byte punctuation such as inverted marks also ends a word.
	return b >= 0x80
}

func countWords(q string) int {
	return len(strings.FieldsFunc(q, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}))
}
