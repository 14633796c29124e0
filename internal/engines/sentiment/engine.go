// internal/engines/sentiment/engine.go
package sentiment

import (
	"math"
	"strings"
	"unicode"

	"conversation-intelligence/internal/common/config"
	"conversation-intelligence/internal/common/logger"
	"conversation-intelligence/internal/common/metrics"
	"conversation-intelligence/internal/lexicon"
	"conversation-intelligence/internal/models"
)

const engineName = "sentiment"

// Engine scores free text for polarity and named emotions. Stateless; safe
// for concurrent use.
type Engine struct {
	cfg    config.NLPConfig
	logger logger.Logger
}

func NewEngine(cfg config.NLPConfig, log logger.Logger) *Engine {
	return &Engine{
		cfg:    cfg,
		logger: log.WithFields(map[string]interface{}{"engine": engineName}),
	}
}

// AnalyzeSentiment counts lexicon matches weighted by adjacent intensifiers
// and negators. Empty or unmatched text yields a neutral zero result, never
// an error.
func (e *Engine) AnalyzeSentiment(text string) Result {
	metrics.AnalysesPerformed.WithLabelValues(engineName).Inc()

	tokens := tokenize(text)
	if len(tokens) == 0 {
		return Result{Sentiment: SentimentNeutral}
	}

	var posWeight, negWeight float64
	var posCount, negCount int

	match := func(i int) (positive bool, length int, ok bool) {
		if l := phraseMatch(tokens, i, lexicon.PositiveWords); l > 0 {
			return true, l, true
		}
		if l := phraseMatch(tokens, i, lexicon.NegativeWords); l > 0 {
			return false, l, true
		}
		return false, 0, false
	}

	for i := 0; i < len(tokens); {
		positive, length, ok := match(i)
		if !ok {
			i++
			continue
		}

		weight := 1.0
		if i > 0 {
			if factor, found := lexicon.Intensifiers[tokens[i-1]]; found {
				weight *= factor
			}
		}
		if negatedAt(tokens, i) {
			positive = !positive
		}

		if positive {
			posWeight += weight
			posCount++
		} else {
			negWeight += weight
			negCount++
		}
		i += length
	}

	total := posWeight + negWeight
	score := (posWeight - negWeight) / math.Max(1, total)

	return Result{
		Sentiment:     e.classify(score),
		Score:         score,
		PositiveCount: posCount,
		NegativeCount: negCount,
		Intensity:     math.Abs(score) * math.Log1p(float64(posCount+negCount)),
	}
}

// DetectEmotions scans each emotion's marker set independently. The score is
// a match-density value in [0,1]; emotions at or below the support threshold
// are dropped.
func (e *Engine) DetectEmotions(text string) EmotionScores {
	normalized := strings.ToLower(text)
	scores := make(EmotionScores)

	for emotion, markers := range lexicon.EmotionMarkers {
		matches := 0
		for _, marker := range markers {
			matches += strings.Count(normalized, marker)
		}
		if matches == 0 {
			continue
		}
		score := float64(matches) / (float64(matches) + 2.0)
		if score > e.cfg.EmotionMinSupport {
			scores[emotion] = score
		}
	}
	return scores
}

// AnalyzeSentimentChange compares the first and last user-authored message.
// Fewer than two user messages means a stable trend with zero delta.
func (e *Engine) AnalyzeSentimentChange(msgs []models.Message) TrendResult {
	userMsgs := models.UserMessages(msgs)
	if len(userMsgs) == 0 {
		return TrendResult{Trend: TrendStable, InitialSentiment: SentimentNeutral, FinalSentiment: SentimentNeutral}
	}

	initial := e.AnalyzeSentiment(userMsgs[0].Content)
	final := initial
	if len(userMsgs) > 1 {
		final = e.AnalyzeSentiment(userMsgs[len(userMsgs)-1].Content)
	}

	delta := final.Score - initial.Score
	trend := TrendStable
	if delta > e.cfg.TrendThreshold {
		trend = TrendImproving
	} else if delta < -e.cfg.TrendThreshold {
		trend = TrendWorsening
	}

	return TrendResult{
		Trend:            trend,
		Delta:            delta,
		InitialSentiment: initial.Sentiment,
		FinalSentiment:   final.Sentiment,
	}
}

// DetectUrgency combines urgency phrases and exclamation density.
func (e *Engine) DetectUrgency(text string) SignalResult {
	normalized := strings.ToLower(text)

	var signals []string
	level := 0.0
	for _, signal := range lexicon.UrgencySignals {
		if strings.Contains(normalized, signal) {
			signals = append(signals, signal)
			level += 0.3
		}
	}

	if exclamations := strings.Count(text, "!"); exclamations >= 2 {
		signals = append(signals, "exclamaciones múltiples")
		level += 0.15 * float64(exclamations)
	}
	level = math.Min(level, 1.0)

	return SignalResult{Class: classifyLevel(level), Level: level, Signals: signals}
}

// DetectIndecision scans hedging phrases and contrastive connectors.
func (e *Engine) DetectIndecision(text string) SignalResult {
	normalized := strings.ToLower(text)

	var signals []string
	level := 0.0
	for _, signal := range lexicon.IndecisionSignals {
		if containsPhrase(normalized, signal) {
			signals = append(signals, signal)
			level += 0.25
		}
	}
	level = math.Min(level, 1.0)

	return SignalResult{Class: classifyLevel(level), Level: level, Signals: signals}
}

// ComprehensiveAnalysis composes sentiment, emotions, urgency and indecision
// for one text. The dominant emotion is always a key of the emotions map.
func (e *Engine) ComprehensiveAnalysis(text string) Comprehensive {
	emotions := e.DetectEmotions(text)

	var dominant *DominantEmotion
	for name, score := range emotions {
		if dominant == nil || score > dominant.Score ||
			(score == dominant.Score && name < dominant.Name) {
			dominant = &DominantEmotion{Name: name, Score: score}
		}
	}

	return Comprehensive{
		Sentiment:       e.AnalyzeSentiment(text),
		Emotions:        emotions,
		DominantEmotion: dominant,
		Urgency:         e.DetectUrgency(text),
		Indecision:      e.DetectIndecision(text),
	}
}

// AnalyzeConversation scores the concatenated user messages and the
// first-to-last trend.
func (e *Engine) AnalyzeConversation(msgs []models.Message) ConversationResult {
	userMsgs := models.UserMessages(msgs)

	return ConversationResult{
		Overall:      e.AnalyzeSentiment(models.JoinContents(userMsgs)),
		Trend:        e.AnalyzeSentimentChange(msgs),
		MessageCount: len(userMsgs),
	}
}

func (e *Engine) classify(score float64) string {
	switch {
	case score > e.cfg.SentimentThreshold:
		return SentimentPositive
	case score < -e.cfg.SentimentThreshold:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

func classifyLevel(level float64) string {
	switch {
	case level > 0.5:
		return LevelHigh
	case level < 0.2:
		return LevelLow
	default:
		return LevelMedium
	}
}

// negatedAt reports whether one of the two tokens before index i is a negator.
func negatedAt(tokens []string, i int) bool {
	for j := i - 2; j < i; j++ {
		if j < 0 {
			continue
		}
		for _, neg := range lexicon.Negators {
			if tokens[j] == neg {
				return true
			}
		}
	}
	return false
}

// phraseMatch reports the token length of the first lexicon phrase starting
// at tokens[i], or 0.
func phraseMatch(tokens []string, i int, phrases []string) int {
	for _, phrase := range phrases {
		parts := strings.Fields(phrase)
		if i+len(parts) > len(tokens) {
			continue
		}
		matched := true
		for j, part := range parts {
			if tokens[i+j] != part {
				matched = false
				break
			}
		}
		if matched {
			return len(parts)
		}
	}
	return 0
}

// containsPhrase matches a phrase on word boundaries within normalized text.
func containsPhrase(normalized, phrase string) bool {
	idx := strings.Index(normalized, phrase)
	for idx >= 0 {
		beforeOK := idx == 0 || !isWordChar(rune(normalized[idx-1]))
		end := idx + len(phrase)
		afterOK := end >= len(normalized) || !isWordChar(rune(normalized[end]))
		if beforeOK && afterOK {
			return true
		}
		next := strings.Index(normalized[idx+1:], phrase)
		if next < 0 {
			return false
		}
		idx += 1 + next
	}
	return false
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// tokenize lowercases and splits on non-letter runes, keeping accented
// characters intact.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
