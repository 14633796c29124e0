// internal/engines/entity/engine.go
package entity

import (
	"encoding/json"
	"fmt"
	"strings"

	"conversation-intelligence/internal/cache"
	"conversation-intelligence/internal/common/logger"
	"conversation-intelligence/internal/common/metrics"
	"conversation-intelligence/internal/lexicon"
	"conversation-intelligence/internal/models"
)

const engineName = "entity"

// Engine extracts typed entities from text and owns the per-conversation
// entity bags.
type Engine struct {
	conversations *cache.Store[Bag]
	logger        logger.Logger
}

func NewEngine(conversations *cache.Store[Bag], log logger.Logger) *Engine {
	return &Engine{
		conversations: conversations,
		logger:        log.WithFields(map[string]interface{}{"engine": engineName}),
	}
}

// ExtractEntities runs every matcher over the text. Matches are deduplicated
// with insertion order preserved; identical input always yields an identical
// bag.
func (e *Engine) ExtractEntities(text string) Bag {
	metrics.AnalysesPerformed.WithLabelValues(engineName).Inc()

	bag := make(Bag)
	if strings.TrimSpace(text) == "" {
		return bag
	}
	normalized := strings.ToLower(text)

	for _, match := range lexicon.NamePattern.FindAllString(text, -1) {
		name := trimNameLead(match)
		if name != "" && !isNameStopword(name) {
			bag.Add(TypePersonName, name)
		}
	}

	for _, match := range lexicon.EmailPattern.FindAllString(text, -1) {
		bag.Add(TypeEmail, match)
	}

	for _, match := range lexicon.PhonePattern.FindAllString(text, -1) {
		if digitCount(match) >= 7 {
			bag.Add(TypePhone, strings.TrimSpace(match))
		}
	}

	for _, pattern := range lexicon.DatePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			bag.Add(TypeDate, match)
		}
	}

	for _, org := range lexicon.OrganizationGazetteer {
		if strings.Contains(normalized, org) {
			bag.Add(TypeOrganization, org)
		}
	}

	for _, location := range lexicon.LocationGazetteer {
		if strings.Contains(normalized, location) {
			bag.Add(TypeLocation, location)
		}
	}

	for _, product := range lexicon.ProductKeywords {
		if strings.Contains(normalized, product) {
			bag.Add(TypeGenericProduct, product)
		}
	}

	return bag
}

// UpdateConversationEntities merges entities extracted from a user message
// into the conversation's bag. Assistant text never contributes.
func (e *Engine) UpdateConversationEntities(conversationID, text, role string) {
	if role != models.RoleUser {
		return
	}

	found := e.ExtractEntities(text)
	if found.Count() == 0 {
		return
	}

	bag, ok := e.conversations.Get(conversationID)
	if !ok {
		metrics.CacheMisses.WithLabelValues(engineName).Inc()
		bag = make(Bag)
	} else {
		metrics.CacheHits.WithLabelValues(engineName).Inc()
	}

	bag.Merge(found)
	e.conversations.Put(conversationID, bag)
}

// GetConversationEntities returns a copy of the conversation's bag; an
// untouched id yields an empty bag, not an error.
func (e *Engine) GetConversationEntities(conversationID string) Bag {
	bag, ok := e.conversations.Get(conversationID)
	if !ok {
		return make(Bag)
	}
	return bag.Copy()
}

// ClearConversationEntities resets the conversation's bag.
func (e *Engine) ClearConversationEntities(conversationID string) {
	e.conversations.Delete(conversationID)
}

// EntityContext decomposes a single entity value by type: names split into
// first/last, emails into local part and domain.
func (e *Engine) EntityContext(value, entityType string) map[string]string {
	ctx := map[string]string{"value": value, "type": entityType}

	switch entityType {
	case TypePersonName:
		parts := strings.Fields(value)
		if len(parts) > 0 {
			ctx["first_name"] = parts[0]
		}
		if len(parts) > 1 {
			ctx["last_name"] = strings.Join(parts[1:], " ")
		}
	case TypeEmail:
		if at := strings.Index(value, "@"); at > 0 {
			ctx["local_part"] = value[:at]
			ctx["domain"] = value[at+1:]
		}
	}

	return ctx
}

// ExportJSON serializes the conversation's bag. Importing the result into a
// cleared conversation restores identical content.
func (e *Engine) ExportJSON(conversationID string) ([]byte, error) {
	bag := e.GetConversationEntities(conversationID)

	// Ordered export: types in canonical order, values in first-seen order.
	ordered := make([]exportEntry, 0, len(bag))
	for _, entityType := range TypeOrder {
		if values, ok := bag[entityType]; ok {
			ordered = append(ordered, exportEntry{Type: entityType, Values: values})
		}
	}
	return json.Marshal(ordered)
}

// ImportJSON reconstructs a conversation's bag from an export.
func (e *Engine) ImportJSON(conversationID string, data []byte) error {
	var ordered []exportEntry
	if err := json.Unmarshal(data, &ordered); err != nil {
		return fmt.Errorf("decode entity export: %w", err)
	}

	bag := make(Bag)
	for _, entry := range ordered {
		for _, value := range entry.Values {
			bag.Add(entry.Type, value)
		}
	}
	e.conversations.Put(conversationID, bag)
	return nil
}

type exportEntry struct {
	Type   string   `json:"type"`
	Values []string `json:"values"`
}

// GetEntitySummary builds the human-readable summary of a conversation's
// entities with Spanish labels.
func (e *Engine) GetEntitySummary(conversationID string) Summary {
	bag := e.GetConversationEntities(conversationID)
	if bag.Count() == 0 {
		return Summary{
			Summary:     "No se han identificado entidades en la conversación.",
			HasEntities: false,
		}
	}

	var lines []string
	for _, entityType := range TypeOrder {
		if values, ok := bag[entityType]; ok && len(values) > 0 {
			lines = append(lines, fmt.Sprintf("%s: %s", typeLabels[entityType], strings.Join(values, ", ")))
		}
	}

	return Summary{Summary: strings.Join(lines, "\n"), HasEntities: true}
}

// trimNameLead drops capitalized sentence-position words from the front of a
// name match; fewer than two remaining words is not a name.
func trimNameLead(match string) string {
	words := strings.Fields(match)
	for len(words) > 0 {
		lead := false
		for _, stopword := range lexicon.NameLeadingStopwords {
			if words[0] == stopword {
				lead = true
				break
			}
		}
		if !lead {
			break
		}
		words = words[1:]
	}
	if len(words) < 2 {
		return ""
	}
	return strings.Join(words, " ")
}

func isNameStopword(match string) bool {
	for _, stopword := range lexicon.NameStopwords {
		if strings.EqualFold(match, stopword) {
			return true
		}
	}
	return false
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
