package models

import (
	"encoding/json"
	"time"
)

// Message roles. Assistant messages never contribute to conversation-level
// entity or keyword state.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single role-tagged turn in a conversation.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}

// Conversation is an ordered sequence of messages tied to one customer
// interaction.
type Conversation struct {
	ID          string                 `json:"conversationId"`
	Messages    []Message              `json:"messages"`
	UserProfile map[string]interface{} `json:"userProfile,omitempty"`
}

// UserMessages filters a message list down to user-authored turns, preserving
// order.
func UserMessages(msgs []Message) []Message {
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Role == RoleUser {
			out = append(out, m)
		}
	}
	return out
}

// JoinContents concatenates message contents with single spaces.
func JoinContents(msgs []Message) string {
	var b []byte
	for i, m := range msgs {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, m.Content...)
	}
	return string(b)
}

// DecodeMessages parses the JSON-encoded messages column stored on
// conversation rows.
func DecodeMessages(raw []byte) ([]Message, error) {
	var msgs []Message
	if err := json.Unmarshal(raw, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}
