package store

import "crowlands-be/pkg/llm"

// Session holds the rolling state of one chat conversation with a persona.
// Sessions are ephemeral: they live in a TTL store and are never persisted
// to the database.
type Session struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id,omitempty"`
	ArchetypeID string        `json:"archetype_id"`
	History     []llm.Message `json:"history"`
}

// SessionStore abstracts the TTL-backed session storage so Redis and the
// in-process cache are interchangeable.
type SessionStore interface {
	Save(session *Session)
	Get(sessionID string) (*Session, bool)
	Delete(sessionID string)
}
