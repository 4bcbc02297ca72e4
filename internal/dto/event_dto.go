package dto

import "github.com/google/uuid"

// GenerationEventMessage travels over the in-process watermill topic from
// the orchestrator to the audit consumer.
type GenerationEventMessage struct {
	UserId      *uuid.UUID `json:"user_id,omitempty"`
	SessionId   string     `json:"session_id"`
	ArchetypeId string     `json:"archetype_id"`
	ParseError  bool       `json:"parse_error"`
	ImageMade   bool       `json:"image_made"`
	LatencyMs   int64      `json:"latency_ms"`
}
