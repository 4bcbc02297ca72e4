package dto

import "crowlands-be/pkg/spell"

type ChatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionId string `json:"session_id,omitempty"`
	Archetype string `json:"archetype,omitempty"`
}

type ChatResponse struct {
	Response  string        `json:"response"`
	SessionId string        `json:"session_id"`
	Archetype ArchetypeInfo `json:"archetype"`
}

type GenerateSpellRequest struct {
	Intention     string `json:"intention" validate:"required"`
	Archetype     string `json:"archetype,omitempty"`
	GenerateImage bool   `json:"generate_image,omitempty"`
}

// ArchetypeInfo echoes which persona produced the result. Id is empty when
// the neutral default was used.
type ArchetypeInfo struct {
	Id    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

// QuotaInfo is present only for authenticated callers, recomputed after the
// counter update.
type QuotaInfo struct {
	CanGenerate  bool `json:"can_generate"`
	Remaining    int  `json:"remaining"`
	Limit        int  `json:"limit"`
	CurrentCount int  `json:"current_count"`
}

type GenerateSpellResponse struct {
	Spell     *spell.Spell  `json:"spell"`
	Image     *string       `json:"image,omitempty"`
	Archetype ArchetypeInfo `json:"archetype"`
	SessionId string        `json:"session_id"`
	QuotaInfo *QuotaInfo    `json:"quota_info,omitempty"`
}

type GenerateImageRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

type GenerateImageResponse struct {
	Image string `json:"image"`
}

type ArchetypeListResponse struct {
	Archetypes []ArchetypeInfo `json:"archetypes"`
}
