package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type SaveSpellRequest struct {
	SpellData      json.RawMessage `json:"spell_data" validate:"required"`
	ArchetypeId    string          `json:"archetype_id,omitempty"`
	ArchetypeName  string          `json:"archetype_name,omitempty"`
	ArchetypeTitle string          `json:"archetype_title,omitempty"`
	Image          *string         `json:"image,omitempty"`
}

type SavedSpellResponse struct {
	Id             uuid.UUID       `json:"id"`
	SpellData      json.RawMessage `json:"spell_data"`
	ArchetypeId    string          `json:"archetype_id,omitempty"`
	ArchetypeName  string          `json:"archetype_name,omitempty"`
	ArchetypeTitle string          `json:"archetype_title,omitempty"`
	Image          *string         `json:"image,omitempty"`
	Title          string          `json:"title"`
	CreatedAt      time.Time       `json:"created_at"`
}

type GrimoireListResponse struct {
	Spells []SavedSpellResponse `json:"spells"`
	Total  int                  `json:"total"`
}
