package main

import (
	"log"

	"crowlands-be/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func strPtr(s string) *string {
	return &s
}

func SeedRituals(db *gorm.DB) {
	rituals := []model.Ritual{
		{
			Id:               "ritual-001",
			Name:             "Drawing Down the Moon",
			Description:      "A ritual to invoke the goddess into the high priestess, creating a vessel for divine feminine power. Documented in early 20th century occult literature.",
			DeityAssociation: strPtr("Hecate, Arianrhod"),
			TimePeriod:       "1910-1945",
			Source:           "Hermetic Order of the Golden Dawn, later adopted by Gerald Gardner",
			Category:         "Invocation",
		},
		{
			Id:               "ritual-002",
			Name:             "The Lesser Banishing Ritual of the Pentagram",
			Description:      "Ceremonial magic ritual for protection and purification, widely taught in Golden Dawn lodges and adapted by various occult groups.",
			DeityAssociation: nil,
			TimePeriod:       "1910-1945",
			Source:           "Hermetic Order of the Golden Dawn",
			Category:         "Protection",
		},
		{
			Id:               "ritual-003",
			Name:             "Hecate Supper",
			Description:      "Offerings left at crossroads on the dark moon for Hecate, including bread, eggs, garlic, and honey. Revived from ancient Greek practice.",
			DeityAssociation: strPtr("Hecate"),
			TimePeriod:       "1910-1945",
			Source:           "Dion Fortune's Society of the Inner Light",
			Category:         "Offering",
		},
		{
			Id:               "ritual-004",
			Name:             "The Great Rite",
			Description:      "Symbolic or actual ritual of sacred union representing the joining of god and goddess energies. Central to fertility magic.",
			DeityAssociation: strPtr("Various"),
			TimePeriod:       "1910-1945",
			Source:           "Gardnerian Wicca (developed late 1930s-1940s)",
			Category:         "Fertility",
		},
		{
			Id:               "ritual-005",
			Name:             "Cauldron of Cerridwen Meditation",
			Description:      "Transformative ritual involving visualization of Cerridwen's cauldron for gaining wisdom and inspiration.",
			DeityAssociation: strPtr("Cerridwen"),
			TimePeriod:       "1910-1945",
			Source:           "Welsh Druidic Revival",
			Category:         "Transformation",
		},
	}

	if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rituals).Error; err != nil {
		log.Fatalf("Error: Failed to seed rituals: %v", err)
	}
	log.Printf("Seeded %d rituals", len(rituals))
}
