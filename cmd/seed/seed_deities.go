package main

import (
	"log"

	"crowlands-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedDeities populates the deities table. Rows are upserted by id so the
// seeder can be re-run safely.
func SeedDeities(db *gorm.DB) {
	deities := []model.Deity{
		{
			Id:                  "hecate-001",
			Name:                "Hecate",
			Origin:              "Ancient Greek/Anatolian",
			Description:         "Goddess of magic, crossroads, necromancy, and the night. Triple-faced deity associated with the moon and witchcraft.",
			History:             "Hecate was revived in early 20th century occult practice, particularly through the works of Dion Fortune and Aleister Crowley. Her worship was central to the Hermetic Order of the Golden Dawn and influenced modern Wiccan practice.",
			AssociatedPractices: datatypes.JSONSlice[string]{"Moon rituals", "Crossroads magic", "Necromancy", "Protection spells", "Divination"},
			ImageURL:            "https://images.unsplash.com/photo-1711906485337-af335d9810a4?crop=entropy&cs=srgb&fm=jpg&q=85",
			TimePeriod:          "1910-1945",
		},
		{
			Id:                  "morrigan-001",
			Name:                "The Morrigan",
			Origin:              "Celtic (Irish)",
			Description:         "Triple goddess of war, fate, and sovereignty. Shape-shifter associated with crows and prophecy.",
			History:             "The Morrigan experienced renewed interest during the Celtic Revival of the early 20th century. Irish occultists and poets like W.B. Yeats helped revive her worship as a symbol of Irish identity and mystical power.",
			AssociatedPractices: datatypes.JSONSlice[string]{"Battle magic", "Prophecy", "Shape-shifting rituals", "Sovereignty rites", "Crow magic"},
			ImageURL:            "https://images.unsplash.com/photo-1745520470002-391193461501?crop=entropy&cs=srgb&fm=jpg&q=85",
			TimePeriod:          "1910-1945",
		},
		{
			Id:                  "cerridwen-001",
			Name:                "Cerridwen",
			Origin:              "Celtic (Welsh)",
			Description:         "Goddess of transformation, inspiration, and the cauldron of wisdom. Keeper of the potion of knowledge.",
			History:             "Cerridwen became central to Druidic revival practices in the 1920s-1940s, particularly in Wales. Her cauldron symbolism was adopted by early Wiccan practitioners as a feminine divine vessel.",
			AssociatedPractices: datatypes.JSONSlice[string]{"Potion making", "Transformation rituals", "Wisdom seeking", "Bardic inspiration", "Cauldron magic"},
			ImageURL:            "https://images.unsplash.com/photo-1661619669807-784e46af8029?crop=entropy&cs=srgb&fm=jpg&q=85",
			TimePeriod:          "1910-1945",
		},
		{
			Id:                  "arianrhod-001",
			Name:                "Arianrhod",
			Origin:              "Celtic (Welsh)",
			Description:         "Goddess of the silver wheel, fate, and the stars. Guardian of the celestial realm and keeper of destiny.",
			History:             "Arianrhod gained prominence in 1930s occult circles through the works of Dion Fortune, who incorporated her into ritual work focused on lunar magic and feminine mysteries.",
			AssociatedPractices: datatypes.JSONSlice[string]{"Stellar magic", "Fate weaving", "Lunar rituals", "Wheel of the year", "Initiation rites"},
			ImageURL:            "https://images.unsplash.com/photo-1643324896137-f0928e76202a?crop=entropy&cs=srgb&fm=jpg&q=85",
			TimePeriod:          "1910-1945",
		},
	}

	if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&deities).Error; err != nil {
		log.Fatalf("Error: Failed to seed deities: %v", err)
	}
	log.Printf("Seeded %d deities", len(deities))
}
