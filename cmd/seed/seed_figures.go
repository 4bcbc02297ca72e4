package main

import (
	"log"

	"crowlands-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func SeedHistoricalFigures(db *gorm.DB) {
	figures := []model.HistoricalFigure{
		{
			Id:              "gardner-001",
			Name:            "Gerald Gardner",
			BirthDeath:      "1884-1964",
			Bio:             "British civil servant and amateur anthropologist who founded modern Wicca in the 1940s. Gardner claimed initiation into a surviving witch coven in the New Forest and published the first books on Wiccan practice.",
			Contributions:   "Founded Wicca, wrote \"Witchcraft Today\" (1954), established the Book of Shadows, created Gardnerian Wicca tradition.",
			AssociatedWorks: datatypes.JSONSlice[string]{"Witchcraft Today", "The Meaning of Witchcraft", "High Magic's Aid"},
			ImageURL:        "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?crop=entropy&cs=srgb&fm=jpg&q=85",
		},
		{
			Id:              "fortune-001",
			Name:            "Dion Fortune",
			BirthDeath:      "1890-1946",
			Bio:             "British occultist, ceremonial magician, and novelist. Founded the Society of the Inner Light and was a major figure in the Hermetic Order of the Golden Dawn. Her work bridged psychology and occultism.",
			Contributions:   "Founded Society of the Inner Light, wrote extensively on Western esotericism, developed psychological approach to magic.",
			AssociatedWorks: datatypes.JSONSlice[string]{"The Mystical Qabalah", "Psychic Self-Defence", "The Sea Priestess", "Moon Magic"},
			ImageURL:        "https://images.unsplash.com/photo-1544005313-94ddf0286df2?crop=entropy&cs=srgb&fm=jpg&q=85",
		},
		{
			Id:              "crowley-001",
			Name:            "Aleister Crowley",
			BirthDeath:      "1875-1947",
			Bio:             "English occultist, ceremonial magician, and founder of Thelema. One of the most influential figures in 20th century Western esotericism, known for his controversial lifestyle and extensive magical writings.",
			Contributions:   "Founded Thelema, wrote The Book of the Law, reformed Golden Dawn practices, developed system of sex magic.",
			AssociatedWorks: datatypes.JSONSlice[string]{"The Book of the Law", "Magick in Theory and Practice", "The Book of Thoth", "777 and Other Qabalistic Writings"},
			ImageURL:        "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?crop=entropy&cs=srgb&fm=jpg&q=85",
		},
		{
			Id:              "graves-001",
			Name:            "Robert Graves",
			BirthDeath:      "1895-1985",
			Bio:             "English poet, novelist, and scholar whose \"The White Goddess\" (1948) profoundly influenced modern paganism and goddess worship, though written just after our period.",
			Contributions:   "Wrote The White Goddess, revived interest in goddess worship, influenced Wiccan theology.",
			AssociatedWorks: datatypes.JSONSlice[string]{"The White Goddess", "The Greek Myths", "King Jesus"},
			ImageURL:        "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?crop=entropy&cs=srgb&fm=jpg&q=85",
		},
		{
			Id:              "yeats-001",
			Name:            "W.B. Yeats",
			BirthDeath:      "1865-1939",
			Bio:             "Irish poet and occultist, member of the Hermetic Order of the Golden Dawn. His poetry was deeply influenced by Celtic mythology and mystical experiences.",
			Contributions:   "Revived Celtic mythology through poetry, member of Golden Dawn, founded Irish Literary Theatre.",
			AssociatedWorks: datatypes.JSONSlice[string]{"The Celtic Twilight", "A Vision", "The Wild Swans at Coole"},
			ImageURL:        "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?crop=entropy&cs=srgb&fm=jpg&q=85",
		},
	}

	if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&figures).Error; err != nil {
		log.Fatalf("Error: Failed to seed historical figures: %v", err)
	}
	log.Printf("Seeded %d historical figures", len(figures))
}
