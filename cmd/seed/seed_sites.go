package main

import (
	"log"

	"crowlands-be/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func SeedSacredSites(db *gorm.DB) {
	sites := []model.SacredSite{
		{
			Id:                     "stonehenge-001",
			Name:                   "Stonehenge",
			Location:               "Wiltshire, England",
			Country:                "United Kingdom",
			Lat:                    51.1789,
			Lng:                    -1.8262,
			HistoricalSignificance: "Ancient megalithic monument (c. 3000-2000 BCE) that became a focal point for Druidic revival in the early 20th century. Modern druids held ceremonies here despite restrictions, claiming ancient connection.",
			TimePeriod:             "1910-1945",
			ImageURL:               "https://images.unsplash.com/photo-1588578507406-f90d1df22e8e?crop=entropy&cs=srgb&fm=jpg&q=85",
		},
		{
			Id:                     "glastonbury-001",
			Name:                   "Glastonbury Tor",
			Location:               "Somerset, England",
			Country:                "United Kingdom",
			Lat:                    51.1443,
			Lng:                    -2.6988,
			HistoricalSignificance: "Sacred hill associated with Arthurian legend and Celtic mysticism. Became center of occult activity in the 1920s-1940s, particularly connected to Dion Fortune's work.",
			TimePeriod:             "1910-1945",
			ImageURL:               "https://images.unsplash.com/photo-1659016596573-cb626781048a?crop=entropy&cs=srgb&fm=jpg&q=85",
		},
		{
			Id:                     "newforest-001",
			Name:                   "New Forest",
			Location:               "Hampshire, England",
			Country:                "United Kingdom",
			Lat:                    50.8641,
			Lng:                    -1.6011,
			HistoricalSignificance: "Ancient woodland where Gerald Gardner claimed to have been initiated into a surviving witch coven in 1939, leading to the creation of modern Wicca.",
			TimePeriod:             "1910-1945",
			ImageURL:               "https://images.unsplash.com/photo-1588578507491-879ec69e07d8?crop=entropy&cs=srgb&fm=jpg&q=85",
		},
		{
			Id:                     "tara-001",
			Name:                   "Hill of Tara",
			Location:               "County Meath, Ireland",
			Country:                "Ireland",
			Lat:                    53.5792,
			Lng:                    -6.6117,
			HistoricalSignificance: "Ancient seat of Irish High Kings, central to Celtic revival and Irish nationalism in early 20th century. Site of Morrigan worship and sovereignty rituals.",
			TimePeriod:             "1910-1945",
			ImageURL:               "https://images.unsplash.com/photo-1585932595938-cceb86652be9?crop=entropy&cs=srgb&fm=jpg&q=85",
		},
		{
			Id:                     "externsteine-001",
			Name:                   "Externsteine",
			Location:               "Teutoburg Forest, Germany",
			Country:                "Germany",
			Lat:                    51.8677,
			Lng:                    8.9188,
			HistoricalSignificance: "Ancient rock formation that became significant to German mysticism and volkisch movements in the 1920s-1940s. Associated with pre-Christian Germanic paganism.",
			TimePeriod:             "1910-1945",
			ImageURL:               "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?crop=entropy&cs=srgb&fm=jpg&q=85",
		},
	}

	if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&sites).Error; err != nil {
		log.Fatalf("Error: Failed to seed sacred sites: %v", err)
	}
	log.Printf("Seeded %d sacred sites", len(sites))
}
