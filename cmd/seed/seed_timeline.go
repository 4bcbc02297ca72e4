package main

import (
	"log"

	"crowlands-be/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func SeedTimelineEvents(db *gorm.DB) {
	events := []model.TimelineEvent{
		{Id: "event-001", Year: 1910, Title: "Aleister Crowley publishes early Thelemic works", Description: "Crowley begins publishing The Equinox and developing Thelemic philosophy", Category: "Publication"},
		{Id: "event-002", Year: 1914, Title: "WWI Begins - Impact on Occult Movements", Description: "World War I disrupts European occult societies but also creates spiritual crisis leading to increased interest", Category: "Historical"},
		{Id: "event-003", Year: 1922, Title: "Dion Fortune founds Society of the Inner Light", Description: "Fortune establishes her own magical order after leaving Alpha et Omega", Category: "Organization"},
		{Id: "event-004", Year: 1925, Title: "Margaret Murray publishes The Witch-Cult in Western Europe", Description: "Murray's controversial thesis about surviving pagan witch cults influences future practitioners", Category: "Publication"},
		{Id: "event-005", Year: 1929, Title: "Dion Fortune publishes The Mystical Qabalah", Description: "Foundational text on Western esoteric Qabalah becomes standard reference", Category: "Publication"},
		{Id: "event-006", Year: 1930, Title: "Celtic Revival peaks in Ireland", Description: "Renewed interest in Celtic mythology and spirituality tied to Irish independence", Category: "Movement"},
		{Id: "event-007", Year: 1936, Title: "Gerald Gardner travels to Far East", Description: "Gardner's experiences in Malaya and Ceylon influence his later magical practice", Category: "Personal"},
		{Id: "event-008", Year: 1939, Title: "Gardner claims initiation into New Forest Coven", Description: "Gardner allegedly initiated into surviving witch coven by Dorothy Clutterbuck", Category: "Initiation"},
		{Id: "event-009", Year: 1939, Title: "WWII Begins - Occult Response", Description: "British occultists including Gardner and Fortune claim magical defense of Britain", Category: "Historical"},
		{Id: "event-010", Year: 1940, Title: "Operation Cone of Power", Description: "Alleged magical working by British witches to prevent Nazi invasion", Category: "Ritual"},
		{Id: "event-011", Year: 1944, Title: "Gardner writes High Magic's Aid", Description: "First book presenting Wiccan-style practices (published 1949)", Category: "Publication"},
		{Id: "event-012", Year: 1945, Title: "End of WWII - New Occult Era Begins", Description: "Post-war period sees foundation for modern Wicca and neo-paganism", Category: "Historical"},
	}

	if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&events).Error; err != nil {
		log.Fatalf("Error: Failed to seed timeline events: %v", err)
	}
	log.Printf("Seeded %d timeline events", len(events))
}
