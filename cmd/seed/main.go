package main

import (
	"log"
	"os"

	"crowlands-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDB(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding reference collections...")

	SeedDeities(db)
	SeedHistoricalFigures(db)
	SeedSacredSites(db)
	SeedRituals(db)
	SeedTimelineEvents(db)

	color.Green("✅ Database seeded successfully!")
}
