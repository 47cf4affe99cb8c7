// Script to seed the database with a default profile and sample drink logs.
// Usage: go run scripts/seed/main.go
package main

import (
	"log"

	"github.com/hydrobuddy/hydro-tracker/internal/config"
	"github.com/hydrobuddy/hydro-tracker/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Println("Database seeded")
}
