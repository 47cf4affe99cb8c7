package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/hydrobuddy/hydro-tracker/internal/domain"
	"github.com/hydrobuddy/hydro-tracker/internal/repository"
	"github.com/hydrobuddy/hydro-tracker/internal/service"
	"gorm.io/gorm"
)

const seededDays = 14

// Run seeds the database with a default profile and two weeks of drink logs.
// Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Profile{}, &domain.DrinkLog{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return run(context.Background(), repository.NewProfileRepository(db), repository.NewDrinkLogRepository(db), rng)
}

// run seeds through the repositories so an already-onboarded profile and an
// existing drink history are left untouched.
func run(ctx context.Context, profileRepo repository.ProfileRepository, drinkLogRepo repository.DrinkLogRepository, rng *rand.Rand) error {
	hasProfile, err := profileRepo.Exists(ctx)
	if err != nil {
		return fmt.Errorf("failed to check profile: %w", err)
	}
	if !hasProfile {
		profile := domain.DefaultProfile(service.RecommendedGoal(domain.DefaultWeightKg, domain.DefaultAgeYears))
		if err := profileRepo.Save(ctx, profile); err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}
	}

	existing, err := drinkLogRepo.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to read drink logs: %w", err)
	}
	if len(existing) > 0 {
		log.Printf("Seed skipped: %d drink logs already present", len(existing))
		return nil
	}

	if err := drinkLogRepo.ReplaceAll(ctx, buildDrinkLogs(rng)); err != nil {
		return fmt.Errorf("failed to seed drink logs: %w", err)
	}

	log.Println("Seed completed")
	return nil
}

func buildDrinkLogs(rng *rand.Rand) []domain.DrinkLog {
	categories := []domain.DrinkCategory{
		domain.DrinkWater, domain.DrinkWater, domain.DrinkWater,
		domain.DrinkTea, domain.DrinkCoffee, domain.DrinkJuice,
	}

	var logs []domain.DrinkLog
	now := time.Now().UTC()
	for i := seededDays - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		drinks := 4 + rng.Intn(5)

		for j := 0; j < drinks; j++ {
			loggedAt := time.Date(date.Year(), date.Month(), date.Day(), 8+rng.Intn(13), rng.Intn(60), 0, 0, time.UTC)
			logs = append(logs, domain.DrinkLog{
				ID:       uuid.New(),
				Category: categories[rng.Intn(len(categories))],
				AmountML: domain.PresetAmountsML[rng.Intn(len(domain.PresetAmountsML))],
				LoggedAt: loggedAt,
			})
		}
	}
	return logs
}
