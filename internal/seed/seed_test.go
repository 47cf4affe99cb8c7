package seed

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/hydrobuddy/hydro-tracker/internal/domain"
)

type stubProfileRepository struct {
	exists bool
	saved  []*domain.Profile
}

func (s *stubProfileRepository) Get(ctx context.Context) (*domain.Profile, error) {
	return nil, domain.ErrProfileNotFound
}

func (s *stubProfileRepository) Save(ctx context.Context, profile *domain.Profile) error {
	s.saved = append(s.saved, profile)
	return nil
}

func (s *stubProfileRepository) Exists(ctx context.Context) (bool, error) {
	return s.exists, nil
}

type stubDrinkLogRepository struct {
	logs     []domain.DrinkLog
	replaced [][]domain.DrinkLog
}

func (s *stubDrinkLogRepository) Create(ctx context.Context, log *domain.DrinkLog) error {
	s.logs = append(s.logs, *log)
	return nil
}

func (s *stubDrinkLogRepository) List(ctx context.Context, filter domain.DrinkLogFilter) ([]domain.DrinkLog, error) {
	return s.logs, nil
}

func (s *stubDrinkLogRepository) ListInRange(ctx context.Context, from, to time.Time) ([]domain.DrinkLog, error) {
	return s.logs, nil
}

func (s *stubDrinkLogRepository) All(ctx context.Context) ([]domain.DrinkLog, error) {
	return s.logs, nil
}

func (s *stubDrinkLogRepository) LastLoggedAt(ctx context.Context) (time.Time, error) {
	return time.Time{}, nil
}

func (s *stubDrinkLogRepository) ReplaceAll(ctx context.Context, logs []domain.DrinkLog) error {
	s.replaced = append(s.replaced, logs)
	s.logs = logs
	return nil
}

func TestRun_FirstRunSeedsProfileAndHistory(t *testing.T) {
	profileRepo := &stubProfileRepository{}
	drinkLogRepo := &stubDrinkLogRepository{}

	if err := run(context.Background(), profileRepo, drinkLogRepo, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if len(profileRepo.saved) != 1 {
		t.Fatalf("profiles saved = %d, want 1", len(profileRepo.saved))
	}
	if got := profileRepo.saved[0]; got.Name != domain.DefaultName || got.DailyGoalML != 2450 {
		t.Errorf("saved profile = %s / %dml, want %s / 2450ml", got.Name, got.DailyGoalML, domain.DefaultName)
	}

	if len(drinkLogRepo.replaced) != 1 {
		t.Fatalf("ReplaceAll calls = %d, want 1", len(drinkLogRepo.replaced))
	}
	logs := drinkLogRepo.replaced[0]
	if len(logs) < seededDays*4 {
		t.Fatalf("seeded %d logs, want at least %d", len(logs), seededDays*4)
	}
	presets := make(map[int]bool)
	for _, amount := range domain.PresetAmountsML {
		presets[amount] = true
	}
	for _, entry := range logs {
		if !entry.Category.Valid() {
			t.Errorf("seeded invalid category %q", entry.Category)
		}
		if !presets[entry.AmountML] {
			t.Errorf("seeded amount %dml is not a preset", entry.AmountML)
		}
	}
}

func TestRun_KeepsOnboardedProfile(t *testing.T) {
	profileRepo := &stubProfileRepository{exists: true}
	drinkLogRepo := &stubDrinkLogRepository{
		logs: []domain.DrinkLog{{Category: domain.DrinkWater, AmountML: 250, LoggedAt: time.Now()}},
	}

	if err := run(context.Background(), profileRepo, drinkLogRepo, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if len(profileRepo.saved) != 0 {
		t.Errorf("profiles saved = %d, want 0", len(profileRepo.saved))
	}
	if len(drinkLogRepo.replaced) != 0 {
		t.Errorf("ReplaceAll calls = %d, want 0", len(drinkLogRepo.replaced))
	}
}

func TestRun_BackfillsHistoryForExistingProfile(t *testing.T) {
	profileRepo := &stubProfileRepository{exists: true}
	drinkLogRepo := &stubDrinkLogRepository{}

	if err := run(context.Background(), profileRepo, drinkLogRepo, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if len(profileRepo.saved) != 0 {
		t.Errorf("profiles saved = %d, want 0", len(profileRepo.saved))
	}
	if len(drinkLogRepo.replaced) != 1 {
		t.Errorf("ReplaceAll calls = %d, want 1", len(drinkLogRepo.replaced))
	}
}
