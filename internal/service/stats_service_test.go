package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hydrobuddy/hydro-tracker/internal/domain"
)

func drinkAt(category domain.DrinkCategory, amountML int, loggedAt time.Time) domain.DrinkLog {
	return domain.DrinkLog{
		ID:       uuid.New(),
		Category: category,
		AmountML: amountML,
		LoggedAt: loggedAt,
	}
}

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name    string
		totalML int
		goalML  int
		want    float64
	}{
		{name: "halfway", totalML: 1225, goalML: 2450, want: 50},
		{name: "partial rounds to two decimals", totalML: 400, goalML: 2450, want: 16.33},
		{name: "over goal is not clamped", totalML: 3000, goalML: 2450, want: 122.45},
		{name: "zero total", totalML: 0, goalML: 2450, want: 0},
		{name: "zero goal", totalML: 500, goalML: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressPercent(tt.totalML, tt.goalML)
			if got != tt.want {
				t.Errorf("ProgressPercent(%d, %d) = %v, want %v", tt.totalML, tt.goalML, got, tt.want)
			}
		})
	}
}

func TestByCategory(t *testing.T) {
	logs := []domain.DrinkLog{
		drinkAt(domain.DrinkWater, 250, time.Now()),
		drinkAt(domain.DrinkWater, 500, time.Now()),
		drinkAt(domain.DrinkCoffee, 150, time.Now()),
	}

	totals := ByCategory(logs)

	if totals[domain.DrinkWater] != 750 {
		t.Errorf("water total = %d, want 750", totals[domain.DrinkWater])
	}
	if totals[domain.DrinkCoffee] != 150 {
		t.Errorf("coffee total = %d, want 150", totals[domain.DrinkCoffee])
	}
	if _, ok := totals[domain.DrinkTea]; ok {
		t.Error("tea should not appear in totals")
	}
}

func TestCategoryTotalsDisplayOrder(t *testing.T) {
	logs := []domain.DrinkLog{
		drinkAt(domain.DrinkSoda, 350, time.Now()),
		drinkAt(domain.DrinkWater, 250, time.Now()),
		drinkAt(domain.DrinkTea, 200, time.Now()),
	}

	totals := categoryTotals(logs)

	want := []domain.DrinkCategory{domain.DrinkWater, domain.DrinkTea, domain.DrinkSoda}
	if len(totals) != len(want) {
		t.Fatalf("got %d categories, want %d", len(totals), len(want))
	}
	for i, category := range want {
		if totals[i].Category != category {
			t.Errorf("totals[%d].Category = %s, want %s", i, totals[i].Category, category)
		}
	}
}

func TestTotalOnDay(t *testing.T) {
	loc := time.UTC
	logs := []domain.DrinkLog{
		drinkAt(domain.DrinkWater, 250, time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)),
		drinkAt(domain.DrinkWater, 500, time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC)),
		drinkAt(domain.DrinkWater, 300, time.Date(2024, 1, 16, 0, 1, 0, 0, time.UTC)),
	}

	if got := TotalOnDay(logs, "2024-01-15", loc); got != 750 {
		t.Errorf("TotalOnDay(2024-01-15) = %d, want 750", got)
	}
	if got := TotalOnDay(logs, "2024-01-16", loc); got != 300 {
		t.Errorf("TotalOnDay(2024-01-16) = %d, want 300", got)
	}
}

func TestTotalOnDayRespectsTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	// 23:00 UTC on Jan 15 is already Jan 16 in Shanghai (UTC+8)
	logs := []domain.DrinkLog{
		drinkAt(domain.DrinkWater, 400, time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC)),
	}

	if got := TotalOnDay(logs, "2024-01-16", loc); got != 400 {
		t.Errorf("TotalOnDay in Shanghai = %d, want 400", got)
	}
	if got := TotalOnDay(logs, "2024-01-15", loc); got != 0 {
		t.Errorf("TotalOnDay on UTC day = %d, want 0", got)
	}
}

func TestLast7DaysSeries(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC) // a Monday

	logs := []domain.DrinkLog{
		drinkAt(domain.DrinkWater, 2500, time.Date(2024, 1, 13, 10, 0, 0, 0, time.UTC)),
		drinkAt(domain.DrinkTea, 300, time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)),
		drinkAt(domain.DrinkWater, 500, time.Date(2024, 1, 15, 11, 0, 0, 0, time.UTC)),
	}

	series := Last7DaysSeries(logs, now, loc, 2450)

	if len(series) != SeriesDays {
		t.Fatalf("series length = %d, want %d", len(series), SeriesDays)
	}

	if series[0].DayKey != "2024-01-09" {
		t.Errorf("series[0].DayKey = %s, want 2024-01-09", series[0].DayKey)
	}
	if series[6].DayKey != "2024-01-15" {
		t.Errorf("series[6].DayKey = %s, want 2024-01-15", series[6].DayKey)
	}
	if series[6].Label != "Mon" {
		t.Errorf("series[6].Label = %s, want Mon", series[6].Label)
	}

	// Day with no entries is zero-filled, not omitted
	if series[1].TotalML != 0 || series[1].GoalMet {
		t.Errorf("empty day = {%d, %v}, want {0, false}", series[1].TotalML, series[1].GoalMet)
	}

	// Jan 13 reached the goal
	if series[4].TotalML != 2500 || !series[4].GoalMet {
		t.Errorf("goal day = {%d, %v}, want {2500, true}", series[4].TotalML, series[4].GoalMet)
	}

	// Today sums both entries but misses the goal
	if series[6].TotalML != 800 || series[6].GoalMet {
		t.Errorf("today = {%d, %v}, want {800, false}", series[6].TotalML, series[6].GoalMet)
	}
}

func TestStatsService_Today(t *testing.T) {
	now := time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)

	drinkLogRepo := NewMockDrinkLogRepository()
	drinkLogRepo.logs = []domain.DrinkLog{
		drinkAt(domain.DrinkWater, 250, time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)),
		drinkAt(domain.DrinkCoffee, 150, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)),
		drinkAt(domain.DrinkWater, 500, time.Date(2024, 1, 14, 20, 0, 0, 0, time.UTC)), // yesterday
	}

	svc := &statsService{
		drinkLogRepo: drinkLogRepo,
		profileRepo:  &MockProfileRepository{profile: testProfile()},
		now:          func() time.Time { return now },
	}

	stats, err := svc.Today(context.Background())
	if err != nil {
		t.Fatalf("Today() error = %v", err)
	}

	if stats.DayKey != "2024-01-15" {
		t.Errorf("DayKey = %s, want 2024-01-15", stats.DayKey)
	}
	if stats.TotalML != 400 {
		t.Errorf("TotalML = %d, want 400", stats.TotalML)
	}
	if stats.GoalML != 2450 {
		t.Errorf("GoalML = %d, want 2450", stats.GoalML)
	}
	if stats.Percent != 16.33 {
		t.Errorf("Percent = %v, want 16.33", stats.Percent)
	}
	if stats.GoalMet {
		t.Error("GoalMet = true, want false")
	}
	if len(stats.ByCategory) != 2 {
		t.Errorf("ByCategory length = %d, want 2", len(stats.ByCategory))
	}
}

func TestStatsService_TodayWithoutProfile(t *testing.T) {
	svc := &statsService{
		drinkLogRepo: NewMockDrinkLogRepository(),
		profileRepo:  &MockProfileRepository{},
		now:          time.Now,
	}

	stats, err := svc.Today(context.Background())
	if err != nil {
		t.Fatalf("Today() error = %v", err)
	}

	// Defaults apply before onboarding: 70kg at 25y gives 2450ml
	if stats.GoalML != 2450 {
		t.Errorf("GoalML = %d, want default 2450", stats.GoalML)
	}
}

func TestStatsService_Week(t *testing.T) {
	now := time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)

	drinkLogRepo := NewMockDrinkLogRepository()
	drinkLogRepo.logs = []domain.DrinkLog{
		drinkAt(domain.DrinkWater, 3000, time.Date(2024, 1, 12, 9, 0, 0, 0, time.UTC)),
		drinkAt(domain.DrinkWater, 250, time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)),
		// Outside the window, must not leak in
		drinkAt(domain.DrinkWater, 999, time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)),
	}

	svc := &statsService{
		drinkLogRepo: drinkLogRepo,
		profileRepo:  &MockProfileRepository{profile: testProfile()},
		now:          func() time.Time { return now },
	}

	week, err := svc.Week(context.Background())
	if err != nil {
		t.Fatalf("Week() error = %v", err)
	}

	if week.GoalML != 2450 {
		t.Errorf("GoalML = %d, want 2450", week.GoalML)
	}
	if len(week.Days) != SeriesDays {
		t.Fatalf("Days length = %d, want %d", len(week.Days), SeriesDays)
	}
	if week.Days[0].DayKey != "2024-01-09" {
		t.Errorf("Days[0].DayKey = %s, want 2024-01-09", week.Days[0].DayKey)
	}
	if week.Days[0].TotalML != 0 {
		t.Errorf("Days[0].TotalML = %d, want 0", week.Days[0].TotalML)
	}
	if !week.Days[3].GoalMet {
		t.Error("Jan 12 should have met the goal")
	}
	if week.Days[6].TotalML != 250 {
		t.Errorf("today total = %d, want 250", week.Days[6].TotalML)
	}
}
