package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/hydrobuddy/hydro-tracker/internal/domain"
	"github.com/hydrobuddy/hydro-tracker/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// SeriesDays is the fixed length of the weekly intake series.
const SeriesDays = 7

// StatsService derives daily and weekly intake statistics from the drink log.
type StatsService interface {
	// Today computes the current day's total, goal progress and breakdown.
	Today(ctx context.Context) (*domain.TodayStatsResponse, error)
	// Week computes the rolling 7-day series ending today.
	Week(ctx context.Context) (*domain.WeekSeriesResponse, error)
}

type statsService struct {
	drinkLogRepo repository.DrinkLogRepository
	profileRepo  repository.ProfileRepository
	now          func() time.Time
}

// NewStatsService creates a new StatsService.
func NewStatsService(drinkLogRepo repository.DrinkLogRepository, profileRepo repository.ProfileRepository) StatsService {
	return &statsService{
		drinkLogRepo: drinkLogRepo,
		profileRepo:  profileRepo,
		now:          time.Now,
	}
}

func (s *statsService) Today(ctx context.Context) (*domain.TodayStatsResponse, error) {
	tracer := otel.Tracer("hydro-tracker-api/stats")
	ctx, span := tracer.Start(ctx, "StatsService.Today")
	defer span.End()

	profile, err := s.currentProfile(ctx)
	if err != nil {
		return nil, err
	}

	loc := profile.Location()
	now := s.now()
	dayStart, dayEnd := dayBounds(now, loc)

	logs, err := s.drinkLogRepo.ListInRange(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	total := TotalVolume(logs)
	result := &domain.TodayStatsResponse{
		DayKey:     domain.DayKey(now, loc),
		TotalML:    total,
		GoalML:     profile.DailyGoalML,
		Percent:    ProgressPercent(total, profile.DailyGoalML),
		GoalMet:    GoalMet(total, profile.DailyGoalML),
		ByCategory: categoryTotals(logs),
	}

	if outJSON, err := json.Marshal(result); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outJSON)))
	}

	return result, nil
}

func (s *statsService) Week(ctx context.Context) (*domain.WeekSeriesResponse, error) {
	tracer := otel.Tracer("hydro-tracker-api/stats")
	ctx, span := tracer.Start(ctx, "StatsService.Week")
	defer span.End()

	profile, err := s.currentProfile(ctx)
	if err != nil {
		return nil, err
	}

	loc := profile.Location()
	now := s.now()

	// Fetch everything from the start of the oldest series day up to the
	// end of today, then bucket in memory.
	firstDayStart, _ := dayBounds(now.In(loc).AddDate(0, 0, -(SeriesDays-1)), loc)
	_, todayEnd := dayBounds(now, loc)

	logs, err := s.drinkLogRepo.ListInRange(ctx, firstDayStart, todayEnd)
	if err != nil {
		return nil, err
	}

	return &domain.WeekSeriesResponse{
		GoalML: profile.DailyGoalML,
		Days:   Last7DaysSeries(logs, now, loc, profile.DailyGoalML),
	}, nil
}

// currentProfile returns the saved profile, or the first-run defaults so
// stats stay usable before onboarding.
func (s *statsService) currentProfile(ctx context.Context) (*domain.Profile, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		if err == domain.ErrProfileNotFound {
			return domain.DefaultProfile(RecommendedGoal(domain.DefaultWeightKg, domain.DefaultAgeYears)), nil
		}
		return nil, err
	}
	return profile, nil
}

// dayBounds returns [start, end) of the calendar day containing t in loc.
func dayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// TotalVolume sums the volumes of all entries.
func TotalVolume(logs []domain.DrinkLog) int {
	total := 0
	for _, log := range logs {
		total += log.AmountML
	}
	return total
}

// TotalOnDay sums the volumes of entries whose day key matches dayKey.
func TotalOnDay(logs []domain.DrinkLog, dayKey string, loc *time.Location) int {
	total := 0
	for _, log := range logs {
		if domain.DayKey(log.LoggedAt, loc) == dayKey {
			total += log.AmountML
		}
	}
	return total
}

// ProgressPercent returns 100*total/goal rounded to two decimals. The value
// is deliberately unclamped; callers wanting a bounded gauge clamp to [0,100].
func ProgressPercent(totalML, goalML int) float64 {
	if goalML <= 0 {
		return 0
	}
	percent := 100 * float64(totalML) / float64(goalML)
	return math.Round(percent*100) / 100
}

// GoalMet reports whether a day's total reaches the goal.
func GoalMet(totalML, goalML int) bool {
	return totalML >= goalML
}

// ByCategory groups entries by drink category and sums their volumes.
func ByCategory(logs []domain.DrinkLog) map[domain.DrinkCategory]int {
	totals := make(map[domain.DrinkCategory]int)
	for _, log := range logs {
		totals[log.Category] += log.AmountML
	}
	return totals
}

// categoryTotals flattens ByCategory into display order, keeping only
// categories that appear.
func categoryTotals(logs []domain.DrinkLog) []domain.CategoryTotal {
	totals := ByCategory(logs)

	result := make([]domain.CategoryTotal, 0, len(totals))
	for _, category := range domain.DrinkCategories {
		if total, ok := totals[category]; ok {
			result = append(result, domain.CategoryTotal{Category: category, TotalML: total})
		}
	}
	return result
}

// Last7DaysSeries builds the 7-point series for the calendar days ending at
// now's day, oldest first. Days without entries yield 0 rather than being
// omitted, so the series always has exactly SeriesDays points.
func Last7DaysSeries(logs []domain.DrinkLog, now time.Time, loc *time.Location, goalML int) []domain.SeriesPoint {
	if loc == nil {
		loc = time.UTC
	}

	// Pre-bucket totals by day key so each entry is scanned once.
	totalsByDay := make(map[string]int)
	for _, log := range logs {
		totalsByDay[domain.DayKey(log.LoggedAt, loc)] += log.AmountML
	}

	series := make([]domain.SeriesPoint, 0, SeriesDays)
	local := now.In(loc)
	for offset := SeriesDays - 1; offset >= 0; offset-- {
		day := local.AddDate(0, 0, -offset)
		key := domain.DayKey(day, loc)
		total := totalsByDay[key]
		series = append(series, domain.SeriesPoint{
			DayKey:  key,
			Label:   day.Weekday().String()[:3],
			TotalML: total,
			GoalMet: GoalMet(total, goalML),
		})
	}
	return series
}
