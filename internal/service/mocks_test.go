package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/hydrobuddy/hydro-tracker/internal/domain"
	"github.com/hydrobuddy/hydro-tracker/internal/llm"
	"github.com/hydrobuddy/hydro-tracker/pkg/pagination"
)

// MockDrinkLogRepository is a mock implementation of DrinkLogRepository
type MockDrinkLogRepository struct {
	logs []domain.DrinkLog
	err  error
}

func NewMockDrinkLogRepository() *MockDrinkLogRepository {
	return &MockDrinkLogRepository{}
}

func (m *MockDrinkLogRepository) Create(ctx context.Context, log *domain.DrinkLog) error {
	if m.err != nil {
		return m.err
	}
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	log.CreatedAt = time.Now()
	m.logs = append(m.logs, *log)
	return nil
}

func (m *MockDrinkLogRepository) List(ctx context.Context, filter domain.DrinkLogFilter) ([]domain.DrinkLog, error) {
	if m.err != nil {
		return nil, m.err
	}

	logs := make([]domain.DrinkLog, len(m.logs))
	copy(logs, m.logs)
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].LoggedAt.After(logs[j].LoggedAt)
	})

	var result []domain.DrinkLog
	for _, log := range logs {
		if filter.From != nil && log.LoggedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !log.LoggedAt.Before(*filter.To) {
			continue
		}
		result = append(result, log)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			var after []domain.DrinkLog
			for _, log := range result {
				if log.LoggedAt.Before(cursor.LoggedAt) {
					after = append(after, log)
				}
			}
			result = after
		}
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	if len(result) > limit+1 {
		result = result[:limit+1]
	}
	return result, nil
}

func (m *MockDrinkLogRepository) ListInRange(ctx context.Context, from, to time.Time) ([]domain.DrinkLog, error) {
	if m.err != nil {
		return nil, m.err
	}

	var result []domain.DrinkLog
	for _, log := range m.logs {
		if !log.LoggedAt.Before(from) && log.LoggedAt.Before(to) {
			result = append(result, log)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].LoggedAt.Before(result[j].LoggedAt)
	})
	return result, nil
}

func (m *MockDrinkLogRepository) All(ctx context.Context) ([]domain.DrinkLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]domain.DrinkLog, len(m.logs))
	copy(result, m.logs)
	sort.Slice(result, func(i, j int) bool {
		return result[i].LoggedAt.Before(result[j].LoggedAt)
	})
	return result, nil
}

func (m *MockDrinkLogRepository) LastLoggedAt(ctx context.Context) (time.Time, error) {
	if m.err != nil {
		return time.Time{}, m.err
	}
	var last time.Time
	for _, log := range m.logs {
		if log.LoggedAt.After(last) {
			last = log.LoggedAt
		}
	}
	return last, nil
}

func (m *MockDrinkLogRepository) ReplaceAll(ctx context.Context, logs []domain.DrinkLog) error {
	if m.err != nil {
		return m.err
	}
	m.logs = make([]domain.DrinkLog, len(logs))
	copy(m.logs, logs)
	return nil
}

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	profile *domain.Profile
	err     error
}

func (m *MockProfileRepository) Get(ctx context.Context) (*domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return m.profile, nil
}

func (m *MockProfileRepository) Save(ctx context.Context, profile *domain.Profile) error {
	if m.err != nil {
		return m.err
	}
	m.profile = profile
	return nil
}

func (m *MockProfileRepository) Exists(ctx context.Context) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.profile != nil, nil
}

// MockCoach is a mock implementation of llm.CoachLLM
type MockCoach struct {
	analyzeFunc func(ctx context.Context, coachingContext string, period domain.AnalysisPeriod) (*domain.AnalysisResult, error)
	replyFunc   func(ctx context.Context, systemPrompt string, history []llm.ChatTurn, userText string) (string, error)
}

func (m *MockCoach) AnalyzePeriod(ctx context.Context, coachingContext string, period domain.AnalysisPeriod) (*domain.AnalysisResult, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, coachingContext, period)
	}
	return &domain.AnalysisResult{
		Status:  domain.StatusGood,
		Message: "Nice pace today.",
		Tip:     "Keep a bottle within reach.",
	}, nil
}

func (m *MockCoach) Reply(ctx context.Context, systemPrompt string, history []llm.ChatTurn, userText string) (string, error) {
	if m.replyFunc != nil {
		return m.replyFunc(ctx, systemPrompt, history, userText)
	}
	return "Sounds good, keep sipping!", nil
}

func (m *MockCoach) SystemPrompt() string {
	return llm.DefaultSystemPrompt
}

func testProfile() *domain.Profile {
	return &domain.Profile{
		ID:              1,
		Name:            "Guest",
		AgeYears:        25,
		WeightKg:        70,
		HeightCm:        175,
		DailyGoalML:     2450,
		ReminderMinutes: 60,
		Character:       domain.CharacterDoraemon,
		Timezone:        "UTC",
	}
}
