package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hydrobuddy/hydro-tracker/internal/domain"
	"github.com/hydrobuddy/hydro-tracker/internal/langfuse"
)

// MockProfileService is a mock implementation of ProfileService
type MockProfileService struct {
	getFunc  func(ctx context.Context) (*domain.Profile, error)
	saveFunc func(ctx context.Context, req *domain.SaveProfileRequest) (*domain.Profile, error)
}

func (m *MockProfileService) Get(ctx context.Context) (*domain.Profile, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx)
	}
	return nil, domain.ErrProfileNotFound
}

func (m *MockProfileService) Save(ctx context.Context, req *domain.SaveProfileRequest) (*domain.Profile, error) {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, req)
	}
	return &domain.Profile{
		Name:            req.Name,
		AgeYears:        req.AgeYears,
		WeightKg:        req.WeightKg,
		HeightCm:        req.HeightCm,
		DailyGoalML:     2450,
		ReminderMinutes: req.ReminderMinutes,
		Character:       req.Character,
		Timezone:        "UTC",
		UpdatedAt:       time.Now(),
	}, nil
}

// MockDrinkLogService is a mock implementation of DrinkLogService
type MockDrinkLogService struct {
	logFunc  func(ctx context.Context, req *domain.CreateDrinkLogRequest) (*domain.DrinkLog, error)
	listFunc func(ctx context.Context, filter domain.DrinkLogFilter) (*domain.DrinkLogListResponse, error)
}

func (m *MockDrinkLogService) Log(ctx context.Context, req *domain.CreateDrinkLogRequest) (*domain.DrinkLog, error) {
	if m.logFunc != nil {
		return m.logFunc(ctx, req)
	}
	return &domain.DrinkLog{
		ID:        uuid.New(),
		Category:  req.Category,
		Label:     req.Label,
		AmountML:  req.AmountML,
		LoggedAt:  time.Now().UTC(),
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (m *MockDrinkLogService) List(ctx context.Context, filter domain.DrinkLogFilter) (*domain.DrinkLogListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return &domain.DrinkLogListResponse{
		Data:       []domain.DrinkLogResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	todayFunc func(ctx context.Context) (*domain.TodayStatsResponse, error)
	weekFunc  func(ctx context.Context) (*domain.WeekSeriesResponse, error)
}

func (m *MockStatsService) Today(ctx context.Context) (*domain.TodayStatsResponse, error) {
	if m.todayFunc != nil {
		return m.todayFunc(ctx)
	}
	return &domain.TodayStatsResponse{
		DayKey:  "2024-01-15",
		TotalML: 400,
		GoalML:  2450,
		Percent: 16.33,
	}, nil
}

func (m *MockStatsService) Week(ctx context.Context) (*domain.WeekSeriesResponse, error) {
	if m.weekFunc != nil {
		return m.weekFunc(ctx)
	}
	return &domain.WeekSeriesResponse{GoalML: 2450, Days: make([]domain.SeriesPoint, 7)}, nil
}

// MockAnalysisService is a mock implementation of AnalysisService
type MockAnalysisService struct {
	analyzeFunc func(ctx context.Context, period domain.AnalysisPeriod) (*domain.AnalysisResponse, error)
}

func (m *MockAnalysisService) Analyze(ctx context.Context, period domain.AnalysisPeriod) (*domain.AnalysisResponse, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, period)
	}
	return &domain.AnalysisResponse{
		Period: period,
		Analysis: domain.AnalysisResult{
			Status:  domain.StatusGood,
			Message: "Nice pace.",
			Tip:     "Keep sipping.",
		},
	}, nil
}

// MockChatService is a mock implementation of ChatService
type MockChatService struct {
	createFunc func(ctx context.Context) (*domain.ChatSessionResponse, error)
	sendFunc   func(ctx context.Context, sessionID uuid.UUID, text string) (*domain.ChatMessageResponse, error)
}

func (m *MockChatService) CreateSession(ctx context.Context) (*domain.ChatSessionResponse, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx)
	}
	return &domain.ChatSessionResponse{SessionID: uuid.New(), Greeting: "Hi!"}, nil
}

func (m *MockChatService) SendMessage(ctx context.Context, sessionID uuid.UUID, text string) (*domain.ChatMessageResponse, error) {
	if m.sendFunc != nil {
		return m.sendFunc(ctx, sessionID, text)
	}
	return &domain.ChatMessageResponse{Reply: "Sounds good!"}, nil
}

// MockLangfuseClient is a mock implementation of langfuse.Client
type MockLangfuseClient struct {
	enabled bool
	scores  []langfuse.ScoreInput
	err     error
}

func (m *MockLangfuseClient) IsEnabled() bool {
	return m.enabled
}

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return uuid.New().String(), nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	if m.err != nil {
		return m.err
	}
	m.scores = append(m.scores, in)
	return nil
}
