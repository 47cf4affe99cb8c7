package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hydrobuddy/hydro-tracker/internal/domain"
	"github.com/hydrobuddy/hydro-tracker/internal/langfuse"
	"github.com/hydrobuddy/hydro-tracker/internal/llm"
	"github.com/hydrobuddy/hydro-tracker/internal/repository"
)

// User-facing diagnostics for a failed coaching call, keyed by failure class.
const (
	connectivityDiagnostic = "Could not reach the AI coach. Please check your network connection and try again."
	credentialDiagnostic   = "The AI coach API key is missing or invalid. Please check the OPENAI_API_KEY setting."
	degradedTip            = "Check your network or settings."
)

// AnalysisService produces period hydration analyses. It never returns the
// coaching model's failures to the caller: any error degrades into a
// displayable warning-status result.
type AnalysisService interface {
	Analyze(ctx context.Context, period domain.AnalysisPeriod) (*domain.AnalysisResponse, error)
}

type analysisService struct {
	drinkLogRepo   repository.DrinkLogRepository
	profileRepo    repository.ProfileRepository
	coach          llm.CoachLLM
	langfuseClient langfuse.Client
	now            func() time.Time
}

// NewAnalysisService creates a new AnalysisService. coach may be nil when no
// API key is configured; analyses then degrade immediately.
func NewAnalysisService(
	drinkLogRepo repository.DrinkLogRepository,
	profileRepo repository.ProfileRepository,
	coach llm.CoachLLM,
	langfuseClient langfuse.Client,
) AnalysisService {
	return &analysisService{
		drinkLogRepo:   drinkLogRepo,
		profileRepo:    profileRepo,
		coach:          coach,
		langfuseClient: langfuseClient,
		now:            time.Now,
	}
}

func (s *analysisService) Analyze(ctx context.Context, period domain.AnalysisPeriod) (*domain.AnalysisResponse, error) {
	profile, err := s.currentProfile(ctx)
	if err != nil {
		return nil, err
	}

	days := 1
	if period == domain.PeriodWeekly {
		days = 7
	}

	now := s.now().UTC()
	from := now.AddDate(0, 0, -days)

	logs, err := s.drinkLogRepo.ListInRange(ctx, from, now.Add(time.Second))
	if err != nil {
		return nil, err
	}

	coachingContext := BuildCoachingContext(profile, logs)

	analysis := s.requestAnalysis(ctx, coachingContext, period)

	response := &domain.AnalysisResponse{
		Period:   period,
		Analysis: *analysis,
	}

	if s.langfuseClient != nil && s.langfuseClient.IsEnabled() {
		traceID, err := s.langfuseClient.CreateTrace(ctx, langfuse.TraceInput{
			Name:   "hydration-analysis",
			Input:  map[string]any{"period": period, "entries": len(logs)},
			Output: analysis,
			Tags:   []string{"analysis", string(period)},
		})
		if err == nil {
			response.TraceID = traceID
		}
	}

	return response, nil
}

// requestAnalysis calls the coach and collapses every failure into a
// degraded but displayable result.
func (s *analysisService) requestAnalysis(ctx context.Context, coachingContext string, period domain.AnalysisPeriod) *domain.AnalysisResult {
	if s.coach == nil {
		return degradedAnalysis(domain.ErrCoachDisabled)
	}

	result, err := s.coach.AnalyzePeriod(ctx, coachingContext, period)
	if err != nil {
		return degradedAnalysis(err)
	}
	return result
}

func (s *analysisService) currentProfile(ctx context.Context) (*domain.Profile, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		if err == domain.ErrProfileNotFound {
			return domain.DefaultProfile(RecommendedGoal(domain.DefaultWeightKg, domain.DefaultAgeYears)), nil
		}
		return nil, err
	}
	return profile, nil
}

// degradedAnalysis maps a coaching failure to a warning result with a
// human-readable diagnostic instead of propagating the error.
func degradedAnalysis(err error) *domain.AnalysisResult {
	return &domain.AnalysisResult{
		Status:  domain.StatusWarning,
		Message: diagnoseCoachFailure(err),
		Tip:     degradedTip,
	}
}

// diagnoseCoachFailure classifies a coaching error by its text, best-effort:
// connectivity problems and credential problems get specific guidance,
// everything else a generic apology.
func diagnoseCoachFailure(err error) string {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "connection"),
		strings.Contains(msg, "network"),
		strings.Contains(msg, "dial"),
		strings.Contains(msg, "no such host"),
		strings.Contains(msg, "timeout"):
		return connectivityDiagnostic
	case strings.Contains(msg, "key"),
		strings.Contains(msg, "auth"),
		strings.Contains(msg, "401"),
		strings.Contains(msg, "configured"):
		return credentialDiagnostic
	default:
		return fmt.Sprintf("The AI coach is taking a break, please try again later. (%s)", err.Error())
	}
}
