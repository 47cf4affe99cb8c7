package service

import (
	"context"

	"github.com/hydrobuddy/hydro-tracker/internal/domain"
	"github.com/hydrobuddy/hydro-tracker/internal/repository"
)

// ProfileService manages the singleton user profile.
type ProfileService interface {
	// Get returns the saved profile; domain.ErrProfileNotFound means first run.
	Get(ctx context.Context) (*domain.Profile, error)
	// Save replaces the profile wholesale, deriving the goal when omitted.
	Save(ctx context.Context, req *domain.SaveProfileRequest) (*domain.Profile, error)
}

type profileService struct {
	repo repository.ProfileRepository
}

func NewProfileService(repo repository.ProfileRepository) ProfileService {
	return &profileService{repo: repo}
}

func (s *profileService) Get(ctx context.Context) (*domain.Profile, error) {
	return s.repo.Get(ctx)
}

func (s *profileService) Save(ctx context.Context, req *domain.SaveProfileRequest) (*domain.Profile, error) {
	goal := req.DailyGoalML
	if goal <= 0 {
		goal = RecommendedGoal(req.WeightKg, req.AgeYears)
	}

	timezone := domain.DefaultTimezone
	if req.Timezone != nil && *req.Timezone != "" {
		timezone = *req.Timezone
	}

	profile := &domain.Profile{
		Name:            req.Name,
		AgeYears:        req.AgeYears,
		WeightKg:        req.WeightKg,
		HeightCm:        req.HeightCm,
		Avatar:          req.Avatar,
		DailyGoalML:     goal,
		ReminderMinutes: req.ReminderMinutes,
		Character:       req.Character,
		Timezone:        timezone,
	}

	if err := s.repo.Save(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}
