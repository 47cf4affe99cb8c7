package repository

import (
	"context"

	"github.com/hydrobuddy/hydro-tracker/internal/domain"
	"gorm.io/gorm"
)

// profileRowID pins the singleton profile to a single row.
const profileRowID = 1

type ProfileRepository interface {
	// Get returns the saved profile, or domain.ErrProfileNotFound before
	// onboarding has completed.
	Get(ctx context.Context) (*domain.Profile, error)
	// Save replaces the stored profile wholesale.
	Save(ctx context.Context, profile *domain.Profile) error
	// Exists reports whether a profile has been saved (first-run check).
	Exists(ctx context.Context) (bool, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Get(ctx context.Context) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", profileRowID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Save(ctx context.Context, profile *domain.Profile) error {
	profile.ID = profileRowID
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) Exists(ctx context.Context) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Profile{}).Where("id = ?", profileRowID).Count(&count).Error
	return count > 0, err
}
