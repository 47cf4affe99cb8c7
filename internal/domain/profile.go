package domain

import "time"

// CharacterType identifies the companion character shown alongside progress.
// @Description Companion character: doraemon, optimus, batman or catwoman.
type CharacterType string

const (
	CharacterDoraemon CharacterType = "doraemon"
	CharacterOptimus  CharacterType = "optimus"
	CharacterBatman   CharacterType = "batman"
	CharacterCatwoman CharacterType = "catwoman"
)

// Default profile values used on first run before onboarding completes.
const (
	DefaultName            = "Guest"
	DefaultAgeYears        = 25
	DefaultWeightKg        = 70
	DefaultHeightCm        = 175
	DefaultReminderMinutes = 60
	DefaultTimezone        = "UTC"
	DefaultCharacter       = CharacterDoraemon
)

// Profile holds the single user's physical attributes and preferences.
// There is at most one row; saving replaces it wholesale.
type Profile struct {
	ID              int           `gorm:"primaryKey" json:"-"`
	Name            string        `gorm:"type:varchar(64);not null" json:"name"`
	AgeYears        int           `gorm:"type:smallint;not null" json:"age_years"`
	WeightKg        float64       `gorm:"not null" json:"weight_kg"`
	HeightCm        float64       `gorm:"not null" json:"height_cm"`
	Avatar          *string       `gorm:"type:text" json:"avatar,omitempty"`
	DailyGoalML     int           `gorm:"not null" json:"daily_goal_ml"`
	ReminderMinutes int           `gorm:"not null" json:"reminder_minutes"`
	Character       CharacterType `gorm:"type:varchar(16);not null" json:"character"`
	Timezone        string        `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profile"
}

// Location resolves the profile's IANA timezone, falling back to UTC.
func (p *Profile) Location() *time.Location {
	if p.Timezone != "" {
		if loc, err := time.LoadLocation(p.Timezone); err == nil {
			return loc
		}
	}
	return time.UTC
}

// DefaultProfile returns the first-run profile. The daily goal is derived
// from the default weight and age rather than hard-coded.
func DefaultProfile(goalML int) *Profile {
	return &Profile{
		Name:            DefaultName,
		AgeYears:        DefaultAgeYears,
		WeightKg:        DefaultWeightKg,
		HeightCm:        DefaultHeightCm,
		DailyGoalML:     goalML,
		ReminderMinutes: DefaultReminderMinutes,
		Character:       DefaultCharacter,
		Timezone:        DefaultTimezone,
	}
}

// SaveProfileRequest is the request body for replacing the profile.
// @Description Full profile payload; the stored profile is replaced, not patched.
type SaveProfileRequest struct {
	// Display name
	Name string `json:"name" validate:"required,max=64" example:"Guest"`
	// Age in years
	AgeYears int `json:"age_years" validate:"required,min=1,max=150" example:"25"`
	// Weight in kilograms
	WeightKg float64 `json:"weight_kg" validate:"required,gt=0" example:"70"`
	// Height in centimeters
	HeightCm float64 `json:"height_cm" validate:"required,gt=0" example:"175"`
	// Optional avatar reference (data URI or URL)
	Avatar *string `json:"avatar,omitempty"`
	// Daily goal in ml; 0 or omitted derives the goal from weight and age
	DailyGoalML int `json:"daily_goal_ml" validate:"omitempty,min=0" example:"2450"`
	// Reminder interval in minutes
	ReminderMinutes int `json:"reminder_minutes" validate:"required,min=1" example:"60"`
	// Companion character
	Character CharacterType `json:"character" validate:"required,oneof=doraemon optimus batman catwoman" example:"doraemon" enums:"doraemon,optimus,batman,catwoman"`
	// Optional IANA timezone for day bucketing (defaults to UTC)
	Timezone *string `json:"timezone,omitempty" validate:"omitempty,timezone" example:"Asia/Shanghai"`
}

// ProfileResponse is the response body for profile endpoints.
type ProfileResponse struct {
	Name            string        `json:"name" example:"Guest"`
	AgeYears        int           `json:"age_years" example:"25"`
	WeightKg        float64       `json:"weight_kg" example:"70"`
	HeightCm        float64       `json:"height_cm" example:"175"`
	Avatar          *string       `json:"avatar,omitempty"`
	DailyGoalML     int           `json:"daily_goal_ml" example:"2450"`
	ReminderMinutes int           `json:"reminder_minutes" example:"60"`
	Character       CharacterType `json:"character" example:"doraemon"`
	Timezone        string        `json:"timezone" example:"UTC"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (p *Profile) ToResponse() ProfileResponse {
	return ProfileResponse{
		Name:            p.Name,
		AgeYears:        p.AgeYears,
		WeightKg:        p.WeightKg,
		HeightCm:        p.HeightCm,
		Avatar:          p.Avatar,
		DailyGoalML:     p.DailyGoalML,
		ReminderMinutes: p.ReminderMinutes,
		Character:       p.Character,
		Timezone:        p.Timezone,
		UpdatedAt:       p.UpdatedAt,
	}
}

// RecommendedGoalResponse is the response for the goal recommendation endpoint.
type RecommendedGoalResponse struct {
	WeightKg    float64 `json:"weight_kg" example:"70"`
	AgeYears    int     `json:"age_years" example:"25"`
	DailyGoalML int     `json:"daily_goal_ml" example:"2450"`
}
