package domain

import (
	"time"

	"github.com/google/uuid"
)

// DrinkCategory is the closed set of drink types that can be logged.
// @Description Drink category: water, tea, coffee, milk_tea, juice, soda, energy or other.
type DrinkCategory string

const (
	DrinkWater   DrinkCategory = "water"
	DrinkTea     DrinkCategory = "tea"
	DrinkCoffee  DrinkCategory = "coffee"
	DrinkMilkTea DrinkCategory = "milk_tea"
	DrinkJuice   DrinkCategory = "juice"
	DrinkSoda    DrinkCategory = "soda"
	DrinkEnergy  DrinkCategory = "energy"
	DrinkOther   DrinkCategory = "other"
)

// DrinkCategories lists every category in display order.
var DrinkCategories = []DrinkCategory{
	DrinkWater, DrinkTea, DrinkCoffee, DrinkMilkTea,
	DrinkJuice, DrinkSoda, DrinkEnergy, DrinkOther,
}

// Valid reports whether c is one of the known categories.
func (c DrinkCategory) Valid() bool {
	for _, known := range DrinkCategories {
		if c == known {
			return true
		}
	}
	return false
}

// PresetAmountsML are the quick-select volumes offered by clients.
var PresetAmountsML = []int{150, 250, 350, 500}

// DrinkLog is one recorded intake event. Entries are append-only and never
// mutated after creation.
type DrinkLog struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Category  DrinkCategory `gorm:"type:varchar(16);not null" json:"category"`
	Label     *string       `gorm:"type:varchar(100)" json:"label,omitempty"`
	AmountML  int           `gorm:"not null" json:"amount_ml"`
	LoggedAt  time.Time     `gorm:"not null;index:idx_drink_logs_logged_at,sort:desc" json:"logged_at"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"created_at"`
}

func (DrinkLog) TableName() string {
	return "drink_logs"
}

// DayKey buckets a timestamp into a local calendar date. Two entries belong
// to the same day iff their day keys are equal.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("2006-01-02")
}

// CreateDrinkLogRequest is the request body for logging a drink.
// @Description Request payload for recording an intake event. The timestamp is stamped server-side.
type CreateDrinkLogRequest struct {
	// Drink category
	Category DrinkCategory `json:"category" validate:"required,oneof=water tea coffee milk_tea juice soda energy other" example:"water" enums:"water,tea,coffee,milk_tea,juice,soda,energy,other"`
	// Optional free-text label, only meaningful for the "other" category
	Label *string `json:"label,omitempty" validate:"omitempty,max=100" example:"coconut water"`
	// Volume in milliliters
	AmountML int `json:"amount_ml" validate:"required,gt=0" example:"250"`
}

// DrinkLogResponse is the response body for drink log endpoints.
type DrinkLogResponse struct {
	// Unique entry identifier
	ID uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Drink category
	Category DrinkCategory `json:"category" example:"water"`
	// Free-text label (only present for "other")
	Label *string `json:"label,omitempty" example:"coconut water"`
	// Volume in milliliters
	AmountML int `json:"amount_ml" example:"250"`
	// Time the drink was logged
	LoggedAt time.Time `json:"logged_at" example:"2024-01-15T09:30:00Z"`
	// Record creation timestamp
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T09:30:00Z"`
}

func (d *DrinkLog) ToResponse() DrinkLogResponse {
	return DrinkLogResponse{
		ID:        d.ID,
		Category:  d.Category,
		Label:     d.Label,
		AmountML:  d.AmountML,
		LoggedAt:  d.LoggedAt,
		CreatedAt: d.CreatedAt,
	}
}

// DrinkLogListResponse is the response body for listing drink logs.
// @Description Paginated drink history, newest first.
type DrinkLogListResponse struct {
	// Array of drink log records
	Data []DrinkLogResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// DrinkLogFilter contains filter parameters for listing drink logs
type DrinkLogFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
