package domain

// CategoryTotal is the summed volume for one drink category.
type CategoryTotal struct {
	Category DrinkCategory `json:"category" example:"water"`
	TotalML  int           `json:"total_ml" example:"750"`
}

// TodayStatsResponse is the response for the daily stats endpoint.
// @Description Today's intake total, goal progress and per-category breakdown.
type TodayStatsResponse struct {
	// Local calendar date being reported
	DayKey string `json:"day_key" example:"2024-01-15"`
	// Total volume consumed today
	TotalML int `json:"total_ml" example:"400"`
	// Daily goal from the profile
	GoalML int `json:"goal_ml" example:"2450"`
	// Unclamped goal percentage (can exceed 100)
	Percent float64 `json:"percent" example:"16.33"`
	// True once the goal is reached
	GoalMet bool `json:"goal_met" example:"false"`
	// Per-category totals, display order
	ByCategory []CategoryTotal `json:"by_category"`
}

// SeriesPoint is one day in the weekly series.
type SeriesPoint struct {
	// Local calendar date
	DayKey string `json:"day_key" example:"2024-01-15"`
	// Three-letter weekday abbreviation
	Label string `json:"label" example:"Mon"`
	// Total volume consumed that day (0 for days without entries)
	TotalML int `json:"total_ml" example:"1800"`
	// True if the daily goal was reached
	GoalMet bool `json:"goal_met" example:"false"`
}

// WeekSeriesResponse is the response for the weekly stats endpoint.
// @Description Rolling 7-day intake series, oldest day first, always 7 points.
type WeekSeriesResponse struct {
	// Daily goal the series is measured against
	GoalML int `json:"goal_ml" example:"2450"`
	// Exactly 7 points, oldest first
	Days []SeriesPoint `json:"days"`
}
