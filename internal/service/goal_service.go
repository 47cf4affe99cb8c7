package service

import "math"

const (
	// Base hydration need in ml per kg of body weight.
	AdultMLPerKg = 35
	// Older adults use a lower base.
	SeniorMLPerKg = 30
	// Growing teens use a higher base.
	TeenMLPerKg = 40

	// Age band boundaries for the goal formula.
	SeniorAgeYears = 55
	AdultAgeYears  = 18

	// MinGoalML is the floor of the computed goal.
	MinGoalML = 1
)

// RecommendedGoal computes the daily fluid target in ml from body metrics.
// It is a total function: any input yields a positive goal.
func RecommendedGoal(weightKg float64, ageYears int) int {
	perKg := float64(AdultMLPerKg)
	switch {
	case ageYears > SeniorAgeYears:
		perKg = SeniorMLPerKg
	case ageYears < AdultAgeYears:
		perKg = TeenMLPerKg
	}

	goal := int(math.Round(weightKg * perKg))
	if goal < MinGoalML {
		goal = MinGoalML
	}
	return goal
}
