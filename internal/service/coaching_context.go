package service

import (
	"fmt"
	"strings"

	"github.com/hydrobuddy/hydro-tracker/internal/domain"
)

// BuildCoachingContext serializes the profile and a window of entries into
// the summary handed to the coaching model. It is rebuilt fresh on every
// call and is the only user data the model ever sees.
func BuildCoachingContext(profile *domain.Profile, logs []domain.DrinkLog) string {
	total := TotalVolume(logs)

	details := make([]string, 0, len(logs))
	for _, log := range logs {
		if log.Label != nil && *log.Label != "" {
			details = append(details, fmt.Sprintf("%s(%s): %dml", log.Category, *log.Label, log.AmountML))
		} else {
			details = append(details, fmt.Sprintf("%s: %dml", log.Category, log.AmountML))
		}
	}
	breakdown := strings.Join(details, ", ")
	if breakdown == "" {
		breakdown = "No drinks recorded in this window yet"
	}

	var b strings.Builder
	b.WriteString("User Profile (Physical State):\n")
	fmt.Fprintf(&b, "- Name: %s\n", profile.Name)
	fmt.Fprintf(&b, "- Age: %d\n", profile.AgeYears)
	fmt.Fprintf(&b, "- Weight: %.1fkg\n", profile.WeightKg)
	fmt.Fprintf(&b, "- Height: %.1fcm\n", profile.HeightCm)
	fmt.Fprintf(&b, "- Daily Goal: %dml\n", profile.DailyGoalML)
	b.WriteString("\nRecent Drinking History (Habits):\n")
	fmt.Fprintf(&b, "- Total Consumed: %dml\n", total)
	fmt.Fprintf(&b, "- Detailed Logs: %s\n", breakdown)

	return b.String()
}
