package domain

import "time"

// ReminderState is the reminder monitor's current state.
// @Description Reminder state: quiet or alerting.
type ReminderState string

const (
	ReminderQuiet    ReminderState = "quiet"
	ReminderAlerting ReminderState = "alerting"
)

// ReminderStatusResponse is the response for the reminder endpoint.
// @Description Current reminder monitor state and alert history.
type ReminderStatusResponse struct {
	// Current state
	State ReminderState `json:"state" example:"quiet"`
	// Time of the most recent drink log (absent when no drinks yet)
	LastLogAt *time.Time `json:"last_log_at,omitempty"`
	// Time of the most recent alert (absent before the first alert)
	LastAlertAt *time.Time `json:"last_alert_at,omitempty"`
	// Total alerts fired since startup
	AlertCount int64 `json:"alert_count" example:"2"`
	// Configured reminder interval in minutes
	IntervalMinutes int `json:"interval_minutes" example:"60"`
}
