package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hydrobuddy/hydro-tracker/internal/service"
	"github.com/hydrobuddy/hydro-tracker/pkg/problem"
)

// ReminderHandler exposes the reminder monitor's current state.
type ReminderHandler struct {
	monitor *service.ReminderMonitor
}

func NewReminderHandler(monitor *service.ReminderMonitor) *ReminderHandler {
	return &ReminderHandler{monitor: monitor}
}

// Status handles GET /v1/reminder
// @Summary Reminder status
// @Description Current reminder state: quiet while recent intake exists, alerting once the configured interval passes without a log.
// @Tags reminder
// @Produce json
// @Success 200 {object} domain.ReminderStatusResponse
// @Failure 500 {object} problem.Problem
// @Router /reminder [get]
func (h *ReminderHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.monitor.Status(r.Context())
	if err != nil {
		problem.InternalError("Failed to read reminder status").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}
