package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hydrobuddy/hydro-tracker/internal/service"
	"github.com/hydrobuddy/hydro-tracker/pkg/problem"
)

// StatsHandler serves derived intake statistics.
type StatsHandler struct {
	service service.StatsService
}

func NewStatsHandler(service service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Today handles GET /v1/stats/today
// @Summary Today's intake stats
// @Description Today's total, goal progress (unclamped percent) and per-category breakdown.
// @Tags stats
// @Produce json
// @Success 200 {object} domain.TodayStatsResponse
// @Failure 500 {object} problem.Problem
// @Router /stats/today [get]
func (h *StatsHandler) Today(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Today(r.Context())
	if err != nil {
		problem.InternalError("Failed to compute today's stats").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Week handles GET /v1/stats/week
// @Summary Weekly intake series
// @Description Rolling 7-day intake series ending today, oldest first. Always exactly 7 points.
// @Tags stats
// @Produce json
// @Success 200 {object} domain.WeekSeriesResponse
// @Failure 500 {object} problem.Problem
// @Router /stats/week [get]
func (h *StatsHandler) Week(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Week(r.Context())
	if err != nil {
		problem.InternalError("Failed to compute weekly stats").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
