package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/hydrobuddy/hydro-tracker/internal/api/validation"
	"github.com/hydrobuddy/hydro-tracker/internal/domain"
	"github.com/hydrobuddy/hydro-tracker/internal/service"
	"github.com/hydrobuddy/hydro-tracker/pkg/problem"
)

type DrinkLogHandler struct {
	service service.DrinkLogService
}

func NewDrinkLogHandler(service service.DrinkLogService) *DrinkLogHandler {
	return &DrinkLogHandler{service: service}
}

// Create handles POST /v1/drinks
// @Summary Log a drink
// @Description Record an intake event. The timestamp is stamped server-side; entries are immutable once created.
// @Tags drinks
// @Accept json
// @Produce json
// @Param request body domain.CreateDrinkLogRequest true "Drink data"
// @Success 201 {object} domain.DrinkLogResponse "New entry created"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Validation failure"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /drinks [post]
func (h *DrinkLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateDrinkLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	log, err := h.service.Log(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid drink data").Write(w)
			return
		}
		problem.InternalError("Failed to log drink").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(log.ToResponse())
}

// List handles GET /v1/drinks
// @Summary List drink history
// @Description Fetch paginated drink history, newest first. Filter by date range.
// @Tags drinks
// @Produce json
// @Param from query string false "Start of date range (RFC3339)" format(date-time) example(2024-01-01T00:00:00Z)
// @Param to query string false "End of date range, exclusive (RFC3339)" format(date-time) example(2024-02-01T00:00:00Z)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.DrinkLogListResponse "Drink logs with pagination"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /drinks [get]
func (h *DrinkLogHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), filter)
	if err != nil {
		problem.InternalError("Failed to list drinks").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseListFilter(r *http.Request) (domain.DrinkLogFilter, []problem.FieldError) {
	var filter domain.DrinkLogFilter
	var fieldErrors []problem.FieldError

	// Parse 'from' parameter
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.From = &from
		}
	}

	// Parse 'to' parameter
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.To = &to
		}
	}

	// Parse 'limit' parameter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	// Parse 'cursor' parameter
	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
