package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/hydrobuddy/hydro-tracker/internal/api/validation"
	"github.com/hydrobuddy/hydro-tracker/internal/domain"
	"github.com/hydrobuddy/hydro-tracker/internal/service"
	"github.com/hydrobuddy/hydro-tracker/pkg/problem"
)

type ProfileHandler struct {
	service service.ProfileService
}

func NewProfileHandler(service service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get handles GET /v1/profile
// @Summary Get the profile
// @Description Fetch the saved profile. A 404 means first run: no profile has been saved yet.
// @Tags profile
// @Produce json
// @Success 200 {object} domain.ProfileResponse
// @Failure 404 {object} problem.Problem "No profile saved yet (first run)"
// @Failure 500 {object} problem.Problem
// @Router /profile [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.Get(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			problem.NotFound("No profile saved yet").Write(w)
			return
		}
		problem.InternalError("Failed to get profile").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile.ToResponse())
}

// Save handles PUT /v1/profile
// @Summary Save the profile
// @Description Replace the profile wholesale. Omitting daily_goal_ml derives the goal from weight and age.
// @Tags profile
// @Accept json
// @Produce json
// @Param request body domain.SaveProfileRequest true "Full profile payload"
// @Success 200 {object} domain.ProfileResponse
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /profile [put]
func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req domain.SaveProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	profile, err := h.service.Save(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to save profile").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile.ToResponse())
}

// RecommendedGoal handles GET /v1/profile/recommended-goal
// @Summary Compute a recommended daily goal
// @Description Derive the daily fluid target from weight and age without saving anything.
// @Tags profile
// @Produce json
// @Param weight query number true "Weight in kg" example(70)
// @Param age query integer true "Age in years" example(25)
// @Success 200 {object} domain.RecommendedGoalResponse
// @Failure 400 {object} problem.Problem
// @Router /profile/recommended-goal [get]
func (h *ProfileHandler) RecommendedGoal(w http.ResponseWriter, r *http.Request) {
	weight, err := strconv.ParseFloat(r.URL.Query().Get("weight"), 64)
	if err != nil || weight <= 0 {
		problem.BadRequest("weight must be a positive number").Write(w)
		return
	}

	age, err := strconv.Atoi(r.URL.Query().Get("age"))
	if err != nil || age <= 0 {
		problem.BadRequest("age must be a positive integer").Write(w)
		return
	}

	response := domain.RecommendedGoalResponse{
		WeightKg:    weight,
		AgeYears:    age,
		DailyGoalML: service.RecommendedGoal(weight, age),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
