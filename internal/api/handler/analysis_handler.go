package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hydrobuddy/hydro-tracker/internal/api/validation"
	"github.com/hydrobuddy/hydro-tracker/internal/domain"
	"github.com/hydrobuddy/hydro-tracker/internal/langfuse"
	"github.com/hydrobuddy/hydro-tracker/internal/service"
	"github.com/hydrobuddy/hydro-tracker/pkg/problem"
)

// AnalysisHandler serves AI coaching endpoints: period analyses, feedback
// scoring and chat conversations.
type AnalysisHandler struct {
	analysisService service.AnalysisService
	chatService     service.ChatService
	langfuseClient  langfuse.Client
}

func NewAnalysisHandler(analysisService service.AnalysisService, chatService service.ChatService, langfuseClient langfuse.Client) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		chatService:     chatService,
		langfuseClient:  langfuseClient,
	}
}

// Analyze handles GET /v1/analysis
// @Summary Period hydration analysis
// @Description Ask the AI coach for a daily or weekly analysis. Coaching failures degrade to a warning-status result, never an error.
// @Tags analysis
// @Produce json
// @Param period query string false "Analysis period" Enums(daily, weekly) default(daily)
// @Success 200 {object} domain.AnalysisResponse
// @Failure 400 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /analysis [get]
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	period := domain.AnalysisPeriod(r.URL.Query().Get("period"))
	if period == "" {
		period = domain.PeriodDaily
	}
	if period != domain.PeriodDaily && period != domain.PeriodWeekly {
		problem.BadRequest("period must be 'daily' or 'weekly'").Write(w)
		return
	}

	response, err := h.analysisService.Analyze(r.Context(), period)
	if err != nil {
		problem.InternalError("Failed to run analysis").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Feedback handles POST /v1/analysis/feedback
// @Summary Rate an analysis
// @Description Attach a 1-5 user rating to a previously returned analysis trace.
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body domain.AnalysisFeedbackRequest true "Rating payload"
// @Success 202 "Accepted"
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 503 {object} problem.Problem "Tracing backend not configured"
// @Router /analysis/feedback [post]
func (h *AnalysisHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	var req domain.AnalysisFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	if h.langfuseClient == nil || !h.langfuseClient.IsEnabled() {
		problem.ServiceUnavailable("Feedback collection is not configured").Write(w)
		return
	}

	err := h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Rating),
		Comment: req.Comment,
	})
	if err != nil {
		problem.InternalError("Failed to record feedback").Write(w)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// CreateChatSession handles POST /v1/chat/sessions
// @Summary Start a coaching chat
// @Description Open a chat session seeded with the profile and today's logs, and get the coach's greeting.
// @Tags chat
// @Produce json
// @Success 201 {object} domain.ChatSessionResponse
// @Failure 500 {object} problem.Problem
// @Router /chat/sessions [post]
func (h *AnalysisHandler) CreateChatSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.chatService.CreateSession(r.Context())
	if err != nil {
		problem.InternalError("Failed to start chat session").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(session)
}

// SendChatMessage handles POST /v1/chat/sessions/{sessionId}/messages
// @Summary Send a chat message
// @Description Continue an existing chat session. Coaching failures come back as a diagnostic reply.
// @Tags chat
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID" format(uuid)
// @Param request body domain.ChatMessageRequest true "Message payload"
// @Success 200 {object} domain.ChatMessageResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Unknown or expired session"
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /chat/sessions/{sessionId}/messages [post]
func (h *AnalysisHandler) SendChatMessage(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionId"))
	if err != nil {
		problem.BadRequest("Invalid session ID format").Write(w)
		return
	}

	var req domain.ChatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	response, err := h.chatService.SendMessage(r.Context(), sessionID, req.Text)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Chat session not found").Write(w)
			return
		}
		problem.InternalError("Failed to send message").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
