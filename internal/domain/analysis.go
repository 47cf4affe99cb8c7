package domain

import "github.com/google/uuid"

// AnalysisStatus classifies the user's hydration for a reporting period.
// @Description Hydration status: excellent, good, warning or bad.
type AnalysisStatus string

const (
	StatusExcellent AnalysisStatus = "excellent"
	StatusGood      AnalysisStatus = "good"
	StatusWarning   AnalysisStatus = "warning"
	StatusBad       AnalysisStatus = "bad"
)

// AnalysisPeriod selects the reporting window for an analysis.
type AnalysisPeriod string

const (
	PeriodDaily  AnalysisPeriod = "daily"
	PeriodWeekly AnalysisPeriod = "weekly"
)

// AnalysisResult is the coach's verdict for a period. It is transient:
// regenerated on demand and never persisted.
// @Description Coaching analysis with status classification, message and tip.
type AnalysisResult struct {
	// Status classification
	Status AnalysisStatus `json:"status" example:"good"`
	// Short coaching message
	Message string `json:"message" example:"You are on track today, keep sipping regularly."`
	// Short actionable tip
	Tip string `json:"tip" example:"Drink a glass of water before each meal."`
}

// AnalysisResponse is the response for the analysis endpoint.
type AnalysisResponse struct {
	// Reporting period
	Period AnalysisPeriod `json:"period" example:"daily"`
	// Coaching analysis
	Analysis AnalysisResult `json:"analysis"`
	// Trace ID for feedback (only present when Langfuse is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// AnalysisFeedbackRequest is the request body for rating an analysis.
// @Description User rating for a previously returned analysis trace.
type AnalysisFeedbackRequest struct {
	// Trace ID returned with the analysis
	TraceID string `json:"trace_id" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating from 1 (useless) to 5 (great)
	Rating int `json:"rating" validate:"required,min=1,max=5" example:"4"`
	// Optional free-text comment
	Comment string `json:"comment" validate:"omitempty,max=500" example:"Spot on."`
}

// ChatSessionResponse is the response for creating a chat session.
// @Description New coaching chat session with the coach's opening message.
type ChatSessionResponse struct {
	// Session identifier for subsequent messages
	SessionID uuid.UUID `json:"session_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Coach's opening message
	Greeting string `json:"greeting" example:"Hi! You've had 400ml so far today, let's keep it going."`
}

// ChatMessageRequest is the request body for a chat turn.
type ChatMessageRequest struct {
	// User's message text
	Text string `json:"text" validate:"required,max=2000" example:"Do you remember my habits?"`
}

// ChatMessageResponse is the response body for a chat turn.
type ChatMessageResponse struct {
	// Coach's reply
	Reply string `json:"reply" example:"Of course, you are 25 and have logged 400ml today."`
}
