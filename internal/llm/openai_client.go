package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hydrobuddy/hydro-tracker/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrCoachUnavailable indicates the coaching service is not configured or unavailable.
	ErrCoachUnavailable = errors.New("coaching service unavailable")
	// ErrCoachRequest indicates an error during the coaching API request.
	ErrCoachRequest = errors.New("coaching request failed")
	// ErrCoachResponse indicates an error parsing the coaching response.
	ErrCoachResponse = errors.New("failed to parse coaching response")
)

// DefaultSystemPrompt is the baked-in coach persona, used unless a managed
// prompt override is supplied.
const DefaultSystemPrompt = `You are "HydroBuddy", a smart, scientific, and friendly hydration coach.

You receive a profile and a recent drinking history for a single user. Treat that data as your memory of the user and base every conclusion only on it.

Your role:
- Analyze the user's data scientifically (calculate BMI if needed, check hydration levels against the daily goal).
- If the user asks whether you remember their habits, say yes and cite their data.
- If they drink a lot of sugary drinks (milk tea, soda), kindly warn them.
- Keep the tone fun and encouraging.

Rules:
- Do NOT provide medical advice or diagnoses.
- Be concise and concrete.`

const analysisPromptTemplate = `%s

Task:
Provide a JSON summary for a %s report.
Format:
{
  "status": "excellent" | "good" | "warning" | "bad",
  "message": "string (max 2 sentences)",
  "tip": "string (one scientific hydration tip)"
}

No extra fields. No comments. No backticks.`

// ChatTurn is one message of an ongoing coaching conversation.
type ChatTurn struct {
	Role    string // "user" or "assistant"
	Content string
}

// CoachLLM is the interface for the hydration coaching model.
type CoachLLM interface {
	// AnalyzePeriod requests a structured status/message/tip verdict for the
	// given context summary.
	AnalyzePeriod(ctx context.Context, coachingContext string, period domain.AnalysisPeriod) (*domain.AnalysisResult, error)
	// Reply continues a conversation seeded with the system prompt and the
	// prior turns, returning the coach's next message.
	Reply(ctx context.Context, systemPrompt string, history []ChatTurn, userText string) (string, error)
	// SystemPrompt returns the coach persona used to seed chat sessions.
	SystemPrompt() string
}

// OpenAIClient implements CoachLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI coaching client.
// Returns nil if apiKey is empty. An empty systemPrompt falls back to the
// built-in persona.
func NewOpenAIClient(apiKey, model, systemPrompt string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

func (c *OpenAIClient) SystemPrompt() string {
	if c == nil {
		return DefaultSystemPrompt
	}
	return c.systemPrompt
}

// AnalyzePeriod calls OpenAI for a structured hydration verdict.
func (c *OpenAIClient) AnalyzePeriod(ctx context.Context, coachingContext string, period domain.AnalysisPeriod) (*domain.AnalysisResult, error) {
	if c == nil {
		return nil, ErrCoachUnavailable
	}

	userPrompt := fmt.Sprintf(analysisPromptTemplate, coachingContext, period)

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCoachRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrCoachResponse)
	}

	content := resp.Choices[0].Message.Content

	var result domain.AnalysisResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCoachResponse, err)
	}

	switch result.Status {
	case domain.StatusExcellent, domain.StatusGood, domain.StatusWarning, domain.StatusBad:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrCoachResponse, result.Status)
	}

	return &result, nil
}

// Reply replays the conversation history and returns the coach's next turn.
func (c *OpenAIClient) Reply(ctx context.Context, systemPrompt string, history []ChatTurn, userText string) (string, error) {
	if c == nil {
		return "", ErrCoachUnavailable
	}

	if systemPrompt == "" {
		systemPrompt = c.systemPrompt
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	messages = append(messages, openai.SystemMessage(systemPrompt))
	for _, turn := range history {
		if turn.Role == "user" {
			messages = append(messages, openai.UserMessage(turn.Content))
		} else {
			messages = append(messages, openai.AssistantMessage(turn.Content))
		}
	}
	messages = append(messages, openai.UserMessage(userText))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCoachRequest, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrCoachResponse)
	}

	return resp.Choices[0].Message.Content, nil
}
