package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hydrobuddy/hydro-tracker/internal/domain"
	"github.com/hydrobuddy/hydro-tracker/internal/llm"
	"github.com/hydrobuddy/hydro-tracker/internal/repository"
)

// openingPrompt is the hidden first turn asking the coach to break the ice.
const openingPrompt = "Generate a short, fun analysis report of my drinking habits today. Be scientific but friendly."

// fallbackGreeting is used when the coach produces an empty opening message.
const fallbackGreeting = "Hi! I'm your hydration coach. How is your drinking going today?"

// ChatService runs coaching conversations. Sessions live in memory only and
// are discarded when the process exits; each session is seeded with a fresh
// coaching context, which is the coach's whole memory of the user.
type ChatService interface {
	// CreateSession opens a conversation and returns the coach's greeting.
	CreateSession(ctx context.Context) (*domain.ChatSessionResponse, error)
	// SendMessage continues an existing conversation. Coaching failures come
	// back as a diagnostic reply, never as an error.
	SendMessage(ctx context.Context, sessionID uuid.UUID, text string) (*domain.ChatMessageResponse, error)
}

type chatSession struct {
	systemPrompt string

	// mu serializes turns so concurrent sends to one session cannot
	// interleave history writes.
	mu      sync.Mutex
	history []llm.ChatTurn
}

type chatService struct {
	drinkLogRepo repository.DrinkLogRepository
	profileRepo  repository.ProfileRepository
	coach        llm.CoachLLM
	now          func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*chatSession
}

// NewChatService creates a new ChatService. coach may be nil; conversations
// then consist of degraded diagnostic replies.
func NewChatService(drinkLogRepo repository.DrinkLogRepository, profileRepo repository.ProfileRepository, coach llm.CoachLLM) ChatService {
	return &chatService{
		drinkLogRepo: drinkLogRepo,
		profileRepo:  profileRepo,
		coach:        coach,
		now:          time.Now,
		sessions:     make(map[uuid.UUID]*chatSession),
	}
}

func (s *chatService) CreateSession(ctx context.Context) (*domain.ChatSessionResponse, error) {
	profile, err := s.currentProfile(ctx)
	if err != nil {
		return nil, err
	}

	loc := profile.Location()
	dayStart, dayEnd := dayBounds(s.now(), loc)
	logs, err := s.drinkLogRepo.ListInRange(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	persona := llm.DefaultSystemPrompt
	if s.coach != nil {
		persona = s.coach.SystemPrompt()
	}
	systemPrompt := persona + "\n\n" + BuildCoachingContext(profile, logs)

	session := &chatSession{systemPrompt: systemPrompt}
	greeting := s.reply(ctx, session, openingPrompt)
	if greeting == "" {
		greeting = fallbackGreeting
	}

	sessionID := uuid.New()
	s.mu.Lock()
	s.sessions[sessionID] = session
	s.mu.Unlock()

	return &domain.ChatSessionResponse{
		SessionID: sessionID,
		Greeting:  greeting,
	}, nil
}

func (s *chatService) SendMessage(ctx context.Context, sessionID uuid.UUID, text string) (*domain.ChatMessageResponse, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok {
		return nil, domain.ErrNotFound
	}

	return &domain.ChatMessageResponse{Reply: s.reply(ctx, session, text)}, nil
}

// reply sends one turn and records it in the session history. Failures are
// converted to a diagnostic reply and kept out of the history so a later
// retry starts clean.
func (s *chatService) reply(ctx context.Context, session *chatSession, text string) string {
	if s.coach == nil {
		return diagnoseCoachFailure(domain.ErrCoachDisabled)
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	answer, err := s.coach.Reply(ctx, session.systemPrompt, session.history, text)
	if err != nil {
		return diagnoseCoachFailure(err)
	}

	session.history = append(session.history,
		llm.ChatTurn{Role: "user", Content: text},
		llm.ChatTurn{Role: "assistant", Content: answer},
	)

	return answer
}

func (s *chatService) currentProfile(ctx context.Context) (*domain.Profile, error) {
	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		if err == domain.ErrProfileNotFound {
			return domain.DefaultProfile(RecommendedGoal(domain.DefaultWeightKg, domain.DefaultAgeYears)), nil
		}
		return nil, err
	}
	return profile, nil
}
