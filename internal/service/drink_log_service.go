package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hydrobuddy/hydro-tracker/internal/domain"
	"github.com/hydrobuddy/hydro-tracker/internal/repository"
	"github.com/hydrobuddy/hydro-tracker/pkg/pagination"
)

// DrinkLogService records and lists intake events.
type DrinkLogService interface {
	// Log appends a new entry stamped with the current time.
	Log(ctx context.Context, req *domain.CreateDrinkLogRequest) (*domain.DrinkLog, error)
	// List returns paginated history, newest first.
	List(ctx context.Context, filter domain.DrinkLogFilter) (*domain.DrinkLogListResponse, error)
}

type drinkLogService struct {
	repo repository.DrinkLogRepository
	now  func() time.Time
}

func NewDrinkLogService(repo repository.DrinkLogRepository) DrinkLogService {
	return &drinkLogService{
		repo: repo,
		now:  time.Now,
	}
}

// Log validates and appends a new drink entry. Labels are only kept for the
// "other" category; a label on any other category is dropped at this boundary.
func (s *drinkLogService) Log(ctx context.Context, req *domain.CreateDrinkLogRequest) (*domain.DrinkLog, error) {
	if !req.Category.Valid() || req.AmountML <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var label *string
	if req.Category == domain.DrinkOther && req.Label != nil {
		trimmed := strings.TrimSpace(*req.Label)
		if trimmed != "" {
			label = &trimmed
		}
	}

	log := &domain.DrinkLog{
		ID:       uuid.New(),
		Category: req.Category,
		Label:    label,
		AmountML: req.AmountML,
		LoggedAt: s.now().UTC(),
	}

	if err := s.repo.Create(ctx, log); err != nil {
		return nil, err
	}

	return log, nil
}

func (s *drinkLogService) List(ctx context.Context, filter domain.DrinkLogFilter) (*domain.DrinkLogListResponse, error) {
	logs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(logs) > limit

	// Trim to actual limit
	if hasMore {
		logs = logs[:limit]
	}

	// Build response
	response := &domain.DrinkLogListResponse{
		Data: make([]domain.DrinkLogResponse, len(logs)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, log := range logs {
		response.Data[i] = log.ToResponse()
	}

	// Set next cursor if there are more results
	if hasMore && len(logs) > 0 {
		lastLog := logs[len(logs)-1]
		cursor := &pagination.Cursor{
			ID:       lastLog.ID,
			LoggedAt: lastLog.LoggedAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
