package repository

import (
	"context"
	"time"

	"github.com/hydrobuddy/hydro-tracker/internal/domain"
	"github.com/hydrobuddy/hydro-tracker/pkg/pagination"
	"gorm.io/gorm"
)

type DrinkLogRepository interface {
	Create(ctx context.Context, log *domain.DrinkLog) error
	// List returns logs newest first with cursor pagination.
	List(ctx context.Context, filter domain.DrinkLogFilter) ([]domain.DrinkLog, error)
	// ListInRange returns logs with from <= logged_at < to, oldest first.
	ListInRange(ctx context.Context, from, to time.Time) ([]domain.DrinkLog, error)
	// All returns the full history in chronological order.
	All(ctx context.Context) ([]domain.DrinkLog, error)
	// LastLoggedAt returns the most recent log time, or the zero time when
	// the history is empty.
	LastLoggedAt(ctx context.Context) (time.Time, error)
	// ReplaceAll swaps the whole collection in one transaction.
	ReplaceAll(ctx context.Context, logs []domain.DrinkLog) error
}

type drinkLogRepository struct {
	db *gorm.DB
}

func NewDrinkLogRepository(db *gorm.DB) DrinkLogRepository {
	return &drinkLogRepository{db: db}
}

func (r *drinkLogRepository) Create(ctx context.Context, log *domain.DrinkLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *drinkLogRepository) List(ctx context.Context, filter domain.DrinkLogFilter) ([]domain.DrinkLog, error) {
	query := r.db.WithContext(ctx).Order("logged_at DESC")

	// Apply time filters
	if filter.From != nil {
		query = query.Where("logged_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("logged_at < ?", filter.To)
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: get records with logged_at < cursor.LoggedAt
			// or same logged_at but id < cursor.ID
			query = query.Where(
				"(logged_at < ?) OR (logged_at = ? AND id < ?)",
				cursor.LoggedAt, cursor.LoggedAt, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var logs []domain.DrinkLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *drinkLogRepository) ListInRange(ctx context.Context, from, to time.Time) ([]domain.DrinkLog, error) {
	var logs []domain.DrinkLog
	err := r.db.WithContext(ctx).
		Where("logged_at >= ? AND logged_at < ?", from, to).
		Order("logged_at ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *drinkLogRepository) All(ctx context.Context) ([]domain.DrinkLog, error) {
	var logs []domain.DrinkLog
	err := r.db.WithContext(ctx).Order("logged_at ASC").Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *drinkLogRepository) LastLoggedAt(ctx context.Context) (time.Time, error) {
	var log domain.DrinkLog
	err := r.db.WithContext(ctx).Order("logged_at DESC").First(&log).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}
	return log.LoggedAt, nil
}

func (r *drinkLogRepository) ReplaceAll(ctx context.Context, logs []domain.DrinkLog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.DrinkLog{}).Error; err != nil {
			return err
		}
		if len(logs) == 0 {
			return nil
		}
		return tx.Create(&logs).Error
	})
}
