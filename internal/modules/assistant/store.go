package assistant

import (
	"context"
	"time"

	"github.com/revpilot/core/internal/models"
	"gorm.io/gorm"
)

// Store is the data-store collaborator the assembler fetches from. Injected
// so tests can substitute a fake.
type Store interface {
	ListHotels(ctx context.Context, limit int) ([]models.HotelModel, error)
	ListUpcomingEvents(ctx context.Context, limit int) ([]models.EventModel, error)
	ListForecasts(ctx context.Context, limit int) ([]models.ForecastModel, error)
	ListActuals(ctx context.Context, limit int) ([]models.HotelActualModel, error)
	ListRecentTasks(ctx context.Context, limit int) ([]models.TaskModel, error)
}

type gormStore struct{ db *gorm.DB }

// NewStore returns a Store backed by the relational database.
func NewStore(db *gorm.DB) Store { return &gormStore{db: db} }

func (s *gormStore) ListHotels(ctx context.Context, limit int) ([]models.HotelModel, error) {
	var items []models.HotelModel
	err := s.db.WithContext(ctx).Limit(limit).Find(&items).Error
	return items, err
}

func (s *gormStore) ListUpcomingEvents(ctx context.Context, limit int) ([]models.EventModel, error) {
	var items []models.EventModel
	err := s.db.WithContext(ctx).
		Where("start_date >= ? AND is_active = ?", time.Now(), true).
		Order("start_date ASC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (s *gormStore) ListForecasts(ctx context.Context, limit int) ([]models.ForecastModel, error) {
	var items []models.ForecastModel
	err := s.db.WithContext(ctx).
		Order("forecast_date ASC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (s *gormStore) ListActuals(ctx context.Context, limit int) ([]models.HotelActualModel, error) {
	var items []models.HotelActualModel
	err := s.db.WithContext(ctx).
		Order("actual_date DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (s *gormStore) ListRecentTasks(ctx context.Context, limit int) ([]models.TaskModel, error) {
	var items []models.TaskModel
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}
