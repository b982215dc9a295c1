package task

import (
	"errors"
	"time"

	"github.com/revpilot/core/internal/models"
	"github.com/revpilot/core/internal/pkg/pagination"
	"github.com/revpilot/core/internal/pkg/response"
	"gorm.io/gorm"
)

var ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")

const dateLayout = "2006-01-02"

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List(q pagination.Query, filter ListFilter) ([]models.TaskModel, response.Pagination, error) {
	tx := s.db.Model(&models.TaskModel{}).Order("created_at DESC")
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		tx = tx.Where("priority = ?", filter.Priority)
	}
	if filter.AssignedTo != "" {
		tx = tx.Where("assigned_to = ?", filter.AssignedTo)
	}
	if filter.HotelID != "" {
		tx = tx.Where("hotel_id = ?", filter.HotelID)
	}

	var items []models.TaskModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

// Upcoming returns unfinished tasks with a due date, soonest first.
func (s *Service) Upcoming(limit int) ([]models.TaskModel, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var items []models.TaskModel
	err := s.db.
		Where("status IN ? AND due_date IS NOT NULL", []models.TaskStatus{models.TaskPending, models.TaskInProgress}).
		Order("due_date ASC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (s *Service) GetByID(id string) (*models.TaskModel, error) {
	var t models.TaskModel
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (s *Service) Create(dto *CreateTaskDTO) (*models.TaskModel, error) {
	t := models.TaskModel{
		Title:       dto.Title,
		Description: dto.Description,
		Status:      models.TaskPending,
		Priority:    models.TaskMedium,
		AssignedTo:  dto.AssignedTo,
		HotelID:     dto.HotelID,
		EventID:     dto.EventID,
	}
	if dto.Priority != "" {
		t.Priority = dto.Priority
	}
	if dto.DueDate != nil {
		due, err := time.Parse(dateLayout, *dto.DueDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		t.DueDate = &due
	}
	return &t, s.db.Create(&t).Error
}

func (s *Service) Update(id string, dto *UpdateTaskDTO) (*models.TaskModel, error) {
	t, err := s.GetByID(id)
	if err != nil || t == nil {
		return t, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Status != nil {
		updates["status"] = *dto.Status
		// Stamp the completion time on the transition into "completed".
		if *dto.Status == models.TaskCompleted && t.Status != models.TaskCompleted {
			now := time.Now()
			updates["completed_at"] = &now
		}
	}
	if dto.Priority != nil {
		updates["priority"] = *dto.Priority
	}
	if dto.DueDate != nil {
		due, err := time.Parse(dateLayout, *dto.DueDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		updates["due_date"] = &due
	}
	if dto.AssignedTo != nil {
		updates["assigned_to"] = *dto.AssignedTo
	}
	if dto.HotelID != nil {
		updates["hotel_id"] = *dto.HotelID
	}
	if dto.EventID != nil {
		updates["event_id"] = *dto.EventID
	}
	if len(updates) == 0 {
		return t, nil
	}
	if err := s.db.Model(t).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *Service) Delete(id string) (bool, error) {
	res := s.db.Delete(&models.TaskModel{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
