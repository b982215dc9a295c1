package event

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

func (s *Service) List(q pagination.Query, filter ListFilter) ([]models.EventModel, response.Pagination, error) {
	tx := s.db.Model(&models.EventModel{}).Order("start_date ASC")
	if filter.City != "" {
		tx = tx.Where("city = ?", filter.City)
	}
	if filter.Category != "" {
		tx = tx.Where("category = ?", filter.Category)
	}
	if filter.From != "" {
		from, err := time.Parse(dateLayout, filter.From)
		if err != nil {
			return nil, response.Pagination{}, ErrInvalidDate
		}
		tx = tx.Where("start_date >= ?", from)
	}
	if filter.To != "" {
		to, err := time.Parse(dateLayout, filter.To)
		if err != nil {
			return nil, response.Pagination{}, ErrInvalidDate
		}
		tx = tx.Where("start_date <= ?", to)
	}

	var items []models.EventModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

// Search matches events whose name, description or city contains the term.
func (s *Service) Search(term string, limit int) ([]models.EventModel, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	like := "%" + term + "%"
	var items []models.EventModel
	err := s.db.
		Where("name LIKE ? OR description LIKE ? OR city LIKE ?", like, like, like).
		Order("start_date ASC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

// Upcoming returns active events starting today or later, soonest first.
func (s *Service) Upcoming(limit int) ([]models.EventModel, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var items []models.EventModel
	err := s.db.
		Where("start_date >= ? AND is_active = ?", time.Now(), true).
		Order("start_date ASC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (s *Service) GetByID(id string) (*models.EventModel, error) {
	var e models.EventModel
	if err := s.db.First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (s *Service) Create(dto *CreateEventDTO) (*models.EventModel, error) {
	start, err := time.Parse(dateLayout, dto.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	end, err := time.Parse(dateLayout, dto.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	e := models.EventModel{
		Name:              dto.Name,
		Description:       dto.Description,
		Category:          dto.Category,
		StartDate:         start,
		EndDate:           end,
		Location:          dto.Location,
		City:              dto.City,
		State:             dto.State,
		Country:           dto.Country,
		ExpectedAttendees: dto.ExpectedAttendees,
		ImpactRadius:      dto.ImpactRadius,
		SourceURL:         dto.SourceURL,
		IsActive:          true,
	}
	return &e, s.db.Create(&e).Error
}

func (s *Service) Update(id string, dto *UpdateEventDTO) (*models.EventModel, error) {
	e, err := s.GetByID(id)
	if err != nil || e == nil {
		return e, err
	}

	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Category != nil {
		updates["category"] = *dto.Category
	}
	if dto.StartDate != nil {
		start, err := time.Parse(dateLayout, *dto.StartDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		updates["start_date"] = start
	}
	if dto.EndDate != nil {
		end, err := time.Parse(dateLayout, *dto.EndDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		updates["end_date"] = end
	}
	if dto.Location != nil {
		updates["location"] = *dto.Location
	}
	if dto.City != nil {
		updates["city"] = *dto.City
	}
	if dto.State != nil {
		updates["state"] = *dto.State
	}
	if dto.Country != nil {
		updates["country"] = *dto.Country
	}
	if dto.ExpectedAttendees != nil {
		updates["expected_attendees"] = *dto.ExpectedAttendees
	}
	if dto.ImpactRadius != nil {
		updates["impact_radius"] = *dto.ImpactRadius
	}
	if dto.SourceURL != nil {
		updates["source_url"] = *dto.SourceURL
	}
	if dto.IsActive != nil {
		updates["is_active"] = *dto.IsActive
	}
	if len(updates) == 0 {
		return e, nil
	}
	if err := s.db.Model(e).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *Service) Delete(id string) (bool, error) {
	res := s.db.Delete(&models.EventModel{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
