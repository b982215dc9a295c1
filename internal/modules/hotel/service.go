package hotel

import (
	"errors"

	"github.com/revpilot/core/internal/models"
	"github.com/revpilot/core/internal/pkg/pagination"
	"github.com/revpilot/core/internal/pkg/response"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List(q pagination.Query, filter ListFilter) ([]models.HotelModel, response.Pagination, error) {
	tx := s.db.Model(&models.HotelModel{}).Order("name ASC")
	if filter.City != "" {
		tx = tx.Where("city = ?", filter.City)
	}
	if filter.Status != nil {
		tx = tx.Where("status = ?", *filter.Status)
	}
	var items []models.HotelModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

func (s *Service) GetByID(id string) (*models.HotelModel, error) {
	var h models.HotelModel
	if err := s.db.First(&h, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &h, nil
}

func (s *Service) Create(dto *CreateHotelDTO) (*models.HotelModel, error) {
	h := models.HotelModel{
		Name:        dto.Name,
		Description: dto.Description,
		Address:     dto.Address,
		City:        dto.City,
		State:       dto.State,
		Country:     dto.Country,
		PostalCode:  dto.PostalCode,
		Phone:       dto.Phone,
		Email:       dto.Email,
		Website:     dto.Website,
		StarRating:  dto.StarRating,
		TotalRooms:  dto.TotalRooms,
		ImageURL:    dto.ImageURL,
		Status:      models.HotelActive,
	}
	return &h, s.db.Create(&h).Error
}

func (s *Service) Update(id string, dto *UpdateHotelDTO) (*models.HotelModel, error) {
	h, err := s.GetByID(id)
	if err != nil || h == nil {
		return h, err
	}

	updates := map[string]interface{}{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Address != nil {
		updates["address"] = *dto.Address
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
	if dto.PostalCode != nil {
		updates["postal_code"] = *dto.PostalCode
	}
	if dto.Phone != nil {
		updates["phone"] = *dto.Phone
	}
	if dto.Email != nil {
		updates["email"] = *dto.Email
	}
	if dto.Website != nil {
		updates["website"] = *dto.Website
	}
	if dto.StarRating != nil {
		updates["star_rating"] = *dto.StarRating
	}
	if dto.TotalRooms != nil {
		updates["total_rooms"] = *dto.TotalRooms
	}
	if dto.ImageURL != nil {
		updates["image_url"] = *dto.ImageURL
	}
	if dto.Status != nil {
		updates["status"] = *dto.Status
	}
	if len(updates) == 0 {
		return h, nil
	}
	if err := s.db.Model(h).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *Service) Delete(id string) (bool, error) {
	res := s.db.Delete(&models.HotelModel{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
