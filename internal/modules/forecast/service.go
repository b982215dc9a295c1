package forecast

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

func (s *Service) List(q pagination.Query, filter ListFilter) ([]models.ForecastModel, response.Pagination, error) {
	tx := s.db.Model(&models.ForecastModel{}).Order("forecast_date ASC")
	if filter.HotelID != "" {
		tx = tx.Where("hotel_id = ?", filter.HotelID)
	}
	if filter.Type != "" {
		tx = tx.Where("forecast_type = ?", filter.Type)
	}
	if filter.From != "" {
		from, err := time.Parse(dateLayout, filter.From)
		if err != nil {
			return nil, response.Pagination{}, ErrInvalidDate
		}
		tx = tx.Where("forecast_date >= ?", from)
	}
	if filter.To != "" {
		to, err := time.Parse(dateLayout, filter.To)
		if err != nil {
			return nil, response.Pagination{}, ErrInvalidDate
		}
		tx = tx.Where("forecast_date <= ?", to)
	}

	var items []models.ForecastModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

func (s *Service) GetByID(id string) (*models.ForecastModel, error) {
	var f models.ForecastModel
	if err := s.db.First(&f, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (s *Service) Create(dto *CreateForecastDTO) (*models.ForecastModel, error) {
	date, err := time.Parse(dateLayout, dto.ForecastDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	forecastType := dto.ForecastType
	if forecastType == "" {
		forecastType = "revenue"
	}

	f := models.ForecastModel{
		HotelID:          dto.HotelID,
		ForecastType:     forecastType,
		ForecastDate:     date,
		OccupancyRate:    dto.OccupancyRate,
		AverageDailyRate: dto.AverageDailyRate,
		Revenue:          dto.Revenue,
		RoomNights:       dto.RoomNights,
		EventID:          dto.EventID,
		Confidence:       dto.Confidence,
		Methodology:      dto.Methodology,
		Notes:            dto.Notes,
	}
	return &f, s.db.Create(&f).Error
}

func (s *Service) Update(id string, dto *UpdateForecastDTO) (*models.ForecastModel, error) {
	f, err := s.GetByID(id)
	if err != nil || f == nil {
		return f, err
	}

	updates := map[string]interface{}{}
	if dto.ForecastType != nil {
		updates["forecast_type"] = *dto.ForecastType
	}
	if dto.ForecastDate != nil {
		date, err := time.Parse(dateLayout, *dto.ForecastDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		updates["forecast_date"] = date
	}
	if dto.OccupancyRate != nil {
		updates["occupancy_rate"] = *dto.OccupancyRate
	}
	if dto.AverageDailyRate != nil {
		updates["average_daily_rate"] = *dto.AverageDailyRate
	}
	if dto.Revenue != nil {
		updates["revenue"] = *dto.Revenue
	}
	if dto.RoomNights != nil {
		updates["room_nights"] = *dto.RoomNights
	}
	if dto.EventID != nil {
		updates["event_id"] = *dto.EventID
	}
	if dto.Confidence != nil {
		updates["confidence"] = *dto.Confidence
	}
	if dto.Methodology != nil {
		updates["methodology"] = *dto.Methodology
	}
	if dto.Notes != nil {
		updates["notes"] = *dto.Notes
	}
	if len(updates) == 0 {
		return f, nil
	}
	if err := s.db.Model(f).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *Service) Delete(id string) (bool, error) {
	res := s.db.Delete(&models.ForecastModel{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
