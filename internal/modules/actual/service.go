package actual

import (
	"errors"
	"time"

	"github.com/revpilot/core/internal/models"
	"github.com/revpilot/core/internal/pkg/pagination"
	"github.com/revpilot/core/internal/pkg/response"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrInvalidDate = errors.New("date must be in YYYY-MM-DD format")

const dateLayout = "2006-01-02"

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List(q pagination.Query, filter ListFilter) ([]models.HotelActualModel, response.Pagination, error) {
	tx := s.db.Model(&models.HotelActualModel{}).Order("actual_date DESC")
	if filter.HotelID != "" {
		tx = tx.Where("hotel_id = ?", filter.HotelID)
	}
	if filter.From != "" {
		from, err := time.Parse(dateLayout, filter.From)
		if err != nil {
			return nil, response.Pagination{}, ErrInvalidDate
		}
		tx = tx.Where("actual_date >= ?", from)
	}
	if filter.To != "" {
		to, err := time.Parse(dateLayout, filter.To)
		if err != nil {
			return nil, response.Pagination{}, ErrInvalidDate
		}
		tx = tx.Where("actual_date <= ?", to)
	}

	var items []models.HotelActualModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

func (s *Service) GetByID(id string) (*models.HotelActualModel, error) {
	var a models.HotelActualModel
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// BulkUpsert inserts or replaces actuals keyed on (hotel_id, actual_date).
func (s *Service) BulkUpsert(dto *BulkUpsertDTO) (*BulkUpsertResult, error) {
	records := make([]models.HotelActualModel, 0, len(dto.Records))
	for _, r := range dto.Records {
		date, err := time.Parse(dateLayout, r.ActualDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		records = append(records, models.HotelActualModel{
			HotelID:          r.HotelID,
			ActualDate:       date,
			OccupancyRate:    r.OccupancyRate,
			AverageDailyRate: r.AverageDailyRate,
			Revenue:          r.Revenue,
			RoomNights:       r.RoomNights,
			GuestCount:       r.GuestCount,
		})
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "hotel_id"}, {Name: "actual_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"occupancy_rate", "average_daily_rate", "revenue", "room_nights", "guest_count",
		}),
	}).Create(&records).Error
	if err != nil {
		return nil, err
	}
	return &BulkUpsertResult{Upserted: len(records)}, nil
}

// HotelKPIs aggregates one hotel's actuals over the trailing window.
func (s *Service) HotelKPIs(hotelID string, days int) (*HotelKPIs, error) {
	if days <= 0 || days > 365 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	k := HotelKPIs{HotelID: hotelID, WindowDays: days}
	err := s.db.Model(&models.HotelActualModel{}).
		Select("COALESCE(SUM(revenue), 0) AS revenue, " +
			"COALESCE(AVG(average_daily_rate), 0) AS avg_daily_rate, " +
			"COALESCE(AVG(occupancy_rate), 0) AS avg_occupancy, " +
			"COALESCE(SUM(room_nights), 0) AS room_nights, " +
			"COUNT(*) AS days_reported").
		Where("hotel_id = ? AND actual_date >= ?", hotelID, since).
		Scan(&k).Error
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func (s *Service) Delete(id string) (bool, error) {
	res := s.db.Delete(&models.HotelActualModel{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
