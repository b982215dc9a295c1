package models

import "time"

// ForecastModel represents a projected performance figure for a hotel and date.
// Monetary and rate fields are decimal strings to avoid float drift.
type ForecastModel struct {
	Base
	HotelID          string    `json:"hotel_id"           gorm:"index;not null"`
	ForecastType     string    `json:"forecast_type"      gorm:"default:revenue"`
	ForecastDate     time.Time `json:"forecast_date"      gorm:"index;not null"`
	OccupancyRate    string    `json:"occupancy_rate"     gorm:"type:decimal(5,2)"`
	AverageDailyRate string    `json:"average_daily_rate" gorm:"type:decimal(10,2)"`
	Revenue          string    `json:"revenue"            gorm:"type:decimal(12,2)"`
	RoomNights       int       `json:"room_nights"`
	EventID          *string   `json:"event_id"           gorm:"index"`
	Confidence       string    `json:"confidence"` // high, medium, low
	Methodology      string    `json:"methodology"`
	Notes            string    `json:"notes"              gorm:"type:text"`
}

func (ForecastModel) TableName() string { return "forecasts" }
