package models

import "time"

// HotelActualModel records realized daily performance for a hotel.
// Monetary and rate fields are decimal strings to avoid float drift.
type HotelActualModel struct {
	Base
	HotelID          string    `json:"hotel_id"           gorm:"index;not null;uniqueIndex:idx_hotel_date,priority:1"`
	ActualDate       time.Time `json:"actual_date"        gorm:"index;not null;uniqueIndex:idx_hotel_date,priority:2"`
	OccupancyRate    string    `json:"occupancy_rate"     gorm:"type:decimal(5,2)"`
	AverageDailyRate string    `json:"average_daily_rate" gorm:"type:decimal(10,2)"`
	Revenue          string    `json:"revenue"            gorm:"type:decimal(12,2)"`
	RoomNights       int       `json:"room_nights"`
	GuestCount       int       `json:"guest_count"`
}

func (HotelActualModel) TableName() string { return "hotel_actuals" }
