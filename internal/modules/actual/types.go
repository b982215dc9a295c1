package actual

type ActualDTO struct {
	HotelID          string `json:"hotel_id" binding:"required"`
	ActualDate       string `json:"actual_date" binding:"required"`
	OccupancyRate    string `json:"occupancy_rate"`
	AverageDailyRate string `json:"average_daily_rate"`
	Revenue          string `json:"revenue"`
	RoomNights       int    `json:"room_nights"`
	GuestCount       int    `json:"guest_count"`
}

type BulkUpsertDTO struct {
	Records []ActualDTO `json:"records" binding:"required,min=1,max=500,dive"`
}

type BulkUpsertResult struct {
	Upserted int `json:"upserted"`
}

type HotelKPIs struct {
	HotelID      string  `json:"hotel_id" gorm:"-"`
	WindowDays   int     `json:"window_days" gorm:"-"`
	Revenue      float64 `json:"revenue"`
	AvgDailyRate float64 `json:"avg_daily_rate"`
	AvgOccupancy float64 `json:"avg_occupancy"`
	RoomNights   int     `json:"room_nights"`
	DaysReported int     `json:"days_reported"`
}

type ListFilter struct {
	HotelID string
	From    string
	To      string
}
