package forecast

type CreateForecastDTO struct {
	HotelID          string  `json:"hotel_id" binding:"required"`
	ForecastType     string  `json:"forecast_type"`
	ForecastDate     string  `json:"forecast_date" binding:"required"`
	OccupancyRate    string  `json:"occupancy_rate"`
	AverageDailyRate string  `json:"average_daily_rate"`
	Revenue          string  `json:"revenue"`
	RoomNights       int     `json:"room_nights"`
	EventID          *string `json:"event_id"`
	Confidence       string  `json:"confidence" binding:"omitempty,oneof=high medium low"`
	Methodology      string  `json:"methodology"`
	Notes            string  `json:"notes"`
}

type UpdateForecastDTO struct {
	ForecastType     *string `json:"forecast_type"`
	ForecastDate     *string `json:"forecast_date"`
	OccupancyRate    *string `json:"occupancy_rate"`
	AverageDailyRate *string `json:"average_daily_rate"`
	Revenue          *string `json:"revenue"`
	RoomNights       *int    `json:"room_nights"`
	EventID          *string `json:"event_id"`
	Confidence       *string `json:"confidence" binding:"omitempty,oneof=high medium low"`
	Methodology      *string `json:"methodology"`
	Notes            *string `json:"notes"`
}

type ListFilter struct {
	HotelID string
	Type    string
	From    string
	To      string
}
