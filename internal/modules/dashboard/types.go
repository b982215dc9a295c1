package dashboard

import "github.com/revpilot/core/internal/models"

// KPIs aggregates the headline numbers shown on the dashboard.
type KPIs struct {
	TotalHotels      int64   `json:"total_hotels"`
	TotalRooms       int64   `json:"total_rooms"`
	UpcomingEvents   int64   `json:"upcoming_events"`
	OpenTasks        int64   `json:"open_tasks"`
	RevenueThisMonth float64 `json:"revenue_this_month"`
	AvgOccupancy     float64 `json:"avg_occupancy"`
	AvgDailyRate     float64 `json:"avg_daily_rate"`
}

// MonthlyRevenue is one bucket of the revenue analytics series.
type MonthlyRevenue struct {
	Month      string  `json:"month"`
	Revenue    float64 `json:"revenue"`
	RoomNights int64   `json:"room_nights"`
}

// TopPerformer ranks a hotel by revenue over the lookback window.
type TopPerformer struct {
	HotelID      string  `json:"hotel_id"`
	HotelName    string  `json:"hotel_name"`
	Revenue      float64 `json:"revenue"`
	AvgOccupancy float64 `json:"avg_occupancy"`
}

// Overview bundles the dashboard payload.
type Overview struct {
	KPIs           KPIs                   `json:"kpis"`
	TopPerformers  []TopPerformer         `json:"top_performers"`
	RecentActivity []models.ActivityModel `json:"recent_activity"`
}
