package assistant

import "time"

// TopicFlags marks which data domains a chat query is asking about.
// It is a pure value recomputed per request.
type TopicFlags struct {
	NeedsHotels    bool
	NeedsEvents    bool
	NeedsForecasts bool
	NeedsActuals   bool
	NeedsRankings  bool
	NeedsTasks     bool
}

// Any reports whether at least one flag is set.
func (f TopicFlags) Any() bool {
	return f.NeedsHotels || f.NeedsEvents || f.NeedsForecasts ||
		f.NeedsActuals || f.NeedsRankings || f.NeedsTasks
}

// HotelSummary is the reduced hotel projection used for rendering.
type HotelSummary struct {
	ID         string
	Name       string
	City       string
	TotalRooms int
}

// EventSummary is the reduced event projection used for rendering.
type EventSummary struct {
	Name      string
	City      string
	StartDate time.Time
	EndDate   time.Time
	Category  string
}

// ForecastSummary is the reduced forecast projection used for rendering.
// Decimal strings from storage are parsed with a 0 fallback.
type ForecastSummary struct {
	HotelID      string
	ForecastDate time.Time
	Revenue      float64
	ADR          float64
	Occupancy    float64
	Confidence   string
}

// ActualSummary is the reduced actuals projection used for rendering.
type ActualSummary struct {
	HotelID    string
	ActualDate time.Time
	Revenue    float64
	ADR        float64
	Occupancy  float64
	RoomNights int
}

// TaskSummary is the reduced task projection used for rendering.
type TaskSummary struct {
	Title    string
	Status   string
	Priority string
	DueDate  *time.Time
}

// Context is the per-request bundle of capped summary lists.
type Context struct {
	Hotels    []HotelSummary
	Events    []EventSummary
	Forecasts []ForecastSummary
	Actuals   []ActualSummary
	Tasks     []TaskSummary
	Error     string
}

// Empty reports whether no list holds any data.
func (c Context) Empty() bool {
	return len(c.Hotels) == 0 && len(c.Events) == 0 && len(c.Forecasts) == 0 &&
		len(c.Actuals) == 0 && len(c.Tasks) == 0
}

// ChatDTO is the chat request body.
type ChatDTO struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse is the chat endpoint payload.
type ChatResponse struct {
	Message          string    `json:"message"`
	Timestamp        time.Time `json:"timestamp"`
	ProcessingTimeMs int64     `json:"processing_time_ms"`
}
