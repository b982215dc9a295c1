package eventfinder

import (
	"errors"
	"time"
)

// Category keys for synthetic event generation.
const (
	CategorySports     = "sports"
	CategoryTradeFair  = "trade-fair"
	CategoryConference = "conference"
)

var (
	ErrInvalidDate  = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidRange = errors.New("end date precedes start date")
)

// SyntheticEvent is a deterministically generated calendar entry. Never
// persisted unless explicitly imported.
type SyntheticEvent struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Description  string    `json:"description,omitempty"`
	Date         time.Time `json:"date"`
	Time         string    `json:"time,omitempty"`
	EndDate      time.Time `json:"end_date"`
	VenueName    string    `json:"venue_name,omitempty"`
	VenueAddress string    `json:"venue_address,omitempty"`
	City         string    `json:"city"`
	Country      string    `json:"country,omitempty"`
	Source       string    `json:"source"`
	SourceURL    string    `json:"source_url,omitempty"`
	PriceRange   string    `json:"price_range,omitempty"`
	IsFree       bool      `json:"is_free"`
	IsCanceled   bool      `json:"is_canceled"`
	IsFavorited  bool      `json:"is_favorited"`
}

// SearchDTO is the event search request body. Dates are YYYY-MM-DD.
type SearchDTO struct {
	Location   string   `json:"location"    binding:"required"`
	EventTypes []string `json:"event_types"`
	StartDate  string   `json:"start_date"  binding:"required"`
	EndDate    string   `json:"end_date"    binding:"required"`
	SearchName string   `json:"search_name"`
}

// SearchResponse is the event search payload.
type SearchResponse struct {
	SearchParams SearchDTO        `json:"search_params"`
	Events       []SyntheticEvent `json:"events"`
	ResultsCount int              `json:"results_count"`
	Timestamp    time.Time        `json:"timestamp"`
}

// ImportResponse reports how many searched events were persisted.
type ImportResponse struct {
	Imported  int       `json:"imported"`
	Timestamp time.Time `json:"timestamp"`
}
