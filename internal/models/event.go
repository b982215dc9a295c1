package models

import "time"

// EventCategory classifies a demand-driving event.
type EventCategory string

const (
	EventSports     EventCategory = "sports"
	EventTradeFair  EventCategory = "trade_fair"
	EventConference EventCategory = "conference"
	EventFestival   EventCategory = "festival"
	EventOther      EventCategory = "other"
)

// EventModel represents a demand-driving event near managed properties.
type EventModel struct {
	Base
	Name              string        `json:"name"               gorm:"not null;index"`
	Description       string        `json:"description"        gorm:"type:text"`
	Category          EventCategory `json:"category"           gorm:"index"`
	StartDate         time.Time     `json:"start_date"         gorm:"index;not null"`
	EndDate           time.Time     `json:"end_date"           gorm:"index"`
	Location          string        `json:"location"`
	City              string        `json:"city"               gorm:"index"`
	State             string        `json:"state"`
	Country           string        `json:"country"`
	ExpectedAttendees int           `json:"expected_attendees"`
	ImpactRadius      int           `json:"impact_radius"`
	SourceURL         string        `json:"source_url"`
	IsActive          bool          `json:"is_active"          gorm:"default:true;index"`
}

func (EventModel) TableName() string { return "events" }
