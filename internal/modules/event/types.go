package event

import "github.com/revpilot/core/internal/models"

type CreateEventDTO struct {
	Name              string               `json:"name" binding:"required"`
	Description       string               `json:"description"`
	Category          models.EventCategory `json:"category" binding:"required,oneof=sports trade_fair conference festival other"`
	StartDate         string               `json:"start_date" binding:"required"`
	EndDate           string               `json:"end_date" binding:"required"`
	Location          string               `json:"location"`
	City              string               `json:"city" binding:"required"`
	State             string               `json:"state"`
	Country           string               `json:"country"`
	ExpectedAttendees int                  `json:"expected_attendees"`
	ImpactRadius      int                  `json:"impact_radius"`
	SourceURL         string               `json:"source_url"`
}

type UpdateEventDTO struct {
	Name              *string               `json:"name"`
	Description       *string               `json:"description"`
	Category          *models.EventCategory `json:"category" binding:"omitempty,oneof=sports trade_fair conference festival other"`
	StartDate         *string               `json:"start_date"`
	EndDate           *string               `json:"end_date"`
	Location          *string               `json:"location"`
	City              *string               `json:"city"`
	State             *string               `json:"state"`
	Country           *string               `json:"country"`
	ExpectedAttendees *int                  `json:"expected_attendees"`
	ImpactRadius      *int                  `json:"impact_radius"`
	SourceURL         *string               `json:"source_url"`
	IsActive          *bool                 `json:"is_active"`
}

type ListFilter struct {
	City     string
	Category models.EventCategory
	From     string
	To       string
}
