package hotel

import "github.com/revpilot/core/internal/models"

type CreateHotelDTO struct {
	Name        string `json:"name"        binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"        binding:"required"`
	State       string `json:"state"`
	Country     string `json:"country"`
	PostalCode  string `json:"postal_code"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Website     string `json:"website"`
	StarRating  int    `json:"star_rating" binding:"omitempty,min=1,max=5"`
	TotalRooms  int    `json:"total_rooms" binding:"required,min=1"`
	ImageURL    string `json:"image_url"`
}

type UpdateHotelDTO struct {
	Name        *string             `json:"name"`
	Description *string             `json:"description"`
	Address     *string             `json:"address"`
	City        *string             `json:"city"`
	State       *string             `json:"state"`
	Country     *string             `json:"country"`
	PostalCode  *string             `json:"postal_code"`
	Phone       *string             `json:"phone"`
	Email       *string             `json:"email"`
	Website     *string             `json:"website"`
	StarRating  *int                `json:"star_rating"`
	TotalRooms  *int                `json:"total_rooms"`
	ImageURL    *string             `json:"image_url"`
	Status      *models.HotelStatus `json:"status"`
}

// ListFilter narrows the hotel listing.
type ListFilter struct {
	City   string
	Status *models.HotelStatus
}
