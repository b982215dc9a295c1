package models

// HotelStatus represents the operating state of a property.
type HotelStatus string

const (
	HotelActive      HotelStatus = "active"
	HotelInactive    HotelStatus = "inactive"
	HotelMaintenance HotelStatus = "maintenance"
)

// HotelModel represents a managed property.
type HotelModel struct {
	Base
	Name        string      `json:"name"         gorm:"not null;index"`
	Description string      `json:"description"  gorm:"type:text"`
	Address     string      `json:"address"`
	City        string      `json:"city"         gorm:"index"`
	State       string      `json:"state"`
	Country     string      `json:"country"`
	PostalCode  string      `json:"postal_code"`
	Phone       string      `json:"phone"`
	Email       string      `json:"email"`
	Website     string      `json:"website"`
	StarRating  int         `json:"star_rating"`
	TotalRooms  int         `json:"total_rooms"`
	ImageURL    string      `json:"image_url"`
	Status      HotelStatus `json:"status"       gorm:"default:active;index"`
}

func (HotelModel) TableName() string { return "hotels" }
