package models

import "time"

// UserModel represents a revenue-team member account.
type UserModel struct {
	Base
	Email       string     `json:"email"      gorm:"uniqueIndex;not null"`
	Password    string     `json:"-"          gorm:"not null"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Location    string     `json:"location"`
	Role        string     `json:"role"       gorm:"default:analyst"`
	IsActive    bool       `json:"is_active"  gorm:"default:true"`
	LastLoginAt *time.Time `json:"last_login_at"`
	LastLoginIP string     `json:"last_login_ip"`
	APITokens   []APIToken `json:"api_tokens,omitempty" gorm:"foreignKey:UserID"`
}

func (UserModel) TableName() string { return "users" }

// APIToken represents a personal API token for programmatic access.
type APIToken struct {
	Base
	UserID    string     `json:"-"          gorm:"index;not null"`
	Token     string     `json:"token"      gorm:"uniqueIndex;not null"`
	Name      string     `json:"name"`
	ExpiredAt *time.Time `json:"expired_at"`
}

func (APIToken) TableName() string { return "api_tokens" }
