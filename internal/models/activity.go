package models

// ActivityModel records an audit trail entry for a mutation.
type ActivityModel struct {
	Base
	UserID     string                 `json:"user_id"     gorm:"index"`
	Action     string                 `json:"action"      gorm:"index;not null"`
	EntityType string                 `json:"entity_type" gorm:"index"`
	EntityID   string                 `json:"entity_id"   gorm:"index"`
	Metadata   map[string]interface{} `json:"metadata"    gorm:"serializer:json;type:longtext"`
	IPAddress  string                 `json:"ip_address"`
	UserAgent  string                 `json:"user_agent"  gorm:"type:varchar(512)"`
}

func (ActivityModel) TableName() string { return "activity_log" }
