package models

// EntityType indicates which resource a comment is attached to.
type EntityType string

const (
	EntityHotel    EntityType = "hotel"
	EntityEvent    EntityType = "event"
	EntityForecast EntityType = "forecast"
	EntityTask     EntityType = "task"
)

// CommentModel represents a discussion comment on any resource.
type CommentModel struct {
	Base
	Content    string         `json:"content"     gorm:"type:text;not null"`
	EntityType EntityType     `json:"entity_type" gorm:"not null;index:idx_entity,priority:1"`
	EntityID   string         `json:"entity_id"   gorm:"not null;index:idx_entity,priority:2"`
	ParentID   *string        `json:"parent_id"   gorm:"index"`
	Children   []CommentModel `json:"children,omitempty" gorm:"foreignKey:ParentID"`
	AuthorID   string         `json:"author_id"   gorm:"index;not null"`
	IsResolved bool           `json:"is_resolved" gorm:"default:false;index"`
}

func (CommentModel) TableName() string { return "comments" }
