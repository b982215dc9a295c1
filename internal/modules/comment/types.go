package comment

import "github.com/revpilot/core/internal/models"

type CreateCommentDTO struct {
	Content    string            `json:"content" binding:"required"`
	EntityType models.EntityType `json:"entity_type" binding:"required,oneof=hotel event forecast task"`
	EntityID   string            `json:"entity_id" binding:"required"`
	ParentID   *string           `json:"parent_id"`
}
