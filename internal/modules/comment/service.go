package comment

import (
	"errors"

	"github.com/revpilot/core/internal/models"
	"gorm.io/gorm"
)

var ErrParentNotFound = errors.New("parent comment not found")

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// ListByEntity returns top-level comments for a resource with replies preloaded.
func (s *Service) ListByEntity(entityType models.EntityType, entityID string) ([]models.CommentModel, error) {
	var items []models.CommentModel
	err := s.db.
		Where("entity_type = ? AND entity_id = ? AND parent_id IS NULL", entityType, entityID).
		Preload("Children").
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (s *Service) GetByID(id string) (*models.CommentModel, error) {
	var cm models.CommentModel
	if err := s.db.First(&cm, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cm, nil
}

func (s *Service) Create(authorID string, dto *CreateCommentDTO) (*models.CommentModel, error) {
	if dto.ParentID != nil {
		parent, err := s.GetByID(*dto.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrParentNotFound
		}
	}

	cm := models.CommentModel{
		Content:    dto.Content,
		EntityType: dto.EntityType,
		EntityID:   dto.EntityID,
		ParentID:   dto.ParentID,
		AuthorID:   authorID,
	}
	return &cm, s.db.Create(&cm).Error
}

func (s *Service) SetResolved(id string, resolved bool) (*models.CommentModel, error) {
	cm, err := s.GetByID(id)
	if err != nil || cm == nil {
		return cm, err
	}
	if err := s.db.Model(cm).Update("is_resolved", resolved).Error; err != nil {
		return nil, err
	}
	cm.IsResolved = resolved
	return cm, nil
}

// Delete removes a comment and its direct replies.
func (s *Service) Delete(id string) (bool, error) {
	var deleted bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.CommentModel{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true
		return tx.Delete(&models.CommentModel{}, "parent_id = ?", id).Error
	})
	return deleted, err
}
