package activity

import (
	"github.com/gin-gonic/gin"
	"github.com/revpilot/core/internal/middleware"
	"github.com/revpilot/core/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Recorder appends audit-trail entries for mutations. Writes are fire and
// forget so a slow log never delays the caller's response.
type Recorder struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewRecorder(db *gorm.DB, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{db: db, logger: logger.Named("Activity")}
}

// Record logs an action performed through the given request context.
func (r *Recorder) Record(c *gin.Context, action, entityType, entityID string, metadata map[string]interface{}) {
	entry := models.ActivityModel{
		UserID:     middleware.CurrentUserID(c),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Metadata:   metadata,
		IPAddress:  c.ClientIP(),
		UserAgent:  c.GetHeader("User-Agent"),
	}
	go func() {
		if err := r.db.Create(&entry).Error; err != nil {
			r.logger.Warn("activity write failed", zap.String("action", action), zap.Error(err))
		}
	}()
}

// Recent returns the newest entries, capped at limit.
func (r *Recorder) Recent(limit int) ([]models.ActivityModel, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var items []models.ActivityModel
	err := r.db.Order("created_at DESC").Limit(limit).Find(&items).Error
	return items, err
}
