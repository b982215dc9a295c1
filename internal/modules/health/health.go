package health

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/revpilot/core/internal/pkg/redis"
	"github.com/revpilot/core/internal/pkg/response"
	"gorm.io/gorm"
)

type Handler struct {
	db      *gorm.DB
	cache   *redis.Client
	started time.Time
	version string
}

func NewHandler(db *gorm.DB, cache *redis.Client, version string) *Handler {
	return &Handler{db: db, cache: cache, started: time.Now(), version: version}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, _ gin.HandlerFunc) {
	rg.GET("/health", h.health)
	rg.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
}

func (h *Handler) health(c *gin.Context) {
	ctx := c.Request.Context()

	dbStatus := "ok"
	if sqlDB, err := h.db.DB(); err != nil {
		dbStatus = err.Error()
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = err.Error()
	}

	redisStatus := "ok"
	if h.cache == nil {
		redisStatus = "not configured"
	} else if err := h.cache.Raw().Ping(ctx).Err(); err != nil {
		redisStatus = err.Error()
	}

	response.OK(c, gin.H{
		"status":  "up",
		"version": h.version,
		"uptime":  time.Since(h.started).Round(time.Second).String(),
		"checks": gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		},
	})
}
