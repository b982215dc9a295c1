package comment

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/revpilot/core/internal/middleware"
	"github.com/revpilot/core/internal/models"
	"github.com/revpilot/core/internal/modules/activity"
	"github.com/revpilot/core/internal/pkg/response"
)

type Handler struct {
	svc      *Service
	recorder *activity.Recorder
}

func NewHandler(svc *Service, recorder *activity.Recorder) *Handler {
	return &Handler{svc: svc, recorder: recorder}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/comments", authMW)
	g.GET("", h.listByEntity)
	g.POST("", h.create)
	g.PATCH("/:id/resolve", h.resolve)
	g.DELETE("/:id", h.delete)
}

func (h *Handler) listByEntity(c *gin.Context) {
	entityType := models.EntityType(c.Query("entity_type"))
	entityID := c.Query("entity_id")
	if entityType == "" || entityID == "" {
		response.BadRequest(c, "entity_type and entity_id are required")
		return
	}

	items, err := h.svc.ListByEntity(entityType, entityID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateCommentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cm, err := h.svc.Create(middleware.CurrentUserID(c), &dto)
	if err != nil {
		if errors.Is(err, ErrParentNotFound) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	h.recorder.Record(c, "comment.create", string(cm.EntityType), cm.EntityID, nil)
	response.Created(c, cm)
}

func (h *Handler) resolve(c *gin.Context) {
	var dto struct {
		Resolved *bool `json:"resolved" binding:"required"`
	}
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cm, err := h.svc.SetResolved(c.Param("id"), *dto.Resolved)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if cm == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, cm)
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	ok, err := h.svc.Delete(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !ok {
		response.NotFound(c)
		return
	}
	h.recorder.Record(c, "comment.delete", "comment", id, nil)
	response.NoContent(c)
}
