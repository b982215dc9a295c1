package event

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/revpilot/core/internal/models"
	"github.com/revpilot/core/internal/modules/activity"
	"github.com/revpilot/core/internal/pkg/pagination"
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
	g := rg.Group("/events")
	g.GET("", h.list)
	g.GET("/upcoming", h.upcoming)
	g.GET("/search", h.search)
	g.GET("/:id", h.get)

	g.POST("", authMW, h.create)
	g.PUT("/:id", authMW, h.update)
	g.DELETE("/:id", authMW, h.delete)
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	filter := ListFilter{
		City:     c.Query("city"),
		Category: models.EventCategory(c.Query("category")),
		From:     c.Query("from"),
		To:       c.Query("to"),
	}

	items, pag, err := h.svc.List(q, filter)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Paged(c, items, pag)
}

func (h *Handler) upcoming(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	items, err := h.svc.Upcoming(limit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

func (h *Handler) search(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		response.BadRequest(c, "q is required")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	items, err := h.svc.Search(term, limit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

func (h *Handler) get(c *gin.Context) {
	e, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if e == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, e)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateEventDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	e, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	h.recorder.Record(c, "event.create", "event", e.ID, map[string]interface{}{"name": e.Name})
	response.Created(c, e)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateEventDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	e, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if e == nil {
		response.NotFound(c)
		return
	}
	h.recorder.Record(c, "event.update", "event", e.ID, nil)
	response.OK(c, e)
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
	h.recorder.Record(c, "event.delete", "event", id, nil)
	response.NoContent(c)
}
