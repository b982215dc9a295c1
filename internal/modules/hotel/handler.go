package hotel

import (
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
	g := rg.Group("/hotels")
	g.GET("", h.list)
	g.GET("/:id", h.get)

	g.POST("", authMW, h.create)
	g.PUT("/:id", authMW, h.update)
	g.DELETE("/:id", authMW, h.delete)
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	filter := ListFilter{City: c.Query("city")}
	if v := c.Query("status"); v != "" {
		status := models.HotelStatus(v)
		filter.Status = &status
	}

	items, pag, err := h.svc.List(q, filter)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, items, pag)
}

func (h *Handler) get(c *gin.Context) {
	hotel, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if hotel == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, hotel)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateHotelDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hotel, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	h.recorder.Record(c, "hotel.create", "hotel", hotel.ID, map[string]interface{}{"name": hotel.Name})
	response.Created(c, hotel)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateHotelDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hotel, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if hotel == nil {
		response.NotFound(c)
		return
	}
	h.recorder.Record(c, "hotel.update", "hotel", hotel.ID, nil)
	response.OK(c, hotel)
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
	h.recorder.Record(c, "hotel.delete", "hotel", id, nil)
	response.NoContent(c)
}
