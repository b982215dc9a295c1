package forecast

import (
	"errors"

	"github.com/gin-gonic/gin"
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
	g := rg.Group("/forecasts")
	g.GET("", h.list)
	g.GET("/:id", h.get)

	g.POST("", authMW, h.create)
	g.PUT("/:id", authMW, h.update)
	g.DELETE("/:id", authMW, h.delete)
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	filter := ListFilter{
		HotelID: c.Query("hotel_id"),
		Type:    c.Query("type"),
		From:    c.Query("from"),
		To:      c.Query("to"),
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

func (h *Handler) get(c *gin.Context) {
	f, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if f == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, f)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateForecastDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	f, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	h.recorder.Record(c, "forecast.create", "forecast", f.ID, map[string]interface{}{"hotel_id": f.HotelID})
	response.Created(c, f)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateForecastDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	f, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if f == nil {
		response.NotFound(c)
		return
	}
	h.recorder.Record(c, "forecast.update", "forecast", f.ID, nil)
	response.OK(c, f)
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
	h.recorder.Record(c, "forecast.delete", "forecast", id, nil)
	response.NoContent(c)
}
