package actual

import (
	"errors"
	"strconv"

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
	g := rg.Group("/actuals")
	g.GET("", h.list)
	g.GET("/:id", h.get)
	g.GET("/:id/kpis", h.hotelKPIs)

	g.POST("/bulk", authMW, h.bulkUpsert)
	g.DELETE("/:id", authMW, h.delete)
}

func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	filter := ListFilter{
		HotelID: c.Query("hotel_id"),
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
	a, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if a == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, a)
}

// hotelKPIs treats :id as the hotel ID and aggregates its recent actuals.
func (h *Handler) hotelKPIs(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	k, err := h.svc.HotelKPIs(c.Param("id"), days)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, k)
}

func (h *Handler) bulkUpsert(c *gin.Context) {
	var dto BulkUpsertDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.svc.BulkUpsert(&dto)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	h.recorder.Record(c, "actual.bulk_upsert", "actual", "", map[string]interface{}{
		"count": result.Upserted,
	})
	response.OK(c, result)
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
	h.recorder.Record(c, "actual.delete", "actual", id, nil)
	response.NoContent(c)
}
