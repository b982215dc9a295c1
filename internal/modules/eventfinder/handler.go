package eventfinder

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/revpilot/core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/event-finder")
	g.POST("/search", h.search)
	g.POST("/import", authMW, h.importEvents)
}

// POST /event-finder/search
func (h *Handler) search(c *gin.Context) {
	var dto SearchDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "location, start_date and end_date are required")
		return
	}

	result, err := h.svc.Search(dto)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) || errors.Is(err, ErrInvalidRange) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, result)
}

// POST /event-finder/import
func (h *Handler) importEvents(c *gin.Context) {
	var dto SearchDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "location, start_date and end_date are required")
		return
	}

	result, err := h.svc.Import(dto)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) || errors.Is(err, ErrInvalidRange) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, result)
}
