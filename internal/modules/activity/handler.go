package activity

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/revpilot/core/internal/pkg/response"
)

type Handler struct{ recorder *Recorder }

func NewHandler(recorder *Recorder) *Handler { return &Handler{recorder: recorder} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/activity", authMW)
	g.GET("", h.recent)
}

func (h *Handler) recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	items, err := h.recorder.Recent(limit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}
