package dashboard

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/revpilot/core/internal/pkg/response"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/dashboard", authMW)
	g.GET("", h.overview)
	g.GET("/kpis", h.kpis)
	g.GET("/revenue-analytics", h.revenueAnalytics)
	g.GET("/top-performers", h.topPerformers)
	g.GET("/recent-activity", h.recentActivity)
}

func (h *Handler) recentActivity(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	rows, err := h.svc.RecentActivity(limit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, rows)
}

func (h *Handler) overview(c *gin.Context) {
	ov, err := h.svc.Overview(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, ov)
}

func (h *Handler) kpis(c *gin.Context) {
	k, err := h.svc.KPIs(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, k)
}

func (h *Handler) revenueAnalytics(c *gin.Context) {
	months, _ := strconv.Atoi(c.DefaultQuery("months", "12"))
	rows, err := h.svc.RevenueAnalytics(months)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, rows)
}

func (h *Handler) topPerformers(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	rows, err := h.svc.TopPerformers(days, limit)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, rows)
}
