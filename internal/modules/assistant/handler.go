package assistant

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/revpilot/core/internal/pkg/response"
	"github.com/yuin/goldmark"
)

type Handler struct {
	svc *Service
	md  goldmark.Markdown
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc, md: goldmark.New()}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/assistant")
	g.POST("/chat", h.chat)
}

// POST /assistant/chat?format=html
func (h *Handler) chat(c *gin.Context) {
	var dto ChatDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "message is required")
		return
	}

	resp := h.svc.Chat(c.Request.Context(), dto.Message)

	if c.Query("format") == "html" {
		var buf bytes.Buffer
		if err := h.md.Convert([]byte(resp.Message), &buf); err != nil {
			response.InternalError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":            resp.Message,
			"html":               buf.String(),
			"timestamp":          resp.Timestamp,
			"processing_time_ms": resp.ProcessingTimeMs,
		})
		return
	}

	response.OK(c, resp)
}
