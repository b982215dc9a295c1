package backup

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
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
	g := rg.Group("/backups", authMW)
	g.GET("", h.list)
	g.POST("", h.run)
	g.GET("/:filename", h.download)
	g.DELETE("/:filename", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

func (h *Handler) run(c *gin.Context) {
	art, err := h.svc.Run(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	h.recorder.Record(c, "backup.run", "backup", art.Filename, nil)
	response.Created(c, art)
}

func (h *Handler) download(c *gin.Context) {
	filename := c.Param("filename")
	data, err := h.svc.Read(filename)
	if err != nil {
		if os.IsNotExist(err) {
			response.NotFound(c)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/zip", data)
}

func (h *Handler) delete(c *gin.Context) {
	filename := c.Param("filename")
	if err := h.svc.Delete(filename); err != nil {
		if os.IsNotExist(err) {
			response.NotFound(c)
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	h.recorder.Record(c, "backup.delete", "backup", filename, nil)
	response.NoContent(c)
}
