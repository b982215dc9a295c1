package response

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
)

// Pagination metadata returned with paginated responses.
type Pagination struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	TotalPage   int   `json:"total_page"`
	Size        int   `json:"size"`
	HasNextPage bool  `json:"has_next_page"`
}

type pagedResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// OK sends a 200 response. Slices are wrapped in {data: [...]} so clients
// never receive a bare JSON array.
func OK(c *gin.Context, data interface{}) {
	if data != nil && reflect.ValueOf(data).Kind() == reflect.Slice {
		c.JSON(http.StatusOK, gin.H{"data": data})
		return
	}
	c.JSON(http.StatusOK, data)
}

func Paged(c *gin.Context, data interface{}, pagination Pagination) {
	c.JSON(http.StatusOK, pagedResponse{Data: data, Pagination: pagination})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// fail aborts the request with the uniform error envelope.
func fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"ok": 0, "code": status, "message": message})
}

func BadRequest(c *gin.Context, message string) {
	fail(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context) {
	fail(c, http.StatusUnauthorized, "authentication required")
}

func Forbidden(c *gin.Context) {
	fail(c, http.StatusForbidden, "insufficient permissions")
}

func NotFound(c *gin.Context) {
	fail(c, http.StatusNotFound, "resource not found")
}

func NotFoundMsg(c *gin.Context, message string) {
	fail(c, http.StatusNotFound, message)
}

func MethodNotAllowed(c *gin.Context) {
	fail(c, http.StatusMethodNotAllowed, "method not allowed")
}

func Conflict(c *gin.Context, message string) {
	fail(c, http.StatusConflict, message)
}

func InternalError(c *gin.Context, err error) {
	fail(c, http.StatusInternalServerError, err.Error())
}
