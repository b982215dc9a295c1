package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/revpilot/core/internal/pkg/response"
	"gorm.io/gorm"
)

const (
	DefaultPage = 1
	DefaultSize = 10
	MaxSize     = 100
)

// Query holds validated pagination parameters.
type Query struct {
	Page int
	Size int
}

// FromContext reads ?page and ?size, clamping both to sane bounds.
func FromContext(c *gin.Context) Query {
	q := Query{Page: DefaultPage, Size: DefaultSize}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v >= 1 {
		q.Page = v
	}
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v >= 1 {
		q.Size = min(v, MaxSize)
	}
	return q
}

// Paginate runs a count plus a limit/offset find on the given query and
// returns the page metadata alongside.
func Paginate[T any](db *gorm.DB, q Query, dest *[]T) (response.Pagination, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return response.Pagination{}, err
	}
	if err := db.Offset((q.Page - 1) * q.Size).Limit(q.Size).Find(dest).Error; err != nil {
		return response.Pagination{}, err
	}

	totalPage := int((total + int64(q.Size) - 1) / int64(q.Size))
	return response.Pagination{
		Total:       total,
		CurrentPage: q.Page,
		TotalPage:   totalPage,
		Size:        q.Size,
		HasNextPage: q.Page < totalPage,
	}, nil
}
