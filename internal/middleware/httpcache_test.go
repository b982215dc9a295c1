package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCacheRouter(t *testing.T, opts HTTPCacheOptions) (*gin.Engine, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	hits := 0
	r := gin.New()
	r.Use(HTTPCache(rdb, opts))
	r.GET("/data", func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"hits": hits})
	})
	return r, &hits
}

func TestHTTPCacheServesSecondRequestFromCache(t *testing.T) {
	r, hits := newCacheRouter(t, HTTPCacheOptions{TTL: time.Minute})

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/data", nil))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/data", nil))
	require.Equal(t, http.StatusOK, second.Code)

	assert.Equal(t, 1, *hits, "second request should not reach the handler")
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestHTTPCacheSkipPaths(t *testing.T) {
	r, hits := newCacheRouter(t, HTTPCacheOptions{TTL: time.Minute, SkipPaths: []string{"/data"}})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/data", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, 2, *hits)
}

func TestHTTPCacheIgnoresNonGET(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	posts := 0
	r := gin.New()
	r.Use(HTTPCache(rdb, HTTPCacheOptions{TTL: time.Minute}))
	r.POST("/data", func(c *gin.Context) {
		posts++
		c.String(http.StatusOK, fmt.Sprintf("%d", posts))
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/data", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, 2, posts)
}
