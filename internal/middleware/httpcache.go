package middleware

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	APICachePrefix      = "rp-api-cache:"
	defaultHTTPCacheTTL = 15 * time.Second
	httpCacheMaxBody    = 1 << 20 // 1 MiB
)

type HTTPCacheOptions struct {
	TTL       time.Duration
	Disable   bool
	SkipPaths []string
}

// cacheBodyWriter mirrors the response body into a buffer so it can be stored
// after the handler chain finishes. Bodies past the size cap are not cached.
type cacheBodyWriter struct {
	gin.ResponseWriter
	buf      bytes.Buffer
	overflow bool
}

func (w *cacheBodyWriter) Write(data []byte) (int, error) {
	if !w.overflow {
		if w.buf.Len()+len(data) > httpCacheMaxBody {
			w.overflow = true
			w.buf.Reset()
		} else {
			w.buf.Write(data)
		}
	}
	return w.ResponseWriter.Write(data)
}

func (w *cacheBodyWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// HTTPCache caches successful anonymous GET responses in redis. Authenticated
// requests bypass the cache and are marked uncacheable for any proxy in front.
func HTTPCache(rdb *redis.Client, opts HTTPCacheOptions) gin.HandlerFunc {
	if opts.TTL <= 0 {
		opts.TTL = defaultHTTPCacheTTL
	}

	return func(c *gin.Context) {
		if opts.Disable || rdb == nil || c.Request.Method != http.MethodGet ||
			skipCachePath(c.Request.URL.Path, opts.SkipPaths) || hasBypassParam(c) {
			c.Next()
			return
		}

		if IsAuthenticated(c) {
			c.Next()
			if c.Writer.Status() == http.StatusOK {
				c.Writer.Header().Set("Cache-Control", "private, no-store")
			}
			return
		}

		key := APICachePrefix + c.Request.URL.RequestURI()
		if status, contentType, body, ok := loadCached(c.Request.Context(), rdb, key); ok {
			c.Writer.Header().Set("x-rp-cache", "hit")
			c.Data(status, contentType, body)
			c.Abort()
			return
		}

		w := &cacheBodyWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		status := c.Writer.Status()
		if status != http.StatusOK || w.overflow || w.buf.Len() == 0 || !cacheableHeaders(c.Writer.Header()) {
			return
		}
		storeCached(c.Request.Context(), rdb, key, status, c.Writer.Header().Get("Content-Type"), w.buf.Bytes(), opts.TTL)
	}
}

// Cached entries are "status\x00content-type\x00body"; the body may itself
// contain NUL bytes, so only the first two separators are significant.
func storeCached(ctx context.Context, rdb *redis.Client, key string, status int, contentType string, body []byte, ttl time.Duration) {
	var buf bytes.Buffer
	buf.Grow(len(body) + len(contentType) + 8)
	buf.WriteString(strconv.Itoa(status))
	buf.WriteByte(0)
	buf.WriteString(contentType)
	buf.WriteByte(0)
	buf.Write(body)
	_ = rdb.Set(ctx, key, buf.Bytes(), ttl).Err()
}

func loadCached(ctx context.Context, rdb *redis.Client, key string) (int, string, []byte, bool) {
	raw, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return 0, "", nil, false
	}
	head, rest, ok := bytes.Cut(raw, []byte{0})
	if !ok {
		return 0, "", nil, false
	}
	contentType, body, ok := bytes.Cut(rest, []byte{0})
	if !ok {
		return 0, "", nil, false
	}
	status, err := strconv.Atoi(string(head))
	if err != nil || status <= 0 {
		return 0, "", nil, false
	}
	ct := string(contentType)
	if ct == "" {
		ct = "application/json; charset=utf-8"
	}
	return status, ct, body, true
}

// PurgeHTTPCache drops every cached response. Used after bulk imports so
// stale lists disappear immediately.
func PurgeHTTPCache(ctx context.Context, rdb *redis.Client) (int64, error) {
	if rdb == nil {
		return 0, nil
	}
	var cursor uint64
	var deleted int64
	for {
		keys, next, err := rdb.Scan(ctx, cursor, APICachePrefix+"*", 200).Result()
		if err != nil {
			return deleted, err
		}
		if len(keys) > 0 {
			n, err := rdb.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, err
			}
			deleted += n
		}
		if cursor = next; cursor == 0 {
			return deleted, nil
		}
	}
}

func skipCachePath(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
			if strings.HasPrefix(path, prefix) {
				return true
			}
			continue
		}
		if path == pattern {
			return true
		}
	}
	return false
}

// Clients append a timestamp query param to force a fresh response.
func hasBypassParam(c *gin.Context) bool {
	for _, key := range []string{"ts", "timestamp", "_t", "t"} {
		if c.Query(key) != "" {
			return true
		}
	}
	return false
}

func cacheableHeaders(h http.Header) bool {
	cc := strings.ToLower(h.Get("Cache-Control"))
	return !strings.Contains(cc, "no-cache") &&
		!strings.Contains(cc, "no-store") &&
		!strings.Contains(cc, "private")
}
