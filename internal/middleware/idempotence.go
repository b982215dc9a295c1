package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempotenceHeader = "x-idempotence"
	idempotenceTTL    = 60 * time.Second
)

// Login and registration are deliberately replayable: a failed attempt must
// not lock the client out for a minute.
var idempotenceExemptPaths = map[string]bool{
	"/api/auth/login":    true,
	"/api/auth/register": true,
}

// Idempotence rejects duplicate mutating requests within a short window. The
// client may supply an explicit x-idempotence header; otherwise the key is a
// hash of method, URL, body and caller identity.
func Idempotence(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || exemptFromIdempotence(c.Request.URL.Path) {
			c.Next()
			return
		}

		key, err := idempotenceKey(c)
		if err != nil || key == "" {
			c.Next()
			return
		}
		redisKey := "rp:idempotence:" + key
		ctx := c.Request.Context()

		val, err := rdb.Get(ctx, redisKey).Result()
		switch {
		case err == nil:
			msg := "duplicate request, retry after 60 seconds"
			if val == "0" {
				msg = "an identical request is still being processed"
			}
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"ok":      0,
				"code":    http.StatusConflict,
				"message": msg,
			})
			return
		case !errors.Is(err, redis.Nil):
			// Redis trouble must not block writes.
			c.Next()
			return
		}

		if err := rdb.Set(ctx, redisKey, "0", idempotenceTTL).Err(); err != nil {
			c.Next()
			return
		}

		c.Next()

		if status := c.Writer.Status(); status >= 200 && status < 300 {
			rdb.Set(ctx, redisKey, "1", redis.KeepTTL)
		} else {
			rdb.Del(ctx, redisKey)
		}
	}
}

func exemptFromIdempotence(path string) bool {
	p := strings.TrimRight(strings.ToLower(strings.TrimSpace(path)), "/")
	return idempotenceExemptPaths[p]
}

func idempotenceKey(c *gin.Context) (string, error) {
	if hdr := c.GetHeader(idempotenceHeader); hdr != "" {
		return hdr, nil
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", err
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	identity := c.Request.UserAgent() + "|" + c.ClientIP() + "|" + extractToken(c)
	if len(body) == 0 && identity == "||" {
		return "", nil
	}

	h := sha256.Sum256([]byte(c.Request.Method + "|" + c.Request.URL.String() + "|" + string(body) + "|" + identity))
	return hex.EncodeToString(h[:]), nil
}
