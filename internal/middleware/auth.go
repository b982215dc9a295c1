package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/revpilot/core/internal/models"
	"github.com/revpilot/core/internal/pkg/jwt"
	"github.com/revpilot/core/internal/pkg/response"
	sessionpkg "github.com/revpilot/core/internal/pkg/session"
	"gorm.io/gorm"
)

const (
	ContextKeyUserID = "user_id"
	ContextKeySID    = "session_id"
	apiTokenPrefix   = "rp"
)

// authenticate resolves the request's token into context values. Returns
// false when no valid credential is present.
func authenticate(db *gorm.DB, c *gin.Context) bool {
	claims, err := resolveClaims(db, extractToken(c))
	if err != nil || claims.UserID == "" {
		return false
	}
	c.Set(ContextKeyUserID, claims.UserID)
	if claims.SessionID != "" {
		c.Set(ContextKeySID, claims.SessionID)
		sessionpkg.Touch(db, claims.UserID, claims.SessionID)
	}
	return true
}

// Auth rejects requests without a valid JWT or API token.
func Auth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(db, c) {
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}

// OptionalAuth resolves credentials when present but never blocks.
func OptionalAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticate(db, c)
		c.Next()
	}
}

// resolveClaims accepts either an opaque API token (distinguished by its
// prefix) or a JWT whose session must still be live.
func resolveClaims(db *gorm.DB, token string) (*jwt.Claims, error) {
	if token == "" {
		return nil, errors.New("token is required")
	}

	if strings.HasPrefix(token, apiTokenPrefix) {
		userID, err := lookupAPIToken(db, token)
		if err != nil {
			return nil, err
		}
		return &jwt.Claims{UserID: userID}, nil
	}

	claims, err := jwt.Parse(token)
	if err != nil {
		return nil, err
	}
	active, err := sessionpkg.IsActive(db, claims.UserID, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, errors.New("session expired or revoked")
	}
	return claims, nil
}

func lookupAPIToken(db *gorm.DB, token string) (string, error) {
	var row models.APIToken
	err := db.
		Where("token = ? AND (expired_at IS NULL OR expired_at > ?)", token, time.Now()).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", errors.New("api token not found")
	}
	if err != nil {
		return "", err
	}
	return row.UserID, nil
}

func CurrentUserID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(string)
	return id
}

func CurrentSessionID(c *gin.Context) string {
	v, _ := c.Get(ContextKeySID)
	id, _ := v.(string)
	return id
}

func IsAuthenticated(c *gin.Context) bool {
	return CurrentUserID(c) != ""
}

// extractToken checks the Authorization header, then the token query param,
// then the cookies set by the login handler.
func extractToken(c *gin.Context) string {
	if token := NormalizeToken(c.GetHeader("Authorization")); token != "" {
		return token
	}
	if token := NormalizeToken(c.Query("token")); token != "" {
		return token
	}
	for _, cookieKey := range []string{"rp-token", "rp_token", "token"} {
		if raw, err := c.Cookie(cookieKey); err == nil {
			if token := NormalizeToken(raw); token != "" {
				return token
			}
		}
	}
	return ""
}

// NormalizeToken trims whitespace and an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if len(token) > 7 && strings.EqualFold(token[:7], "Bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
