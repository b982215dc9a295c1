package session

import (
	"strings"
	"time"

	"github.com/revpilot/core/internal/models"
	jwtpkg "github.com/revpilot/core/internal/pkg/jwt"
	"gorm.io/gorm"
)

const DefaultTTL = 30 * 24 * time.Hour

// live narrows a query to sessions that can still authenticate.
func live(db *gorm.DB, userID string) *gorm.DB {
	return db.Model(&models.UserSession{}).
		Where("user_id = ? AND revoked_at IS NULL AND expires_at > ?", userID, time.Now())
}

// Issue creates a session row and signs a JWT bound to it. The row is rolled
// back if signing fails so no orphan sessions accumulate.
func Issue(db *gorm.DB, userID, ip, ua string, ttl time.Duration) (string, *models.UserSession, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	s := &models.UserSession{
		UserID:    userID,
		IP:        strings.TrimSpace(ip),
		UA:        strings.TrimSpace(ua),
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := db.Create(s).Error; err != nil {
		return "", nil, err
	}

	token, err := jwtpkg.SignWithOptions(userID, ttl, jwtpkg.SignOptions{
		SessionID: s.ID,
		IP:        s.IP,
		UA:        s.UA,
	})
	if err != nil {
		_ = db.Delete(s).Error
		return "", nil, err
	}
	return token, s, nil
}

func IsActive(db *gorm.DB, userID, sessionID string) (bool, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		// Legacy token without a session claim.
		return true, nil
	}

	var count int64
	if err := live(db, userID).Where("id = ?", sessionID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Touch bumps updated_at so ListActive can order by recency. Failures are
// not worth surfacing.
func Touch(db *gorm.DB, userID, sessionID string) {
	if sessionID = strings.TrimSpace(sessionID); sessionID == "" {
		return
	}
	_ = live(db, userID).Where("id = ?", sessionID).Update("updated_at", time.Now()).Error
}

func ListActive(db *gorm.DB, userID string) ([]models.UserSession, error) {
	var sessions []models.UserSession
	err := live(db, userID).Order("updated_at DESC, created_at DESC").Find(&sessions).Error
	return sessions, err
}

func Revoke(db *gorm.DB, userID, sessionID string) error {
	now := time.Now()
	res := db.Model(&models.UserSession{}).
		Where("id = ? AND user_id = ? AND revoked_at IS NULL", sessionID, userID).
		Update("revoked_at", &now)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RevokeAfter revokes a session once delay elapses, letting the response
// that triggered it finish against the old token.
func RevokeAfter(db *gorm.DB, userID, sessionID string, delay time.Duration) {
	if sessionID = strings.TrimSpace(sessionID); sessionID == "" {
		return
	}
	if delay <= 0 {
		_ = Revoke(db, userID, sessionID)
		return
	}
	time.AfterFunc(delay, func() {
		_ = Revoke(db, userID, sessionID)
	})
}

func RevokeAllExcept(db *gorm.DB, userID, keepSessionID string) error {
	now := time.Now()
	query := db.Model(&models.UserSession{}).
		Where("user_id = ? AND revoked_at IS NULL", userID)
	if keep := strings.TrimSpace(keepSessionID); keep != "" {
		query = query.Where("id <> ?", keep)
	}
	return query.Update("revoked_at", &now).Error
}
