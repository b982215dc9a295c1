package app

import (
	"context"
	"fmt"
	"time"

	"github.com/revpilot/core/internal/config"
	"github.com/revpilot/core/internal/models"
	"github.com/revpilot/core/internal/modules/backup"
	pkgcron "github.com/revpilot/core/internal/pkg/cron"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// registerCronJobs registers all scheduled background jobs.
func registerCronJobs(sched *pkgcron.Scheduler, db *gorm.DB, cfg *config.AppConfig, logger *zap.Logger) {
	cronLogger := logger.Named("CronService")

	sched.Register(pkgcron.Job{
		Name:        "sweep_sessions",
		Description: "remove expired and revoked sessions",
		Interval:    12 * time.Hour,
		Fn: func(ctx context.Context) error {
			result := db.Where("expires_at < ? OR revoked_at IS NOT NULL", time.Now()).
				Delete(&models.UserSession{})
			if result.Error != nil {
				cronLogger.Warn("session sweep failed", zap.Error(result.Error))
				return result.Error
			}
			cronLogger.Info(fmt.Sprintf("session sweep removed %d rows", result.RowsAffected))
			return nil
		},
	})

	sched.Register(pkgcron.Job{
		Name:        "cleanup_activity_log",
		Description: "remove activity entries older than 90 days",
		Interval:    24 * time.Hour,
		Fn: func(ctx context.Context) error {
			cutoff := time.Now().AddDate(0, 0, -90)
			result := db.Where("created_at < ?", cutoff).Delete(&models.ActivityModel{})
			if result.Error != nil {
				cronLogger.Warn("activity cleanup failed", zap.Error(result.Error))
				return result.Error
			}
			cronLogger.Info(fmt.Sprintf("activity cleanup removed %d rows", result.RowsAffected))
			return nil
		},
	})

	if cfg.Backup.Enable {
		backupSvc := backup.NewService(db, cfg, logger)
		sched.Register(pkgcron.Job{
			Name:        "auto_backup",
			Description: "nightly database backup",
			Interval:    24 * time.Hour,
			Fn: func(ctx context.Context) error {
				cronLogger.Info("backup starting...")
				art, err := backupSvc.Run(ctx)
				if err != nil {
					cronLogger.Warn("backup failed", zap.Error(err))
					return err
				}
				cronLogger.Info("backup done", zap.String("file", art.Filename), zap.Int64("size", art.Size))
				return nil
			},
		})
	}
}
