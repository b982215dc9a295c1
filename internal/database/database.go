package database

import (
	"fmt"

	"github.com/revpilot/core/internal/config"
	"github.com/revpilot/core/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the MySQL connection and optionally runs auto-migration.
func Connect(cfg *config.AppConfig, autoMigrate bool) (*gorm.DB, error) {
	level := logger.Warn
	if cfg.IsDev() {
		level = logger.Info
	}

	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:               cfg.DSN,
		DefaultStringSize: 191,
	}), &gorm.Config{Logger: logger.Default.LogMode(level)})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if autoMigrate {
		if err := migrate(db); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}
	return db, nil
}

func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.UserModel{},
		&models.UserSession{},
		&models.APIToken{},
		&models.HotelModel{},
		&models.EventModel{},
		&models.ForecastModel{},
		&models.HotelActualModel{},
		&models.TaskModel{},
		&models.CommentModel{},
		&models.ActivityModel{},
	)
	if err != nil {
		return err
	}

	// AutoMigrate maps the metadata field to TEXT; activity entries can be
	// bigger than that.
	if db.Dialector.Name() == "mysql" {
		return db.Exec("ALTER TABLE `activity_log` MODIFY COLUMN `metadata` LONGTEXT NULL").Error
	}
	return nil
}
