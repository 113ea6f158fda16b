package config

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	model "quicktask.com/quicktask/internal/models"
)

// NewDatabaseClient opens the task database with the configured driver and
// brings the schema up to date. DriverSQLite3 is the cgo driver bundled with
// gorm's dialector; DriverSQLite is the pure-Go modernc driver.
func NewDatabaseClient(cfg Config) (*gorm.DB, error) {
	dialector := sqlite.Dialector{DriverName: cfg.DatabaseDriver, DSN: cfg.DatabaseDSN}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("db open failed: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DatabaseMaxOpenConns)

	if err := Migrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Task{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
