package db

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/pkg/logger"
)

// NewSQLiteDB opens the SQLite database file and creates missing tables
func NewSQLiteDB(path string) (*gorm.DB, error) {
	return openSQLite(path, gormlogger.Warn)
}

// NewMemorySQLite opens a private in-memory database with the schema applied
func NewMemorySQLite() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	return openSQLite(dsn, gormlogger.Silent)
}

func openSQLite(dsn string, level gormlogger.LogLevel) (*gorm.DB, error) {
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sqlite handle: %w", err)
	}
	// One writer at a time; also keeps an in-memory database alive
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := gormDB.AutoMigrate(&models.User{}, &models.Event{}, &models.File{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate sqlite schema: %w", err)
	}

	logger.Debug().Str("dsn", dsn).Msg("SQLite database ready")
	return gormDB, nil
}
