package database

import (
	"fmt"

	"github.com/lotfi-dotcom/artztTerminapp/config"
	"github.com/lotfi-dotcom/artztTerminapp/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresConnection opens the database and migrates the storage slot table.
func NewPostgresConnection(cfg config.DBConfig, env string, log *logrus.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
	)

	logLevel := logger.Warn
	if env == "development" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// One slot row, so a small pool is enough.
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(5)

	if err := db.AutoMigrate(&entity.StorageSlot{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate storage slots: %w", err)
	}

	log.Infof("Connected to PostgreSQL database %s on %s:%s", cfg.Name, cfg.Host, cfg.Port)
	return db, nil
}
