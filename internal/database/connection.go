package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "showroom_manager/internal/logger"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	// Configure GORM. TranslateError turns driver unique-violation errors
	// into gorm.ErrDuplicatedKey so the services can classify race losers
	// without sniffing postgres error codes.
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(databaseURL), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	applog.Get().Info("Database connected")
	return db, nil
}
