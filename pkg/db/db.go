package db

import (
	"fmt"

	"github.com/devgrain/confide/backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to PostgreSQL using GORM and verifies the connection.
// The handle is passed explicitly to every repository; there is no
// process-wide shared state.
func Open(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}

	return gdb, nil
}

// Migrate creates or updates the schema for every model. Called once at
// startup, before any routes are served.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Reply{},
		&models.Like{},
		&models.Repost{},
		&models.Bookmark{},
		&models.Reaction{},
		&models.Follow{},
		&models.Message{},
		&models.Notification{},
	)
}

// Close releases the underlying connection pool.
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
