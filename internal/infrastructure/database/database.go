package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/saravanan/rentify-api/internal/config"
	"github.com/saravanan/rentify-api/internal/domain/entity"
)

// New opens a database connection for the configured driver. SQLite is the
// default for the single-terminal deployment; Postgres is available for a
// shared store server.
func New(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	switch cfg.Driver {
	case "postgres":
		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DSN(),
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		}), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		log.Println("Successfully connected to PostgreSQL database")
		return db, nil

	case "sqlite", "":
		db, err := gorm.Open(sqlite.Open(cfg.Path), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database %s: %w", cfg.Path, err)
		}
		// one writer at a time; the terminal is single-session anyway
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
		log.Printf("Successfully opened SQLite database at %s", cfg.Path)
		return db, nil

	default:
		return nil, fmt.Errorf("unknown database driver %q (use sqlite or postgres)", cfg.Driver)
	}
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.Product{},
		&entity.ContactInfo{},
		&entity.AdminUser{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData inserts the default contact info row and the admin account
// when the tables are empty
func SeedDefaultData(db *gorm.DB, admin *config.AdminConfig) error {
	var contactCount int64
	if err := db.Model(&entity.ContactInfo{}).Count(&contactCount).Error; err != nil {
		return err
	}
	if contactCount == 0 {
		info := &entity.ContactInfo{
			Phone:   "+91 12345 67890",
			Email:   "support@premiumstore.com",
			Address: "123 Business Street, City, State 123456",
		}
		if err := db.Create(info).Error; err != nil {
			return fmt.Errorf("failed to seed contact info: %w", err)
		}
		log.Println("Seeded default contact info")
	}

	var adminCount int64
	if err := db.Model(&entity.AdminUser{}).Count(&adminCount).Error; err != nil {
		return err
	}
	if adminCount == 0 {
		user := &entity.AdminUser{Username: admin.Username}
		if err := user.SetPassword(admin.Password); err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}
		log.Printf("Seeded admin user %q", admin.Username)
	}

	return nil
}
