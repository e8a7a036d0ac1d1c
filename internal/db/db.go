package db

import (
	"log"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/modelmonitor/model-monitor/internal/config"
	"github.com/modelmonitor/model-monitor/internal/models"
)

// NewDB opens the relational store and runs migrations. DATABASE_URL
// selects the driver: postgres://... in production, sqlite://<path>
// for local runs and tests.
func NewDB(cfg *config.Config) *gorm.DB {
	db, err := Open(cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func Open(url string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	if strings.HasPrefix(url, "sqlite://") {
		dsn := strings.TrimPrefix(url, "sqlite://")
		// Cascading deletes need foreign_keys on; postgres enforces
		// them unconditionally.
		if !strings.Contains(dsn, "_pragma") {
			dsn += "?_pragma=foreign_keys(1)"
		}
		dialector = sqlite.Open(dsn)
	} else {
		dialector = postgres.Open(url)
	}

	return gorm.Open(dialector, &gorm.Config{
		PrepareStmt: true,
	})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Brand{},
		&models.Response{},
		&models.Rating{},
		&models.AuditLog{},
	)
}
