package db

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/cutsea110/payroll-core/internal/audit"
	"github.com/cutsea110/payroll-core/internal/authn"
	"github.com/cutsea110/payroll-core/internal/store/gormstore"
)

// InitDB initializes the database connection and performs auto-migrations
// for the operator/audit tables and the GORM-backed roster store.
func InitDB() *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Jakarta",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&authn.User{},
		&audit.Log{},
	)
	if err != nil {
		log.Fatalf("Failed to auto-migrate database schema: %v", err)
	}

	if err := gormstore.Migrate(db); err != nil {
		log.Fatalf("Failed to auto-migrate roster store schema: %v", err)
	}

	log.Println("Database connection established and schema migrated successfully.")
	return db
}
