package database

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/recruiteryu/platform/internal/models"
)

// Connect opens the Postgres connection from DATABASE_DSN and runs the
// schema migration. Boot fails hard when the database is unreachable.
func Connect() *gorm.DB {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN is not set in environment")
	}

	// TranslateError turns driver unique-index violations into
	// gorm.ErrDuplicatedKey so services can map them.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	log.Info("database connection established")

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	return db
}

// Migrate creates or updates the schema. Split out so tests can run it
// against their own database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.JobPosting{}, &models.Application{})
}
