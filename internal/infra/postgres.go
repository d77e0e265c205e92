package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"danakita/internal/models/db_models"
)

func InitPostgresql(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := db.AutoMigrate(
		&db_models.Program{},
		&db_models.Donation{},
		&db_models.DonorLeaderboard{},
		&db_models.ReferralCode{},
		&db_models.ReferralAttribution{},
	); err != nil {
		log.Fatalf("Error migrating schema: %v", err)
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
