package database

import (
	"fmt"
	"log"
	"os"

	"social-app/internal/domain/agenda"
	"social-app/internal/domain/payments"
	"social-app/internal/domain/publications"
	"social-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		// core
		&users.User{},
		&payments.PaymentRecord{},

		// social
		&publications.Publication{},
		&publications.Comment{},
		&publications.Like{},
		&publications.SavedPublication{},

		// scheduling
		&agenda.Entry{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
