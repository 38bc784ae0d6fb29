package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectPostgres opens the relational system of record
// (merchant_payment_profiles and registrants tables).
//
// Supported env vars:
//   - DATABASE_URL (full DSN; wins when set)
//   - PGHOST / PGPORT / PGUSER / PGPASSWORD / PGDATABASE (local-friendly defaults)
func ConnectPostgres() *gorm.DB {
	dsn := getenvDefault("DATABASE_URL", "")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			getenvDefault("PGHOST", "localhost"),
			getenvDefault("PGPORT", "5432"),
			getenvDefault("PGUSER", "eventpay"),
			getenvDefault("PGPASSWORD", "eventpay"),
			getenvDefault("PGDATABASE", "eventpay"),
			getenvDefault("PGSSLMODE", "disable"),
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect postgres: %v", err)
	}
	return db
}
