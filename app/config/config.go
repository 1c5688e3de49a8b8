package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// LoadEnv loads a local .env file if present. In deployed environments the
// variables come from the system and the file is simply absent.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}
}

// GetEnv reads an environment variable with a fallback default.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// OpenDB opens the PostgreSQL pool used by every handler. The handle is
// passed explicitly to the route setup functions; there is no package-level
// database state.
func OpenDB() (*sql.DB, error) {
	psqlInfo := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s connect_timeout=10",
		GetEnv("PGHOST", "localhost"),
		GetEnv("PGPORT", "5432"),
		GetEnv("PGUSER", "postgres"),
		GetEnv("PGPASSWORD", ""),
		GetEnv("PGDATABASE", "pilates"),
		GetEnv("PGSSLMODE", "disable"),
	)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Println("Database connected successfully")
	return db, nil
}
