// Command dbtool creates the database schema for the load lifecycle service.
// It is idempotent: every statement uses IF NOT EXISTS so it can run on every
// deploy.
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS loads (
		id         uuid PRIMARY KEY,
		fleet_id   uuid NOT NULL,
		status     text NOT NULL,
		driver_id  uuid,
		vehicle_id uuid,
		stops      jsonb NOT NULL,
		updated_at timestamptz NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_loads_fleet ON loads (fleet_id)`,
	`CREATE INDEX IF NOT EXISTS idx_loads_status ON loads (status)`,
	`CREATE TABLE IF NOT EXISTS load_events (
		id         uuid PRIMARY KEY,
		fleet_id   uuid NOT NULL,
		load_id    uuid NOT NULL,
		type       text NOT NULL,
		actor_uid  text NOT NULL,
		payload    jsonb NOT NULL,
		created_at timestamptz NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_load_events_fleet_load ON load_events (fleet_id, load_id)`,
	`CREATE TABLE IF NOT EXISTS drivers (
		id       uuid PRIMARY KEY,
		fleet_id uuid NOT NULL,
		name     text NOT NULL,
		active   boolean NOT NULL DEFAULT true
	)`,
	`CREATE INDEX IF NOT EXISTS idx_drivers_fleet ON drivers (fleet_id)`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id       uuid PRIMARY KEY,
		fleet_id uuid NOT NULL,
		unit     text NOT NULL,
		active   boolean NOT NULL DEFAULT true
	)`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_fleet ON vehicles (fleet_id)`,
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		os.Getenv("DB_HOST"), envOr("DB_PORT", "5432"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"), envOr("DB_SSLMODE", "disable"))

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err = db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	log.Println("Initializing database schema...")
	for _, stmt := range schemaStatements {
		if _, err = db.Exec(stmt); err != nil {
			log.Fatalf("schema initialization failed: %v", err)
		}
	}
	log.Println("Schema ready.")
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
