package main

import (
	"database/sql"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/seongminpark/hotelhub/internal/config"
	"github.com/seongminpark/hotelhub/internal/logger"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'guest',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS rooms (
		room_number INT PRIMARY KEY,
		room_type TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id BIGSERIAL PRIMARY KEY,
		room_number INT NOT NULL REFERENCES rooms(room_number),
		guest_name TEXT NOT NULL,
		guest_email TEXT NOT NULL,
		check_in DATE NOT NULL,
		check_out DATE NOT NULL,
		guest_num INT NOT NULL,
		status TEXT NOT NULL DEFAULT 'CONFIRMED',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_period
		ON reservations (check_in, check_out)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		price INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS menu_orders (
		id BIGSERIAL PRIMARY KEY,
		order_time TIMESTAMPTZ NOT NULL DEFAULT now(),
		food_names JSONB NOT NULL,
		total_price INT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_menu_orders_time
		ON menu_orders (order_time)`,
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New(cfg.Env)

	db, err := sql.Open("postgres", cfg.PostgresURL)
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("ping database", zap.Error(err))
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatal("apply migration", zap.Error(err), zap.String("stmt", stmt))
		}
	}
	log.Info("schema up to date", zap.Int("statements", len(statements)))
}
