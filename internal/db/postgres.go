package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// FRIENDS
	// -------------------------------
	// seq is the numeric id handed out in final-amount payloads;
	// clients key their local state by the UUID.
	friendsTableSQL := `
		CREATE TABLE IF NOT EXISTS friends (
			seq BIGSERIAL UNIQUE,
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL REFERENCES users(id),
			name VARCHAR(255) NOT NULL,
			avatar VARCHAR(500) NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, friendsTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// RECEIPTS
	// -------------------------------
	// Items (with subitems and assignments) live in one JSONB document;
	// totals stay as the entered text so validation can tell a zero
	// from a typo.
	receiptsTableSQL := `
		CREATE TABLE IF NOT EXISTS receipts (
			id UUID PRIMARY KEY,
			owner_id UUID NOT NULL REFERENCES users(id),
			name VARCHAR(255) NOT NULL,
			expected_total VARCHAR(50) NOT NULL DEFAULT '',
			tax VARCHAR(50) NOT NULL DEFAULT '',
			tip VARCHAR(50) NOT NULL DEFAULT '',
			participants TEXT[] NOT NULL DEFAULT '{}',
			items JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, receiptsTableSQL); err != nil {
		return err
	}

	imageColumnSQL := `
		ALTER TABLE receipts
		ADD COLUMN IF NOT EXISTS image_url VARCHAR(500) NULL
	`
	if _, err := db.Exec(ctx, imageColumnSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
