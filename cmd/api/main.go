package main

import (
	"context"
	"log"
	"os"

	"splittab/internal/auth"
	"splittab/internal/db"
	"splittab/internal/friends"
	"splittab/internal/receipts"
	"splittab/internal/router"
	"splittab/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("R2 init failed:", err)
	}

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	friendRepo := friends.NewPostgresRepository(pgDB)
	receiptRepo := receipts.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	authService := auth.NewService(userRepo)
	friendService := friends.NewService(friendRepo)

	receiptService := receipts.NewService(
		receiptRepo,
		friendService,
		r2Client,
	)

	// ───────────────────────── HANDLERS ─────────────────────────
	authHandler := auth.NewHandler(authService)
	friendHandler := friends.NewHandler(friendService, receiptService)
	receiptHandler := receipts.NewHandler(receiptService)

	// ───────────────────────── GIN ─────────────────────────
	r := router.New(authHandler, friendHandler, receiptHandler)

	// ───────────────────────── START ─────────────────────────
	log.Println("API running at http://localhost:8000")
	r.Run(":8000")
}
