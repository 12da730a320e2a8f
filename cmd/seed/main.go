package main

import (
	"context"
	"log"
	"os"

	"garage-sale/internal/config"
	"garage-sale/internal/db"
	"garage-sale/internal/seed"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer pool.Close()

	if err := seed.Apply(ctx, pool); err != nil {
		logger.Fatalf("seed: %v", err)
	}
	logger.Printf("seed data applied")
}
