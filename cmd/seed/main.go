package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/mesafina/mesafina-backend/internal/catalog"
	"github.com/mesafina/mesafina-backend/pkg/config"
	"github.com/mesafina/mesafina-backend/pkg/db"
	"github.com/mesafina/mesafina-backend/pkg/logger"
)

// Loads the restaurant catalog fixtures into an empty database. Safe to
// run repeatedly: a non-empty catalog is left untouched.
func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	seeded, err := catalog.Seed(context.Background(), dbClient.DB())
	if err != nil {
		logg.Error(context.Background(), "failed to seed restaurant catalog", err)
		os.Exit(1)
	}

	ctx := logg.WithField(context.Background(), "restaurants", seeded)
	if seeded == 0 {
		logg.Info(ctx, "catalog already seeded, nothing to do")
		return
	}
	logg.Info(ctx, "seeded restaurant catalog")
}
