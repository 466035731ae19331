package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mesafina/mesafina-backend/api/routes"
	"github.com/mesafina/mesafina-backend/internal/catalog"
	"github.com/mesafina/mesafina-backend/internal/ledger"
	"github.com/mesafina/mesafina-backend/internal/preferences"
	"github.com/mesafina/mesafina-backend/internal/reservations"
	"github.com/mesafina/mesafina-backend/internal/search"
	"github.com/mesafina/mesafina-backend/pkg/config"
	"github.com/mesafina/mesafina-backend/pkg/db"
	"github.com/mesafina/mesafina-backend/pkg/logger"
	"github.com/mesafina/mesafina-backend/pkg/metrics"
	"github.com/mesafina/mesafina-backend/pkg/migrate"
	"github.com/mesafina/mesafina-backend/pkg/outbox"
	"github.com/mesafina/mesafina-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
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

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	if cfg.FeatureFlags.SeedCatalog {
		seeded, err := catalog.Seed(context.Background(), dbClient.DB())
		if err != nil {
			logg.Error(context.Background(), "failed to seed restaurant catalog", err)
			os.Exit(1)
		}
		if seeded > 0 {
			ctx := logg.WithField(context.Background(), "restaurants", seeded)
			logg.Info(ctx, "seeded restaurant catalog")
		}
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	catalogRepo := catalog.NewRepository(dbClient.DB())
	catalogService, err := catalog.NewService(catalogRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	ledgerService, err := ledger.NewService(ledger.ServiceParams{
		DB:          dbClient.DB(),
		Repository:  ledger.NewRepository(dbClient.DB()),
		Restaurants: catalogRepo,
		Granularity: cfg.Booking.SlotGranularity(),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create ledger service", err)
		os.Exit(1)
	}

	outboxService := outbox.NewService(outbox.NewRepository(dbClient.DB()), logg)
	bookingMetrics := metrics.NewBookingMetrics(prometheus.DefaultRegisterer)

	reservationsService, err := reservations.NewService(reservations.ServiceParams{
		DB:          dbClient.DB(),
		Repository:  reservations.NewRepository(dbClient.DB()),
		Restaurants: catalogRepo,
		Ledger:      ledgerService,
		Outbox:      outboxService,
		Metrics:     bookingMetrics,
		Booking:     cfg.Booking,
		Logger:      logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create reservations service", err)
		os.Exit(1)
	}

	searchService, err := search.NewService(search.ServiceParams{
		Restaurants: catalogRepo,
		Areas:       catalogService,
		Ledger:      ledgerService,
		Booking:     cfg.Booking,
		Search:      cfg.Search,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create search service", err)
		os.Exit(1)
	}

	preferencesService, err := preferences.NewService(redisClient, cfg.Preferences.TTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create preferences service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	id := os.Getenv("DYNO")
	if id == "" {
		id = "local"
	}
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": id,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			nil,
			catalogService,
			ledgerService,
			reservationsService,
			searchService,
			preferencesService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
