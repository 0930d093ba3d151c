package main

import (
	"context"
	"net/http"
	"os"

	"github.com/fulltechhq/fulltech-backend/api/routes"
	"github.com/fulltechhq/fulltech-backend/internal/catalog"
	"github.com/fulltechhq/fulltech-backend/internal/content"
	"github.com/fulltechhq/fulltech-backend/internal/customers"
	"github.com/fulltechhq/fulltech-backend/internal/purchases"
	"github.com/fulltechhq/fulltech-backend/internal/raffles"
	"github.com/fulltechhq/fulltech-backend/internal/referrals"
	"github.com/fulltechhq/fulltech-backend/pkg/auth/session"
	"github.com/fulltechhq/fulltech-backend/pkg/config"
	"github.com/fulltechhq/fulltech-backend/pkg/db"
	"github.com/fulltechhq/fulltech-backend/pkg/logger"
	"github.com/fulltechhq/fulltech-backend/pkg/migrate"
	"github.com/fulltechhq/fulltech-backend/pkg/redis"
	"github.com/joho/godotenv"
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

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	activityRecorder := customers.NewActivityRecorder()

	referralsService, err := referrals.NewService(referrals.ServiceParams{
		Repo:       referrals.NewRepository(dbClient.DB()),
		Activities: activityRecorder,
		Referral:   cfg.Referral,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create referrals service", err)
		os.Exit(1)
	}

	customersService, err := customers.NewService(customers.ServiceParams{
		Repo:      customers.NewRepository(dbClient.DB()),
		Referrals: referralsService,
		Tx:        dbClient,
		Password:  cfg.Password,
		Referral:  cfg.Referral,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create customers service", err)
		os.Exit(1)
	}

	rafflesService, err := raffles.NewService(raffles.ServiceParams{
		Repo:       raffles.NewRepository(dbClient.DB()),
		Activities: activityRecorder,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create raffles service", err)
		os.Exit(1)
	}

	purchasesService, err := purchases.NewService(purchases.ServiceParams{
		Repo:       purchases.NewRepository(dbClient.DB()),
		Referrals:  referralsService,
		Raffles:    rafflesService,
		Activities: activityRecorder,
		Tx:         dbClient,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create purchases service", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(catalog.ServiceParams{
		Repo: catalog.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	contentService, err := content.NewService(content.ServiceParams{
		Repo: content.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create content service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:    cfg,
			Logger:    logg,
			DB:        dbClient,
			Redis:     redisClient,
			Sessions:  sessionManager,
			Customers: customersService,
			Referrals: referralsService,
			Purchases: purchasesService,
			Raffles:   rafflesService,
			Catalog:   catalogService,
			Content:   contentService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
