package main

import (
	"context"
	"flag"
	"os"
	"time"

	"go.uber.org/zap"

	"kitesurf/internal/auth"
	"kitesurf/internal/cache"
	"kitesurf/internal/config"
	"kitesurf/internal/db"
	"kitesurf/internal/logging"
	"kitesurf/internal/model"
	"kitesurf/internal/repository"
	"kitesurf/internal/service"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to a YAML config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Dev)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting seed")

	gormDB, err := db.NewMySQL(cfg.DB, logger)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	store := repository.NewStore(gormDB)
	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer cacheClient.Close()

	opts := service.DefaultOptions()
	opts.Timeout = cfg.DB.Timeout
	catalogService := service.NewCatalogService(store, cacheClient, opts, logger)
	userService := service.NewUserService(store, auth.NewBcryptHasher(cfg.Auth.BcryptCost), opts, logger)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pkgs, locs := service.DefaultPackages(), service.DefaultLocations()
	if err := catalogService.Seed(ctx, pkgs, locs); err != nil {
		logger.Fatal("seed catalog", zap.Error(err))
	}
	logger.Info("catalog seeded", zap.Int("packages", len(pkgs)), zap.Int("locations", len(locs)))

	email, password := os.Getenv("SEED_OWNER_EMAIL"), os.Getenv("SEED_OWNER_PASSWORD")
	if email == "" || password == "" {
		logger.Info("SEED_OWNER_EMAIL or SEED_OWNER_PASSWORD not set, skipping owner account")
		return
	}
	owner, err := userService.CreateStaff(ctx, email, password, model.RoleOwner, service.Profile{
		FirstName: "Eigenaar",
		LastName:  "Windkracht-12",
	})
	if err != nil {
		logger.Fatal("seed owner", zap.Error(err))
	}
	logger.Info("owner account ready", zap.Uint("id", owner.ID), zap.String("email", owner.Email))
}
