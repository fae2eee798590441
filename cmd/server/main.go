package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	_ "kitesurf/docs" // swagger docs

	"kitesurf/internal/auth"
	"kitesurf/internal/cache"
	"kitesurf/internal/config"
	"kitesurf/internal/db"
	"kitesurf/internal/handler"
	"kitesurf/internal/logging"
	"kitesurf/internal/repository"
	"kitesurf/internal/router"
	"kitesurf/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title Kitesurfschool Windkracht-12 API
// @version 1.0
// @description Booking backend: login sessions, lesson catalog and reservations.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token returned by /auth/login.
func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to a YAML config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Dev)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	gormDB, err := db.NewMySQL(cfg.DB, logger)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}

	if cfg.ResetDB {
		logger.Warn("RESET_DB=true detected, dropping all tables")
		db.DropAll(gormDB, logger)
	}
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer cacheClient.Close()
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		logger.Warn("redis unavailable, running without cache", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
	}
	cancelPing()

	store := repository.NewStore(gormDB)

	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret)
	sessions := auth.NewSessionCache(cacheClient)
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	opts := service.DefaultOptions()
	opts.Timeout = cfg.DB.Timeout
	opts.SessionTTL = cfg.Auth.SessionTTL

	authService := service.NewAuthService(store, jwtService, sessions, hasher, opts, logger)
	userService := service.NewUserService(store, hasher, opts, logger)
	catalogService := service.NewCatalogService(store, cacheClient, opts, logger)
	reservationService := service.NewReservationService(store, opts, logger)

	e := echo.New()
	router.Register(
		e,
		cfg,
		logger,
		jwtService,
		authService,
		handler.NewAuthHandler(authService, userService, logger),
		handler.NewCatalogHandler(catalogService),
		handler.NewReservationHandler(reservationService, logger),
		handler.NewUserHandler(userService),
		handler.NewWeatherHandler(catalogService),
		handler.NewSeedHandler(catalogService, logger),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.ServerPort
	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
