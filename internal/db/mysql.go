package db

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"kitesurf/internal/config"
	"kitesurf/internal/model"
)

const slowQueryThreshold = 500 * time.Millisecond

// NewMySQL returns a connected GORM DB instance with the pool sized from cfg.
func NewMySQL(cfg config.DB, logger *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger:  NewLogger(logger),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("mysql pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	return db, nil
}

// NewLogger routes GORM's warnings and slow query reports through zap.
func NewLogger(logger *zap.Logger) gormlogger.Interface {
	return gormlogger.New(zap.NewStdLog(logger.Named("gorm")), gormlogger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

// Models lists every persisted type in dependency order.
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.UserActivation{},
		&model.LoginEvent{},
		&model.Session{},
		&model.Package{},
		&model.Location{},
		&model.Reservation{},
		&model.DuoParticipant{},
		&model.EmailLogEntry{},
	}
}

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// DropAll drops every table in reverse dependency order. Missing tables are
// reported through logger and skipped.
func DropAll(db *gorm.DB, logger *zap.Logger) {
	models := Models()
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(models[i]); err != nil {
			logger.Warn("drop table failed (may not exist)", zap.Error(err))
		}
	}
}
